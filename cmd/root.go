// cmd/root.go
package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/amirkeiser/runwaysim/sim"
)

var (
	configPath    string
	logLevel      string
	seed          int64
	hasSeed       bool
	durationFlag  float64
	tickSize      float64
	playbackDelay float64
)

var rootCmd = &cobra.Command{
	Use:   "runwaysim",
	Short: "Discrete-event simulator for airport runway operations",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario to completion and print the compiled results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyLogLevel(); err != nil {
			return err
		}

		cfg, err := loadScenario(configPath, seedPtr(), durationFlag)
		if err != nil {
			return err
		}

		s, err := sim.NewSimulation(cfg)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"runways":       len(cfg.Runways),
			"inbound_flow":  cfg.InboundFlow,
			"outbound_flow": cfg.OutboundFlow,
			"sim_duration":  cfg.SimDuration,
		}).Info("starting simulation")

		results := s.Run()

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
		logrus.Info("simulation complete")
		return nil
	},
}

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Run a scenario, emitting one JSON snapshot per tick",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyLogLevel(); err != nil {
			return err
		}

		cfg, err := loadScenario(configPath, seedPtr(), durationFlag)
		if err != nil {
			return err
		}

		s, err := sim.NewSimulation(cfg)
		if err != nil {
			return err
		}
		s.Setup()

		enc := json.NewEncoder(os.Stdout)
		for now := 0.0; now < cfg.SimDuration; now += tickSize {
			until := now + tickSize
			if until > cfg.SimDuration {
				until = cfg.SimDuration
			}
			s.Step(until)
			if err := enc.Encode(snapshotMessage{Type: "tick", Time: s.Now(), Results: s.Snapshot()}); err != nil {
				return err
			}
			if playbackDelay > 0 {
				time.Sleep(time.Duration(playbackDelay * float64(time.Second)))
			}
		}
		return enc.Encode(snapshotMessage{Type: "done", Time: s.Now(), Results: s.Snapshot()})
	},
}

type snapshotMessage struct {
	Type    string      `json:"type"`
	Time    float64     `json:"time"`
	Results sim.Results `json:"results"`
}

func applyLogLevel() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}

func seedPtr() *int64 {
	if !hasSeed {
		return nil
	}
	return &seed
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	for _, c := range []*cobra.Command{runCmd, streamCmd} {
		c.Flags().StringVar(&configPath, "config", "", "path to a scenario YAML file (required)")
		c.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
		c.Flags().Float64Var(&durationFlag, "duration", 0, "override the scenario's sim_duration, in minutes")
		c.MarkFlagRequired("config")
	}
	runCmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed, overriding the scenario's seed; omit both for a non-reproducible run")
	streamCmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed, overriding the scenario's seed; omit both for a non-reproducible run")
	streamCmd.Flags().Float64Var(&tickSize, "tick", 1.0, "simulated minutes advanced per emitted snapshot")
	streamCmd.Flags().Float64Var(&playbackDelay, "playback-delay", 0, "real-time seconds to sleep between ticks")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		hasSeed = cmd.Flags().Changed("seed")
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(streamCmd)
}
