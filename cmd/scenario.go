package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/amirkeiser/runwaysim/sim"
)

// scenarioFile is the on-disk YAML shape for a run. Field names are the
// snake_case names sim.SimConfig's validation errors use rather than its Go
// identifiers, so scenario files read the way the domain talks about runways.
type scenarioFile struct {
	Runways []struct {
		Number  string  `yaml:"number"`
		Length  float64 `yaml:"length"`
		Bearing float64 `yaml:"bearing"`
		Mode    string  `yaml:"mode"`
	} `yaml:"runways"`
	InboundFlow  float64 `yaml:"inbound_flow"`
	OutboundFlow float64 `yaml:"outbound_flow"`
	MaxWaitTime  float64 `yaml:"max_wait_time"`
	SimDuration  float64 `yaml:"sim_duration"`
	Seed         *int64  `yaml:"seed"`
	Closures     []struct {
		RunwayIndex int     `yaml:"runway_index"`
		StartTime   float64 `yaml:"start_time"`
		EndTime     float64 `yaml:"end_time"`
		Reason      string  `yaml:"reason"`
	} `yaml:"closures"`
}

// loadScenario reads and decodes a YAML scenario file into a sim.SimConfig.
// seedOverride, when non-nil, and durationOverride, when positive, take
// precedence over whatever the file specifies.
func loadScenario(path string, seedOverride *int64, durationOverride float64) (sim.SimConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return sim.SimConfig{}, fmt.Errorf("runwaysim: reading scenario file: %w", err)
	}

	var sf scenarioFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return sim.SimConfig{}, fmt.Errorf("runwaysim: parsing scenario file: %w", err)
	}

	cfg := sim.SimConfig{
		InboundFlow:  sf.InboundFlow,
		OutboundFlow: sf.OutboundFlow,
		MaxWaitTime:  sf.MaxWaitTime,
		SimDuration:  sf.SimDuration,
		Seed:         sf.Seed,
	}
	if seedOverride != nil {
		cfg.Seed = seedOverride
	}
	for _, r := range sf.Runways {
		cfg.Runways = append(cfg.Runways, sim.RunwayConfig{
			Number:  r.Number,
			Length:  r.Length,
			Bearing: r.Bearing,
			Mode:    sim.RunwayMode(r.Mode),
		})
	}
	for _, c := range sf.Closures {
		cfg.Closures = append(cfg.Closures, sim.RunwayClosure{
			RunwayIndex: c.RunwayIndex,
			StartTime:   c.StartTime,
			EndTime:     c.EndTime,
			Reason:      sim.RunwayStatus(c.Reason),
		})
	}
	if durationOverride > 0 {
		cfg.SimDuration = durationOverride
	}
	return cfg, nil
}
