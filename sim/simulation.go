package sim

import (
	"time"

	"golang.org/x/exp/rand"
)

// Simulation is the facade that owns a single run: its configuration, its
// Scheduler, its runways, its one RNG stream and its statistics collector.
// Nothing here performs I/O.
type Simulation struct {
	config SimConfig

	scheduler *Scheduler
	runways   []*Runway
	rng       *rand.Rand
	stats     *StatisticsCollector

	holdingCount int
	takeoffCount int

	arrivalOrder   int
	departureOrder int

	didSetup bool
}

// NewSimulation validates cfg, applies its defaults and returns a
// Simulation ready for Setup. It does not seed the RNG or schedule any
// process; call Setup for that.
func NewSimulation(cfg SimConfig) (*Simulation, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{config: cfg}, nil
}

// Setup seeds the RNG, builds the runways and schedules the inbound and
// outbound generators, the sampler and every closure. It must be called
// exactly once, before Step; Run calls it itself, so it must not be called
// before Run.
func (s *Simulation) Setup() {
	if s.didSetup {
		panic("runwaysim: Setup called more than once")
	}
	s.didSetup = true

	seed := s.config.Seed
	var key SimulationKey
	if seed != nil {
		key = NewSimulationKey(*seed)
	} else {
		key = NewSimulationKey(time.Now().UnixNano())
	}
	s.rng = NewRNG(key)
	s.scheduler = NewScheduler()
	s.stats = NewStatisticsCollector()

	s.runways = make([]*Runway, len(s.config.Runways))
	for i, rc := range s.config.Runways {
		s.runways[i] = NewRunway(rc)
	}

	for _, cl := range s.config.Closures {
		s.scheduleClosure(cl)
	}

	s.startSampler()
	s.startGenerator(Inbound, s.config.InboundFlow)
	s.startGenerator(Outbound, s.config.OutboundFlow)
}

// Now returns the current simulated time, in minutes.
func (s *Simulation) Now() float64 {
	return s.scheduler.Now()
}

// Step advances the simulation by processing every event up to and
// including sim time until, then returns the current time.
func (s *Simulation) Step(until float64) float64 {
	s.scheduler.Run(until)
	return s.scheduler.Now()
}

// Run is the one-shot entry point: it sets up the simulation, advances it
// to its configured duration, and returns the compiled results.
func (s *Simulation) Run() Results {
	s.Setup()
	s.Step(s.config.SimDuration)
	return s.Snapshot()
}

// Snapshot compiles the statistics collector's current contents into a
// Results value. Safe to call mid-run for incremental reporting.
func (s *Simulation) Snapshot() Results {
	return s.stats.Compile()
}
