// Package sim provides the core discrete-event simulation engine for an
// airport's runway operations.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: the Scheduler, a clock plus a priority queue of timers
//   - priority.go: PriorityResource, the unit-capacity runway abstraction
//   - config.go: runway and simulation configuration, defaults, validation
//   - runway.go: a runway config bundled with its PriorityResource
//   - closure.go: the closure process
//   - aircraft.go: the Aircraft and AircraftLog data model
//   - generator.go: Poisson-ish inbound/outbound aircraft generators
//   - lifecycle.go: arrival and departure state machines, the fuel/wait race
//   - stats.go: the append-only statistics collector and compile()
//   - simulation.go: the facade — setup/step/snapshot/run
//
// # Architecture
//
// Simulation owns the Scheduler, the runways, the RNG and the
// StatisticsCollector. Generators spawn aircraft lifecycle processes, which
// contend for runways through PriorityResource and report their outcome to
// the collector. The queue sampler reads live counters Simulation
// maintains and writes them into the collector's time series. Nothing in
// this package performs I/O; callers in cmd/ drive it and render results.
package sim
