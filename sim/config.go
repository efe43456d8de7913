package sim

import "fmt"

// RunwayMode is what a runway may be used for.
type RunwayMode string

const (
	Landing RunwayMode = "landing"
	Takeoff RunwayMode = "takeoff"
	Mixed   RunwayMode = "mixed"
)

// RunwayStatus is a runway's configured condition. Only runways whose
// status is Available are considered by runway selection; closures never
// change this field. The status is not copied into any AircraftLog.
type RunwayStatus string

const (
	Available        RunwayStatus = "available"
	Inspection       RunwayStatus = "inspection"
	Snow             RunwayStatus = "snow"
	EquipmentFailure RunwayStatus = "equipment_failure"
)

// RunwayConfig describes one runway.
type RunwayConfig struct {
	Number  string       // runway designator, default "01"
	Length  float64      // metres, default 3000
	Bearing float64      // degrees, default 90
	Mode    RunwayMode   // default Landing
	Status  RunwayStatus // default Available
}

// withDefaults fills zero-valued fields with their documented defaults.
func (rc RunwayConfig) withDefaults() RunwayConfig {
	if rc.Number == "" {
		rc.Number = "01"
	}
	if rc.Length == 0 {
		rc.Length = 3000
	}
	if rc.Bearing == 0 {
		rc.Bearing = 90
	}
	if rc.Mode == "" {
		rc.Mode = Landing
	}
	if rc.Status == "" {
		rc.Status = Available
	}
	return rc
}

// RunwayClosure schedules a pre-emptive seizure of one runway.
type RunwayClosure struct {
	RunwayIndex int          // index into SimConfig.Runways
	StartTime   float64      // minutes into the simulation
	EndTime     float64      // minutes into the simulation, > StartTime
	Reason      RunwayStatus // default Inspection
}

// SimConfig is the input configuration consumed by NewSimulation.
type SimConfig struct {
	Runways      []RunwayConfig
	InboundFlow  float64 // aircraft/hour, default 15
	OutboundFlow float64 // aircraft/hour, default 15
	MaxWaitTime  float64 // minutes, default 30
	SimDuration  float64 // minutes, default 120
	Closures     []RunwayClosure
	Seed         *int64 // nil => non-reproducible seed drawn from the OS clock
}

// withDefaults returns a copy of c with zero-valued scalar fields and an
// empty runway list replaced by their documented defaults.
func (c SimConfig) withDefaults() SimConfig {
	if len(c.Runways) == 0 {
		c.Runways = []RunwayConfig{{}}
	}
	for i, rc := range c.Runways {
		c.Runways[i] = rc.withDefaults()
	}
	if c.InboundFlow == 0 {
		c.InboundFlow = 15
	}
	if c.OutboundFlow == 0 {
		c.OutboundFlow = 15
	}
	if c.MaxWaitTime == 0 {
		c.MaxWaitTime = 30
	}
	if c.SimDuration == 0 {
		c.SimDuration = 120
	}
	for i, cl := range c.Closures {
		if cl.Reason == "" {
			c.Closures[i].Reason = Inspection
		}
	}
	return c
}

// Validate rejects configurations that cannot be simulated. It runs
// against the defaulted configuration, so zero-valued optional fields
// never fail.
func (c SimConfig) Validate() error {
	if len(c.Runways) == 0 {
		return fmt.Errorf("runwaysim: at least one runway is required")
	}
	if c.InboundFlow < 0 {
		return fmt.Errorf("runwaysim: inbound_flow must be >= 0, got %g", c.InboundFlow)
	}
	if c.OutboundFlow < 0 {
		return fmt.Errorf("runwaysim: outbound_flow must be >= 0, got %g", c.OutboundFlow)
	}
	if c.MaxWaitTime < 0 {
		return fmt.Errorf("runwaysim: max_wait_time must be >= 0, got %g", c.MaxWaitTime)
	}
	if c.SimDuration <= 0 {
		return fmt.Errorf("runwaysim: sim_duration must be > 0, got %g", c.SimDuration)
	}
	for i, cl := range c.Closures {
		if cl.RunwayIndex < 0 || cl.RunwayIndex >= len(c.Runways) {
			return fmt.Errorf("runwaysim: closures[%d].runway_index %d out of range [0,%d)", i, cl.RunwayIndex, len(c.Runways))
		}
		if !(cl.StartTime >= 0 && cl.StartTime < cl.EndTime) {
			return fmt.Errorf("runwaysim: closures[%d] requires 0 <= start_time < end_time, got start=%g end=%g", i, cl.StartTime, cl.EndTime)
		}
		if cl.EndTime > c.SimDuration {
			return fmt.Errorf("runwaysim: closures[%d].end_time %g exceeds sim_duration %g", i, cl.EndTime, c.SimDuration)
		}
	}
	return nil
}
