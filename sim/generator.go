package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// jitter draws one truncated-normal arrival offset: N(0, TimeStdDev)
// truncated to [-TimeTruncate, +TimeTruncate] by clamping rather than
// rejection sampling.
func (s *Simulation) jitter() float64 {
	dist := distuv.Normal{Mu: 0, Sigma: TimeStdDev, Src: s.rng}
	offset := dist.Rand()
	if offset > TimeTruncate {
		offset = TimeTruncate
	}
	if offset < -TimeTruncate {
		offset = -TimeTruncate
	}
	return offset
}

// startGenerator registers a direction's aircraft generator. Each loop
// iteration draws its jitter eagerly, before any suspension, so that
// event order mirrors draw order. A non-positive wait means the next
// aircraft is due now or already overdue: it is spawned without
// suspending and the loop immediately tries the next scheduled slot.
func (s *Simulation) startGenerator(direction Direction, flow float64) {
	if flow <= 0 {
		return
	}
	interval := 60.0 / flow
	scheduled := 0.0

	var tick func()
	tick = func() {
		for {
			thisScheduled := scheduled
			scheduled += interval

			offset := s.jitter()
			actualEntry := math.Max(0, thisScheduled+offset)
			wait := actualEntry - s.scheduler.Now()

			if wait > 0 {
				s.scheduler.After(wait, func(now float64) {
					s.spawnAircraft(direction, thisScheduled)
					tick()
				})
				return
			}
			s.spawnAircraft(direction, thisScheduled)
		}
	}
	tick()
}

// spawnAircraft builds one aircraft and enters it into its lifecycle.
func (s *Simulation) spawnAircraft(direction Direction, scheduledTime float64) {
	fuel := FuelMin + s.rng.Float64()*(FuelMax-FuelMin)
	emergency := NoEmergency

	if direction == Inbound {
		roll := s.rng.Float64()
		switch {
		case roll < EmergencyMechanicalProb:
			emergency = Mechanical
		case roll < EmergencyMechanicalProb+EmergencyPassengerProb:
			emergency = PassengerHealth
		case roll < EmergencyMechanicalProb+EmergencyPassengerProb+EmergencyFuelProb:
			emergency = FuelEmergency
			fuel = (FuelReserve + 1) + s.rng.Float64()*9
		}
	}

	if direction == Inbound {
		s.arrivalOrder++
		ac := Aircraft{
			Callsign:      formatCallsign("ARR", s.arrivalOrder),
			Operator:      "SIM-AIR",
			Origin:        "ORIG",
			Destination:   "HERE",
			Direction:     Inbound,
			ScheduledTime: scheduledTime,
			FuelRemaining: fuel,
			Emergency:     emergency,
		}
		s.startArrival(ac, s.arrivalOrder)
	} else {
		s.departureOrder++
		ac := Aircraft{
			Callsign:      formatCallsign("DEP", s.departureOrder),
			Operator:      "SIM-AIR",
			Origin:        "HERE",
			Destination:   "DEST",
			Direction:     Outbound,
			ScheduledTime: scheduledTime,
			FuelRemaining: fuel,
			Emergency:     NoEmergency,
		}
		s.startDeparture(ac, s.departureOrder)
	}
}

func formatCallsign(prefix string, n int) string {
	return fmt.Sprintf("%s%04d", prefix, n)
}
