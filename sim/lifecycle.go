package sim

// findRunway picks, among available runways supporting the needed
// direction, the one with the shortest current wait queue; ties keep the
// first candidate in config order.
func (s *Simulation) findRunway(forLanding bool) *Runway {
	var best *Runway
	for _, rw := range s.runways {
		if rw.Config.Status != Available {
			continue
		}
		supports := rw.SupportsTakeoff()
		if forLanding {
			supports = rw.SupportsLanding()
		}
		if !supports {
			continue
		}
		if best == nil || rw.QueueLen() < best.QueueLen() {
			best = rw
		}
	}
	return best
}

// startArrival is the inbound lifecycle state machine: hold until a
// runway is granted or fuel runs down to reserve, whichever comes first.
func (s *Simulation) startArrival(ac Aircraft, order int) {
	entryTime := s.scheduler.Now()
	s.holdingCount++

	runway := s.findRunway(true)
	if runway == nil {
		s.holdingCount--
		s.stats.RecordDiversion(AircraftLog{
			Callsign: ac.Callsign, Operator: ac.Operator, Origin: ac.Origin,
			Destination: ac.Destination, Direction: ac.Direction,
			ScheduledTime: ac.ScheduledTime, EntryTime: entryTime, ExitTime: entryTime,
			WaitTime: 0, Emergency: ac.Emergency, FuelAtEntry: ac.FuelRemaining,
			Outcome: Diverted,
		})
		return
	}

	class := PriorityClassNormal
	if ac.Emergency != NoEmergency {
		class = PriorityClassEmergency
	}
	key := PriorityKey{Class: class, FIFOSeq: order}

	landed := false
	var reservation *Reservation
	var fuelTimeout *timer

	onGrant := func(now float64) {
		landed = true
		s.scheduler.Cancel(fuelTimeout)
		s.holdingCount--
		s.scheduler.After(LandingDuration, func(now float64) {
			runway.resource.Release(reservation, now)
			wait := now - entryTime - LandingDuration
			if wait < 0 {
				wait = 0
			}
			delay := now - LandingDuration - ac.ScheduledTime
			s.stats.RecordLanding(AircraftLog{
				Callsign: ac.Callsign, Operator: ac.Operator, Origin: ac.Origin,
				Destination: ac.Destination, Direction: ac.Direction,
				ScheduledTime: ac.ScheduledTime, EntryTime: entryTime, ExitTime: now,
				WaitTime: wait, Delay: delay, Emergency: ac.Emergency,
				FuelAtEntry: ac.FuelRemaining, Outcome: Landed,
			})
		})
	}
	reservation = runway.resource.Request(key, onGrant)

	if reservation.Granted() {
		return
	}

	fuelTimeout = s.scheduler.AfterTimeout(ac.FuelRemaining-FuelReserve, func(now float64) {
		if landed {
			return
		}
		s.holdingCount--
		if reservation.Granted() {
			runway.resource.Release(reservation, now)
		} else {
			runway.resource.Cancel(reservation, now)
		}
		wait := now - entryTime
		if wait < 0 {
			wait = 0
		}
		s.stats.RecordDiversion(AircraftLog{
			Callsign: ac.Callsign, Operator: ac.Operator, Origin: ac.Origin,
			Destination: ac.Destination, Direction: ac.Direction,
			ScheduledTime: ac.ScheduledTime, EntryTime: entryTime, ExitTime: now,
			WaitTime: wait, Emergency: ac.Emergency, FuelAtEntry: ac.FuelRemaining,
			Outcome: Diverted,
		})
	})
}

// startDeparture is the outbound lifecycle state machine, symmetric to
// startArrival with a max-wait clock instead of a fuel clock and no
// emergency priority class.
func (s *Simulation) startDeparture(ac Aircraft, order int) {
	entryTime := s.scheduler.Now()
	s.takeoffCount++

	runway := s.findRunway(false)
	if runway == nil {
		s.takeoffCount--
		s.stats.RecordCancellation(AircraftLog{
			Callsign: ac.Callsign, Operator: ac.Operator, Origin: ac.Origin,
			Destination: ac.Destination, Direction: ac.Direction,
			ScheduledTime: ac.ScheduledTime, EntryTime: entryTime, ExitTime: entryTime,
			WaitTime: 0, Emergency: ac.Emergency, FuelAtEntry: ac.FuelRemaining,
			Outcome: Cancelled,
		})
		return
	}

	key := PriorityKey{Class: PriorityClassNormal, FIFOSeq: order}

	departed := false
	var reservation *Reservation
	var maxWaitTimeout *timer

	onGrant := func(now float64) {
		departed = true
		s.scheduler.Cancel(maxWaitTimeout)
		s.takeoffCount--
		s.scheduler.After(TakeoffDuration, func(now float64) {
			runway.resource.Release(reservation, now)
			wait := now - entryTime - TakeoffDuration
			if wait < 0 {
				wait = 0
			}
			delay := now - TakeoffDuration - ac.ScheduledTime
			s.stats.RecordDeparture(AircraftLog{
				Callsign: ac.Callsign, Operator: ac.Operator, Origin: ac.Origin,
				Destination: ac.Destination, Direction: ac.Direction,
				ScheduledTime: ac.ScheduledTime, EntryTime: entryTime, ExitTime: now,
				WaitTime: wait, Delay: delay, Emergency: ac.Emergency,
				FuelAtEntry: ac.FuelRemaining, Outcome: Departed,
			})
		})
	}
	reservation = runway.resource.Request(key, onGrant)

	if reservation.Granted() {
		return
	}

	maxWaitTimeout = s.scheduler.AfterTimeout(s.config.MaxWaitTime, func(now float64) {
		if departed {
			return
		}
		s.takeoffCount--
		if reservation.Granted() {
			runway.resource.Release(reservation, now)
		} else {
			runway.resource.Cancel(reservation, now)
		}
		wait := now - entryTime
		if wait < 0 {
			wait = 0
		}
		s.stats.RecordCancellation(AircraftLog{
			Callsign: ac.Callsign, Operator: ac.Operator, Origin: ac.Origin,
			Destination: ac.Destination, Direction: ac.Direction,
			ScheduledTime: ac.ScheduledTime, EntryTime: entryTime, ExitTime: now,
			WaitTime: wait, Emergency: ac.Emergency, FuelAtEntry: ac.FuelRemaining,
			Outcome: Cancelled,
		})
	})
}
