package sim

// scheduleClosure waits until a closure's start time, seizes the runway
// with pre-emptive priority so it becomes unavailable after the current
// holder finishes but before any queued aircraft, holds it for the
// closure's duration, then releases it.
//
// Reusing PriorityResource for this gets correct queuing semantics for
// free: no explicit status-change event is needed, and Config.Status is
// left unchanged.
func (s *Simulation) scheduleClosure(cl RunwayClosure) {
	s.scheduler.After(cl.StartTime, func(now float64) {
		runway := s.runways[cl.RunwayIndex]
		duration := cl.EndTime - cl.StartTime

		var reservation *Reservation
		onGrant := func(grantedAt float64) {
			s.scheduler.After(duration, func(releaseAt float64) {
				runway.resource.Release(reservation, releaseAt)
			})
		}
		reservation = runway.resource.Request(PriorityKey{Class: PriorityClassClosure, FIFOSeq: 0}, onGrant)
	})
}
