package sim

// startSampler registers a self-rescheduling timer that records the
// current holding-pattern and takeoff-queue sizes every SampleInterval
// minutes, including one sample at time zero.
func (s *Simulation) startSampler() {
	var tick func(now float64)
	tick = func(now float64) {
		s.stats.SampleHolding(now, s.holdingCount)
		s.stats.SampleTakeoff(now, s.takeoffCount)
		s.scheduler.After(SampleInterval, tick)
	}
	tick(s.scheduler.Now())
}
