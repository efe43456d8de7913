package sim

// QueueSample is one (sim_time, size) point in a queue-size time series.
type QueueSample struct {
	Time float64
	Size int
}

// QueueSeries is an append-only time series of QueueSamples, sampled
// periodically by the queue sampler, one per direction.
type QueueSeries struct {
	samples []QueueSample
}

// Append records a sample. Samples are expected in non-decreasing Time
// order since the sampler is time-driven, but Append does not enforce it.
func (qs *QueueSeries) Append(t float64, size int) {
	qs.samples = append(qs.samples, QueueSample{Time: t, Size: size})
}

// Max returns the largest Size recorded, or 0 if the series is empty.
func (qs *QueueSeries) Max() int {
	max := 0
	for _, s := range qs.samples {
		if s.Size > max {
			max = s.Size
		}
	}
	return max
}

// Pairs returns the series as [time, size] pairs for the external-facing
// schema.
func (qs *QueueSeries) Pairs() [][2]float64 {
	pairs := make([][2]float64, len(qs.samples))
	for i, s := range qs.samples {
		pairs[i] = [2]float64{s.Time, float64(s.Size)}
	}
	return pairs
}
