package sim

import "gonum.org/v1/gonum/stat"

// Results is the compiled summary of a run, or of a run so far.
type Results struct {
	TotalArrivals      int `json:"total_arrivals"`
	TotalDepartures    int `json:"total_departures"`
	TotalDiversions    int `json:"total_diversions"`
	TotalCancellations int `json:"total_cancellations"`

	MaxHoldingSize      int `json:"max_holding_size"`
	MaxTakeoffQueueSize int `json:"max_takeoff_queue_size"`

	AvgHoldingTime  float64 `json:"avg_holding_time"`
	AvgTakeoffWait  float64 `json:"avg_takeoff_wait"`
	MaxArrivalDelay float64 `json:"max_arrival_delay"`
	AvgArrivalDelay float64 `json:"avg_arrival_delay"`
	MaxTakeoffDelay float64 `json:"max_takeoff_delay"`
	AvgTakeoffDelay float64 `json:"avg_takeoff_delay"`

	HoldingSeries [][2]float64 `json:"holding_queue_series"`
	TakeoffSeries [][2]float64 `json:"takeoff_queue_series"`

	Landed    []AircraftLog `json:"landed"`
	Departed  []AircraftLog `json:"departed"`
	Diverted  []AircraftLog `json:"diverted"`
	Cancelled []AircraftLog `json:"cancelled"`
}

// StatisticsCollector accumulates per-aircraft outcomes and queue samples
// over a run and compiles them into a Results summary on demand.
type StatisticsCollector struct {
	landed    []AircraftLog
	departed  []AircraftLog
	diverted  []AircraftLog
	cancelled []AircraftLog

	holding QueueSeries
	takeoff QueueSeries
}

// NewStatisticsCollector returns an empty collector.
func NewStatisticsCollector() *StatisticsCollector {
	return &StatisticsCollector{}
}

func (c *StatisticsCollector) RecordLanding(log AircraftLog) {
	c.landed = append(c.landed, log)
}

func (c *StatisticsCollector) RecordDeparture(log AircraftLog) {
	c.departed = append(c.departed, log)
}

func (c *StatisticsCollector) RecordDiversion(log AircraftLog) {
	c.diverted = append(c.diverted, log)
}

func (c *StatisticsCollector) RecordCancellation(log AircraftLog) {
	c.cancelled = append(c.cancelled, log)
}

// SampleHolding records one holding-pattern queue-size sample.
func (c *StatisticsCollector) SampleHolding(t float64, size int) {
	c.holding.Append(t, size)
}

// SampleTakeoff records one takeoff-queue queue-size sample.
func (c *StatisticsCollector) SampleTakeoff(t float64, size int) {
	c.takeoff.Append(t, size)
}

func waitTimes(logs []AircraftLog) []float64 {
	out := make([]float64, len(logs))
	for i, l := range logs {
		out[i] = l.WaitTime
	}
	return out
}

func delays(logs []AircraftLog) []float64 {
	out := make([]float64, len(logs))
	for i, l := range logs {
		out[i] = l.Delay
	}
	return out
}

func maxOf(vals []float64) float64 {
	m := 0.0
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

func meanOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}

// Compile produces the final aggregate report. It is safe to call at any
// point; partial runs simply compile over whatever has been recorded so far.
func (c *StatisticsCollector) Compile() Results {
	arrivalWaits := waitTimes(c.landed)
	arrivalDelays := delays(c.landed)
	takeoffWaits := waitTimes(c.departed)
	takeoffDelays := delays(c.departed)

	return Results{
		TotalArrivals:       len(c.landed),
		TotalDepartures:     len(c.departed),
		TotalDiversions:     len(c.diverted),
		TotalCancellations:  len(c.cancelled),
		MaxHoldingSize:      c.holding.Max(),
		MaxTakeoffQueueSize: c.takeoff.Max(),
		AvgHoldingTime:      meanOf(arrivalWaits),
		AvgTakeoffWait:      meanOf(takeoffWaits),
		MaxArrivalDelay:     maxOf(arrivalDelays),
		AvgArrivalDelay:     meanOf(arrivalDelays),
		MaxTakeoffDelay:     maxOf(takeoffDelays),
		AvgTakeoffDelay:     meanOf(takeoffDelays),
		HoldingSeries:       c.holding.Pairs(),
		TakeoffSeries:       c.takeoff.Pairs(),
		Landed:              c.landed,
		Departed:            c.departed,
		Diverted:            c.diverted,
		Cancelled:           c.cancelled,
	}
}
