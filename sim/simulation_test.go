package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(n int64) *int64 { return &n }

func TestSimulation_DedicatedRunways_NoDiversionsOrCancellations(t *testing.T) {
	cfg := SimConfig{
		Runways:      []RunwayConfig{{Mode: Landing}, {Mode: Takeoff}},
		InboundFlow:  10,
		OutboundFlow: 10,
		SimDuration:  60,
		Seed:         seeded(1),
	}
	s, err := NewSimulation(cfg)
	require.NoError(t, err)
	results := s.Run()

	assert.Greater(t, results.TotalArrivals, 0)
	assert.Greater(t, results.TotalDepartures, 0)
	assert.Equal(t, 0, results.TotalDiversions)
	assert.Equal(t, 0, results.TotalCancellations)
}

func TestSimulation_NoLandingRunway_AllInboundDivert(t *testing.T) {
	cfg := SimConfig{
		Runways:      []RunwayConfig{{Mode: Takeoff}},
		InboundFlow:  10,
		OutboundFlow: 10,
		SimDuration:  30,
		Seed:         seeded(1),
	}
	s, err := NewSimulation(cfg)
	require.NoError(t, err)
	results := s.Run()

	assert.Equal(t, 0, results.TotalArrivals)
	assert.Greater(t, results.TotalDiversions, 0)
}

func TestSimulation_NoTakeoffRunway_AllOutboundCancel(t *testing.T) {
	cfg := SimConfig{
		Runways:      []RunwayConfig{{Mode: Landing}},
		InboundFlow:  10,
		OutboundFlow: 10,
		SimDuration:  30,
		Seed:         seeded(1),
	}
	s, err := NewSimulation(cfg)
	require.NoError(t, err)
	results := s.Run()

	assert.Equal(t, 0, results.TotalDepartures)
	assert.Greater(t, results.TotalCancellations, 0)
}

func TestSimulation_FuelDiversionsUnderOverload(t *testing.T) {
	cfg := SimConfig{
		Runways:      []RunwayConfig{{Mode: Landing}},
		InboundFlow:  60,
		OutboundFlow: 0,
		SimDuration:  120,
		Seed:         seeded(42),
	}
	s, err := NewSimulation(cfg)
	require.NoError(t, err)
	results := s.Run()

	assert.Greater(t, results.TotalDiversions, 0)
}

func TestSimulation_ClosureOnTakeoffRunway_WorsensOutcomes(t *testing.T) {
	baselineCfg := SimConfig{
		Runways:      []RunwayConfig{{Mode: Landing}, {Mode: Takeoff}},
		InboundFlow:  15,
		OutboundFlow: 15,
		SimDuration:  120,
		Seed:         seeded(42),
	}
	baseline, err := NewSimulation(baselineCfg)
	require.NoError(t, err)
	baseResults := baseline.Run()

	closedCfg := baselineCfg
	closedCfg.Closures = []RunwayClosure{{RunwayIndex: 1, StartTime: 30, EndTime: 60, Reason: Inspection}}
	closed, err := NewSimulation(closedCfg)
	require.NoError(t, err)
	closedResults := closed.Run()

	worse := closedResults.TotalCancellations >= baseResults.TotalCancellations ||
		closedResults.MaxTakeoffQueueSize > baseResults.MaxTakeoffQueueSize
	assert.True(t, worse)
}

func TestSimulation_MixedModePressure_AtLeastAsBadAsDedicated(t *testing.T) {
	mixedCfg := SimConfig{
		Runways:      []RunwayConfig{{Mode: Mixed}},
		InboundFlow:  15,
		OutboundFlow: 15,
		SimDuration:  120,
		Seed:         seeded(42),
	}
	mixed, err := NewSimulation(mixedCfg)
	require.NoError(t, err)
	mixedResults := mixed.Run()

	dedicatedCfg := mixedCfg
	dedicatedCfg.Runways = []RunwayConfig{{Mode: Landing}, {Mode: Takeoff}}
	dedicated, err := NewSimulation(dedicatedCfg)
	require.NoError(t, err)
	dedicatedResults := dedicated.Run()

	mixedBadOutcomes := mixedResults.TotalDiversions + mixedResults.TotalCancellations
	dedicatedBadOutcomes := dedicatedResults.TotalDiversions + dedicatedResults.TotalCancellations
	mixedWait := mixedResults.AvgHoldingTime + mixedResults.AvgTakeoffWait
	dedicatedWait := dedicatedResults.AvgHoldingTime + dedicatedResults.AvgTakeoffWait

	assert.True(t, mixedBadOutcomes >= dedicatedBadOutcomes || mixedWait >= dedicatedWait)
}

func TestSimulation_Determinism_SameSeedYieldsIdenticalResults(t *testing.T) {
	cfg := SimConfig{
		Runways:      []RunwayConfig{{Mode: Mixed}},
		InboundFlow:  20,
		OutboundFlow: 20,
		SimDuration:  90,
		Seed:         seeded(123),
	}

	run := func() Results {
		s, err := NewSimulation(cfg)
		require.NoError(t, err)
		return s.Run()
	}

	first := run()
	second := run()

	assert.Equal(t, first.TotalArrivals, second.TotalArrivals)
	assert.Equal(t, first.TotalDepartures, second.TotalDepartures)
	assert.Equal(t, first.TotalDiversions, second.TotalDiversions)
	assert.Equal(t, first.TotalCancellations, second.TotalCancellations)
	assert.Equal(t, first.AvgHoldingTime, second.AvgHoldingTime)
	assert.Equal(t, first.Landed, second.Landed)
	assert.Equal(t, first.Departed, second.Departed)
}

func TestSimulation_ZeroFlow_NoTrafficButSeriesPopulated(t *testing.T) {
	cfg := SimConfig{
		Runways:      []RunwayConfig{{Mode: Mixed}},
		InboundFlow:  0,
		OutboundFlow: 0,
		SimDuration:  30,
		Seed:         seeded(1),
	}
	s, err := NewSimulation(cfg)
	require.NoError(t, err)
	results := s.Run()

	assert.Equal(t, 0, results.TotalArrivals)
	assert.Equal(t, 0, results.TotalDepartures)
	assert.Equal(t, 0, results.TotalDiversions)
	assert.Equal(t, 0, results.TotalCancellations)
	assert.NotEmpty(t, results.HoldingSeries)
	assert.NotEmpty(t, results.TakeoffSeries)
}

func TestSimulation_LandedLogs_SatisfyWaitAndServiceInvariants(t *testing.T) {
	cfg := SimConfig{
		Runways:      []RunwayConfig{{Mode: Landing}, {Mode: Takeoff}},
		InboundFlow:  15,
		OutboundFlow: 15,
		SimDuration:  90,
		Seed:         seeded(7),
	}
	s, err := NewSimulation(cfg)
	require.NoError(t, err)
	results := s.Run()

	require.NotEmpty(t, results.Landed)
	for _, log := range results.Landed {
		assert.GreaterOrEqual(t, log.WaitTime, 0.0)
		assert.GreaterOrEqual(t, log.ExitTime-log.EntryTime, LandingDuration)
	}
}
