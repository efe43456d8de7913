package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimConfig_WithDefaults_FillsZeroValues(t *testing.T) {
	cfg := SimConfig{}.withDefaults()
	assert.Len(t, cfg.Runways, 1)
	assert.Equal(t, "01", cfg.Runways[0].Number)
	assert.Equal(t, Landing, cfg.Runways[0].Mode)
	assert.Equal(t, 15.0, cfg.InboundFlow)
	assert.Equal(t, 15.0, cfg.OutboundFlow)
	assert.Equal(t, 30.0, cfg.MaxWaitTime)
	assert.Equal(t, 120.0, cfg.SimDuration)
}

func TestSimConfig_Validate_RejectsNegativeFlow(t *testing.T) {
	cfg := SimConfig{InboundFlow: -1}.withDefaults()
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestSimConfig_Validate_RejectsZeroDuration(t *testing.T) {
	cfg := SimConfig{SimDuration: -5}.withDefaults()
	cfg.SimDuration = 0
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestSimConfig_Validate_RejectsOutOfRangeClosureRunway(t *testing.T) {
	cfg := SimConfig{
		Runways:  []RunwayConfig{{}},
		Closures: []RunwayClosure{{RunwayIndex: 5, StartTime: 0, EndTime: 10}},
	}.withDefaults()
	cfg.SimDuration = 60
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestSimConfig_Validate_RejectsBackwardsClosureWindow(t *testing.T) {
	cfg := SimConfig{
		Runways:  []RunwayConfig{{}},
		Closures: []RunwayClosure{{RunwayIndex: 0, StartTime: 10, EndTime: 5}},
	}.withDefaults()
	cfg.SimDuration = 60
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestSimConfig_Validate_AcceptsWellFormedConfig(t *testing.T) {
	cfg := SimConfig{
		Runways:     []RunwayConfig{{Mode: Mixed}},
		InboundFlow: 10,
		SimDuration: 60,
	}.withDefaults()
	assert.NoError(t, cfg.Validate())
}
