package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRNG_SameKeyProducesSameSequence(t *testing.T) {
	a := NewRNG(NewSimulationKey(99))
	b := NewRNG(NewSimulationKey(99))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewRNG_DifferentKeysDiverge(t *testing.T) {
	a := NewRNG(NewSimulationKey(1))
	b := NewRNG(NewSimulationKey(2))

	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	assert.False(t, same)
}
