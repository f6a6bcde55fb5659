package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform_Range(t *testing.T) {
	src := NewUniform(42)
	for i := 0; i < 10000; i++ {
		v := src.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestUniform_SeedRepeatability(t *testing.T) {
	a := NewUniform(7)
	b := NewUniform(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}
}

func TestUniform_ZeroSeedPicksSeed(t *testing.T) {
	src := NewUniform(0)
	assert.NotZero(t, src.Seed())
}

func TestUniform_MeanApprox(t *testing.T) {
	const n = 100000
	src := NewUniform(12345)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += src.Float64()
	}
	mean := sum / n
	assert.InDelta(t, 0.5, mean, 0.01)
}

func TestUniform_HitFrequency(t *testing.T) {
	const p = 0.3
	const n = 100000
	src := NewUniform(99)
	hits := 0
	for i := 0; i < n; i++ {
		if src.Float64() < p {
			hits++
		}
	}
	freq := float64(hits) / n
	assert.LessOrEqual(t, math.Abs(freq-p), 0.01)
}

func TestScripted_ReplaysInOrder(t *testing.T) {
	src := NewScripted(0.4, 0.6, 0.3)
	assert.Equal(t, 0.4, src.Float64())
	assert.Equal(t, 0.6, src.Float64())
	assert.Equal(t, 1, src.Remaining())
	assert.Equal(t, 0.3, src.Float64())
	assert.Equal(t, 3, src.Used())
}

func TestScripted_PanicsWhenExhausted(t *testing.T) {
	src := NewScripted(0.1)
	src.Float64()
	assert.Panics(t, func() { src.Float64() })
}

func TestCounting(t *testing.T) {
	c := &Counting{Source: Constant(0.25)}
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0.25, c.Float64())
	}
	assert.Equal(t, 5, c.Draws)
}
