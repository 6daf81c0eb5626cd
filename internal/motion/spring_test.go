package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpring_SettlesOnTarget(t *testing.T) {
	s := NewSpring(DefaultProgressSpring(), 0)
	s.SetTarget(1)
	for i := 0; i < 60; i++ {
		s.Advance(0.1)
	}
	assert.True(t, s.Settled())
	assert.Equal(t, 1.0, s.Value(), "a settled spring snaps to its target")
}

func TestSpring_OverdampedApproachIsMonotonic(t *testing.T) {
	s := NewSpring(DefaultProgressSpring(), 0)
	s.SetTarget(1)
	prev := 0.0
	for i := 0; i < 240; i++ {
		v := s.Advance(1.0 / 60)
		require.GreaterOrEqual(t, v, prev, "frame %d", i)
		require.LessOrEqual(t, v, 1.0, "frame %d", i)
		prev = v
	}
}

func TestSpring_IgnoresBadInput(t *testing.T) {
	s := NewSpring(DefaultProgressSpring(), 0.5)
	s.SetTarget(math.NaN())
	assert.Equal(t, 0.5, s.Target())
	assert.Equal(t, 0.5, s.Advance(math.Inf(1)))
	assert.Equal(t, 0.5, s.Advance(-1))
}

func TestSpring_ZeroStiffnessSnaps(t *testing.T) {
	s := NewSpring(SpringConfig{}, 0)
	s.SetTarget(0.7)
	assert.Equal(t, 0.7, s.Value())
	assert.Equal(t, 0.7, s.Advance(0.016))
}

func TestSpring_CatchUpIsBounded(t *testing.T) {
	slow := NewSpring(DefaultProgressSpring(), 0)
	slow.SetTarget(1)
	slow.Advance(30)

	capped := NewSpring(DefaultProgressSpring(), 0)
	capped.SetTarget(1)
	capped.Advance(maxCatchUp)

	assert.InDelta(t, capped.Value(), slow.Value(), 1e-12)
}

func TestProgress_TracksScrollFraction(t *testing.T) {
	p := NewProgress(DefaultProgressSpring())
	assert.Equal(t, 0.0, p.ScaleX())

	p.Observe(Sample{Seq: 1, Offset: 1500, DocumentHeight: 4000, ViewportHeight: 1000})
	for i := 0; i < 300; i++ {
		p.Advance(1.0 / 60)
	}
	assert.InDelta(t, 0.5, p.ScaleX(), 0.001)
}

func TestProgress_ZeroRangeStaysEmpty(t *testing.T) {
	p := NewProgress(DefaultProgressSpring())
	p.Observe(Sample{Seq: 1, Offset: 200, DocumentHeight: 900, ViewportHeight: 900})
	for i := 0; i < 120; i++ {
		p.Advance(1.0 / 60)
		assert.Equal(t, 0.0, p.ScaleX())
	}
}
