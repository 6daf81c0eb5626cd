package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// stepHz is the fixed integration rate of every spring.
	stepHz = 60
	// maxCatchUp bounds how much wall time one Advance call integrates, so a
	// backgrounded tab does not spin through thousands of steps on return.
	maxCatchUp = 0.25
)

// SpringConfig describes a unit-mass damped spring.
type SpringConfig struct {
	Stiffness float64 `mapstructure:"stiffness" json:"stiffness"`
	Damping   float64 `mapstructure:"damping" json:"damping"`
	RestDelta float64 `mapstructure:"rest_delta" json:"restDelta"`
}

func (c SpringConfig) angularFrequency() float64 {
	return math.Sqrt(c.Stiffness)
}

func (c SpringConfig) dampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness))
}

// Spring smooths a scalar toward a moving target. It is advanced with a
// fixed timestep regardless of the frame interval it is fed.
type Spring struct {
	cfg    SpringConfig
	h      harmonica.Spring
	pos    float64
	vel    float64
	target float64
	acc    float64
	snap   bool
}

// NewSpring returns a spring at rest on initial. A non-positive stiffness
// yields a spring that jumps straight to its target.
func NewSpring(cfg SpringConfig, initial float64) *Spring {
	s := &Spring{cfg: cfg, pos: initial, target: initial}
	if cfg.Stiffness <= 0 || cfg.Damping < 0 {
		s.snap = true
		return s
	}
	s.h = harmonica.NewSpring(harmonica.FPS(stepHz), cfg.angularFrequency(), cfg.dampingRatio())
	return s
}

// SetTarget moves the equilibrium point. Non-finite targets are ignored.
func (s *Spring) SetTarget(v float64) {
	if !finite(v) {
		return
	}
	s.target = v
	if s.snap {
		s.pos, s.vel = v, 0
	}
}

// Advance integrates dt seconds and returns the new position.
func (s *Spring) Advance(dt float64) float64 {
	if s.snap || !finite(dt) || dt <= 0 {
		return s.pos
	}
	s.acc = math.Min(s.acc+dt, maxCatchUp)
	const step = 1.0 / stepHz
	for s.acc >= step {
		s.pos, s.vel = s.h.Update(s.pos, s.vel, s.target)
		s.acc -= step
	}
	if s.Settled() {
		s.pos, s.vel = s.target, 0
	}
	return s.pos
}

// Settled reports whether both displacement and velocity are within the
// rest delta.
func (s *Spring) Settled() bool {
	return math.Abs(s.target-s.pos) <= s.cfg.RestDelta && math.Abs(s.vel) <= s.cfg.RestDelta
}

func (s *Spring) Value() float64  { return s.pos }
func (s *Spring) Target() float64 { return s.target }

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
