package motion

import "math"

// ParallaxConfig maps scroll progress 0..1 linearly onto From..To pixels.
type ParallaxConfig struct {
	From   float64      `mapstructure:"from" json:"from"`
	To     float64      `mapstructure:"to" json:"to"`
	Spring SpringConfig `mapstructure:"spring" json:"spring"`
}

// DefaultParallax lifts the rings up to 12px over the full page.
func DefaultParallax() ParallaxConfig {
	return ParallaxConfig{
		From:   0,
		To:     -12,
		Spring: SpringConfig{Stiffness: 60, Damping: 20, RestDelta: 0.01},
	}
}

// Parallax offsets the decorative ring layers vertically as the page
// scrolls. The portrait itself is never offset.
type Parallax struct {
	cfg    ParallaxConfig
	lo, hi float64
	spring *Spring
}

// NewParallax returns a parallax resting at cfg.From.
func NewParallax(cfg ParallaxConfig) *Parallax {
	return &Parallax{
		cfg:    cfg,
		lo:     math.Min(cfg.From, cfg.To),
		hi:     math.Max(cfg.From, cfg.To),
		spring: NewSpring(cfg.Spring, cfg.From),
	}
}

// Map returns the unsmoothed offset for a progress fraction.
func (p *Parallax) Map(progress float64) float64 {
	if !finite(progress) {
		progress = 0
	}
	t := clamp(progress, 0, 1)
	return p.cfg.From + (p.cfg.To-p.cfg.From)*t
}

func (p *Parallax) Observe(s Sample) {
	p.spring.SetTarget(p.Map(s.Progress()))
}

func (p *Parallax) Advance(dt float64) {
	p.spring.Advance(dt)
}

// Offset is the current smoothed offset, always within [From, To].
func (p *Parallax) Offset() float64 {
	return clamp(p.spring.Value(), p.lo, p.hi)
}
