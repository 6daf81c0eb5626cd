package motion

import "math"

// PulsePhase is the stage of the portrait rings' animation.
type PulsePhase uint8

const (
	// Entering plays the one-shot load pulse.
	Entering PulsePhase = iota
	// Idle loops the breathing scale forever.
	Idle
)

func (p PulsePhase) String() string {
	if p == Idle {
		return "idle"
	}
	return "entering"
}

// RingSpec describes one decorative layer around the portrait.
type RingSpec struct {
	Name     string    `mapstructure:"name" json:"name"`
	Delay    float64   `mapstructure:"delay" json:"delay"`
	Duration float64   `mapstructure:"duration" json:"duration"`
	Scale    Keyframes `mapstructure:"scale" json:"scale"`
	Opacity  Keyframes `mapstructure:"opacity" json:"opacity"`
	// Breath is the peak scale of the idle loop.
	Breath float64 `mapstructure:"breath" json:"breath"`
}

func (r RingSpec) end() float64 {
	return math.Max(r.Delay, 0) + math.Max(r.Duration, 0)
}

// DefaultRings returns the glow, outer ring and inner ring of the hero
// portrait. The outer ring leads; the inner ring follows 0.12s later.
func DefaultRings() []RingSpec {
	return []RingSpec{
		{Name: "glow", Duration: 1.9, Scale: Keyframes{0.96, 0.98, 1.06, 1}, Opacity: Keyframes{0.25, 0.4}, Breath: 1.06},
		{Name: "outer", Duration: 1.6, Scale: Keyframes{1, 1.05, 1}, Breath: 1.05},
		{Name: "inner", Delay: 0.12, Duration: 1.8, Scale: Keyframes{1, 1.03, 1}, Breath: 1.03},
	}
}

// RingFrame is one ring's transform for a frame.
type RingFrame struct {
	Name    string
	Scale   float64
	Opacity float64
}

// Pulse plays the load pulse once and then breathes. The transition to
// Idle is driven purely by elapsed time.
type Pulse struct {
	rings    []RingSpec
	period   float64
	entrance float64
	elapsed  float64
	phase    PulsePhase
}

// NewPulse builds a pulse over rings. period is the length of one idle
// breath; a non-positive period disables breathing.
func NewPulse(rings []RingSpec, period float64) *Pulse {
	p := &Pulse{rings: append([]RingSpec(nil), rings...), period: period}
	for _, r := range p.rings {
		p.entrance = math.Max(p.entrance, r.end())
	}
	if p.entrance == 0 {
		p.phase = Idle
	}
	return p
}

func (p *Pulse) Phase() PulsePhase { return p.phase }

// EntranceDuration is when the last ring finishes its load pulse.
func (p *Pulse) EntranceDuration() float64 { return p.entrance }

func (p *Pulse) Advance(dt float64) {
	if !finite(dt) || dt <= 0 {
		return
	}
	p.elapsed += dt
	if p.phase == Entering && p.elapsed >= p.entrance {
		p.phase = Idle
	}
}

func (p *Pulse) Frames() []RingFrame {
	frames := make([]RingFrame, len(p.rings))
	for i, r := range p.rings {
		frames[i] = p.frame(r)
	}
	return frames
}

func (p *Pulse) frame(r RingSpec) RingFrame {
	if p.phase == Idle {
		return RingFrame{Name: r.Name, Scale: p.breath(r), Opacity: r.Opacity.Last()}
	}
	t := 1.0
	if r.Duration > 0 {
		t = clamp((p.elapsed-math.Max(r.Delay, 0))/r.Duration, 0, 1)
	}
	return RingFrame{Name: r.Name, Scale: r.Scale.At(t), Opacity: r.Opacity.At(t)}
}

// breath oscillates from the resting scale up to r.Breath and back.
func (p *Pulse) breath(r RingSpec) float64 {
	rest := r.Scale.Last()
	if p.period <= 0 || r.Breath <= rest {
		return rest
	}
	tau := p.elapsed - p.entrance
	w := (1 - math.Cos(2*math.Pi*tau/p.period)) / 2
	return rest + (r.Breath-rest)*w
}
