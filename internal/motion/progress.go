package motion

// DefaultProgressSpring matches the top bar's smoothing: stiffness 100,
// damping 30, settling within 0.001.
func DefaultProgressSpring() SpringConfig {
	return SpringConfig{Stiffness: 100, Damping: 30, RestDelta: 0.001}
}

// Progress drives the horizontal scale of the fixed progress bar.
type Progress struct {
	spring *Spring
}

// NewProgress returns a bar that starts empty.
func NewProgress(cfg SpringConfig) *Progress {
	return &Progress{spring: NewSpring(cfg, 0)}
}

func (p *Progress) Observe(s Sample) {
	p.spring.SetTarget(s.Progress())
}

func (p *Progress) Advance(dt float64) {
	p.spring.Advance(dt)
}

// ScaleX is the bar's scale: 0 is empty, 1 is the full width.
func (p *Progress) ScaleX() float64 {
	return clamp(p.spring.Value(), 0, 1)
}
