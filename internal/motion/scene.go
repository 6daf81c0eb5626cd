// Package motion holds the page's scroll-driven animation state: the
// progress bar, the parallax and pulse of the portrait rings, and the
// reveal-on-scroll of sections. Everything here is plain state advanced
// once per animation frame; nothing touches a DOM.
package motion

// Config is the tunable motion of the page. It is embedded into the
// rendered page so the browser driver runs with the same values.
type Config struct {
	Enabled      bool           `mapstructure:"enabled" json:"enabled"`
	Reveal       RevealConfig   `mapstructure:"reveal" json:"reveal"`
	Progress     SpringConfig   `mapstructure:"progress" json:"progress"`
	Parallax     ParallaxConfig `mapstructure:"parallax" json:"parallax"`
	Rings        []RingSpec     `mapstructure:"rings" json:"rings"`
	BreathPeriod float64        `mapstructure:"breath_period" json:"breathPeriod"`
}

// DefaultConfig is the motion shipped with the page.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		Reveal:       DefaultReveal(),
		Progress:     DefaultProgressSpring(),
		Parallax:     DefaultParallax(),
		Rings:        DefaultRings(),
		BreathPeriod: 4,
	}
}

// Frame is everything the driver writes to the page for one frame.
type Frame struct {
	ScaleX    float64
	ParallaxY float64
	Phase     PulsePhase
	Rings     []RingFrame
	Reveals   []RevealFrame
}

// Scene owns every controller of the page. Scroll samples fan out through
// a single feed; each controller keeps its own output.
type Scene struct {
	feed     Feed
	progress *Progress
	parallax *Parallax
	pulse    *Pulse
	reveals  *RevealSet
}

// NewScene builds the controllers in cfg. Progress and parallax follow the
// scroll feed.
func NewScene(cfg Config) *Scene {
	s := &Scene{
		progress: NewProgress(cfg.Progress),
		parallax: NewParallax(cfg.Parallax),
		pulse:    NewPulse(cfg.Rings, cfg.BreathPeriod),
		reveals:  NewRevealSet(cfg.Reveal),
	}
	s.feed.Subscribe(s.progress)
	s.feed.Subscribe(s.parallax)
	return s
}

// Scroll publishes a scroll sample. Stale samples are dropped and false is
// returned.
func (s *Scene) Scroll(sample Sample) bool {
	return s.feed.Publish(sample)
}

// Track registers a revealable element.
func (s *Scene) Track(id string, delay float64) {
	s.reveals.Track(id, delay)
}

// Intersect reports an element's intersection ratio.
func (s *Scene) Intersect(id string, ratio float64) bool {
	return s.reveals.Observe(id, ratio)
}

func (s *Scene) Reveals() *RevealSet { return s.reveals }

// Frame advances every controller by dt seconds and returns the result.
func (s *Scene) Frame(dt float64) Frame {
	s.progress.Advance(dt)
	s.parallax.Advance(dt)
	s.pulse.Advance(dt)
	s.reveals.Advance(dt)
	return Frame{
		ScaleX:    s.progress.ScaleX(),
		ParallaxY: s.parallax.Offset(),
		Phase:     s.pulse.Phase(),
		Rings:     s.pulse.Frames(),
		Reveals:   s.reveals.Animating(),
	}
}
