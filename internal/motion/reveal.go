package motion

import "math"

// RevealState is the visibility of one revealable element.
type RevealState uint8

const (
	Hidden RevealState = iota
	Visible
)

func (s RevealState) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// RevealConfig controls the entrance of content scrolled into view.
type RevealConfig struct {
	// Threshold is the fraction of the element that must intersect the
	// viewport before it is revealed.
	Threshold float64 `mapstructure:"threshold" json:"threshold"`
	Duration  float64 `mapstructure:"duration" json:"duration"`
	// Distance is how far below its resting place a hidden element sits.
	Distance float64 `mapstructure:"distance" json:"distance"`
}

// DefaultReveal reveals at 20% visibility over half a second.
func DefaultReveal() RevealConfig {
	return RevealConfig{Threshold: 0.2, Duration: 0.5, Distance: 16}
}

// RevealStyle is the visual state to apply to an element.
type RevealStyle struct {
	Opacity    float64
	TranslateY float64
}

// Reveal is a one-shot visibility machine. Once Visible it stays Visible.
type Reveal struct {
	cfg     RevealConfig
	delay   float64
	state   RevealState
	elapsed float64
}

// NewReveal returns a hidden reveal. A negative delay counts as zero.
func NewReveal(cfg RevealConfig, delay float64) *Reveal {
	return &Reveal{cfg: cfg, delay: math.Max(delay, 0)}
}

func (r *Reveal) State() RevealState { return r.state }

// Observe feeds the element's current intersection ratio and reports
// whether this call revealed it.
func (r *Reveal) Observe(ratio float64) bool {
	if r.state == Visible || !finite(ratio) {
		return false
	}
	if ratio > 0 && ratio >= r.cfg.Threshold {
		r.state = Visible
		return true
	}
	return false
}

// Advance moves the entrance animation forward. It is a no-op while hidden.
func (r *Reveal) Advance(dt float64) {
	if r.state == Visible && finite(dt) && dt > 0 {
		r.elapsed += dt
	}
}

// Done reports whether the entrance animation has finished.
func (r *Reveal) Done() bool {
	return r.state == Visible && r.elapsed >= r.delay+r.cfg.Duration
}

func (r *Reveal) Style() RevealStyle {
	if r.state == Hidden {
		return RevealStyle{Opacity: 0, TranslateY: r.cfg.Distance}
	}
	t := 1.0
	if r.cfg.Duration > 0 {
		t = clamp((r.elapsed-r.delay)/r.cfg.Duration, 0, 1)
	}
	e := easeOut(t)
	return RevealStyle{Opacity: e, TranslateY: r.cfg.Distance * (1 - e)}
}

// Rect is an element's vertical extent relative to the viewport top, as
// reported by getBoundingClientRect.
type Rect struct {
	Top    float64
	Height float64
}

// IntersectionRatio is the visible fraction of el inside a viewport of the
// given height. A zero-height element counts as fully visible when its top
// edge lies within the viewport.
func IntersectionRatio(el Rect, viewportHeight float64) float64 {
	if !finite(el.Top) || !finite(el.Height) || !finite(viewportHeight) || viewportHeight <= 0 {
		return 0
	}
	if el.Height <= 0 {
		if el.Top >= 0 && el.Top <= viewportHeight {
			return 1
		}
		return 0
	}
	visible := math.Min(el.Top+el.Height, viewportHeight) - math.Max(el.Top, 0)
	if visible <= 0 {
		return 0
	}
	return clamp(visible/el.Height, 0, 1)
}

// RevealSet tracks the reveals of a page by element id.
type RevealSet struct {
	cfg      RevealConfig
	order    []string
	byID     map[string]*Reveal
	finished map[string]bool
}

// NewRevealSet returns an empty set sharing cfg.
func NewRevealSet(cfg RevealConfig) *RevealSet {
	return &RevealSet{cfg: cfg, byID: make(map[string]*Reveal), finished: make(map[string]bool)}
}

// Track registers an element. Registering an id twice keeps the first.
func (s *RevealSet) Track(id string, delay float64) {
	if _, ok := s.byID[id]; ok {
		return
	}
	s.order = append(s.order, id)
	s.byID[id] = NewReveal(s.cfg, delay)
}

func (s *RevealSet) Get(id string) (*Reveal, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Observe feeds one element's intersection ratio.
func (s *RevealSet) Observe(id string, ratio float64) bool {
	r, ok := s.byID[id]
	if !ok {
		return false
	}
	return r.Observe(ratio)
}

// Update measures every tracked element that has a rect and returns the
// ids revealed by this call, in registration order.
func (s *RevealSet) Update(viewportHeight float64, rects map[string]Rect) []string {
	var revealed []string
	for _, id := range s.order {
		rect, ok := rects[id]
		if !ok {
			continue
		}
		if s.byID[id].Observe(IntersectionRatio(rect, viewportHeight)) {
			revealed = append(revealed, id)
		}
	}
	return revealed
}

func (s *RevealSet) Advance(dt float64) {
	for _, r := range s.byID {
		r.Advance(dt)
	}
}

// RevealFrame is the style of one element for a frame.
type RevealFrame struct {
	ID    string
	State RevealState
	Style RevealStyle
}

// Animating returns frames for visible elements whose entrance is still
// running. An element appears one last time with its final style on the
// frame its entrance completes, and never again.
func (s *RevealSet) Animating() []RevealFrame {
	var frames []RevealFrame
	for _, id := range s.order {
		r := s.byID[id]
		if r.State() != Visible || s.finished[id] {
			continue
		}
		frames = append(frames, RevealFrame{ID: id, State: r.State(), Style: r.Style()})
		if r.Done() {
			s.finished[id] = true
		}
	}
	return frames
}
