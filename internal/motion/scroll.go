package motion

// Sample is one reading of the page scroll geometry. Seq orders samples;
// a larger Seq is newer.
type Sample struct {
	Seq            uint64
	Offset         float64
	DocumentHeight float64
	ViewportHeight float64
}

// Range is the scrollable distance of the document.
func (s Sample) Range() float64 {
	return s.DocumentHeight - s.ViewportHeight
}

// Progress is the scroll fraction in [0,1]. A document that does not
// scroll, or any non-finite geometry, reports 0.
func (s Sample) Progress() float64 {
	return Fraction(s.Offset, s.DocumentHeight, s.ViewportHeight)
}

// Fraction computes offset / (documentHeight - viewportHeight), clamped.
func Fraction(offset, documentHeight, viewportHeight float64) float64 {
	r := documentHeight - viewportHeight
	if !finite(offset) || !finite(r) || r <= 0 {
		return 0
	}
	return clamp(offset/r, 0, 1)
}

// Observer receives scroll samples. Samples are values; observers cannot
// write back into the feed.
type Observer interface {
	Observe(Sample)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Sample)

func (f ObserverFunc) Observe(s Sample) { f(s) }

// Feed publishes scroll samples to its observers. A sample whose Seq is not
// newer than the last published one is dropped, so observers only ever see
// samples in order.
type Feed struct {
	last      Sample
	published bool
	observers []Observer
}

func (f *Feed) Subscribe(o Observer) {
	f.observers = append(f.observers, o)
}

// Publish delivers s to every observer and reports whether it was applied.
func (f *Feed) Publish(s Sample) bool {
	if f.published && s.Seq <= f.last.Seq {
		return false
	}
	f.last, f.published = s, true
	for _, o := range f.observers {
		o.Observe(s)
	}
	return true
}

// Latest returns the last applied sample.
func (f *Feed) Latest() (Sample, bool) {
	return f.last, f.published
}
