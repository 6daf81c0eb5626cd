//go:build js && wasm

// Command motion is the browser driver for the portfolio's scroll effects.
// It is built with GOOS=js GOARCH=wasm into assets/motion.wasm and binds
// the page's DOM to a motion.Scene.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/Zachkp/folio/internal/motion"
)

type driver struct {
	window   js.Value
	doc      js.Value
	scene    *motion.Scene
	progress js.Value
	rings    map[string]js.Value
	reveals  map[string]js.Value
	observer js.Value
	frame    js.Func

	seq  uint64
	last float64
}

func main() {
	window := js.Global()
	doc := window.Get("document")

	cfg := motion.DefaultConfig()
	if raw := doc.Get("body").Get("dataset").Get("motion"); raw.Truthy() {
		if err := json.Unmarshal([]byte(raw.String()), &cfg); err != nil {
			window.Get("console").Call("warn", fmt.Sprintf("motion: bad config, using defaults: %v", err))
			cfg = motion.DefaultConfig()
		}
	}
	if !cfg.Enabled || prefersReducedMotion(window) {
		return
	}

	d := &driver{
		window:   window,
		doc:      doc,
		scene:    motion.NewScene(cfg),
		progress: doc.Call("getElementById", "scroll-progress"),
		rings:    map[string]js.Value{},
		reveals:  map[string]js.Value{},
	}
	d.bindRings()
	d.bindReveals(cfg.Reveal.Threshold)
	d.bindScroll()

	doc.Get("documentElement").Get("classList").Call("add", "motion-ready")
	d.frame = js.FuncOf(d.tick)
	d.window.Call("requestAnimationFrame", d.frame)

	select {}
}

func prefersReducedMotion(window js.Value) bool {
	mm := window.Get("matchMedia")
	if mm.Type() != js.TypeFunction {
		return false
	}
	return window.Call("matchMedia", "(prefers-reduced-motion: reduce)").Get("matches").Bool()
}

func each(list js.Value, fn func(el js.Value)) {
	for i := 0; i < list.Length(); i++ {
		fn(list.Index(i))
	}
}

func (d *driver) bindRings() {
	each(d.doc.Call("querySelectorAll", "[data-ring]"), func(el js.Value) {
		d.rings[el.Get("dataset").Get("ring").String()] = el
	})
}

func (d *driver) bindReveals(threshold float64) {
	each(d.doc.Call("querySelectorAll", "[data-reveal]"), func(el js.Value) {
		ds := el.Get("dataset")
		id := ds.Get("reveal").String()
		delay, _ := strconv.ParseFloat(ds.Get("revealDelay").String(), 64)
		d.scene.Track(id, delay)
		d.reveals[id] = el
	})

	io := d.window.Get("IntersectionObserver")
	if io.Type() != js.TypeFunction {
		// No observer: reveal everything at once.
		for id := range d.reveals {
			d.scene.Intersect(id, 1)
		}
		return
	}

	callback := js.FuncOf(func(this js.Value, args []js.Value) any {
		each(args[0], func(entry js.Value) {
			target := entry.Get("target")
			id := target.Get("dataset").Get("reveal").String()
			if d.scene.Intersect(id, entry.Get("intersectionRatio").Float()) {
				d.observer.Call("unobserve", target)
			}
		})
		return nil
	})
	opts := map[string]any{"threshold": []any{0, threshold, 1}}
	d.observer = io.New(callback, opts)
	for _, el := range d.reveals {
		d.observer.Call("observe", el)
	}
}

func (d *driver) bindScroll() {
	onScroll := js.FuncOf(func(this js.Value, args []js.Value) any {
		d.publish()
		return nil
	})
	opts := map[string]any{"passive": true}
	d.window.Call("addEventListener", "scroll", onScroll, opts)
	d.window.Call("addEventListener", "resize", onScroll, opts)
	d.publish()
}

func (d *driver) publish() {
	d.seq++
	d.scene.Scroll(motion.Sample{
		Seq:            d.seq,
		Offset:         d.window.Get("scrollY").Float(),
		DocumentHeight: d.doc.Get("documentElement").Get("scrollHeight").Float(),
		ViewportHeight: d.window.Get("innerHeight").Float(),
	})
}

func (d *driver) tick(this js.Value, args []js.Value) any {
	now := args[0].Float()
	dt := 0.0
	if d.last > 0 {
		dt = (now - d.last) / 1000
	}
	d.last = now

	d.apply(d.scene.Frame(dt))
	d.window.Call("requestAnimationFrame", d.frame)
	return nil
}

func (d *driver) apply(f motion.Frame) {
	if d.progress.Truthy() {
		d.progress.Get("style").Set("transform", fmt.Sprintf("scaleX(%.4f)", f.ScaleX))
	}
	for _, r := range f.Rings {
		el, ok := d.rings[r.Name]
		if !ok {
			continue
		}
		style := el.Get("style")
		style.Set("transform", fmt.Sprintf("translateY(%.2fpx) scale(%.4f)", f.ParallaxY, r.Scale))
		style.Set("opacity", fmt.Sprintf("%.3f", r.Opacity))
	}
	for _, rv := range f.Reveals {
		el, ok := d.reveals[rv.ID]
		if !ok {
			continue
		}
		style := el.Get("style")
		style.Set("opacity", fmt.Sprintf("%.3f", rv.Style.Opacity))
		style.Set("transform", fmt.Sprintf("translateY(%.2fpx)", rv.Style.TranslateY))
	}
}
