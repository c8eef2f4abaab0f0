// Package orchestrate sequences page-level effects around the 3D canvas:
// when the canvas section is in view, which viewport class applies, and
// the loading-screen and reveal timelines.
package orchestrate

// Viewport is the drawable size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// IsNarrow reports whether the viewport is below the mobile breakpoint.
func (v Viewport) IsNarrow(breakpoint int) bool {
	return v.Width < breakpoint
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// InView tracks whether a page section is visible enough to mount its
// canvas. With TriggerOnce the first positive answer latches.
type InView struct {
	Threshold   float64
	TriggerOnce bool

	latched bool
}

// Ratio returns the fraction of the section [top, top+height) that falls
// inside the viewport [scroll, scroll+viewport).
func Ratio(top, height, scroll, viewport float64) float64 {
	if height <= 0 {
		return 0
	}
	lo := max(top, scroll)
	hi := min(top+height, scroll+viewport)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / height
}

// Update evaluates visibility for the current scroll position.
func (v *InView) Update(top, height, scroll, viewport float64) bool {
	if v.latched {
		return true
	}
	r := Ratio(top, height, scroll, viewport)
	visible := r > 0 && r >= v.Threshold
	if visible && v.TriggerOnce {
		v.latched = true
	}
	return visible
}

// Latched reports whether a trigger-once observer has fired.
func (v *InView) Latched() bool {
	return v.latched
}
