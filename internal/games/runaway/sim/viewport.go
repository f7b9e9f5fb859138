package sim

// Viewport reports the visible area in pixels. It is queried on every step,
// so hosts may resize between steps.
type Viewport interface {
	Size() (w, h float64)
	GroundOffset() float64
}

// FixedViewport is a Viewport with constant dimensions.
type FixedViewport struct {
	W, H   float64
	Ground float64 // distance from the bottom edge to the ground line
}

// Size returns the viewport dimensions.
func (v FixedViewport) Size() (float64, float64) {
	return v.W, v.H
}

// GroundOffset returns the ground line offset.
func (v FixedViewport) GroundOffset() float64 {
	return v.Ground
}

// metrics is a per-step reading of the viewport.
type metrics struct {
	W, H    float64
	GroundY float64
}

func readViewport(v Viewport) metrics {
	w, h := v.Size()
	return metrics{W: w, H: h, GroundY: h - v.GroundOffset()}
}
