package ornament

import "math"

// Displacement computes how far a vertex moves along its rest normal at
// animation time t. Implementations must be pure functions of their
// arguments so a frame never depends on the frames before it.
type Displacement interface {
	Offset(t float64, vertex, vertexCount int) float64
}

// Alpha computes a vertex's opacity from the same phase as its offset.
// Results are clamped to [0, 1] by the mesh.
type Alpha interface {
	Alpha(t float64, vertex int, offset float64) float64
}

// RadialPulse breathes groups of vertices in and out along their normals,
// each group at its own phase: (sin(t/Divisor + g*g)*0.5 + 0.5) / Scale
// where g = vertex / GroupSize. The offset is never negative.
type RadialPulse struct {
	Divisor   float64
	Scale     float64
	GroupSize int
}

// Offset implements Displacement.
func (p RadialPulse) Offset(t float64, vertex, _ int) float64 {
	group := p.GroupSize
	if group < 1 {
		group = 3
	}
	g := float64(vertex / group)
	return (math.Sin(t/p.Divisor+g*g)*0.5 + 0.5) / p.Scale
}

// WaveBands is a travelling wave across vertex order:
// sin(t*Frequency + vertex*Spatial) * Amplitude.
type WaveBands struct {
	Frequency float64
	Spatial   float64
	Amplitude float64
}

// Offset implements Displacement.
func (w WaveBands) Offset(t float64, vertex, _ int) float64 {
	return math.Sin(t*w.Frequency+float64(vertex)*w.Spatial) * w.Amplitude
}

// AbsoluteBurst is WaveBands folded outward: spikes never move inward.
type AbsoluteBurst struct {
	Frequency float64
	Spatial   float64
	Amplitude float64
}

// Offset implements Displacement.
func (b AbsoluteBurst) Offset(t float64, vertex, _ int) float64 {
	return math.Abs(math.Sin(t*b.Frequency+float64(vertex)*b.Spatial)) * b.Amplitude
}

// Layered sums several waves.
type Layered []WaveBands

// Offset implements Displacement.
func (l Layered) Offset(t float64, vertex, count int) float64 {
	var sum float64
	for _, w := range l {
		sum += w.Offset(t, vertex, count)
	}
	return sum
}

// Directed is a Displacement that moves every vertex along one fixed
// axis instead of its rest normal.
type Directed interface {
	Displacement
	Direction() [3]float32
}

// AlongAxis applies Wave along Axis.
type AlongAxis struct {
	Wave Displacement
	Axis [3]float32
}

// Offset implements Displacement.
func (a AlongAxis) Offset(t float64, vertex, count int) float64 {
	return a.Wave.Offset(t, vertex, count)
}

// Direction implements Directed.
func (a AlongAxis) Direction() [3]float32 { return a.Axis }

// Static leaves every vertex at rest.
type Static struct{}

// Offset implements Displacement.
func (Static) Offset(float64, int, int) float64 { return 0 }

// Complement fades a vertex as it moves out: Base - Gain*offset.
type Complement struct {
	Base float64
	Gain float64
}

// Alpha implements Alpha.
func (c Complement) Alpha(_ float64, _ int, offset float64) float64 {
	return c.Base - c.Gain*offset
}

// Breathing oscillates opacity: Base + Amplitude*sin(t*Frequency + vertex*Spatial).
type Breathing struct {
	Base      float64
	Amplitude float64
	Frequency float64
	Spatial   float64
}

// Alpha implements Alpha.
func (b Breathing) Alpha(t float64, vertex int, _ float64) float64 {
	return b.Base + b.Amplitude*math.Sin(t*b.Frequency+float64(vertex)*b.Spatial)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
