package ornament

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Oscillation is Amplitude*sin(t*Frequency).
type Oscillation struct {
	Amplitude float64
	Frequency float64
}

func (o Oscillation) at(t float64) float64 {
	if o.Amplitude == 0 {
		return 0
	}
	return o.Amplitude * math.Sin(t*o.Frequency)
}

// Motion is whole-object movement, independent of vertex displacement.
// Each rotation angle is Tilt + t*Rate plus a wobble; Bob lifts the
// object on Y.
type Motion struct {
	// Tilt is a constant rotation in radians.
	Tilt   [3]float64
	Rate   [3]float64
	Wobble [3]Oscillation
	Bob    Oscillation
}

// Transform is the rigid pose produced by Motion at one instant.
type Transform struct {
	Rotation mgl32.Vec3
	Offset   mgl32.Vec3
}

// At evaluates the motion at time t.
func (m Motion) At(t float64) Transform {
	var tr Transform
	for a := 0; a < 3; a++ {
		tr.Rotation[a] = float32(m.Tilt[a] + t*m.Rate[a] + m.Wobble[a].at(t))
	}
	tr.Offset[1] = float32(m.Bob.at(t))
	return tr
}

// Model composes translate * rotateX * rotateY * rotateZ * scale.
func (tr Transform) Model(position mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(position[0]+tr.Offset[0], position[1]+tr.Offset[1], position[2]+tr.Offset[2]).
		Mul4(mgl32.HomogRotate3DX(tr.Rotation[0])).
		Mul4(mgl32.HomogRotate3DY(tr.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(tr.Rotation[2])).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}
