// Package ornament animates decorative meshes by displacing every vertex
// along its rest normal, or a fixed axis, as a pure function of elapsed
// time.
package ornament

import (
	"errors"
	"fmt"
	"time"

	"github.com/symbionic/ornaments/internal/geometry"
	"github.com/symbionic/ornaments/internal/palette"
)

// ErrEmptyGeometry is returned by New for a nil or vertex-less geometry.
var ErrEmptyGeometry = errors.New("empty geometry")

// Params are the per-instance animation constants. They are fixed once the
// mesh is created.
type Params struct {
	Color        palette.Scheme
	Displacement Displacement
	// Alpha may be nil, in which case the scheme's alpha is kept.
	Alpha  Alpha
	Motion Motion
	// Unit is the length of one time unit fed to the formulas.
	// Zero means milliseconds.
	Unit time.Duration
}

// Mesh is one animated ornament instance. The original-position and
// normal snapshots are captured once in New and never written again;
// Update only ever writes Positions and Colors.
type Mesh struct {
	params Params

	original []float32
	normals  []float32

	// Positions (3 per vertex) and Colors (4 per vertex) are the live
	// buffers the renderer uploads.
	Positions []float32
	Colors    []float32

	vertexCount int
	transform   Transform
	frames      uint64
	disposed    bool
}

// New runs attribute initialisation for geo: it snapshots positions and
// normals, seeds the live buffers with the rest pose and fills colours.
// The mesh owns copies; geo may be reused by the caller.
func New(geo *geometry.Geometry, params Params) (*Mesh, error) {
	if geo == nil || geo.VertexCount == 0 {
		return nil, ErrEmptyGeometry
	}
	n := geo.VertexCount
	if n%3 != 0 {
		return nil, fmt.Errorf("ornament: vertex count %d is not a multiple of 3", n)
	}
	if len(geo.Positions) != n*3 || len(geo.Normals) != n*3 {
		return nil, fmt.Errorf("ornament: attribute length mismatch: %d vertices, %d positions, %d normals",
			n, len(geo.Positions), len(geo.Normals))
	}
	if params.Displacement == nil {
		params.Displacement = Static{}
	}
	if params.Color == nil {
		params.Color = palette.Constant{Color: palette.RGBA{R: 1, G: 1, B: 1, A: 1}}
	}
	if params.Unit <= 0 {
		params.Unit = time.Millisecond
	}

	m := &Mesh{
		params:      params,
		original:    append([]float32(nil), geo.Positions...),
		normals:     append([]float32(nil), geo.Normals...),
		Positions:   append([]float32(nil), geo.Positions...),
		Colors:      make([]float32, n*4),
		vertexCount: n,
	}
	params.Color.Fill(m.Colors, n)
	return m, nil
}

// VertexCount is fixed at creation.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return m.vertexCount
}

// Original returns a copy of the rest-pose positions.
func (m *Mesh) Original() []float32 {
	return append([]float32(nil), m.original...)
}

// Normals returns a copy of the displacement directions.
func (m *Mesh) Normals() []float32 {
	return append([]float32(nil), m.normals...)
}

// Transform is the whole-object pose written by the last Update.
func (m *Mesh) Transform() Transform {
	return m.transform
}

// Frames counts the updates that wrote the live buffers.
func (m *Mesh) Frames() uint64 {
	if m == nil {
		return 0
	}
	return m.frames
}

// Disposed reports whether Dispose has been called.
func (m *Mesh) Disposed() bool {
	return m == nil || m.disposed
}

// Time converts elapsed wall time into the formula's time units.
func (m *Mesh) Time(elapsed time.Duration) float64 {
	return float64(elapsed) / float64(m.params.Unit)
}

// Update writes the frame at elapsed into the live buffers. Each vertex is
// displaced from its rest position, so the result depends only on elapsed
// and never on earlier frames. It reports whether anything was written;
// nil, uninitialised and disposed meshes are left alone.
func (m *Mesh) Update(elapsed time.Duration) bool {
	if m == nil || m.disposed || m.vertexCount == 0 || len(m.Positions) != m.vertexCount*3 {
		return false
	}
	t := m.Time(elapsed)
	disp := m.params.Displacement
	alpha := m.params.Alpha

	var axis [3]float32
	directed, alongAxis := disp.(Directed)
	if alongAxis {
		axis = directed.Direction()
	}

	for i := 0; i < m.vertexCount; i++ {
		d := disp.Offset(t, i, m.vertexCount)
		o := i * 3
		df := float32(d)
		dir := axis
		if !alongAxis {
			dir = [3]float32{m.normals[o], m.normals[o+1], m.normals[o+2]}
		}
		m.Positions[o] = m.original[o] + dir[0]*df
		m.Positions[o+1] = m.original[o+1] + dir[1]*df
		m.Positions[o+2] = m.original[o+2] + dir[2]*df
		if alpha != nil {
			m.Colors[i*4+3] = float32(clamp01(alpha.Alpha(t, i, d)))
		}
	}
	m.transform = m.params.Motion.At(t)
	m.frames++
	return true
}

// Rest copies the snapshot back into the live positions and clears the
// whole-object transform.
func (m *Mesh) Rest() {
	if m == nil || m.disposed {
		return
	}
	copy(m.Positions, m.original)
	m.transform = Transform{}
}

// Dispose releases the buffers. Later calls to Update are no-ops.
func (m *Mesh) Dispose() {
	if m == nil {
		return
	}
	m.disposed = true
	m.Positions = nil
	m.Colors = nil
}
