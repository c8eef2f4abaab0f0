package geometry

import (
	"fmt"
	"math"
)

// Build validates the parameters, constructs the indexed source form of
// the shape and un-welds it so every triangle owns its three vertices.
func Build(kind Kind, p Params) (*Geometry, error) {
	src, err := BuildIndexed(kind, p)
	if err != nil {
		return nil, err
	}
	return src.ToNonIndexed(), nil
}

// BuildIndexed validates the parameters and constructs the welded form.
func BuildIndexed(kind Kind, p Params) (*Indexed, error) {
	if err := Validate(kind, p); err != nil {
		return nil, err
	}

	var m *Indexed
	switch kind {
	case KindTorus:
		m = buildTorus(p)
	case KindSphere:
		m = buildSphere(p)
	case KindIcosahedron:
		m = buildPolyhedron(icosahedronVertices(), icosahedronIndices, p.Radius, p.Detail)
	case KindOctahedron:
		m = buildPolyhedron(octahedronVertices, octahedronIndices, p.Radius, p.Detail)
	case KindCylinder:
		m = buildCylinder(p)
	case KindExtrude:
		var err error
		if m, err = buildExtrude(p.Outline, p.Extrude); err != nil {
			return nil, err
		}
	case KindHelix:
		m = buildHelix(p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	m.Kind = kind
	return m, nil
}

// ToNonIndexed duplicates shared vertices so the result holds three
// contiguous vertices per triangle, in index order.
func (m *Indexed) ToNonIndexed() *Geometry {
	n := len(m.Indices)
	g := &Geometry{
		Kind:        m.Kind,
		Positions:   make([]float32, n*3),
		Normals:     make([]float32, n*3),
		VertexCount: n,
	}
	for i, idx := range m.Indices {
		src := int(idx) * 3
		copy(g.Positions[i*3:i*3+3], m.Positions[src:src+3])
		copy(g.Normals[i*3:i*3+3], m.Normals[src:src+3])
	}
	return g
}

// Bounds computes the bounding box of the vertex positions.
func (g *Geometry) Bounds() Bounds {
	return computeBounds(g.Positions)
}

// Center translates the geometry so its bounding box is centred on the origin.
func (g *Geometry) Center() {
	c := g.Bounds().Center()
	for i := 0; i < len(g.Positions); i += 3 {
		g.Positions[i] -= c[0]
		g.Positions[i+1] -= c[1]
		g.Positions[i+2] -= c[2]
	}
}

// Scale multiplies every position by s. Normals are unaffected by a
// uniform positive scale.
func (g *Geometry) Scale(s float32) error {
	if !(s > 0) {
		return fmt.Errorf("%w: scale must be > 0, got %v", ErrInvalidParameter, s)
	}
	for i := range g.Positions {
		g.Positions[i] *= s
	}
	return nil
}

func computeBounds(pos []float32) Bounds {
	if len(pos) < 3 {
		return Bounds{}
	}
	b := Bounds{
		Min: [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
	for i := 0; i+2 < len(pos); i += 3 {
		for a := 0; a < 3; a++ {
			if pos[i+a] < b.Min[a] {
				b.Min[a] = pos[i+a]
			}
			if pos[i+a] > b.Max[a] {
				b.Max[a] = pos[i+a]
			}
		}
	}
	return b
}

// builder accumulates an indexed mesh.
type builder struct {
	pos  []float32
	norm []float32
	idx  []uint32
}

func (b *builder) vertex(x, y, z, nx, ny, nz float32) uint32 {
	i := uint32(len(b.pos) / 3)
	b.pos = append(b.pos, x, y, z)
	b.norm = append(b.norm, nx, ny, nz)
	return i
}

func (b *builder) tri(a, c, d uint32) {
	b.idx = append(b.idx, a, c, d)
}

func (b *builder) mesh() *Indexed {
	return &Indexed{Positions: b.pos, Normals: b.norm, Indices: b.idx}
}
