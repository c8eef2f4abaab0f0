// Package geometry builds the non-indexed triangle meshes used by the
// decorative ornaments.
package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when shape parameters would produce
// degenerate geometry.
var ErrInvalidParameter = errors.New("invalid shape parameter")

// ErrUnknownKind is returned for a shape kind the builder does not know.
var ErrUnknownKind = errors.New("unknown shape kind")

// Kind identifies a base shape.
type Kind string

const (
	KindTorus       Kind = "torus"
	KindSphere      Kind = "sphere"
	KindIcosahedron Kind = "icosahedron"
	KindOctahedron  Kind = "octahedron"
	KindCylinder    Kind = "cylinder"
	KindExtrude     Kind = "extrude"
	KindHelix       Kind = "helix"
)

// Kinds lists every buildable kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindTorus, KindSphere, KindIcosahedron, KindOctahedron,
		KindCylinder, KindExtrude, KindHelix,
	}
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Params holds shape parameters. Each kind reads only the fields it needs.
type Params struct {
	// Torus ring radius, sphere/polyhedron radius, helix coil radius.
	Radius float32 `yaml:"radius"`
	// Torus and helix tube radius.
	Tube float32 `yaml:"tube"`

	RadiusTop    float32 `yaml:"radius_top"`
	RadiusBottom float32 `yaml:"radius_bottom"`
	Height       float32 `yaml:"height"`
	OpenEnded    bool    `yaml:"open_ended"`

	RadialSegments  int `yaml:"radial_segments"`
	TubularSegments int `yaml:"tubular_segments"`
	WidthSegments   int `yaml:"width_segments"`
	HeightSegments  int `yaml:"height_segments"`

	// Detail is the polyhedron subdivision level.
	Detail int `yaml:"detail"`

	// Turns is the number of helix revolutions.
	Turns float32 `yaml:"turns"`

	Outline *Path          `yaml:"-"`
	Extrude ExtrudeOptions `yaml:"extrude"`
}

// ExtrudeOptions controls extrusion of a 2D outline.
type ExtrudeOptions struct {
	Depth          float32 `yaml:"depth"`
	Steps          int     `yaml:"steps"`
	CurveSegments  int     `yaml:"curve_segments"`
	BevelEnabled   bool    `yaml:"bevel_enabled"`
	BevelSegments  int     `yaml:"bevel_segments"`
	BevelSize      float32 `yaml:"bevel_size"`
	BevelThickness float32 `yaml:"bevel_thickness"`
}

// DefaultParams returns conventional parameters for a kind.
func DefaultParams(kind Kind) Params {
	switch kind {
	case KindTorus:
		return Params{Radius: 1, Tube: 0.4, RadialSegments: 12, TubularSegments: 48}
	case KindSphere:
		return Params{Radius: 1, WidthSegments: 32, HeightSegments: 16}
	case KindIcosahedron, KindOctahedron:
		return Params{Radius: 1}
	case KindCylinder:
		return Params{RadiusTop: 1, RadiusBottom: 1, Height: 1, RadialSegments: 32, HeightSegments: 1}
	case KindExtrude:
		return Params{
			Outline: HeartOutline(),
			Extrude: ExtrudeOptions{
				Depth:          1,
				Steps:          1,
				CurveSegments:  12,
				BevelEnabled:   true,
				BevelSegments:  3,
				BevelSize:      0.1,
				BevelThickness: 0.2,
			},
		}
	case KindHelix:
		return Params{Radius: 0.4, Tube: 0.15, Height: 8, Turns: 5, RadialSegments: 12, TubularSegments: 1000}
	}
	return Params{}
}

// Indexed is the welded source form of a shape: shared vertices are
// referenced from several triangles through Indices.
type Indexed struct {
	Kind      Kind
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// VertexCount returns the number of distinct vertices.
func (m *Indexed) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Indexed) TriangleCount() int {
	return len(m.Indices) / 3
}

// Geometry is a non-indexed triangle mesh: every 3 consecutive vertices
// form one triangle and no vertex is shared between triangles.
type Geometry struct {
	Kind        Kind
	Positions   []float32
	Normals     []float32
	VertexCount int
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	return g.VertexCount / 3
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the box extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}
