package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
)

func TestBuildTorusVertexCount(t *testing.T) {
	g, err := Build(KindTorus, Params{Radius: 2, Tube: 0.5, RadialSegments: 6, TubularSegments: 16})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.VertexCount != 576 {
		t.Errorf("VertexCount = %d, want 576", g.VertexCount)
	}
	if len(g.Positions) != 576*3 || len(g.Normals) != 576*3 {
		t.Errorf("attribute lengths = %d/%d, want %d", len(g.Positions), len(g.Normals), 576*3)
	}
}

func TestNonIndexedMatchesIndexed(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			p := DefaultParams(kind)
			if kind == KindHelix {
				p.TubularSegments = 40
			}
			src, err := BuildIndexed(kind, p)
			if err != nil {
				t.Fatalf("BuildIndexed() error = %v", err)
			}
			g := src.ToNonIndexed()

			if g.VertexCount%3 != 0 {
				t.Fatalf("VertexCount = %d, not a multiple of 3", g.VertexCount)
			}
			if g.VertexCount != len(src.Indices) {
				t.Fatalf("VertexCount = %d, want %d", g.VertexCount, len(src.Indices))
			}
			for tri := 0; tri < g.TriangleCount(); tri++ {
				for k := 0; k < 3; k++ {
					v := tri*3 + k
					idx := int(src.Indices[v])
					got := g.Positions[v*3 : v*3+3]
					want := src.Positions[idx*3 : idx*3+3]
					if diff := cmp.Diff(want, got); diff != "" {
						t.Fatalf("triangle %d vertex %d mismatch (-want +got):\n%s", tri, k, diff)
					}
				}
			}
		})
	}
}

func TestNonIndexedDoesNotAlias(t *testing.T) {
	src, err := BuildIndexed(KindOctahedron, Params{Radius: 1})
	if err != nil {
		t.Fatalf("BuildIndexed() error = %v", err)
	}
	g := src.ToNonIndexed()
	before := append([]float32(nil), src.Positions...)
	for i := range g.Positions {
		g.Positions[i] += 10
	}
	if diff := cmp.Diff(before, src.Positions); diff != "" {
		t.Errorf("source positions changed (-want +got):\n%s", diff)
	}
}

func TestNormalsAreUnit(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			p := DefaultParams(kind)
			if kind == KindHelix {
				p.TubularSegments = 40
			}
			g, err := Build(kind, p)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			for i := 0; i < g.VertexCount; i++ {
				n := mgl32.Vec3{g.Normals[i*3], g.Normals[i*3+1], g.Normals[i*3+2]}
				l := n.Len()
				if math.IsNaN(float64(l)) || l < 0.99 || l > 1.01 {
					t.Fatalf("normal %d = %v, length %v", i, n, l)
				}
			}
		})
	}
}

func TestTriangleCounts(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		p    Params
		want int
	}{
		{"icosahedron detail 4", KindIcosahedron, Params{Radius: 2, Detail: 4}, 20 * 25},
		{"octahedron detail 3", KindOctahedron, Params{Radius: 2, Detail: 3}, 8 * 16},
		{"octahedron detail 0", KindOctahedron, Params{Radius: 1}, 8},
		{"sphere 32x16", KindSphere, Params{Radius: 1, WidthSegments: 32, HeightSegments: 16}, 32*14*2 + 2*32},
		{"open cylinder", KindCylinder, Params{RadiusTop: 1, RadiusBottom: 1, Height: 3, RadialSegments: 64, HeightSegments: 1, OpenEnded: true}, 128},
		{"capped cylinder", KindCylinder, Params{RadiusTop: 1, RadiusBottom: 1, Height: 3, RadialSegments: 16, HeightSegments: 1}, 32 + 16 + 16},
		{"cone", KindCylinder, Params{RadiusTop: 0, RadiusBottom: 1, Height: 1, RadialSegments: 8, HeightSegments: 2}, 32 + 8},
		{"helix", KindHelix, Params{Radius: 0.4, Tube: 0.15, Height: 8, Turns: 5, RadialSegments: 12, TubularSegments: 100}, 100 * 12 * 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.kind, tt.p)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := g.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPolyhedronOnSphere(t *testing.T) {
	g, err := Build(KindIcosahedron, Params{Radius: 2, Detail: 2})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i := 0; i < g.VertexCount; i++ {
		p := mgl32.Vec3{g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2]}
		if d := p.Len(); d < 1.999 || d > 2.001 {
			t.Fatalf("vertex %d at distance %v, want 2", i, d)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		p    Params
	}{
		{"torus zero radial", KindTorus, Params{Radius: 2, Tube: 0.5, RadialSegments: 0, TubularSegments: 16}},
		{"torus zero tubular", KindTorus, Params{Radius: 2, Tube: 0.5, RadialSegments: 6, TubularSegments: 0}},
		{"torus negative radius", KindTorus, Params{Radius: -2, Tube: 0.5, RadialSegments: 6, TubularSegments: 16}},
		{"torus zero tube", KindTorus, Params{Radius: 2, Tube: 0, RadialSegments: 6, TubularSegments: 16}},
		{"sphere zero width", KindSphere, Params{Radius: 1, WidthSegments: 0, HeightSegments: 8}},
		{"icosahedron negative detail", KindIcosahedron, Params{Radius: 1, Detail: -1}},
		{"octahedron zero radius", KindOctahedron, Params{Radius: 0}},
		{"cylinder both radii zero", KindCylinder, Params{Height: 1, RadialSegments: 8, HeightSegments: 1}},
		{"cylinder negative height", KindCylinder, Params{RadiusTop: 1, RadiusBottom: 1, Height: -1, RadialSegments: 8, HeightSegments: 1}},
		{"extrude no outline", KindExtrude, Params{Extrude: ExtrudeOptions{Depth: 1, Steps: 1, CurveSegments: 12}}},
		{"extrude negative depth", KindExtrude, Params{Outline: HeartOutline(), Extrude: ExtrudeOptions{Depth: -1, Steps: 1, CurveSegments: 12}}},
		{"extrude zero steps", KindExtrude, Params{Outline: HeartOutline(), Extrude: ExtrudeOptions{Depth: 1, Steps: 0, CurveSegments: 12}}},
		{"helix zero turns", KindHelix, Params{Radius: 0.4, Tube: 0.1, Height: 8, Turns: 0, RadialSegments: 12, TubularSegments: 10}},
		{"nan radius", KindSphere, Params{Radius: float32(math.NaN()), WidthSegments: 8, HeightSegments: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.kind, tt.p)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Build() error = %v, want ErrInvalidParameter", err)
			}
			if g != nil {
				t.Errorf("Build() returned geometry alongside error")
			}
		})
	}
}

func TestUnknownKind(t *testing.T) {
	if _, err := Build("dodecahedron", Params{Radius: 1}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Build() error = %v, want ErrUnknownKind", err)
	}
	if _, err := ParseKind("cube"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind() error = %v, want ErrUnknownKind", err)
	}
	if k, err := ParseKind("torus"); err != nil || k != KindTorus {
		t.Errorf("ParseKind(torus) = %q, %v", k, err)
	}
}

func TestExtrudeZeroDepthAllowed(t *testing.T) {
	g, err := Build(KindExtrude, Params{
		Outline: HeartOutline(),
		Extrude: ExtrudeOptions{Depth: 0, Steps: 1, CurveSegments: 4},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.VertexCount == 0 || g.VertexCount%3 != 0 {
		t.Errorf("VertexCount = %d", g.VertexCount)
	}
}

func TestHeartCenterAndScale(t *testing.T) {
	g, err := Build(KindExtrude, DefaultParams(KindExtrude))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	before := g.Bounds().Size()
	g.Center()
	c := g.Bounds().Center()
	for a := 0; a < 3; a++ {
		if math.Abs(float64(c[a])) > 1e-4 {
			t.Errorf("center[%d] = %v, want 0", a, c[a])
		}
	}
	if err := g.Scale(0.5); err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	after := g.Bounds().Size()
	for a := 0; a < 3; a++ {
		if math.Abs(float64(after[a]-before[a]*0.5)) > 1e-4 {
			t.Errorf("size[%d] = %v, want %v", a, after[a], before[a]*0.5)
		}
	}
	if err := g.Scale(0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Scale(0) error = %v, want ErrInvalidParameter", err)
	}
}

func TestHeartOutlineSampling(t *testing.T) {
	pts := HeartOutline().Points(12)
	// Four curves, 12 samples each, closing point dropped.
	if len(pts) != 48 {
		t.Errorf("len(Points) = %d, want 48", len(pts))
	}
	if signedArea(pts) >= 0 {
		t.Errorf("heart outline expected clockwise as authored")
	}
}

func TestTriangulateConvexAndConcave(t *testing.T) {
	square := []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if got := len(triangulate(square)) / 3; got != 2 {
		t.Errorf("square triangles = %d, want 2", got)
	}

	// Arrow shape with one reflex vertex.
	arrow := []mgl32.Vec2{{0, 0}, {2, 1}, {0, 2}, {0.5, 1}}
	tris := triangulate(arrow)
	if len(tris)/3 != 2 {
		t.Fatalf("arrow triangles = %d, want 2", len(tris)/3)
	}
	var area float32
	for i := 0; i < len(tris); i += 3 {
		a, b, c := arrow[tris[i]], arrow[tris[i+1]], arrow[tris[i+2]]
		area += cross2(b.Sub(a), c.Sub(a)) / 2
	}
	if want := signedArea(arrow); math.Abs(float64(area-want)) > 1e-5 {
		t.Errorf("triangulated area = %v, want %v", area, want)
	}
}
