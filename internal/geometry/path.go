package geometry

import "github.com/go-gl/mathgl/mgl32"

// Path is a closed 2D outline made of line and cubic bezier segments.
type Path struct {
	start    mgl32.Vec2
	segments []segment
}

type segment struct {
	bezier bool
	c1, c2 mgl32.Vec2
	end    mgl32.Vec2
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo sets the start point and clears any segments.
func (p *Path) MoveTo(x, y float32) *Path {
	p.start = mgl32.Vec2{x, y}
	p.segments = p.segments[:0]
	return p
}

// LineTo appends a straight segment.
func (p *Path) LineTo(x, y float32) *Path {
	p.segments = append(p.segments, segment{end: mgl32.Vec2{x, y}})
	return p
}

// BezierCurveTo appends a cubic bezier from the current point through
// control points (c1x, c1y) and (c2x, c2y) to (x, y).
func (p *Path) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.segments = append(p.segments, segment{
		bezier: true,
		c1:     mgl32.Vec2{c1x, c1y},
		c2:     mgl32.Vec2{c2x, c2y},
		end:    mgl32.Vec2{x, y},
	})
	return p
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return p == nil || len(p.segments) == 0
}

// Points samples the outline into a polygon. Each bezier contributes
// curveSegments points; straight segments contribute their end point.
// Consecutive duplicates and a closing point equal to the start are dropped.
func (p *Path) Points(curveSegments int) []mgl32.Vec2 {
	if curveSegments < 1 {
		curveSegments = 1
	}
	pts := []mgl32.Vec2{p.start}
	cur := p.start
	for _, s := range p.segments {
		if !s.bezier {
			pts = appendDistinct(pts, s.end)
			cur = s.end
			continue
		}
		for k := 1; k <= curveSegments; k++ {
			t := float32(k) / float32(curveSegments)
			pts = appendDistinct(pts, cubicBezier(cur, s.c1, s.c2, s.end, t))
		}
		cur = s.end
	}
	if len(pts) > 1 && pts[len(pts)-1].ApproxEqualThreshold(pts[0], 1e-6) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

func appendDistinct(pts []mgl32.Vec2, v mgl32.Vec2) []mgl32.Vec2 {
	if len(pts) > 0 && pts[len(pts)-1].ApproxEqualThreshold(v, 1e-6) {
		return pts
	}
	return append(pts, v)
}

func cubicBezier(p0, p1, p2, p3 mgl32.Vec2, t float32) mgl32.Vec2 {
	k := 1 - t
	return p0.Mul(k * k * k).
		Add(p1.Mul(3 * k * k * t)).
		Add(p2.Mul(3 * k * t * t)).
		Add(p3.Mul(t * t * t))
}

// HeartOutline returns the heart used by the heart ornaments: four cubic
// curves from a bottom cusp at the origin up to a top cusp at (0, 4).
func HeartOutline() *Path {
	return NewPath().
		MoveTo(0, 0).
		BezierCurveTo(0, 0, -1, -1.5, -2, 0).
		BezierCurveTo(-3, 1.5, -1.5, 3, 0, 4).
		BezierCurveTo(1.5, 3, 3, 1.5, 2, 0).
		BezierCurveTo(1, -1.5, 0, 0, 0, 0)
}

// signedArea is positive for counter-clockwise polygons.
func signedArea(pts []mgl32.Vec2) float32 {
	var a float32
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return a / 2
}
