package geometry

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// buildExtrude extrudes the outline along +Z. With bevel enabled the
// outline grows by BevelSize over BevelSegments layers on both faces.
func buildExtrude(path *Path, opts ExtrudeOptions) (*Indexed, error) {
	contour := path.Points(opts.CurveSegments)
	if len(contour) < 3 {
		return nil, fmt.Errorf("%w: outline has %d distinct points, need 3", ErrInvalidParameter, len(contour))
	}
	area := signedArea(contour)
	if math32.Abs(area) < 1e-6 {
		return nil, fmt.Errorf("%w: outline has zero area", ErrInvalidParameter)
	}
	if area < 0 {
		for i, j := 0, len(contour)-1; i < j; i, j = i+1, j-1 {
			contour[i], contour[j] = contour[j], contour[i]
		}
	}

	caps := triangulate(contour)
	bevelVecs := bevelVectors(contour)
	layers := extrudeLayers(opts)

	var b builder
	ring := func(l layer) []mgl32.Vec3 {
		out := make([]mgl32.Vec3, len(contour))
		for i, c := range contour {
			v := c.Add(bevelVecs[i].Mul(l.grow))
			out[i] = mgl32.Vec3{v[0], v[1], l.z}
		}
		return out
	}

	// Side walls, one flat quad per outline edge per layer pair.
	prev := ring(layers[0])
	for li := 1; li < len(layers); li++ {
		next := ring(layers[li])
		for i := range contour {
			j := (i + 1) % len(contour)
			sideQuad(&b, prev[i], prev[j], next[j], next[i])
		}
		prev = next
	}

	front := ring(layers[0])
	back := ring(layers[len(layers)-1])
	for t := 0; t+2 < len(caps); t += 3 {
		i0, i1, i2 := caps[t], caps[t+1], caps[t+2]
		flatTri(&b, front[i2], front[i1], front[i0], mgl32.Vec3{0, 0, -1})
		flatTri(&b, back[i0], back[i1], back[i2], mgl32.Vec3{0, 0, 1})
	}
	return b.mesh(), nil
}

const sqrt2 = float32(math.Sqrt2)

type layer struct {
	z    float32
	grow float32
}

func extrudeLayers(opts ExtrudeOptions) []layer {
	var layers []layer
	bevel := opts.BevelEnabled && opts.BevelSegments > 0
	grow := float32(0)
	if bevel {
		grow = opts.BevelSize
		for s := 0; s < opts.BevelSegments; s++ {
			t := float32(s) / float32(opts.BevelSegments)
			layers = append(layers, layer{
				z:    -opts.BevelThickness * math32.Cos(t*math32.Pi/2),
				grow: opts.BevelSize * math32.Sin(t*math32.Pi/2),
			})
		}
	}
	for s := 0; s <= opts.Steps; s++ {
		layers = append(layers, layer{z: opts.Depth / float32(opts.Steps) * float32(s), grow: grow})
	}
	if bevel {
		for s := opts.BevelSegments - 1; s >= 0; s-- {
			t := float32(s) / float32(opts.BevelSegments)
			layers = append(layers, layer{
				z:    opts.Depth + opts.BevelThickness*math32.Cos(t*math32.Pi/2),
				grow: opts.BevelSize * math32.Sin(t*math32.Pi/2),
			})
		}
	}
	return layers
}

// bevelVectors returns, per outline point of a counter-clockwise contour,
// the outward miter direction scaled so an offset of 1 moves both
// adjacent edges by 1. Sharp corners are clamped to sqrt(2).
func bevelVectors(contour []mgl32.Vec2) []mgl32.Vec2 {
	n := len(contour)
	out := make([]mgl32.Vec2, n)
	for i := range contour {
		p := contour[(i+n-1)%n]
		c := contour[i]
		q := contour[(i+1)%n]
		n1 := edgeNormal(p, c)
		n2 := edgeNormal(c, q)
		sum := n1.Add(n2)
		denom := 1 + n1.Dot(n2)
		if denom < 1e-4 || sum.Len() < 1e-6 {
			out[i] = n1
			continue
		}
		m := sum.Mul(1 / denom)
		if m.Len() > sqrt2 {
			m = m.Normalize().Mul(sqrt2)
		}
		out[i] = m
	}
	return out
}

func edgeNormal(a, b mgl32.Vec2) mgl32.Vec2 {
	d := b.Sub(a)
	if d.Len() < 1e-9 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{d[1], -d[0]}.Normalize()
}

func sideQuad(b *builder, a, c, d, e mgl32.Vec3) {
	n := c.Sub(a).Cross(d.Sub(a))
	if n.Len() < 1e-9 {
		n = d.Sub(a).Cross(e.Sub(a))
	}
	if n.Len() < 1e-9 {
		// Zero-depth wall: fall back to the outward edge normal.
		edge := c.Sub(a)
		n = mgl32.Vec3{edge[1], -edge[0], 0}
	}
	n = n.Normalize()
	ia := b.vertex(a[0], a[1], a[2], n[0], n[1], n[2])
	ic := b.vertex(c[0], c[1], c[2], n[0], n[1], n[2])
	id := b.vertex(d[0], d[1], d[2], n[0], n[1], n[2])
	ie := b.vertex(e[0], e[1], e[2], n[0], n[1], n[2])
	b.tri(ia, ic, id)
	b.tri(ia, id, ie)
}

func flatTri(b *builder, p0, p1, p2, fallback mgl32.Vec3) {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Len() < 1e-12 {
		n = fallback
	}
	n = n.Normalize()
	i0 := b.vertex(p0[0], p0[1], p0[2], n[0], n[1], n[2])
	i1 := b.vertex(p1[0], p1[1], p1[2], n[0], n[1], n[2])
	i2 := b.vertex(p2[0], p2[1], p2[2], n[0], n[1], n[2])
	b.tri(i0, i1, i2)
}

// triangulate ear-clips a simple counter-clockwise polygon and returns
// indices into it, wound counter-clockwise.
func triangulate(poly []mgl32.Vec2) []int {
	remaining := make([]int, len(poly))
	for i := range remaining {
		remaining[i] = i
	}
	var out []int

	for len(remaining) > 3 {
		clipped := false
		for i := range remaining {
			n := len(remaining)
			ip, ic, in := remaining[(i+n-1)%n], remaining[i], remaining[(i+1)%n]
			if !isEar(poly, remaining, ip, ic, in) {
				continue
			}
			out = append(out, ip, ic, in)
			remaining = append(remaining[:i], remaining[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Self-touching outline: fan the rest rather than loop forever.
			for i := 1; i+1 < len(remaining); i++ {
				out = append(out, remaining[0], remaining[i], remaining[i+1])
			}
			return out
		}
	}
	return append(out, remaining...)
}

func isEar(poly []mgl32.Vec2, remaining []int, ip, ic, in int) bool {
	a, b, c := poly[ip], poly[ic], poly[in]
	if cross2(b.Sub(a), c.Sub(b)) <= 0 {
		return false
	}
	for _, k := range remaining {
		if k == ip || k == ic || k == in {
			continue
		}
		p := poly[k]
		if p.ApproxEqualThreshold(a, 1e-6) || p.ApproxEqualThreshold(b, 1e-6) || p.ApproxEqualThreshold(c, 1e-6) {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

func cross2(a, b mgl32.Vec2) float32 {
	return a[0]*b[1] - a[1]*b[0]
}

func pointInTriangle(p, a, b, c mgl32.Vec2) bool {
	d1 := cross2(b.Sub(a), p.Sub(a))
	d2 := cross2(c.Sub(b), p.Sub(b))
	d3 := cross2(a.Sub(c), p.Sub(c))
	return d1 >= 0 && d2 >= 0 && d3 >= 0
}
