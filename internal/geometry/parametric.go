package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// buildTorus lays out a (radial+1) x (tubular+1) grid around the ring.
// Ring angle u runs around Z, tube angle v around the tube.
func buildTorus(p Params) *Indexed {
	var b builder
	radial, tubular := p.RadialSegments, p.TubularSegments

	for j := 0; j <= radial; j++ {
		for i := 0; i <= tubular; i++ {
			u := float32(i) / float32(tubular) * 2 * math32.Pi
			v := float32(j) / float32(radial) * 2 * math32.Pi

			ring := p.Radius + p.Tube*math32.Cos(v)
			x := ring * math32.Cos(u)
			y := ring * math32.Sin(u)
			z := p.Tube * math32.Sin(v)

			cx := p.Radius * math32.Cos(u)
			cy := p.Radius * math32.Sin(u)
			n := mgl32.Vec3{x - cx, y - cy, z}.Normalize()
			b.vertex(x, y, z, n[0], n[1], n[2])
		}
	}

	row := uint32(tubular + 1)
	for j := 1; j <= radial; j++ {
		for i := 1; i <= tubular; i++ {
			a := row*uint32(j) + uint32(i-1)
			c := row*uint32(j-1) + uint32(i-1)
			d := row*uint32(j-1) + uint32(i)
			e := row*uint32(j) + uint32(i)
			b.tri(a, c, e)
			b.tri(c, d, e)
		}
	}
	return b.mesh()
}

// buildSphere is a UV sphere. Pole rows emit a single triangle per segment.
func buildSphere(p Params) *Indexed {
	var b builder
	width, height := p.WidthSegments, p.HeightSegments

	for iy := 0; iy <= height; iy++ {
		v := float32(iy) / float32(height)
		for ix := 0; ix <= width; ix++ {
			u := float32(ix) / float32(width)
			x := -p.Radius * math32.Cos(u*2*math32.Pi) * math32.Sin(v*math32.Pi)
			y := p.Radius * math32.Cos(v*math32.Pi)
			z := p.Radius * math32.Sin(u*2*math32.Pi) * math32.Sin(v*math32.Pi)
			n := mgl32.Vec3{x, y, z}.Normalize()
			b.vertex(x, y, z, n[0], n[1], n[2])
		}
	}

	row := uint32(width + 1)
	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			a := uint32(iy)*row + uint32(ix+1)
			c := uint32(iy)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix)
			e := uint32(iy+1)*row + uint32(ix+1)
			if iy != 0 {
				b.tri(a, c, e)
			}
			if iy != height-1 {
				b.tri(c, d, e)
			}
		}
	}
	return b.mesh()
}

// buildCylinder builds a (possibly truncated-cone) cylinder along Y with
// optional caps.
func buildCylinder(p Params) *Indexed {
	var b builder
	radial, rows := p.RadialSegments, p.HeightSegments
	half := p.Height / 2
	slope := (p.RadiusBottom - p.RadiusTop) / p.Height

	row := uint32(radial + 1)
	for y := 0; y <= rows; y++ {
		v := float32(y) / float32(rows)
		r := v*(p.RadiusBottom-p.RadiusTop) + p.RadiusTop
		for x := 0; x <= radial; x++ {
			theta := float32(x) / float32(radial) * 2 * math32.Pi
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			n := mgl32.Vec3{sin, slope, cos}.Normalize()
			b.vertex(r*sin, -v*p.Height+half, r*cos, n[0], n[1], n[2])
		}
	}
	for x := 0; x < radial; x++ {
		for y := 0; y < rows; y++ {
			a := uint32(y)*row + uint32(x)
			c := uint32(y+1)*row + uint32(x)
			d := uint32(y+1)*row + uint32(x+1)
			e := uint32(y)*row + uint32(x+1)
			b.tri(a, c, e)
			b.tri(c, d, e)
		}
	}

	if !p.OpenEnded {
		if p.RadiusTop > 0 {
			cylinderCap(&b, radial, p.RadiusTop, half, 1)
		}
		if p.RadiusBottom > 0 {
			cylinderCap(&b, radial, p.RadiusBottom, -half, -1)
		}
	}
	return b.mesh()
}

func cylinderCap(b *builder, radial int, radius, y, sign float32) {
	centers := make([]uint32, radial)
	for x := 0; x < radial; x++ {
		centers[x] = b.vertex(0, y, 0, 0, sign, 0)
	}
	ring := make([]uint32, radial+1)
	for x := 0; x <= radial; x++ {
		theta := float32(x) / float32(radial) * 2 * math32.Pi
		ring[x] = b.vertex(radius*math32.Sin(theta), y, radius*math32.Cos(theta), 0, sign, 0)
	}
	for x := 0; x < radial; x++ {
		if sign > 0 {
			b.tri(ring[x], ring[x+1], centers[x])
		} else {
			b.tri(ring[x+1], ring[x], centers[x])
		}
	}
}

// buildHelix sweeps a circular tube along a vertical helix centred on the
// origin. The helix frame is analytic: N points at the axis, B = T x N.
func buildHelix(p Params) *Indexed {
	var b builder
	radial, tubular := p.RadialSegments, p.TubularSegments
	k := 2 * math32.Pi * p.Turns

	for i := 0; i <= tubular; i++ {
		s := float32(i) / float32(tubular)
		angle := s * k
		sin, cos := math32.Sin(angle), math32.Cos(angle)

		center := mgl32.Vec3{cos * p.Radius, s*p.Height - p.Height/2, sin * p.Radius}
		tangent := mgl32.Vec3{-sin * p.Radius * k, p.Height, cos * p.Radius * k}.Normalize()
		normal := mgl32.Vec3{-cos, 0, -sin}
		binormal := tangent.Cross(normal).Normalize()

		for j := 0; j <= radial; j++ {
			v := float32(j) / float32(radial) * 2 * math32.Pi
			n := normal.Mul(-math32.Cos(v)).Add(binormal.Mul(math32.Sin(v))).Normalize()
			pos := center.Add(n.Mul(p.Tube))
			b.vertex(pos[0], pos[1], pos[2], n[0], n[1], n[2])
		}
	}

	row := uint32(radial + 1)
	for j := 1; j <= tubular; j++ {
		for i := 1; i <= radial; i++ {
			a := row*uint32(j-1) + uint32(i-1)
			c := row*uint32(j) + uint32(i-1)
			d := row*uint32(j) + uint32(i)
			e := row*uint32(j-1) + uint32(i)
			b.tri(a, c, e)
			b.tri(c, d, e)
		}
	}
	return b.mesh()
}
