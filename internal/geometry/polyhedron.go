package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var octahedronVertices = []mgl32.Vec3{
	{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
}

var octahedronIndices = []uint32{
	0, 2, 4, 0, 4, 3, 0, 3, 5, 0, 5, 2,
	1, 2, 5, 1, 5, 3, 1, 3, 4, 1, 4, 2,
}

func icosahedronVertices() []mgl32.Vec3 {
	t := (1 + math32.Sqrt(5)) / 2
	return []mgl32.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
}

var icosahedronIndices = []uint32{
	0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
	1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
	3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
	4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
}

// buildPolyhedron subdivides every base face into (detail+1)^2 triangles
// and projects the result onto the sphere of the given radius. Detail 0
// keeps flat face normals; higher detail uses the sphere normal.
func buildPolyhedron(base []mgl32.Vec3, faces []uint32, radius float32, detail int) *Indexed {
	var b builder
	cols := detail + 1

	for f := 0; f+2 < len(faces); f += 3 {
		a, c, d := base[faces[f]], base[faces[f+1]], base[faces[f+2]]

		// grid[i][j]: row i runs from edge a-c to b-c, shrinking to c.
		grid := make([][]mgl32.Vec3, cols+1)
		for i := 0; i <= cols; i++ {
			t := float32(i) / float32(cols)
			aj := lerp(a, d, t)
			bj := lerp(c, d, t)
			rows := cols - i
			grid[i] = make([]mgl32.Vec3, rows+1)
			for j := 0; j <= rows; j++ {
				if j == 0 && i == cols {
					grid[i][j] = aj
				} else {
					grid[i][j] = lerp(aj, bj, float32(j)/float32(rows))
				}
			}
		}

		for i := 0; i < cols; i++ {
			for j := 0; j < 2*(cols-i)-1; j++ {
				k := j / 2
				if j%2 == 0 {
					polyTri(&b, grid[i][k+1], grid[i+1][k], grid[i][k], radius, detail)
				} else {
					polyTri(&b, grid[i][k+1], grid[i+1][k+1], grid[i+1][k], radius, detail)
				}
			}
		}
	}
	return b.mesh()
}

func polyTri(b *builder, p0, p1, p2 mgl32.Vec3, radius float32, detail int) {
	p0 = p0.Normalize().Mul(radius)
	p1 = p1.Normalize().Mul(radius)
	p2 = p2.Normalize().Mul(radius)

	if detail == 0 {
		n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		i0 := b.vertex(p0[0], p0[1], p0[2], n[0], n[1], n[2])
		i1 := b.vertex(p1[0], p1[1], p1[2], n[0], n[1], n[2])
		i2 := b.vertex(p2[0], p2[1], p2[2], n[0], n[1], n[2])
		b.tri(i0, i1, i2)
		return
	}

	var ids [3]uint32
	for i, p := range [3]mgl32.Vec3{p0, p1, p2} {
		n := p.Normalize()
		ids[i] = b.vertex(p[0], p[1], p[2], n[0], n[1], n[2])
	}
	b.tri(ids[0], ids[1], ids[2])
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
