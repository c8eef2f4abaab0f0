package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/symbionic/ornaments/internal/palette"
	"github.com/symbionic/ornaments/internal/scene"
)

// maxLights matches MAX_LIGHTS in ornament.frag.
const maxLights = 4

type light struct {
	position mgl32.Vec3
	color    mgl32.Vec3 // premultiplied by intensity
}

type lightSet struct {
	ambient     float32
	directional []light
	point       []light
}

// packLights converts scene lights to shader values. Lights beyond
// maxLights are dropped and unset colours default to white.
func packLights(l scene.Lights) (lightSet, int) {
	set := lightSet{ambient: l.Ambient}
	dropped := 0
	convert := func(src []scene.Light) []light {
		out := make([]light, 0, min(len(src), maxLights))
		for i, s := range src {
			if i >= maxLights {
				dropped++
				continue
			}
			c := palette.RGBA{R: 1, G: 1, B: 1, A: 1}
			if s.Color != "" {
				if parsed, err := palette.Parse(s.Color); err == nil {
					c = parsed
				}
			}
			out = append(out, light{
				position: scene.Vec(s.Position),
				color:    mgl32.Vec3{c.R, c.G, c.B}.Mul(s.Intensity),
			})
		}
		return out
	}
	set.directional = convert(l.Directional)
	set.point = convert(l.Point)
	return set, dropped
}
