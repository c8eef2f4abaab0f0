// Package palette assigns per-vertex colours to ornament meshes.
package palette

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned when a colour string cannot be parsed.
var ErrBadColor = errors.New("bad color")

// RGBA is a colour with components in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// named holds the CSS colour names used by the site's scenes.
var named = map[string]string{
	"black":       "#000000",
	"white":       "#ffffff",
	"royalblue":   "#4169e1",
	"violet":      "#ee82ee",
	"deepskyblue": "#00bfff",
	"hotpink":     "#ff69b4",
	"orange":      "#ffa500",
	"purple":      "#800080",
	"gold":        "#ffd700",
}

// Parse accepts "#rgb", "#rrggbb" or one of the known CSS colour names.
// The result is opaque.
func Parse(s string) (RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := named[key]; ok {
		key = hex
	}
	if !strings.HasPrefix(key, "#") {
		return RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if len(key) == 4 {
		key = "#" + strings.Repeat(key[1:2], 2) + strings.Repeat(key[2:3], 2) + strings.Repeat(key[3:4], 2)
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	return fromColorful(c, 1), nil
}

// MustParse is Parse for compile-time constants; it panics on error.
func MustParse(s string) RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the colour as #rrggbb.
func (c RGBA) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}

// HSL converts hue in degrees and saturation/lightness in [0, 1].
func HSL(hue, saturation, lightness float64) RGBA {
	return fromColorful(colorful.Hsl(hue, saturation, lightness), 1)
}

func fromColorful(c colorful.Color, alpha float32) RGBA {
	c = c.Clamped()
	return RGBA{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}
}

// Scheme fills 4 floats (RGBA) per vertex.
type Scheme interface {
	Fill(dst []float32, vertexCount int)
}

// Constant broadcasts one colour to every vertex.
type Constant struct {
	Color RGBA
}

// Fill implements Scheme.
func (c Constant) Fill(dst []float32, vertexCount int) {
	for i := 0; i < vertexCount; i++ {
		dst[i*4] = c.Color.R
		dst[i*4+1] = c.Color.G
		dst[i*4+2] = c.Color.B
		dst[i*4+3] = c.Color.A
	}
}

// HueRamp spreads one full hue cycle over the mesh in vertex order at a
// fixed saturation and lightness, producing a rainbow gradient.
type HueRamp struct {
	Saturation float64
	Lightness  float64
}

// Hue returns the hue in degrees assigned to vertex i.
func (h HueRamp) Hue(i, vertexCount int) float64 {
	if vertexCount <= 0 {
		return 0
	}
	return float64(i) / float64(vertexCount) * 360
}

// Fill implements Scheme.
func (h HueRamp) Fill(dst []float32, vertexCount int) {
	for i := 0; i < vertexCount; i++ {
		c := HSL(h.Hue(i, vertexCount), h.Saturation, h.Lightness)
		dst[i*4] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = 1
	}
}

// Gradient blends linearly in RGB from From at vertex 0 towards To at the
// last vertex.
type Gradient struct {
	From RGBA
	To   RGBA
}

// Fill implements Scheme.
func (g Gradient) Fill(dst []float32, vertexCount int) {
	a := colorful.Color{R: float64(g.From.R), G: float64(g.From.G), B: float64(g.From.B)}
	b := colorful.Color{R: float64(g.To.R), G: float64(g.To.G), B: float64(g.To.B)}
	for i := 0; i < vertexCount; i++ {
		c := fromColorful(a.BlendRgb(b, float64(i)/float64(vertexCount)), 1)
		dst[i*4] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = 1
	}
}
