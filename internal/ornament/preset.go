package ornament

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/symbionic/ornaments/internal/geometry"
	"github.com/symbionic/ornaments/internal/palette"
)

// ErrUnknownPreset is returned by Lookup for a name not in the catalogue.
var ErrUnknownPreset = errors.New("unknown preset")

// Material describes how the renderer shades an ornament.
type Material struct {
	Emissive          palette.RGBA
	EmissiveIntensity float32
	Metalness         float32
	Roughness         float32
	Shininess         float32
	Transparent       bool
	DoubleSided       bool
}

// Preset is a named ornament recipe: a shape, its animation and a material.
type Preset struct {
	Name   string
	Kind   geometry.Kind
	Shape  geometry.Params
	Center bool
	// ScaleGeometry bakes the instance scale into the vertex positions
	// instead of the model matrix, so displacement is not scaled with it.
	ScaleGeometry bool

	// BaseColor is the default of the instance colour property. Presets
	// with TintFromColor use it for the vertex colours; the others feed
	// it to the material's emissive term. EmissiveFromColor feeds it to
	// both.
	BaseColor         palette.RGBA
	TintFromColor     bool
	EmissiveFromColor bool
	Colors            palette.Scheme

	Displacement Displacement
	Alpha        Alpha
	Motion       Motion
	Unit         time.Duration
	Material     Material
}

// Options are the per-instance properties a scene passes to a preset.
type Options struct {
	Color *palette.RGBA
	Scale float32
	// Shape replaces the preset's shape parameters when non-nil.
	Shape *geometry.Params

	// Inclination tilts the instance about X, in degrees.
	Inclination float32
}

// Build constructs the geometry and initialises a mesh for one instance.
// It returns the material with the instance colour applied.
func (p Preset) Build(opts Options) (*Mesh, Material, error) {
	if opts.Scale < 0 || opts.Scale != opts.Scale {
		return nil, Material{}, fmt.Errorf("preset %s: %w: scale must be >= 0, got %v",
			p.Name, geometry.ErrInvalidParameter, opts.Scale)
	}
	shape := p.Shape
	if opts.Shape != nil {
		shape = *opts.Shape
		if shape.Outline == nil {
			shape.Outline = p.Shape.Outline
		}
	}
	geo, err := geometry.Build(p.Kind, shape)
	if err != nil {
		return nil, Material{}, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	if p.Center {
		geo.Center()
	}
	if p.ScaleGeometry && opts.Scale != 0 && opts.Scale != 1 {
		if err := geo.Scale(opts.Scale); err != nil {
			return nil, Material{}, fmt.Errorf("preset %s: %w", p.Name, err)
		}
	}

	color := p.BaseColor
	if opts.Color != nil {
		color = *opts.Color
	}
	mat := p.Material
	scheme := p.Colors
	if p.TintFromColor {
		scheme = palette.Constant{Color: color}
	}
	if !p.TintFromColor || p.EmissiveFromColor {
		mat.Emissive = color
	}
	motion := p.Motion
	motion.Tilt[0] += float64(opts.Inclination) * math.Pi / 180

	m, err := New(geo, Params{
		Color:        scheme,
		Displacement: p.Displacement,
		Alpha:        p.Alpha,
		Motion:       motion,
		Unit:         p.Unit,
	})
	if err != nil {
		return nil, Material{}, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	return m, mat, nil
}

// ModelScale is the uniform scale the renderer applies to the instance.
func (p Preset) ModelScale(opts Options) float32 {
	if p.ScaleGeometry || opts.Scale == 0 {
		return 1
	}
	return opts.Scale
}

// At 60 frames per second, a per-frame rotation step of x radians is 60x
// radians per second.
const framesPerSecond = 60

var presets = map[string]Preset{
	"exploding-torus": {
		Name:         "exploding-torus",
		Kind:         geometry.KindTorus,
		Shape:        geometry.Params{Radius: 2, Tube: 0.5, RadialSegments: 6, TubularSegments: 16},
		BaseColor:    palette.MustParse("royalblue"),
		Colors:       palette.Constant{Color: palette.RGBA{R: 0.3, G: 1, B: 0.5, A: 1}},
		Displacement: RadialPulse{Divisor: 200, Scale: 5, GroupSize: 6},
		Alpha:        Complement{Base: 1, Gain: 4},
		Motion:       Motion{Rate: [3]float64{1.0 / 3000, 1.0 / 2000, 0}},
		Unit:         time.Millisecond,
		Material:     Material{Shininess: 510, Transparent: true, DoubleSided: true},
	},
	"nebula-bloom-sphere": {
		Name:      "nebula-bloom-sphere",
		Kind:      geometry.KindIcosahedron,
		Shape:     geometry.Params{Radius: 2, Detail: 4},
		BaseColor: palette.MustParse("violet"),
		Colors:    palette.HueRamp{Saturation: 1, Lightness: 0.7},
		Displacement: Layered{
			{Frequency: 0.001, Spatial: 0.05, Amplitude: 0.2},
			{Frequency: 0.0003, Spatial: 0.1, Amplitude: 0.1},
		},
		Alpha:    Breathing{Base: 0.6, Amplitude: 0.4, Frequency: 0.001, Spatial: 0.1},
		Motion:   Motion{Rate: [3]float64{1.0 / 4000, 1.0 / 2500, 1.0 / 7000}},
		Unit:     time.Millisecond,
		Material: Material{EmissiveIntensity: 1, Metalness: 0.5, Roughness: 0.3, Transparent: true},
	},
	"galactic-pulse-cylinder": {
		Name:         "galactic-pulse-cylinder",
		Kind:         geometry.KindCylinder,
		Shape:        geometry.Params{RadiusTop: 1, RadiusBottom: 1, Height: 3, RadialSegments: 64, HeightSegments: 1, OpenEnded: true},
		BaseColor:    palette.MustParse("deepskyblue"),
		Colors:       palette.HueRamp{Saturation: 1, Lightness: 0.6},
		Displacement: WaveBands{Frequency: 2, Spatial: 0.3, Amplitude: 0.15},
		Alpha:        Breathing{Base: 0.6, Amplitude: 0.3, Frequency: 2, Spatial: 0.1},
		Motion: Motion{
			Rate:   [3]float64{0.1, 0.2, 0},
			Wobble: [3]Oscillation{{}, {}, {Amplitude: 0.05, Frequency: 0.5}},
		},
		Unit:     time.Second,
		Material: Material{EmissiveIntensity: 0.8, Metalness: 0.6, Roughness: 0.25, Transparent: true, DoubleSided: true},
	},
	"diamond": {
		Name:         "diamond",
		Kind:         geometry.KindOctahedron,
		Shape:        geometry.Params{Radius: 2, Detail: 3},
		BaseColor:    palette.MustParse("white"),
		Colors:       palette.HueRamp{Saturation: 1, Lightness: 0.85},
		Displacement: AbsoluteBurst{Frequency: 0.001, Spatial: 0.2, Amplitude: 0.25},
		Alpha:        Breathing{Base: 0.5, Amplitude: 0.5, Frequency: 0.002, Spatial: 1},
		Motion:       Motion{Rate: [3]float64{1.0 / 3000, 1.0 / 2000, 1.0 / 5000}},
		Unit:         time.Millisecond,
		Material:     Material{EmissiveIntensity: 0.4, Metalness: 0.9, Roughness: 0.05, Transparent: true, DoubleSided: true},
	},
	"diamond-heart": {
		Name: "diamond-heart",
		Kind: geometry.KindExtrude,
		Shape: geometry.Params{
			Outline: geometry.HeartOutline(),
			Extrude: geometry.ExtrudeOptions{
				Depth: 1, Steps: 2, CurveSegments: 12,
				BevelEnabled: true, BevelSegments: 2, BevelSize: 0.3, BevelThickness: 0.3,
			},
		},
		Center:       true,
		BaseColor:    palette.MustParse("hotpink"),
		Colors:       palette.HueRamp{Saturation: 1, Lightness: 0.75},
		Displacement: WaveBands{Frequency: 0.002, Spatial: 0.1, Amplitude: 0.15},
		Alpha:        Breathing{Base: 0.6, Amplitude: 0.4, Frequency: 0.001, Spatial: 0.05},
		Motion:       Motion{Bob: Oscillation{Amplitude: 0.2, Frequency: 0.0015}},
		Unit:         time.Millisecond,
		Material:     Material{EmissiveIntensity: 0.6, Metalness: 0.8, Roughness: 0.1, Transparent: true, DoubleSided: true},
	},
	"heart": {
		Name: "heart",
		Kind: geometry.KindExtrude,
		Shape: geometry.Params{
			Outline: geometry.HeartOutline(),
			Extrude: geometry.ExtrudeOptions{
				Depth: 0.5, Steps: 1, CurveSegments: 12,
				BevelEnabled: true, BevelSegments: 2, BevelSize: 0.2, BevelThickness: 0.2,
			},
		},
		Center:            true,
		ScaleGeometry:     true,
		BaseColor:         palette.MustParse("hotpink"),
		TintFromColor:     true,
		EmissiveFromColor: true,
		Displacement:      Static{},
		Unit:              time.Millisecond,
		Material:          Material{EmissiveIntensity: 0.3, Metalness: 0.6, Roughness: 0.2, DoubleSided: true},
	},
	"vertical-spiral": {
		Name:          "vertical-spiral",
		Kind:          geometry.KindHelix,
		Shape:         geometry.Params{Radius: 0.4, Tube: 0.15, Height: 8, Turns: 5, RadialSegments: 12, TubularSegments: 1000},
		BaseColor:     palette.MustParse("#111111"),
		TintFromColor: true,
		Displacement:  Static{},
		Unit:          time.Second,
		Material:      Material{Metalness: 0.6, Roughness: 0.5},
	},
	"solid-spiral": {
		Name:      "solid-spiral",
		Kind:      geometry.KindHelix,
		Shape:     geometry.Params{Radius: 0.4, Tube: 0.15, Height: 8, Turns: 5, RadialSegments: 12, TubularSegments: 1000},
		BaseColor: palette.MustParse("#7928ca"),
		Colors: palette.Gradient{
			From: palette.MustParse("#ff0080"),
			To:   palette.MustParse("#7928ca"),
		},
		Displacement: Static{},
		Unit:         time.Millisecond,
		Material:     Material{Metalness: 0.5, Roughness: 0.4, Transparent: true},
	},
	"drifting-spiral": {
		Name:      "drifting-spiral",
		Kind:      geometry.KindHelix,
		Shape:     geometry.Params{Radius: 0.4, Tube: 0.15, Height: 8, Turns: 5, RadialSegments: 12, TubularSegments: 1000},
		BaseColor: palette.MustParse("#7928ca"),
		Colors: palette.Gradient{
			From: palette.MustParse("#ff0080"),
			To:   palette.MustParse("#7928ca"),
		},
		Displacement: AlongAxis{
			Wave: WaveBands{Frequency: 0.001, Spatial: 0.1, Amplitude: 0.05},
			Axis: [3]float32{0, 1, 0},
		},
		Alpha:    Breathing{Base: 0.9, Amplitude: 0.1, Frequency: 0.001, Spatial: 0.2},
		Motion:   Motion{Rate: [3]float64{0, 1.0 / 4000, 0}},
		Unit:     time.Millisecond,
		Material: Material{Metalness: 0.5, Roughness: 0.4, Transparent: true},
	},
	"cosmic-orb": {
		Name:          "cosmic-orb",
		Kind:          geometry.KindSphere,
		Shape:         geometry.Params{Radius: 1, WidthSegments: 64, HeightSegments: 64},
		BaseColor:     palette.MustParse("#C084FC"),
		TintFromColor: true,
		Displacement:  Static{},
		Motion: Motion{
			Rate:   [3]float64{0, 0.01 * framesPerSecond, 0},
			Wobble: [3]Oscillation{{Amplitude: 0.2, Frequency: 0.5}, {}, {}},
			Bob:    Oscillation{Amplitude: 0.1, Frequency: 2},
		},
		Unit:     time.Second,
		Material: Material{Emissive: palette.MustParse("#E9D5FF"), EmissiveIntensity: 0.6, Metalness: 0.8, Roughness: 0.2},
	},
	"corner-sphere": {
		Name:          "corner-sphere",
		Kind:          geometry.KindSphere,
		Shape:         geometry.Params{Radius: 0.8, WidthSegments: 32, HeightSegments: 32},
		BaseColor:     palette.MustParse("#9F7AEA"),
		TintFromColor: true,
		Displacement:  Static{},
		Motion:        Motion{Rate: [3]float64{0.008 * framesPerSecond, 0.015 * framesPerSecond, 0}},
		Unit:          time.Second,
		Material:      Material{Metalness: 0.5, Roughness: 0.4},
	},
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Names lists the catalogue in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
