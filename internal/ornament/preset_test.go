package ornament

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symbionic/ornaments/internal/geometry"
	"github.com/symbionic/ornaments/internal/palette"
)

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("spinning-teapot")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.Len(t, names, len(presets))
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "exploding-torus")
}

func TestExplodingTorusPreset(t *testing.T) {
	p, err := Lookup("exploding-torus")
	require.NoError(t, err)

	red := palette.MustParse("#ff0000")
	m, mat, err := p.Build(Options{Color: &red})
	require.NoError(t, err)
	assert.Equal(t, 576, m.VertexCount())

	// The instance colour feeds the material; vertex colours stay fixed.
	assert.Equal(t, red, mat.Emissive)
	assert.Equal(t, []float32{0.3, 1, 0.5, 1}, m.Colors[:4])
}

func TestTintedPresetUsesInstanceColor(t *testing.T) {
	p, err := Lookup("heart")
	require.NoError(t, err)

	m, _, err := p.Build(Options{})
	require.NoError(t, err)
	pink := palette.MustParse("hotpink")
	assert.Equal(t, []float32{pink.R, pink.G, pink.B, 1}, m.Colors[:4])

	gold := palette.MustParse("gold")
	m, _, err = p.Build(Options{Color: &gold, Scale: 0.5})
	require.NoError(t, err)
	assert.Equal(t, []float32{gold.R, gold.G, gold.B, 1}, m.Colors[:4])
}

func TestPresetCentersAndScales(t *testing.T) {
	p, err := Lookup("heart")
	require.NoError(t, err)

	full, _, err := p.Build(Options{})
	require.NoError(t, err)
	half, _, err := p.Build(Options{Scale: 0.5})
	require.NoError(t, err)

	fb := (&geometry.Geometry{Positions: full.Original()}).Bounds()
	hb := (&geometry.Geometry{Positions: half.Original()}).Bounds()
	for a := 0; a < 3; a++ {
		assert.InDelta(t, 0, fb.Center()[a], 1e-4)
		assert.InDelta(t, fb.Size()[a]/2, hb.Size()[a], 1e-4)
	}
	assert.Equal(t, float32(1), p.ModelScale(Options{Scale: 0.5}))
}

func TestObjectScaleGoesToModel(t *testing.T) {
	p, err := Lookup("cosmic-orb")
	require.NoError(t, err)

	m, _, err := p.Build(Options{Scale: 2})
	require.NoError(t, err)
	b := (&geometry.Geometry{Positions: m.Original()}).Bounds()
	assert.InDelta(t, 2, b.Size()[0], 1e-3, "geometry keeps its unit radius")
	assert.Equal(t, float32(2), p.ModelScale(Options{Scale: 2}))
	assert.Equal(t, float32(1), p.ModelScale(Options{}))
}

func TestPresetShapeOverride(t *testing.T) {
	p, err := Lookup("exploding-torus")
	require.NoError(t, err)

	shape := geometry.Params{Radius: 1, Tube: 0.2, RadialSegments: 4, TubularSegments: 8}
	m, _, err := p.Build(Options{Shape: &shape})
	require.NoError(t, err)
	assert.Equal(t, 4*8*2*3, m.VertexCount())

	bad := geometry.Params{Radius: 1, Tube: 0.2, RadialSegments: 0, TubularSegments: 8}
	_, _, err = p.Build(Options{Shape: &bad})
	assert.True(t, errors.Is(err, geometry.ErrInvalidParameter))

	_, _, err = p.Build(Options{Scale: -1})
	assert.True(t, errors.Is(err, geometry.ErrInvalidParameter))
}

func TestHeartGlowsInInstanceColor(t *testing.T) {
	p, err := Lookup("heart")
	require.NoError(t, err)

	_, mat, err := p.Build(Options{})
	require.NoError(t, err)
	assert.Equal(t, palette.MustParse("hotpink"), mat.Emissive)
	assert.Equal(t, float32(0.3), mat.EmissiveIntensity)

	gold := palette.MustParse("gold")
	_, mat, err = p.Build(Options{Color: &gold})
	require.NoError(t, err)
	assert.Equal(t, gold, mat.Emissive)

	// Tinted presets without the flag keep their own emissive colour.
	orb, err := Lookup("cosmic-orb")
	require.NoError(t, err)
	_, mat, err = orb.Build(Options{Color: &gold})
	require.NoError(t, err)
	assert.Equal(t, palette.MustParse("#E9D5FF"), mat.Emissive)
}

func TestInclinationTilts(t *testing.T) {
	p, err := Lookup("drifting-spiral")
	require.NoError(t, err)
	m, _, err := p.Build(Options{Inclination: 30})
	require.NoError(t, err)
	require.True(t, m.Update(0))
	assert.InDelta(t, math.Pi/6, m.Transform().Rotation[0], 1e-6)
}
