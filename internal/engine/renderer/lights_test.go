package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symbionic/ornaments/internal/scene"
)

func TestPackLights(t *testing.T) {
	d, err := scene.Builtin("partner")
	require.NoError(t, err)

	set, dropped := packLights(d.Lights)
	assert.Zero(t, dropped)
	assert.Equal(t, float32(0.4), set.ambient)
	require.Len(t, set.directional, 1)
	require.Len(t, set.point, 1)

	// Unset colour is white scaled by intensity.
	assert.Equal(t, mgl32.Vec3{1.2, 1.2, 1.2}, set.directional[0].color)
	assert.Equal(t, mgl32.Vec3{10, 10, 5}, set.directional[0].position)

	// #4299E1 at half intensity.
	p := set.point[0].color
	assert.InDelta(t, 0x42/255.0*0.5, p[0], 1e-5)
	assert.InDelta(t, 0x99/255.0*0.5, p[1], 1e-5)
	assert.InDelta(t, 0xE1/255.0*0.5, p[2], 1e-5)
}

func TestPackLightsDropsExtra(t *testing.T) {
	l := scene.Lights{Point: make([]scene.Light, maxLights+2)}
	set, dropped := packLights(l)
	assert.Len(t, set.point, maxLights)
	assert.Equal(t, 2, dropped)
	assert.Empty(t, set.directional)
}
