package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewOrbitCameraRoundTripsPosition(t *testing.T) {
	pos := mgl32.Vec3{0, 2, 14}
	c := NewOrbitCamera(pos, mgl32.Vec3{}, 50)

	assert.InDelta(t, pos.Len(), c.Distance, 1e-5)
	got := c.Position()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, pos[i], got[i], 1e-4)
	}
}

func TestControlsDisabledByDefault(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{0, 0, 8}, mgl32.Vec3{}, 50)
	c.HandleZoom(3)
	c.HandleDrag(100, 100)
	c.HandlePan(50, 50)

	assert.Equal(t, float32(8), c.Distance)
	assert.Equal(t, float32(0), c.Yaw)
	assert.Equal(t, mgl32.Vec3{}, c.Target)
}

func TestZoomClampsToLimits(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, 50)
	c.ZoomEnabled = true
	c.SetLimits(5, 20)

	for i := 0; i < 50; i++ {
		c.HandleZoom(1)
	}
	assert.Equal(t, float32(5), c.Distance)

	for i := 0; i < 50; i++ {
		c.HandleZoom(-1)
	}
	assert.Equal(t, float32(20), c.Distance)
}

func TestSetLimitsClampsCurrentDistance(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{0, 0, 30}, mgl32.Vec3{}, 50)
	c.SetLimits(5, 20)
	assert.Equal(t, float32(20), c.Distance)
}

func TestDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{0, 0, 8}, mgl32.Vec3{}, 50)
	c.RotateEnabled = true
	c.HandleDrag(0, 10000)
	assert.Equal(t, c.MaxPitch, c.Pitch)
	c.HandleDrag(0, -20000)
	assert.Equal(t, c.MinPitch, c.Pitch)
}

func TestProjectionHandlesZeroAspect(t *testing.T) {
	c := NewOrbitCamera(mgl32.Vec3{0, 0, 8}, mgl32.Vec3{}, 50)
	assert.Equal(t, c.Projection(1), c.Projection(0))
}
