// Package camera provides the perspective orbit camera used to view scenes.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	nearPlane = 0.1
	farPlane  = 1000
)

// OrbitCamera orbits a target point in spherical coordinates.
type OrbitCamera struct {
	Target mgl32.Vec3

	Distance float32
	Pitch    float32 // radians above the XZ plane
	Yaw      float32 // radians around Y, 0 looks down -Z

	FOV float32 // vertical field of view in degrees

	// Zero bounds leave the distance unconstrained.
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	ZoomEnabled   bool
	RotateEnabled bool
	PanEnabled    bool

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera places a camera at position looking at target. User
// controls are disabled until enabled by the caller.
func NewOrbitCamera(position, target mgl32.Vec3, fov float32) *OrbitCamera {
	c := &OrbitCamera{
		Target:          target,
		FOV:             fov,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
	offset := position.Sub(target)
	c.Distance = offset.Len()
	if c.Distance > 0 {
		c.Pitch = float32(math.Asin(float64(offset.Y() / c.Distance)))
		c.Yaw = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	}
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	cp, sp := math.Cos(float64(c.Pitch)), math.Sin(float64(c.Pitch))
	cy, sy := math.Cos(float64(c.Yaw)), math.Sin(float64(c.Yaw))
	return c.Target.Add(mgl32.Vec3{
		c.Distance * float32(cp*sy),
		c.Distance * float32(sp),
		c.Distance * float32(cp*cy),
	})
}

// View returns the view matrix.
func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for a viewport aspect ratio.
func (c *OrbitCamera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, nearPlane, farPlane)
}

// HandleDrag rotates the camera by a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(dx, dy float32) {
	if !c.RotateEnabled {
		return
	}
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom moves the camera along its view ray by a wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	if !c.ZoomEnabled {
		return
	}
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clampDistance()
}

// HandlePan shifts the target in the camera's screen plane.
func (c *OrbitCamera) HandlePan(dx, dy float32) {
	if !c.PanEnabled {
		return
	}
	speed := c.Distance * 0.001
	cy, sy := float32(math.Cos(float64(c.Yaw))), float32(math.Sin(float64(c.Yaw)))
	right := mgl32.Vec3{cy, 0, -sy}
	c.Target = c.Target.Add(right.Mul(-dx * speed)).Add(mgl32.Vec3{0, dy * speed, 0})
}

func (c *OrbitCamera) clampDistance() {
	if c.MinDistance > 0 && c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.MaxDistance > 0 && c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// SetLimits sets the distance bounds and clamps the current distance.
func (c *OrbitCamera) SetLimits(minDistance, maxDistance float32) {
	c.MinDistance = minDistance
	c.MaxDistance = maxDistance
	c.clampDistance()
}
