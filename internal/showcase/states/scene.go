package states

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/symbionic/ornaments/internal/engine/camera"
	"github.com/symbionic/ornaments/internal/engine/input"
	"github.com/symbionic/ornaments/internal/logger"
	"github.com/symbionic/ornaments/internal/orchestrate"
	"github.com/symbionic/ornaments/internal/scene"
)

// Surface is where a scene is drawn, the GL renderer in the showcase.
type Surface interface {
	SetCamera(view, projection mgl32.Mat4, eye mgl32.Vec3)
	Begin()
	End()
}

// SceneConfig places the canvas section on a scrollable page. Lengths are
// in viewport heights.
type SceneConfig struct {
	Visibility    orchestrate.InView
	PageHeight    float64
	SectionTop    float64
	SectionHeight float64
	// ScrollStep is the scroll distance of one wheel notch in pixels.
	ScrollStep float64
}

// SceneState shows one scene. The composer is mounted while the canvas
// section is in view and unmounted on exit.
type SceneState struct {
	config   SceneConfig
	ctx      context.Context
	composer *scene.Composer
	camera   *camera.OrbitCamera
	surface  Surface
	viewport orchestrate.Viewport

	scroll   float64
	rotating bool
	panning  bool
}

// NewSceneState creates a scene state. ctx bounds mesh building.
func NewSceneState(ctx context.Context, cfg SceneConfig, composer *scene.Composer, surface Surface, vp orchestrate.Viewport) *SceneState {
	if cfg.PageHeight < 1 {
		cfg.PageHeight = 1
	}
	if cfg.SectionHeight <= 0 {
		cfg.SectionHeight = 1
	}
	if cfg.ScrollStep <= 0 {
		cfg.ScrollStep = 120
	}
	return &SceneState{
		config:   cfg,
		ctx:      ctx,
		composer: composer,
		camera:   CameraFor(composer.Description().Camera),
		surface:  surface,
		viewport: vp,
	}
}

// CameraFor builds an orbit camera from a scene camera.
func CameraFor(c scene.Camera) *camera.OrbitCamera {
	cam := camera.NewOrbitCamera(scene.Vec(c.Position), scene.Vec(c.Target), c.FOV)
	cam.ZoomEnabled = c.Controls.Zoom
	cam.RotateEnabled = c.Controls.Rotate
	cam.PanEnabled = c.Controls.Pan
	cam.SetLimits(c.Controls.MinDistance, c.Controls.MaxDistance)
	return cam
}

// Camera returns the scene camera.
func (s *SceneState) Camera() *camera.OrbitCamera {
	return s.camera
}

// Scroll returns the page scroll offset in pixels.
func (s *SceneState) Scroll() float64 {
	return s.scroll
}

// Enter mounts the scene if its section is in view.
func (s *SceneState) Enter() error {
	logger.Info("entering SceneState",
		zap.String("scene", s.composer.Description().Name),
		zap.Int("width", s.viewport.Width),
		zap.Int("height", s.viewport.Height),
	)
	return s.updateVisibility()
}

// Exit unmounts the scene.
func (s *SceneState) Exit() error {
	s.composer.Unmount()
	return nil
}

// Update is a no-op; ornaments animate on the frame loop.
func (s *SceneState) Update(dt float64) error {
	return nil
}

// Render draws the mounted ornaments.
func (s *SceneState) Render() error {
	s.surface.SetCamera(s.camera.View(), s.camera.Projection(s.viewport.Aspect()), s.camera.Position())
	s.surface.Begin()
	s.composer.Render()
	s.surface.End()
	return nil
}

// HandleInput scrolls the page, drives the orbit controls and follows
// window resizes.
func (s *SceneState) HandleInput(event input.Event) error {
	switch event.Type {
	case input.EventWindowResize:
		s.viewport = orchestrate.Viewport{Width: event.Width, Height: event.Height}
		s.scroll = min(s.scroll, s.maxScroll())
		if err := s.composer.Resize(s.ctx, s.viewport); err != nil {
			return fmt.Errorf("resize: %w", err)
		}
		return s.updateVisibility()

	case input.EventMouseWheel:
		if s.camera.ZoomEnabled && s.composer.Mounted() {
			s.camera.HandleZoom(event.DeltaY)
			return nil
		}
		s.scroll = max(0, min(s.scroll-float64(event.DeltaY)*s.config.ScrollStep, s.maxScroll()))
		return s.updateVisibility()

	case input.EventMouseDown:
		switch event.Button {
		case sdl.BUTTON_LEFT:
			s.rotating = true
		case sdl.BUTTON_RIGHT:
			s.panning = true
		}
	case input.EventMouseUp:
		switch event.Button {
		case sdl.BUTTON_LEFT:
			s.rotating = false
		case sdl.BUTTON_RIGHT:
			s.panning = false
		}
	case input.EventMouseMove:
		if s.rotating {
			s.camera.HandleDrag(event.DeltaX, event.DeltaY)
		}
		if s.panning {
			s.camera.HandlePan(event.DeltaX, event.DeltaY)
		}
	}
	return nil
}

func (s *SceneState) maxScroll() float64 {
	return (s.config.PageHeight - 1) * float64(s.viewport.Height)
}

func (s *SceneState) updateVisibility() error {
	vh := float64(s.viewport.Height)
	visible := s.config.Visibility.Update(
		s.config.SectionTop*vh, s.config.SectionHeight*vh, s.scroll, vh)

	switch {
	case visible && !s.composer.Mounted():
		if err := s.composer.Mount(s.ctx, s.viewport); err != nil {
			return fmt.Errorf("mount: %w", err)
		}
	case !visible && s.composer.Mounted():
		s.composer.Unmount()
	}
	return nil
}
