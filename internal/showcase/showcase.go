// Package showcase runs the windowed ornament showcase: a loading screen
// followed by one scene, driven by a single frame loop.
package showcase

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/symbionic/ornaments/internal/config"
	"github.com/symbionic/ornaments/internal/engine/debug"
	"github.com/symbionic/ornaments/internal/engine/frame"
	"github.com/symbionic/ornaments/internal/engine/input"
	"github.com/symbionic/ornaments/internal/engine/renderer"
	"github.com/symbionic/ornaments/internal/engine/window"
	"github.com/symbionic/ornaments/internal/logger"
	"github.com/symbionic/ornaments/internal/orchestrate"
	"github.com/symbionic/ornaments/internal/palette"
	"github.com/symbionic/ornaments/internal/scene"
	"github.com/symbionic/ornaments/internal/showcase/states"
)

const title = "Symbionic"

// App is the showcase instance.
type App struct {
	ctx      context.Context
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	loop     *frame.Loop
	states   *states.Manager
	composer *scene.Composer
	shots    *debug.Screenshots
	log      *zap.Logger

	// screenshot is set by F12 and served after the next render.
	screenshot bool
}

// New opens the window and prepares the states for desc.
func New(ctx context.Context, cfg *config.Config, desc *scene.Description) (*App, error) {
	a := &App{
		ctx:    ctx,
		config: cfg,
		loop:   frame.NewLoop(frame.NewSystemClock()),
		states: states.NewManager(),
		input:  input.New(),
		log:    logger.Named("showcase"),
	}
	a.log.Info("initializing showcase",
		zap.String("scene", desc.Name),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	bg, err := palette.Parse(desc.Background)
	if err != nil {
		bg = palette.RGBA{A: 1}
	}
	a.renderer.SetBackground(bg)
	a.renderer.SetLights(desc.Lights)

	a.shots = debug.NewScreenshots(cfg.Graphics.ScreenshotDir, desc.Name)
	a.composer = scene.NewComposer(desc, a.renderer, a.loop, scene.Config{Breakpoint: cfg.Scene.Breakpoint})

	// Visibility and breakpoints are measured in window coordinates.
	ww, wh := a.window.Size()
	sceneState := states.NewSceneState(ctx, states.SceneConfig{
		Visibility: orchestrate.InView{
			Threshold:   cfg.Scene.VisibilityThreshold,
			TriggerOnce: cfg.Scene.TriggerOnce,
		},
		PageHeight:    cfg.Scene.PageHeight,
		SectionTop:    0,
		SectionHeight: 1,
	}, a.composer, a.renderer, orchestrate.Viewport{Width: ww, Height: wh})

	if cfg.Loading.Skip {
		a.states.Change(sceneState)
	} else {
		a.states.Change(states.NewLoadingState(states.LoadingConfig{
			Title: title,
			Typewriter: orchestrate.Typewriter{
				Words:         cfg.Loading.Words,
				TypeInterval:  cfg.Loading.TypeInterval,
				Hold:          cfg.Loading.Hold,
				EraseInterval: cfg.Loading.EraseInterval,
				CursorBlink:   cfg.Loading.CursorBlink,
			},
			RevealAfter: cfg.Loading.RevealAfter,
			Surface:     a.renderer,
		}, a.loop, a.window, a.states, sceneState))
	}

	a.log.Info("showcase initialized")
	return a, nil
}

// Run drives input, state updates, the frame loop and rendering until the
// window closes, Escape is pressed or the context is cancelled.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	var minFrame time.Duration
	if a.config.Graphics.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(a.config.Graphics.FPSLimit)
	}

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() || a.ctx.Err() != nil {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			switch {
			case event.Type == input.EventKeyDown && event.Key == sdl.SCANCODE_ESCAPE:
				a.running = false
			case event.Type == input.EventKeyDown && event.Key == sdl.SCANCODE_F12:
				a.screenshot = true
			case event.Type == input.EventWindowResize:
				w, h := a.window.DrawableSize()
				a.renderer.Resize(w, h)
			}
			if err := a.states.HandleInput(event); err != nil {
				return fmt.Errorf("input error: %w", err)
			}
		}

		if err := a.states.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		a.loop.Tick()
		if err := a.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if a.screenshot {
			a.screenshot = false
			a.saveScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if a.config.Graphics.ShowFPS {
				a.log.Info("fps", zap.Int("count", frameCount), zap.Int("ornaments", a.composer.Len()))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
		if minFrame > 0 {
			if spent := time.Since(now); spent < minFrame {
				time.Sleep(minFrame - spent)
			}
		}
	}
	return nil
}

func (a *App) saveScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.SaveFramebuffer(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close unmounts the scene and releases the window.
func (a *App) Close() {
	a.log.Info("closing showcase")
	if err := a.states.Close(); err != nil {
		a.log.Warn("leaving state", zap.Error(err))
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
