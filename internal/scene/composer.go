package scene

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/symbionic/ornaments/internal/engine/frame"
	"github.com/symbionic/ornaments/internal/logger"
	"github.com/symbionic/ornaments/internal/orchestrate"
	"github.com/symbionic/ornaments/internal/ornament"
)

// Handle identifies a mesh uploaded to a Backend.
type Handle uint32

// Backend owns the GPU side of mounted meshes. All calls happen on the
// goroutine that drives the frame loop.
type Backend interface {
	Upload(mesh *ornament.Mesh, mat ornament.Material) (Handle, error)
	Update(h Handle, mesh *ornament.Mesh) error
	Draw(h Handle, model mgl32.Mat4)
	Release(h Handle)
}

// Config holds composer settings.
type Config struct {
	// Breakpoint is the viewport width below which desktop-only
	// ornaments are skipped.
	Breakpoint int
}

type instance struct {
	name     string
	mesh     *ornament.Mesh
	material ornament.Material
	position mgl32.Vec3
	scale    float32

	handle       Handle
	sub          *frame.Subscription
	updateFailed bool
}

// Composer mounts the ornaments of one Description onto a Backend and
// drives them from a frame loop.
type Composer struct {
	desc    *Description
	backend Backend
	loop    *frame.Loop
	cfg     Config
	log     *zap.Logger

	instances []*instance
	mounted   bool
	narrow    bool
}

// NewComposer creates an unmounted composer.
func NewComposer(desc *Description, backend Backend, loop *frame.Loop, cfg Config) *Composer {
	if cfg.Breakpoint == 0 {
		cfg.Breakpoint = 768
	}
	return &Composer{
		desc:    desc,
		backend: backend,
		loop:    loop,
		cfg:     cfg,
		log:     logger.Named("scene").With(zap.String("scene", desc.Name)),
	}
}

// Description returns the scene being composed.
func (c *Composer) Description() *Description {
	return c.desc
}

// Mounted reports whether the scene is mounted.
func (c *Composer) Mounted() bool {
	return c.mounted
}

// Len returns the number of mounted ornaments.
func (c *Composer) Len() int {
	return len(c.instances)
}

// Names lists the presets of the mounted ornaments in draw order.
func (c *Composer) Names() []string {
	names := make([]string, len(c.instances))
	for i, in := range c.instances {
		names[i] = in.name
	}
	return names
}

// Mount builds every ornament visible at vp in parallel, uploads the
// results and subscribes one frame callback per ornament. An ornament
// that fails to build or upload is logged and left out. Mount only fails
// when ctx is cancelled, in which case nothing stays mounted.
func (c *Composer) Mount(ctx context.Context, vp orchestrate.Viewport) error {
	if c.mounted {
		return nil
	}
	start := time.Now()
	visible := c.desc.Visible(vp.Width, c.cfg.Breakpoint)
	built := make([]*instance, len(visible))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, inst := range visible {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			in, err := build(inst)
			if err != nil {
				c.log.Warn("skipping ornament", zap.String("preset", inst.Preset), zap.Error(err))
				return nil
			}
			built[i] = in
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, in := range built {
			if in != nil {
				in.mesh.Dispose()
			}
		}
		return fmt.Errorf("mounting scene %s: %w", c.desc.Name, err)
	}

	for _, in := range built {
		if in == nil {
			continue
		}
		h, err := c.backend.Upload(in.mesh, in.material)
		if err != nil {
			c.log.Warn("skipping ornament", zap.String("preset", in.name), zap.Error(err))
			in.mesh.Dispose()
			continue
		}
		in.handle = h
		in.sub = c.loop.Subscribe(c.animate(in))
		c.instances = append(c.instances, in)
	}
	c.mounted = true
	c.narrow = vp.IsNarrow(c.cfg.Breakpoint)

	c.log.Info("scene mounted",
		zap.Int("ornaments", len(c.instances)),
		zap.Int("skipped", len(c.desc.Ornaments)-len(c.instances)),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

func build(inst Instance) (*instance, error) {
	p, opts, err := inst.Resolve()
	if err != nil {
		return nil, err
	}
	mesh, mat, err := p.Build(opts)
	if err != nil {
		return nil, err
	}
	return &instance{
		name:     p.Name,
		mesh:     mesh,
		material: mat,
		position: Vec(inst.Position),
		scale:    p.ModelScale(opts),
	}, nil
}

func (c *Composer) animate(in *instance) frame.Callback {
	return func(elapsed time.Duration) {
		if !in.mesh.Update(elapsed) {
			return
		}
		if err := c.backend.Update(in.handle, in.mesh); err != nil && !in.updateFailed {
			in.updateFailed = true
			c.log.Warn("buffer update failed", zap.String("preset", in.name), zap.Error(err))
		}
	}
}

// Unmount cancels every frame callback, then releases GPU buffers and
// disposes the meshes. No buffer is written after Unmount returns.
func (c *Composer) Unmount() {
	if !c.mounted {
		return
	}
	for _, in := range c.instances {
		in.sub.Cancel()
		c.backend.Release(in.handle)
		in.mesh.Dispose()
	}
	c.log.Info("scene unmounted", zap.Int("ornaments", len(c.instances)))
	c.instances = nil
	c.mounted = false
}

// Resize remounts the scene when the viewport crosses the breakpoint, so
// desktop-only ornaments appear or disappear.
func (c *Composer) Resize(ctx context.Context, vp orchestrate.Viewport) error {
	if !c.mounted || vp.IsNarrow(c.cfg.Breakpoint) == c.narrow {
		return nil
	}
	c.Unmount()
	return c.Mount(ctx, vp)
}

// Render draws opaque ornaments first, then transparent ones.
func (c *Composer) Render() {
	for _, pass := range []bool{false, true} {
		for _, in := range c.instances {
			if in.material.Transparent != pass {
				continue
			}
			model := in.mesh.Transform().Model(in.position, in.scale)
			c.backend.Draw(in.handle, model)
		}
	}
}
