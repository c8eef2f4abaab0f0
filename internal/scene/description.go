// Package scene places decorative ornaments, lights and a camera, and
// mounts or unmounts them as one unit.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/symbionic/ornaments/internal/geometry"
	"github.com/symbionic/ornaments/internal/ornament"
	"github.com/symbionic/ornaments/internal/palette"
)

// Description is a declarative scene as read from YAML.
type Description struct {
	Name       string     `yaml:"name"`
	Background string     `yaml:"background"`
	Camera     Camera     `yaml:"camera"`
	Lights     Lights     `yaml:"lights"`
	Ornaments  []Instance `yaml:"ornaments"`
}

// Camera is a perspective camera looking at Target.
type Camera struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	FOV      float32    `yaml:"fov"`
	Controls Controls   `yaml:"controls"`
}

// Controls are the orbit controls the user may drive.
type Controls struct {
	Zoom        bool    `yaml:"zoom"`
	Pan         bool    `yaml:"pan"`
	Rotate      bool    `yaml:"rotate"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
}

// Lights holds the scene lighting.
type Lights struct {
	Ambient     float32 `yaml:"ambient"`
	Directional []Light `yaml:"directional"`
	Point       []Light `yaml:"point"`
}

// Light is a directional or point light.
type Light struct {
	Position  [3]float32 `yaml:"position"`
	Intensity float32    `yaml:"intensity"`
	Color     string     `yaml:"color"`
}

// Instance places one preset in the scene.
type Instance struct {
	Preset   string     `yaml:"preset"`
	Position [3]float32 `yaml:"position"`
	Color    string     `yaml:"color"`
	Scale    float32    `yaml:"scale"`

	// DesktopOnly instances are skipped on narrow viewports.
	DesktopOnly bool `yaml:"desktop_only"`

	// Inclination tilts the instance about X, in degrees.
	Inclination float32 `yaml:"inclination"`

	// Shape fields are merged over the preset's shape parameters.
	Shape yaml.Node `yaml:"shape"`
}

// Parse decodes and validates a scene description. Unknown keys are
// rejected so typos surface instead of silently using defaults.
func Parse(data []byte) (*Description, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Description
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	d.applyDefaults()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadFile reads and parses a scene description from disk.
func LoadFile(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d *Description) applyDefaults() {
	if d.Camera.Position == ([3]float32{}) {
		d.Camera.Position = [3]float32{0, 0, 8}
	}
	if d.Camera.FOV == 0 {
		d.Camera.FOV = 50
	}
	if d.Background == "" {
		d.Background = "#000000"
	}
}

// Validate checks every preset, colour and shape override.
func (d *Description) Validate() error {
	var errs []error
	if !(d.Camera.FOV > 0 && d.Camera.FOV < 180) {
		errs = append(errs, fmt.Errorf("camera: fov %v must be in (0, 180)", d.Camera.FOV))
	}
	if c := d.Camera.Controls; c.MaxDistance != 0 && c.MaxDistance < c.MinDistance {
		errs = append(errs, fmt.Errorf("camera: max_distance %v < min_distance %v", c.MaxDistance, c.MinDistance))
	}
	if _, err := palette.Parse(d.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	for i, l := range d.Lights.Directional {
		if err := l.validate(); err != nil {
			errs = append(errs, fmt.Errorf("directional light %d: %w", i, err))
		}
	}
	for i, l := range d.Lights.Point {
		if err := l.validate(); err != nil {
			errs = append(errs, fmt.Errorf("point light %d: %w", i, err))
		}
	}
	for i := range d.Ornaments {
		if _, _, err := d.Ornaments[i].Resolve(); err != nil {
			errs = append(errs, fmt.Errorf("ornament %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (l Light) validate() error {
	if l.Intensity < 0 {
		return fmt.Errorf("intensity %v is negative", l.Intensity)
	}
	if l.Color != "" {
		if _, err := palette.Parse(l.Color); err != nil {
			return err
		}
	}
	return nil
}

// Resolve looks up the preset and turns the instance properties into
// build options. Shape overrides are validated here, before any buffer
// is allocated.
func (in *Instance) Resolve() (ornament.Preset, ornament.Options, error) {
	p, err := ornament.Lookup(in.Preset)
	if err != nil {
		return ornament.Preset{}, ornament.Options{}, err
	}
	var opts ornament.Options
	if in.Color != "" {
		c, err := palette.Parse(in.Color)
		if err != nil {
			return p, opts, err
		}
		opts.Color = &c
	}
	if in.Scale < 0 {
		return p, opts, fmt.Errorf("%w: scale must be >= 0, got %v", geometry.ErrInvalidParameter, in.Scale)
	}
	opts.Scale = in.Scale
	opts.Inclination = in.Inclination
	if !in.Shape.IsZero() {
		shape := p.Shape
		if err := decodeShape(&in.Shape, &shape); err != nil {
			return p, opts, fmt.Errorf("shape: %w", err)
		}
		if err := geometry.Validate(p.Kind, shape); err != nil {
			return p, opts, err
		}
		opts.Shape = &shape
	}
	return p, opts, nil
}

// decodeShape merges node over dst. yaml.Node.Decode ignores unknown
// keys, so the node is re-encoded and read back with a strict decoder.
func decodeShape(node *yaml.Node, dst *geometry.Params) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Visible returns the instances to mount on a viewport of the given width.
func (d *Description) Visible(width, breakpoint int) []Instance {
	out := make([]Instance, 0, len(d.Ornaments))
	for _, in := range d.Ornaments {
		if in.DesktopOnly && width < breakpoint {
			continue
		}
		out = append(out, in)
	}
	return out
}

// Vec converts a YAML triple to a vector.
func Vec(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}
