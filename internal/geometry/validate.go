package geometry

import "fmt"

// Validate checks shape parameters before any buffer is allocated.
func Validate(kind Kind, p Params) error {
	switch kind {
	case KindTorus:
		if err := positive("torus radius", p.Radius); err != nil {
			return err
		}
		if err := positive("torus tube", p.Tube); err != nil {
			return err
		}
		if err := atLeast("torus radial segments", p.RadialSegments, 2); err != nil {
			return err
		}
		return atLeast("torus tubular segments", p.TubularSegments, 3)

	case KindSphere:
		if err := positive("sphere radius", p.Radius); err != nil {
			return err
		}
		if err := atLeast("sphere width segments", p.WidthSegments, 3); err != nil {
			return err
		}
		return atLeast("sphere height segments", p.HeightSegments, 2)

	case KindIcosahedron, KindOctahedron:
		if err := positive(string(kind)+" radius", p.Radius); err != nil {
			return err
		}
		return atLeast(string(kind)+" detail", p.Detail, 0)

	case KindCylinder:
		if err := nonNegative("cylinder top radius", p.RadiusTop); err != nil {
			return err
		}
		if err := nonNegative("cylinder bottom radius", p.RadiusBottom); err != nil {
			return err
		}
		if p.RadiusTop == 0 && p.RadiusBottom == 0 {
			return fmt.Errorf("%w: cylinder needs a positive top or bottom radius", ErrInvalidParameter)
		}
		if err := positive("cylinder height", p.Height); err != nil {
			return err
		}
		if err := atLeast("cylinder radial segments", p.RadialSegments, 3); err != nil {
			return err
		}
		return atLeast("cylinder height segments", p.HeightSegments, 1)

	case KindExtrude:
		if p.Outline == nil || p.Outline.Empty() {
			return fmt.Errorf("%w: extrude needs an outline", ErrInvalidParameter)
		}
		e := p.Extrude
		if err := nonNegative("extrude depth", e.Depth); err != nil {
			return err
		}
		if err := atLeast("extrude steps", e.Steps, 1); err != nil {
			return err
		}
		if err := atLeast("extrude curve segments", e.CurveSegments, 1); err != nil {
			return err
		}
		if e.BevelEnabled {
			if err := atLeast("extrude bevel segments", e.BevelSegments, 1); err != nil {
				return err
			}
			if err := nonNegative("extrude bevel size", e.BevelSize); err != nil {
				return err
			}
			if err := nonNegative("extrude bevel thickness", e.BevelThickness); err != nil {
				return err
			}
		}
		return nil

	case KindHelix:
		if err := positive("helix radius", p.Radius); err != nil {
			return err
		}
		if err := positive("helix tube", p.Tube); err != nil {
			return err
		}
		if err := positive("helix height", p.Height); err != nil {
			return err
		}
		if err := positive("helix turns", p.Turns); err != nil {
			return err
		}
		if err := atLeast("helix radial segments", p.RadialSegments, 3); err != nil {
			return err
		}
		return atLeast("helix tubular segments", p.TubularSegments, 1)
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func positive(name string, v float32) error {
	if !(v > 0) {
		return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidParameter, name, v)
	}
	return nil
}

func nonNegative(name string, v float32) error {
	if !(v >= 0) {
		return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidParameter, name, v)
	}
	return nil
}

func atLeast(name string, v, min int) error {
	if v < min {
		return fmt.Errorf("%w: %s must be >= %d, got %d", ErrInvalidParameter, name, min, v)
	}
	return nil
}
