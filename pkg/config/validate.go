package config

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

// Validation failures. Wrapped errors carry the offending field.
var (
	ErrInvalidMap      = errors.New("invalid map configuration")
	ErrInvalidPhysics  = errors.New("invalid physics configuration")
	ErrInvalidDisplay  = errors.New("invalid display configuration")
	ErrInvalidObstacle = errors.New("invalid obstacle configuration")
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks the configuration for values the simulation cannot run with
func (c *WorldConfig) Validate() error {
	var errs []error

	errs = append(errs, c.validateMap()...)
	errs = append(errs, c.validatePhysics()...)
	errs = append(errs, c.validateDisplay()...)
	errs = append(errs, c.validateObstacles()...)

	return errors.Join(errs...)
}

func (c *WorldConfig) validateMap() []error {
	var errs []error
	for _, field := range []namedValue{
		{"width", c.Map.Width},
		{"height", c.Map.Height},
		{"edgeMargin", c.Map.EdgeMargin},
		{"craft radius", c.Craft.Radius},
	} {
		if !finite(field.value) {
			errs = append(errs, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidMap, field.name, field.value))
		}
	}
	if len(errs) > 0 {
		return errs
	}

	if c.Map.EdgeMargin < 0 {
		errs = append(errs, fmt.Errorf("%w: edge margin %v is negative", ErrInvalidMap, c.Map.EdgeMargin))
	}
	if c.Map.Width <= 2*c.Map.EdgeMargin {
		errs = append(errs, fmt.Errorf("%w: width %v leaves no room inside margin %v", ErrInvalidMap, c.Map.Width, c.Map.EdgeMargin))
	}
	if c.Map.Height <= 2*c.Map.EdgeMargin {
		errs = append(errs, fmt.Errorf("%w: height %v leaves no room inside margin %v", ErrInvalidMap, c.Map.Height, c.Map.EdgeMargin))
	}
	if c.Craft.Radius <= 0 {
		errs = append(errs, fmt.Errorf("%w: craft radius must be positive, got %v", ErrInvalidMap, c.Craft.Radius))
	}
	if c.Craft.Start != nil && (!finite(c.Craft.Start.X) || !finite(c.Craft.Start.Y)) {
		errs = append(errs, fmt.Errorf("%w: craft start %+v must be finite", ErrInvalidMap, *c.Craft.Start))
	}
	return errs
}

type namedValue struct {
	name  string
	value float64
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c *WorldConfig) validatePhysics() []error {
	p := c.Physics

	var errs []error
	for _, field := range []namedValue{
		{"thrustImpulse", p.ThrustImpulse},
		{"maxVelocity", p.MaxVelocity},
		{"velocityDamping", p.VelocityDamping},
		{"rotationImpulse", p.RotationImpulse},
		{"maxRotationVelocity", p.MaxRotationVelocity},
		{"rotationDamping", p.RotationDamping},
		{"bounceDivisor", p.BounceDivisor},
		{"edgeSpinDivisor", p.EdgeSpinDivisor},
		{"bottomEdgeSpinDivisor", p.BottomEdgeSpinDivisor},
		{"gravityEpsilon", p.GravityEpsilon},
	} {
		if !finite(field.value) {
			errs = append(errs, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidPhysics, field.name, field.value))
		}
	}
	if len(errs) > 0 {
		return errs
	}

	for _, field := range []namedValue{
		{"maxVelocity", p.MaxVelocity},
		{"maxRotationVelocity", p.MaxRotationVelocity},
		{"bounceDivisor", p.BounceDivisor},
		{"edgeSpinDivisor", p.EdgeSpinDivisor},
		{"bottomEdgeSpinDivisor", p.BottomEdgeSpinDivisor},
		{"gravityEpsilon", p.GravityEpsilon},
	} {
		if field.value <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidPhysics, field.name, field.value))
		}
	}
	// Damping divides the velocity every tick; below 1 it would amplify it.
	for _, field := range []namedValue{
		{"velocityDamping", p.VelocityDamping},
		{"rotationDamping", p.RotationDamping},
	} {
		if field.value < 1 {
			errs = append(errs, fmt.Errorf("%w: %s must be at least 1, got %v", ErrInvalidPhysics, field.name, field.value))
		}
	}
	if p.ThrustImpulse < 0 || p.RotationImpulse < 0 {
		errs = append(errs, fmt.Errorf("%w: impulses must not be negative", ErrInvalidPhysics))
	}
	return errs
}

func (c *WorldConfig) validateDisplay() []error {
	var errs []error
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: size %dx%d", ErrInvalidDisplay, c.Display.Width, c.Display.Height))
	}
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidDisplay, c.Display.FPS))
	}
	return errs
}

func (c *WorldConfig) validateObstacles() []error {
	var errs []error
	for i, w := range c.Wells {
		if !finite(w.X) || !finite(w.Y) || !finite(w.Radius) || !finite(w.Mass) {
			errs = append(errs, fmt.Errorf("%w: well %d (%s) has a non-finite value", ErrInvalidObstacle, i, w.Name))
			continue
		}
		if w.Radius < 0 {
			errs = append(errs, fmt.Errorf("%w: well %d (%s) has negative radius", ErrInvalidObstacle, i, w.Name))
		}
		if w.Mass < 0 {
			errs = append(errs, fmt.Errorf("%w: well %d (%s) has negative mass", ErrInvalidObstacle, i, w.Name))
		}
		if w.Color != "" && !hexColor.MatchString(w.Color) {
			errs = append(errs, fmt.Errorf("%w: well %d (%s) color %q is not #RRGGBB", ErrInvalidObstacle, i, w.Name, w.Color))
		}
	}
	for i, b := range c.Barriers {
		if !finite(b.StartX) || !finite(b.StartY) || !finite(b.EndX) || !finite(b.EndY) {
			errs = append(errs, fmt.Errorf("%w: barrier %d (%s) has a non-finite endpoint", ErrInvalidObstacle, i, b.Name))
			continue
		}
		if b.StartX == b.EndX && b.StartY == b.EndY {
			errs = append(errs, fmt.Errorf("%w: barrier %d (%s) has zero length", ErrInvalidObstacle, i, b.Name))
		}
		if b.Color != "" && !hexColor.MatchString(b.Color) {
			errs = append(errs, fmt.Errorf("%w: barrier %d (%s) color %q is not #RRGGBB", ErrInvalidObstacle, i, b.Name, b.Color))
		}
	}
	return errs
}
