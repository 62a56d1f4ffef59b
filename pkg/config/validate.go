package config

import (
	"fmt"
	"math"
)

// ValidationError names the tunable that failed validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks every tunable and returns the first *ValidationError found
func (c *FlightConfig) Validate() error {
	if err := c.validateFinite(); err != nil {
		return err
	}

	p := c.Physics
	switch {
	case p.Acceleration <= 0:
		return invalid("Physics.Acceleration", "must be positive, got %v", p.Acceleration)
	case p.ClimbAcceleration <= 0:
		return invalid("Physics.ClimbAcceleration", "must be positive, got %v", p.ClimbAcceleration)
	case p.GroundFriction <= 0 || p.GroundFriction > 1:
		return invalid("Physics.GroundFriction", "must be in (0, 1], got %v", p.GroundFriction)
	case p.Gravity < 0:
		return invalid("Physics.Gravity", "must not be negative, got %v", p.Gravity)
	case p.TurnRate < 0:
		return invalid("Physics.TurnRate", "must not be negative, got %v", p.TurnRate)
	case p.BankIncrement < 0:
		return invalid("Physics.BankIncrement", "must not be negative, got %v", p.BankIncrement)
	case p.BankDecay < 0 || p.BankDecay >= 1:
		return invalid("Physics.BankDecay", "must be in [0, 1), got %v", p.BankDecay)
	case p.MaxBank <= 0 || p.MaxBank > 90:
		return invalid("Physics.MaxBank", "must be in (0, 90], got %v", p.MaxBank)
	case p.AirResistanceBase <= 0 || p.AirResistanceBase > 1:
		return invalid("Physics.AirResistanceBase", "must be in (0, 1], got %v", p.AirResistanceBase)
	case p.TickRate <= 0:
		return invalid("Physics.TickRate", "must be positive, got %d", p.TickRate)
	}

	l := c.Landing
	switch {
	case l.TakeoffSpeed <= 0:
		return invalid("Landing.TakeoffSpeed", "must be positive, got %v", l.TakeoffSpeed)
	case l.SafeDescentSpeed <= 0:
		return invalid("Landing.SafeDescentSpeed", "must be positive, got %v", l.SafeDescentSpeed)
	case l.SafeLandingBank < 0:
		return invalid("Landing.SafeLandingBank", "must not be negative, got %v", l.SafeLandingBank)
	}

	w := c.World
	if w.GroundLevel <= 0 {
		return invalid("World.GroundLevel", "must be positive, got %v", w.GroundLevel)
	}
	box := w.Box()
	if err := box.Validate(); err != nil {
		return invalid("World", "%v", err)
	}
	if !box.Contains(w.StartPosition()) {
		return invalid("World.Start", "(%v, %v) lies outside the world box", w.Start.X, w.Start.Y)
	}

	switch c.Input.Policy {
	case PolicyHeld, PolicyEdge:
	default:
		return invalid("Input.Policy", "unknown policy %q", c.Input.Policy)
	}

	d := c.Display
	switch d.Renderer {
	case RendererEngo, RendererTerminal:
	default:
		return invalid("Display.Renderer", "unknown renderer %q", d.Renderer)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return invalid("Display", "size must be positive, got %dx%d", d.Width, d.Height)
	}

	return nil
}

// validateFinite rejects NaN and infinities, which slip through every
// ordered comparison below.
func (c *FlightConfig) validateFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"Physics.Acceleration", c.Physics.Acceleration},
		{"Physics.ClimbAcceleration", c.Physics.ClimbAcceleration},
		{"Physics.GroundFriction", c.Physics.GroundFriction},
		{"Physics.Gravity", c.Physics.Gravity},
		{"Physics.TurnRate", c.Physics.TurnRate},
		{"Physics.BankIncrement", c.Physics.BankIncrement},
		{"Physics.BankDecay", c.Physics.BankDecay},
		{"Physics.MaxBank", c.Physics.MaxBank},
		{"Physics.TurnForce", c.Physics.TurnForce},
		{"Physics.AirResistanceBase", c.Physics.AirResistanceBase},
		{"Landing.TakeoffSpeed", c.Landing.TakeoffSpeed},
		{"Landing.SafeDescentSpeed", c.Landing.SafeDescentSpeed},
		{"Landing.SafeLandingBank", c.Landing.SafeLandingBank},
		{"World.GroundLevel", c.World.GroundLevel},
		{"World.MinX", c.World.MinX},
		{"World.MaxX", c.World.MaxX},
		{"World.MinY", c.World.MinY},
		{"World.MaxY", c.World.MaxY},
		{"World.Start.X", c.World.Start.X},
		{"World.Start.Y", c.World.Start.Y},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid(f.name, "must be finite, got %v", f.value)
		}
	}
	return nil
}
