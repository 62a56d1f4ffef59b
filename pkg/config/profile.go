package config

import "fmt"

// Named tunable sets
const (
	ProfileExtended = "extended"
	ProfileClassic  = "classic"
)

// Profile returns a fresh configuration for the named profile.
// An empty name selects the extended profile.
func Profile(name string) (*FlightConfig, error) {
	switch name {
	case "", ProfileExtended:
		return DefaultConfig(), nil
	case ProfileClassic:
		return classicConfig(), nil
	default:
		return nil, fmt.Errorf("unknown profile %q", name)
	}
}

// classicConfig is the simple runway game: no banking or heading, and every
// key press applies one fixed velocity change.
func classicConfig() *FlightConfig {
	c := DefaultConfig()
	c.Profile = ProfileClassic
	c.Physics.Banking = false
	c.Physics.Acceleration = 1.0
	c.Physics.ClimbAcceleration = 1.0
	c.Physics.GroundFriction = 0.995
	c.Physics.Gravity = 0.05
	c.Input.Policy = PolicyEdge
	return c
}
