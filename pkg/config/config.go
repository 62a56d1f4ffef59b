// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-flight/pkg/physics"
)

// Input policies understood by the input sampler
const (
	PolicyHeld = "held"
	PolicyEdge = "edge"
)

// Front ends understood by cmd/flight
const (
	RendererEngo     = "engo"
	RendererTerminal = "terminal"
)

// FlightConfig contains every tunable of a flight session
type FlightConfig struct {
	Profile string        `json:"profile"`
	Physics PhysicsConfig `json:"physics"`
	Landing LandingConfig `json:"landing"`
	World   WorldConfig   `json:"world"`
	Input   InputConfig   `json:"input"`
	Display DisplayConfig `json:"display"`
}

// PhysicsConfig contains the per-frame integration constants.
// All values are per tick; TickRate documents the tick the constants
// were tuned for and only paces the front ends.
type PhysicsConfig struct {
	Acceleration      float64 `json:"acceleration"`
	ClimbAcceleration float64 `json:"climbAcceleration"`
	GroundFriction    float64 `json:"groundFriction"`
	Gravity           float64 `json:"gravity"`
	TurnRate          float64 `json:"turnRate"`
	BankIncrement     float64 `json:"bankIncrement"`
	BankDecay         float64 `json:"bankDecay"`
	MaxBank           float64 `json:"maxBank"`
	TurnForce         float64 `json:"turnForce"`
	AirResistanceBase float64 `json:"airResistanceBase"`
	Banking           bool    `json:"banking"`
	TickRate          int     `json:"tickRate"`
}

// LandingConfig contains the takeoff and touchdown thresholds
type LandingConfig struct {
	TakeoffSpeed     float64 `json:"takeoffSpeed"`
	SafeDescentSpeed float64 `json:"safeDescentSpeed"`
	SafeLandingBank  float64 `json:"safeLandingBank"`
}

// WorldConfig describes the world box and the runway start.
// Z grows downwards; the ground is Z == GroundLevel.
type WorldConfig struct {
	GroundLevel float64          `json:"groundLevel"`
	MinX        float64          `json:"minX"`
	MaxX        float64          `json:"maxX"`
	MinY        float64          `json:"minY"`
	MaxY        float64          `json:"maxY"`
	Start       physics.Vector3D `json:"start"`
}

// InputConfig selects how keys become intents
type InputConfig struct {
	Policy string `json:"policy"`
}

// DisplayConfig contains presentation settings
type DisplayConfig struct {
	Renderer   string `json:"renderer"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
}

// Box returns the world bounding box; the vertical range is [0, GroundLevel]
func (w WorldConfig) Box() physics.Bounds {
	return physics.NewBounds(
		physics.Vector3D{X: w.MinX, Y: w.MinY, Z: 0},
		physics.Vector3D{X: w.MaxX, Y: w.MaxY, Z: w.GroundLevel},
	)
}

// StartPosition returns the runway start with the plane sitting on the ground
func (w WorldConfig) StartPosition() physics.Vector3D {
	return physics.Vector3D{X: w.Start.X, Y: w.Start.Y, Z: w.GroundLevel}
}

// LoadConfig loads a configuration from a file. Fields missing from the
// file keep the values of the profile named in it (default "extended").
func LoadConfig(path string) (*FlightConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var probe struct {
		Profile string `json:"profile"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config, err := Profile(probe.Profile)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *FlightConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the extended profile: banking and heading enabled,
// held-key input, the classic runway constants.
func DefaultConfig() *FlightConfig {
	return &FlightConfig{
		Profile: ProfileExtended,
		Physics: PhysicsConfig{
			Acceleration:      0.3,
			ClimbAcceleration: 0.24,
			GroundFriction:    0.99,
			Gravity:           0.2,
			TurnRate:          2.0,
			BankIncrement:     2.0,
			BankDecay:         0.95,
			MaxBank:           45,
			TurnForce:         0.2,
			AirResistanceBase: 0.995,
			Banking:           true,
			TickRate:          60,
		},
		Landing: LandingConfig{
			TakeoffSpeed:     4.0,
			SafeDescentSpeed: 2.0,
			SafeLandingBank:  10,
		},
		World: WorldConfig{
			GroundLevel: 500,
			MinX:        -400,
			MaxX:        400,
			MinY:        -400,
			MaxY:        400,
			Start:       physics.Vector3D{X: 50, Y: 0},
		},
		Input: InputConfig{
			Policy: PolicyHeld,
		},
		Display: DisplayConfig{
			Renderer: RendererEngo,
			Width:    800,
			Height:   600,
		},
	}
}
