// Package flight implements the flight state machine: a pure, fixed-tick
// function from (plane state, intents) to the next plane state.
package flight

import (
	"fmt"

	"github.com/opd-ai/go-flight/pkg/physics"
)

// PlaneState is the full kinematic state of the plane.
// Z grows downwards; the plane sits on the ground at Z == GroundLevel.
type PlaneState struct {
	Position  physics.Vector3D `json:"position"`
	Velocity  physics.Vector3D `json:"velocity"`
	Heading   float64          `json:"heading"`   // degrees
	BankAngle float64          `json:"bankAngle"` // degrees
	Airborne  bool             `json:"airborne"`
}

// Speed returns the magnitude of the full velocity vector
func (s PlaneState) Speed() float64 {
	return s.Velocity.Length()
}

// GroundSpeed returns the horizontal speed shown on the HUD
func (s PlaneState) GroundSpeed() float64 {
	return s.Velocity.HorizontalLength()
}

// Altitude returns the height above a ground at groundLevel
func (s PlaneState) Altitude(groundLevel float64) float64 {
	return groundLevel - s.Position.Z
}

func (s PlaneState) String() string {
	status := "grounded"
	if s.Airborne {
		status = "airborne"
	}
	return fmt.Sprintf("%s pos=(%.1f, %.1f, %.1f) vel=(%.2f, %.2f, %.2f) heading=%.1f bank=%.1f",
		status, s.Position.X, s.Position.Y, s.Position.Z,
		s.Velocity.X, s.Velocity.Y, s.Velocity.Z, s.Heading, s.BankAngle)
}

// Transition is the state change, if any, produced by one Step
type Transition int

const (
	None Transition = iota
	Takeoff
	Landing
	Crash
)

func (t Transition) String() string {
	switch t {
	case None:
		return "none"
	case Takeoff:
		return "takeoff"
	case Landing:
		return "landing"
	case Crash:
		return "crash"
	default:
		return fmt.Sprintf("Transition(%d)", int(t))
	}
}
