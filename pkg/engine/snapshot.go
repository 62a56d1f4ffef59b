package engine

import (
	"github.com/opd-ai/go-flight/pkg/flight"
	"github.com/opd-ai/go-flight/pkg/input"
)

// Snapshot is the read-only view of a session handed to renderers
type Snapshot struct {
	Tick           uint64
	Status         SessionStatus
	State          flight.PlaneState
	Intents        input.IntentSet
	LastTransition flight.Transition
	Stats          Stats

	// Derived values for the HUD
	Speed        float64 // horizontal speed
	Altitude     float64
	GroundLevel  float64
	TakeoffSpeed float64
	TakeoffReady bool
}

// Snapshot returns a consistent copy of the session state
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ground := s.Model.GroundLevel()
	speed := s.state.GroundSpeed()
	takeoff := s.Config.Landing.TakeoffSpeed

	return Snapshot{
		Tick:           s.tick,
		Status:         s.status,
		State:          s.state,
		Intents:        s.held,
		LastTransition: s.last,
		Stats:          s.stats,
		Speed:          speed,
		Altitude:       s.state.Altitude(ground),
		GroundLevel:    ground,
		TakeoffSpeed:   takeoff,
		TakeoffReady:   speed >= takeoff,
	}
}
