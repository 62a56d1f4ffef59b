package flight

import (
	"math"

	"github.com/opd-ai/go-flight/pkg/config"
	"github.com/opd-ai/go-flight/pkg/input"
	"github.com/opd-ai/go-flight/pkg/physics"
)

// Model advances a PlaneState by one frame. It holds only tunables, so a
// single Model may step any number of states.
type Model struct {
	physics config.PhysicsConfig
	landing config.LandingConfig
	world   config.WorldConfig
	box     physics.Bounds
}

// NewModel creates a model from the given tunables. The config is copied.
func NewModel(cfg *config.FlightConfig) *Model {
	return &Model{
		physics: cfg.Physics,
		landing: cfg.Landing,
		world:   cfg.World,
		box:     cfg.World.Box(),
	}
}

// Initial returns the canonical start state: on the runway, at rest, level.
func (m *Model) Initial() PlaneState {
	return PlaneState{Position: m.world.StartPosition()}
}

// GroundLevel returns the Z coordinate of the ground
func (m *Model) GroundLevel() float64 {
	return m.world.GroundLevel
}

// TakeoffReady reports whether a climb intent would lift the plane off
func (m *Model) TakeoffReady(s PlaneState) bool {
	return s.Airborne || math.Abs(s.Velocity.X) >= m.landing.TakeoffSpeed
}

// Step advances s by one tick under the given intents
func (m *Model) Step(s PlaneState, intents input.IntentSet) (PlaneState, Transition) {
	transition := None

	canClimb := m.TakeoffReady(s)
	s = m.applyTurn(s, intents)
	if intents.Has(input.Climb) && canClimb {
		s.Velocity.Z -= m.physics.ClimbAcceleration
		if !s.Airborne {
			s.Airborne = true
			transition = Takeoff
		}
	}
	if intents.Has(input.Descend) && s.Airborne {
		s.Velocity.Z += m.physics.ClimbAcceleration
	}
	if !intents.Turning() {
		s.BankAngle *= m.physics.BankDecay
	}

	// Air resistance depends on the speed before this frame's move.
	speed := s.Speed()
	s.Position = s.Position.Add(s.Velocity)

	if s.Airborne {
		s = m.applyAir(s, speed)
	} else {
		s = m.applyGround(s)
	}

	if s.Airborne && s.Position.Z >= m.world.GroundLevel {
		if m.safeLanding(s) {
			// Touchdown lines the plane up with the runway.
			s.Position.Z = m.world.GroundLevel
			s.Velocity.Z = 0
			s.Heading = 0
			s.BankAngle = 0
			s.Airborne = false
			transition = Landing
		} else {
			return m.Initial(), Crash
		}
	}

	s.Position = m.box.Clamp(s.Position)
	return s, transition
}

// applyTurn handles the two horizontal intents. In the air they bank and
// turn the plane; on the ground left brakes and right accelerates.
func (m *Model) applyTurn(s PlaneState, intents input.IntentSet) PlaneState {
	p := m.physics
	banking := p.Banking && s.Airborne

	if intents.Has(input.TurnRight) {
		switch {
		case !s.Airborne:
			// The runway runs along X.
			s.Velocity.X += p.Acceleration
		default:
			if banking {
				s.BankAngle = math.Min(s.BankAngle+p.BankIncrement, p.MaxBank)
				s.Heading += p.TurnRate
			}
			rad := physics.DegToRad(s.Heading)
			thrust := p.Acceleration * math.Cos(rad)
			s.Velocity.X += thrust
			s.Velocity.Y += thrust * math.Sin(rad)
		}
	}

	if intents.Has(input.TurnLeft) {
		switch {
		case banking:
			s.BankAngle = math.Max(s.BankAngle-p.BankIncrement, -p.MaxBank)
			s.Heading -= p.TurnRate
		case !s.Airborne:
			// Braking never reverses the plane.
			if s.Velocity.X > 0 {
				s.Velocity.X = math.Max(0, s.Velocity.X-p.Acceleration)
			} else {
				s.Velocity.X = math.Min(0, s.Velocity.X+p.Acceleration)
			}
		default:
			s.Velocity.X -= p.Acceleration
		}
	}

	return s
}

func (m *Model) applyGround(s PlaneState) PlaneState {
	s.Velocity.X *= m.physics.GroundFriction
	s.Velocity.Y *= m.physics.GroundFriction
	s.Position.Z = m.world.GroundLevel
	s.Velocity.Z = 0
	s.BankAngle = 0
	return s
}

func (m *Model) applyAir(s PlaneState, speed float64) PlaneState {
	p := m.physics
	resistance := math.Pow(p.AirResistanceBase, speed)

	s.Velocity.X *= resistance
	s.Velocity.Y *= resistance
	s.Velocity.Z = s.Velocity.Z*resistance + p.Gravity

	if p.Banking {
		force := math.Sin(physics.DegToRad(s.BankAngle)) * p.TurnForce
		rad := physics.DegToRad(s.Heading)
		s.Velocity.X += force * math.Sin(rad)
		s.Velocity.Y -= force * math.Cos(rad)
	}
	return s
}

func (m *Model) safeLanding(s PlaneState) bool {
	if math.Abs(s.Velocity.Z) >= m.landing.SafeDescentSpeed {
		return false
	}
	return !m.physics.Banking || math.Abs(s.BankAngle) < m.landing.SafeLandingBank
}
