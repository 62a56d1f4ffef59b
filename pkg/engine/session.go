// pkg/engine/session.go
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/opd-ai/go-flight/pkg/config"
	"github.com/opd-ai/go-flight/pkg/event"
	"github.com/opd-ai/go-flight/pkg/flight"
	"github.com/opd-ai/go-flight/pkg/input"
	"github.com/opd-ai/go-flight/pkg/logging"
)

// SessionStatus is the lifecycle stage of a session
type SessionStatus int

const (
	SessionWaiting SessionStatus = iota
	SessionActive
	SessionEnded
)

func (s SessionStatus) String() string {
	switch s {
	case SessionWaiting:
		return "waiting"
	case SessionActive:
		return "active"
	case SessionEnded:
		return "ended"
	default:
		return fmt.Sprintf("SessionStatus(%d)", int(s))
	}
}

// Stats counts the outcomes of a session
type Stats struct {
	Takeoffs    int
	Landings    int
	Crashes     int
	MaxAltitude float64
}

// Session owns the one plane of a game and advances it once per frame.
// Frame and Update must be called from a single goroutine; Snapshot may be
// called from any goroutine.
type Session struct {
	Config   *config.FlightConfig
	Model    *flight.Model
	Sampler  *input.Sampler
	EventBus *event.Bus

	logger *logging.Logger
	ctx    context.Context

	mu     sync.RWMutex
	state  flight.PlaneState
	tick   uint64
	status SessionStatus
	last   flight.Transition
	held   input.IntentSet
	stats  Stats
}

// NewSession validates cfg and creates a session with the plane on the
// runway. A nil logger falls back to logging.NewLogger.
func NewSession(cfg *config.FlightConfig, logger *logging.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "invalid flight config")
	}
	policy, err := input.ParsePolicy(cfg.Input.Policy)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewLogger()
	}

	model := flight.NewModel(cfg)
	return &Session{
		Config:   cfg,
		Model:    model,
		Sampler:  input.NewSampler(policy),
		EventBus: event.NewEventBus(),
		logger:   logger,
		ctx:      context.Background(),
		state:    model.Initial(),
	}, nil
}

// Start marks the session active. ctx supplies the session ID used in logs;
// one is generated when ctx has none.
func (s *Session) Start(ctx context.Context) {
	if logging.GetSessionID(ctx) == "" {
		ctx = logging.WithSessionID(ctx, "")
	}

	s.mu.Lock()
	s.ctx = ctx
	s.status = SessionActive
	state := s.state
	s.mu.Unlock()

	s.logger.Info(ctx, "session started",
		"profile", s.Config.Profile,
		"policy", s.Sampler.Policy.String(),
		"tick_rate", s.Config.Physics.TickRate,
	)
	s.EventBus.Publish(event.NewFlightEvent(event.SessionStarted, s, 0, state))
}

// Stop ends the session. Further frames are ignored.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.status == SessionEnded {
		s.mu.Unlock()
		return
	}
	s.status = SessionEnded
	tick, state, stats, ctx := s.tick, s.state, s.stats, s.ctx
	s.mu.Unlock()

	s.logger.Info(ctx, "session ended",
		"ticks", tick,
		"takeoffs", stats.Takeoffs,
		"landings", stats.Landings,
		"crashes", stats.Crashes,
	)
	s.EventBus.Publish(event.NewFlightEvent(event.SessionEnded, s, tick, state))
}

// Running reports whether the session accepts frames
func (s *Session) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status == SessionActive
}

// Frame runs one frame: sample the keys, then step the plane. An exit
// intent stops the session instead. It reports whether the session is
// still running.
func (s *Session) Frame(src input.KeySource) (Snapshot, bool) {
	intents := s.Sampler.Sample(src)
	if intents.Has(input.Exit) {
		s.Stop()
		return s.Snapshot(), false
	}
	if !s.Running() {
		return s.Snapshot(), false
	}
	return s.Update(intents), true
}

// Update advances the plane by one tick under the given intents. It is a
// no-op unless the session is active.
func (s *Session) Update(intents input.IntentSet) Snapshot {
	intents = intents.Without(input.Exit)

	s.mu.Lock()
	if s.status != SessionActive {
		s.mu.Unlock()
		return s.Snapshot()
	}
	prev := s.state
	next, transition := s.Model.Step(prev, intents)
	s.state = next
	s.tick++
	s.last = transition
	s.held = intents
	s.record(transition, next)
	tick, ctx := s.tick, s.ctx
	s.mu.Unlock()

	if transition != flight.None {
		s.report(ctx, tick, transition, prev, next)
	}
	return s.Snapshot()
}

// Reset puts the plane back on the runway without counting a crash
func (s *Session) Reset() {
	s.mu.Lock()
	s.state = s.Model.Initial()
	s.last = flight.None
	s.held = 0
	ctx := s.ctx
	s.mu.Unlock()
	s.logger.Debug(ctx, "plane reset")
}

// State returns the current plane state
func (s *Session) State() flight.PlaneState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Tick returns the number of frames stepped so far
func (s *Session) Tick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

// Stats returns the outcome counters
func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// record must be called with mu held
func (s *Session) record(transition flight.Transition, state flight.PlaneState) {
	switch transition {
	case flight.Takeoff:
		s.stats.Takeoffs++
	case flight.Landing:
		s.stats.Landings++
	case flight.Crash:
		s.stats.Crashes++
	}
	if alt := state.Altitude(s.Model.GroundLevel()); alt > s.stats.MaxAltitude {
		s.stats.MaxAltitude = alt
	}
}

func (s *Session) report(ctx context.Context, tick uint64, transition flight.Transition, prev, next flight.PlaneState) {
	switch transition {
	case flight.Crash:
		// next is the reset state; the interesting numbers are from before.
		s.logger.Warn(ctx, "crash",
			"tick", tick,
			"descent_rate", prev.Velocity.Z,
			"bank_angle", prev.BankAngle,
			"ground_speed", prev.GroundSpeed(),
		)
	default:
		s.logger.Info(ctx, transition.String(),
			"tick", tick,
			"ground_speed", next.GroundSpeed(),
			"x", next.Position.X,
		)
	}

	if t, ok := event.TypeForTransition(transition); ok {
		s.EventBus.Publish(event.NewFlightEvent(t, s, tick, next))
	}
}
