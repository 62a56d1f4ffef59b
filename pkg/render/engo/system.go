// pkg/render/engo/system.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-flight/pkg/engine"
	"github.com/opd-ai/go-flight/pkg/input"
	"github.com/opd-ai/go-flight/pkg/logging"
	"github.com/opd-ai/go-flight/pkg/render"
)

// FlightSystem runs one session frame per engo update: sample the keys,
// step the plane, then draw. Doing all three in one system keeps the order
// fixed whatever order engo runs systems in.
type FlightSystem struct {
	session  *engine.Session
	source   input.KeySource
	renderer render.Renderer
	logger   *logging.Logger
	exit     func()
}

// NewFlightSystem creates the frame system
func NewFlightSystem(session *engine.Session, source input.KeySource, renderer render.Renderer, logger *logging.Logger) *FlightSystem {
	return &FlightSystem{
		session:  session,
		source:   source,
		renderer: renderer,
		logger:   logger,
		exit:     engo.Exit,
	}
}

// Remove satisfies the ecs.System interface
func (fs *FlightSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the session by one frame. engo calls it once per
// rendered frame; dt is ignored since the physics is per frame.
func (fs *FlightSystem) Update(dt float32) {
	if !fs.session.Running() {
		return
	}

	snap, running := fs.session.Frame(fs.source)
	if err := fs.renderer.Render(snap); err != nil {
		fs.logger.Error(context.Background(), "failed to render frame", err, "tick", snap.Tick)
	}
	if !running {
		fs.exit()
	}
}
