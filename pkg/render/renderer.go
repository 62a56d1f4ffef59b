// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-flight/pkg/engine"
	"github.com/opd-ai/go-flight/pkg/logging"
)

// Renderer draws one frame of a session
type Renderer interface {
	Render(snap engine.Snapshot) error
	Close() error
}

// NullRenderer is a Renderer that only logs what it would draw.
type NullRenderer struct {
	logger *logging.Logger
	ctx    context.Context
	frames uint64
}

// NewNullRenderer creates a new NullRenderer with structured logging.
// A nil logger falls back to logging.NewLogger.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &NullRenderer{
		logger: logger,
		ctx:    context.Background(),
	}
}

// WithContext sets the context whose session ID tags the frame logs
func (d *NullRenderer) WithContext(ctx context.Context) *NullRenderer {
	d.ctx = ctx
	return d
}

// Render implements Renderer.
func (d *NullRenderer) Render(snap engine.Snapshot) error {
	d.frames++
	d.logger.Debug(d.ctx, "Render called",
		"tick", snap.Tick,
		"x", snap.State.Position.X,
		"altitude", snap.Altitude,
		"speed", snap.Speed,
		"bank_angle", snap.State.BankAngle,
		"airborne", snap.State.Airborne,
	)
	return nil
}

// Frames returns how many frames were rendered
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Close implements Renderer.
func (d *NullRenderer) Close() error {
	d.logger.Debug(d.ctx, "Close called", "frames", d.frames)
	return nil
}
