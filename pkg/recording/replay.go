package recording

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/opd-ai/go-flight/pkg/engine"
	"github.com/opd-ai/go-flight/pkg/flight"
	"github.com/opd-ai/go-flight/pkg/logging"
)

// DivergenceError reports the first frame whose replayed state differs
// from the recorded one
type DivergenceError struct {
	Tick uint64
	Want flight.PlaneState
	Got  flight.PlaneState
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("replay diverged at tick %d: recorded %v, replayed %v", e.Tick, e.Want, e.Got)
}

// Result summarises a replay
type Result struct {
	Frames int
	Final  engine.Snapshot
}

// Replay flies the recorded intents on a fresh session built from the
// recording's configuration and checks every frame against the recording.
func Replay(ctx context.Context, rd *Reader, logger *logging.Logger) (Result, error) {
	cfg := rd.Header.Config
	session, err := engine.NewSession(&cfg, logger)
	if err != nil {
		return Result{}, logging.WrapError(err, "invalid recorded config")
	}
	session.Start(ctx)
	defer session.Stop()

	var res Result
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		f, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, err
		}

		snap := session.Update(f.Intents)
		res.Frames++
		res.Final = snap

		if snap.Tick != f.Tick || snap.State != f.State || snap.LastTransition != f.Transition {
			return res, &DivergenceError{Tick: f.Tick, Want: f.State, Got: snap.State}
		}
	}
}
