// cmd/headless/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/goforj/godump"

	"github.com/opd-ai/go-flight/pkg/config"
	"github.com/opd-ai/go-flight/pkg/engine"
	"github.com/opd-ai/go-flight/pkg/logging"
	"github.com/opd-ai/go-flight/pkg/recording"
	"github.com/opd-ai/go-flight/pkg/render"
)

type options struct {
	configPath string
	profile    string
	scriptPath string
	frames     int
	dump       bool
	recordPath string
	replayPath string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "flight.json", "Path to configuration file")
	flag.StringVar(&opts.profile, "profile", config.ProfileExtended, "Tunable profile: 'extended' or 'classic'")
	flag.StringVar(&opts.scriptPath, "script", "", "Path to a JSON flight script (default: idle on the runway)")
	flag.IntVar(&opts.frames, "frames", 0, "Stop after this many frames (0 runs the whole script)")
	flag.BoolVar(&opts.dump, "dump", false, "Dump the configuration and final snapshot to stdout")
	flag.StringVar(&opts.recordPath, "record", "", "Write a flight recording to this file")
	flag.StringVar(&opts.replayPath, "replay", "", "Replay and verify a flight recording instead of flying a script")
	flag.Parse()

	ctx := logging.WithSessionID(context.Background(), "")
	logger := logging.NewLogger()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	if opts.replayPath != "" {
		err = replay(ctx, logger, opts)
	} else {
		err = fly(ctx, logger, opts)
	}
	if err != nil {
		logger.Error(ctx, "Headless flight failed", err,
			"script", opts.scriptPath,
			"replay", opts.replayPath,
		)
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}

func fly(ctx context.Context, logger *logging.Logger, opts options) error {
	cfg, _, err := config.Resolve(opts.configPath, opts.profile)
	if err != nil {
		return err
	}

	script, err := loadScript(opts.scriptPath, opts.frames)
	if err != nil {
		return err
	}

	session, err := engine.NewSession(cfg, logger)
	if err != nil {
		return err
	}

	renderer := render.NewNullRenderer(logger).WithContext(ctx)
	defer renderer.Close()

	var rec *recording.Recorder
	if opts.recordPath != "" {
		f, err := os.Create(opts.recordPath)
		if err != nil {
			return logging.WrapError(err, "failed to create recording")
		}
		defer f.Close()

		if rec, err = recording.NewRecorder(f, cfg); err != nil {
			return err
		}
	}

	session.Start(ctx)
	err = script.Run(ctx, session, func(snap engine.Snapshot) error {
		if opts.frames > 0 && snap.Tick >= uint64(opts.frames) {
			session.Stop()
		}
		if rec != nil {
			if err := rec.Record(snap); err != nil {
				return err
			}
		}
		return renderer.Render(snap)
	})
	session.Stop()

	if rec != nil {
		if cerr := rec.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return err
	}

	snap := session.Snapshot()
	logger.Info(ctx, "Headless flight finished",
		"ticks", snap.Tick,
		"airborne", snap.State.Airborne,
		"altitude", snap.Altitude,
		"speed", snap.Speed,
		"takeoffs", snap.Stats.Takeoffs,
		"landings", snap.Stats.Landings,
		"crashes", snap.Stats.Crashes,
		"recording", opts.recordPath,
	)

	if opts.dump {
		godump.Fdump(os.Stdout, cfg)
		godump.Fdump(os.Stdout, snap)
	}
	return nil
}

func replay(ctx context.Context, logger *logging.Logger, opts options) error {
	f, err := os.Open(opts.replayPath)
	if err != nil {
		return logging.WrapError(err, "failed to open recording")
	}
	defer f.Close()

	rd, err := recording.NewReader(f)
	if err != nil {
		return err
	}
	defer rd.Close()

	res, err := recording.Replay(ctx, rd, logger)
	if err != nil {
		return err
	}

	logger.Info(ctx, "Replay matches recording",
		"frames", res.Frames,
		"profile", rd.Header.Config.Profile,
		"recorded_at", rd.Header.Created,
	)
	if opts.dump {
		godump.Fdump(os.Stdout, rd.Header)
		godump.Fdump(os.Stdout, res.Final)
	}
	return nil
}

// loadScript reads the script at path. Without one the plane idles on the
// runway for the requested number of frames.
func loadScript(path string, frames int) (*engine.Script, error) {
	if path != "" {
		return engine.LoadScript(path)
	}
	if frames <= 0 {
		frames = 1
	}
	return engine.NewScript(engine.Segment{Frames: frames})
}
