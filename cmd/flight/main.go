// cmd/flight/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/EngoEngine/engo"
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-flight/pkg/config"
	"github.com/opd-ai/go-flight/pkg/engine"
	"github.com/opd-ai/go-flight/pkg/event"
	"github.com/opd-ai/go-flight/pkg/logging"
	"github.com/opd-ai/go-flight/pkg/render"
	engorender "github.com/opd-ai/go-flight/pkg/render/engo"
)

// terminalLogFile receives the logs while the terminal front end owns the
// screen and FLIGHT_LOG_FILE is unset
const terminalLogFile = "flight.log"

func main() {
	configPath := flag.String("config", "flight.json", "Path to configuration file")
	profile := flag.String("profile", config.ProfileExtended, "Tunable profile: 'extended' or 'classic'")
	renderer := flag.String("renderer", "", "Renderer type: 'engo' or 'terminal' (overrides config)")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 0, "Window width (Engo only, overrides config)")
	height := flag.Int("height", 0, "Window height (Engo only, overrides config)")
	createDefault := flag.Bool("default", false, "Create default configuration file and exit")
	flag.Parse()

	ctx := logging.WithSessionID(context.Background(), "")
	logger := logging.NewLogger()

	if *createDefault {
		cfg, err := config.Profile(*profile)
		if err == nil {
			err = config.SaveConfig(cfg, *configPath)
		}
		if err != nil {
			logger.Error(ctx, "Failed to create default configuration", err, "config_path", *configPath)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file", "config_path", *configPath)
		return
	}

	cfg, fromFile, err := config.Resolve(*configPath, *profile)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}
	if !fromFile {
		logger.Info(ctx, "Configuration file not found, using profile",
			"config_path", *configPath,
			"profile", cfg.Profile,
		)
	}

	if *renderer != "" {
		cfg.Display.Renderer = *renderer
	}
	if *width > 0 {
		cfg.Display.Width = *width
	}
	if *height > 0 {
		cfg.Display.Height = *height
	}
	cfg.Display.Fullscreen = cfg.Display.Fullscreen || *fullscreen
	if err := cfg.Validate(); err != nil {
		logger.Error(ctx, "Invalid command line options", err)
		os.Exit(1)
	}

	switch cfg.Display.Renderer {
	case config.RendererTerminal:
		if os.Getenv(logging.EnvLogFile) == "" {
			logger = logging.NewFileLogger(terminalLogFile)
		}
		err = runTerminal(ctx, cfg, logger)
	default:
		err = runEngo(ctx, cfg, logger)
	}
	if err != nil {
		logger.Error(ctx, "Flight ended with error", err)
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}

func newSession(ctx context.Context, cfg *config.FlightConfig, logger *logging.Logger) (*engine.Session, error) {
	session, err := engine.NewSession(cfg, logger)
	if err != nil {
		return nil, err
	}

	for _, t := range []event.Type{event.Takeoff, event.Landing, event.Crash} {
		session.EventBus.Subscribe(t, func(e event.Event) {
			if fe, ok := e.(*event.FlightEvent); ok {
				logger.Debug(ctx, "flight event",
					"type", string(fe.GetType()),
					"tick", fe.Tick,
					"state", fe.State.String(),
				)
			}
		})
	}
	return session, nil
}

// runEngo starts the windowed front end. engo.Run blocks until the window
// closes.
func runEngo(ctx context.Context, cfg *config.FlightConfig, logger *logging.Logger) error {
	session, err := newSession(ctx, cfg, logger)
	if err != nil {
		return err
	}

	scene := engorender.NewFlightScene(ctx, session, logger, cfg.Display.Width, cfg.Display.Height)

	opts := engo.RunOptions{
		Title:      "Go Flight",
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Fullscreen: cfg.Display.Fullscreen,
		VSync:      true,
		FPSLimit:   cfg.Physics.TickRate,
	}

	engo.Run(opts, scene)
	session.Stop()
	return nil
}

// runTerminal flies on the terminal until Escape or a signal
func runTerminal(ctx context.Context, cfg *config.FlightConfig, logger *logging.Logger) error {
	session, err := newSession(ctx, cfg, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "failed to initialize screen")
	}

	renderer := render.NewTerminalRenderer(screen)
	defer renderer.Close()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session.Start(ctx)
	return render.NewTerminalFrontEnd(session, renderer, logger).Run(ctx)
}
