// cmd/gravflight/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-gravflight/pkg/audio"
	"github.com/opd-ai/go-gravflight/pkg/config"
	"github.com/opd-ai/go-gravflight/pkg/engine"
	"github.com/opd-ai/go-gravflight/pkg/logging"
	"github.com/opd-ai/go-gravflight/pkg/render"
	engorender "github.com/opd-ai/go-gravflight/pkg/render/engo"
)

// options holds the parsed command line
type options struct {
	configPath string
	frontend   string
	ticks      int
	thrust     bool
	turn       string
	width      int
	height     int
	fullscreen bool
	mute       bool
	dumpConfig string
	logFile    string
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "Path to a .json or .toml configuration file")
	fs.StringVar(&opts.frontend, "frontend", "engo", "Frontend: 'engo', 'terminal' or 'headless'")
	fs.IntVar(&opts.ticks, "ticks", 600, "Number of ticks to run (headless only)")
	fs.BoolVar(&opts.thrust, "thrust", false, "Hold thrust every tick (headless only)")
	fs.StringVar(&opts.turn, "turn", "", "Hold a turn every tick: 'left' or 'right' (headless only)")
	fs.IntVar(&opts.width, "width", 0, "Window width (overrides config)")
	fs.IntVar(&opts.height, "height", 0, "Window height (overrides config)")
	fs.BoolVar(&opts.fullscreen, "fullscreen", false, "Run in fullscreen mode (engo only)")
	fs.BoolVar(&opts.mute, "mute", false, "Disable audio")
	fs.StringVar(&opts.dumpConfig, "dump-config", "", "Write the effective configuration to this path and exit")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch opts.frontend {
	case "engo", "terminal", "headless":
	default:
		return opts, fmt.Errorf("unknown frontend %q", opts.frontend)
	}
	if _, err := scriptInput(opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// scriptInput returns the input the headless frontend holds every tick
func scriptInput(opts options) (engine.Input, error) {
	input := engine.Input{Thrust: opts.thrust}
	switch opts.turn {
	case "":
	case "left":
		input.RotateLeft = true
	case "right":
		input.RotateRight = true
	default:
		return input, fmt.Errorf("unknown turn %q", opts.turn)
	}
	return input, nil
}

// loadWorldConfig builds the effective configuration: defaults, then the
// config file, then environment variables, then flags.
func loadWorldConfig(opts options) (*config.WorldConfig, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("failed to apply environment configuration: %w", err)
	}

	if opts.width > 0 {
		cfg.Display.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Display.Height = opts.height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger picks the log destination. The terminal frontend owns the
// screen, so it only logs to a file.
func newLogger(opts options) (*logging.Logger, io.Closer, error) {
	level := logging.LevelFromEnv()
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return logging.NewLoggerWithWriter(f, level), f, nil
	}
	if opts.frontend == "terminal" {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	return logging.NewLoggerWithWriter(os.Stdout, level), io.NopCloser(nil), nil
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closer, err := newLogger(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithSessionID(ctx, "")

	if err := run(ctx, opts, logger); err != nil {
		logger.Error(ctx, "gravflight failed", err, "frontend", opts.frontend)
		closer.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *logging.Logger) error {
	cfg, err := loadWorldConfig(opts)
	if err != nil {
		return err
	}

	if opts.dumpConfig != "" {
		if err := config.SaveConfig(cfg, opts.dumpConfig); err != nil {
			return err
		}
		logger.Info(ctx, "Wrote configuration", "config_path", opts.dumpConfig)
		return nil
	}

	source := opts.configPath
	if source == "" {
		source = "defaults"
	}
	logger.Info(ctx, "Loaded configuration",
		"config_source", source,
		"frontend", opts.frontend,
		"map_width", cfg.Map.Width,
		"map_height", cfg.Map.Height,
	)

	sim := engine.NewSimulation(ctx, cfg, logger)

	switch opts.frontend {
	case "headless":
		input, _ := scriptInput(opts)
		frame := runHeadless(ctx, sim, opts.ticks, input, logger)
		logger.Info(ctx, "Final pose",
			"tick", frame.Tick,
			"x", frame.Craft.Position.X,
			"y", frame.Craft.Position.Y,
			"rotation", frame.Craft.Rotation,
		)
		return nil

	case "terminal":
		sound := startAudio(ctx, sim, opts, logger)
		defer sound.Close()
		return runTerminal(ctx, sim, cfg, sound, logger)

	default:
		sound := startAudio(ctx, sim, opts, logger)
		defer sound.Close()
		engorender.RunWindow(sim, engorender.WindowOptions{
			Fullscreen: opts.fullscreen,
			Logger:     logger,
			OnStep:     func(engine.Report) { sound.SetThrust(sim.Craft.Thrusting) },
		})
		return nil
	}
}

// runHeadless steps the simulation with a fixed input and returns the last
// frame. It stops early if ctx is cancelled.
func runHeadless(ctx context.Context, sim *engine.Simulation, ticks int, input engine.Input, logger *logging.Logger) engine.Frame {
	renderer := render.NewNullRenderer(ctx, logger)

	sim.Start()
	defer sim.Stop()

	for i := 0; i < ticks; i++ {
		if ctx.Err() != nil {
			break
		}
		sim.Step(input)
		sim.Frame().Render(renderer)
	}
	return sim.Frame()
}

func runTerminal(ctx context.Context, sim *engine.Simulation, cfg *config.WorldConfig, sound *audio.SoundManager, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	err = render.RunTerminal(ctx, screen, sim, render.TerminalOptions{
		FPS:    cfg.Display.FPS,
		Logger: logger,
		OnStep: func(engine.Report) { sound.SetThrust(sim.Craft.Thrusting) },
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// startAudio returns a sound manager subscribed to the simulation's events.
// When muted or when no audio device is available it stays silent.
func startAudio(ctx context.Context, sim *engine.Simulation, opts options, logger *logging.Logger) *audio.SoundManager {
	sound := audio.NewSoundManager(ctx, logger, 1)
	if opts.mute {
		logger.Info(ctx, "Audio muted")
		return sound
	}
	if err := sound.Initialize(); err != nil {
		logger.Warn(ctx, "Audio unavailable, continuing without sound", "error", err)
		return sound
	}
	sound.Subscribe(sim.EventBus)
	return sound
}
