package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opd-ai/go-gravflight/pkg/config"
	"github.com/opd-ai/go-gravflight/pkg/engine"
	"github.com/opd-ai/go-gravflight/pkg/logging"
)

func parse(t *testing.T, args ...string) (options, error) {
	t.Helper()
	fs := flag.NewFlagSet("gravflight", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return parseFlags(fs, args)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(options) bool
	}{
		{"defaults", nil, false, func(o options) bool { return o.frontend == "engo" && o.ticks == 600 && !o.mute }},
		{"headless script", []string{"-frontend", "headless", "-ticks", "5", "-thrust", "-turn", "left"}, false,
			func(o options) bool { return o.frontend == "headless" && o.ticks == 5 && o.thrust && o.turn == "left" }},
		{"window size", []string{"-width", "800", "-height", "600", "-fullscreen"}, false,
			func(o options) bool { return o.width == 800 && o.height == 600 && o.fullscreen }},
		{"unknown frontend", []string{"-frontend", "web"}, true, nil},
		{"unknown turn", []string{"-turn", "up"}, true, nil},
		{"unknown flag", []string{"-server", "x"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parse(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(opts) {
				t.Errorf("parseFlags() = %+v", opts)
			}
		})
	}
}

func TestScriptInput(t *testing.T) {
	tests := []struct {
		opts     options
		expected engine.Input
	}{
		{options{}, engine.Input{}},
		{options{thrust: true}, engine.Input{Thrust: true}},
		{options{turn: "left"}, engine.Input{RotateLeft: true}},
		{options{thrust: true, turn: "right"}, engine.Input{Thrust: true, RotateRight: true}},
	}

	for _, tt := range tests {
		got, err := scriptInput(tt.opts)
		if err != nil {
			t.Fatalf("scriptInput(%+v) error = %v", tt.opts, err)
		}
		if got != tt.expected {
			t.Errorf("scriptInput(%+v) = %+v, expected %+v", tt.opts, got, tt.expected)
		}
	}
}

func TestLoadWorldConfig_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.toml")
	content := `
[map]
width = 4000
height = 3000

[display]
fps = 60
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvMapHeight, "3500")

	cfg, err := loadWorldConfig(options{configPath: path, width: 800})
	if err != nil {
		t.Fatalf("loadWorldConfig() error = %v", err)
	}

	if cfg.Map.Width != 4000 {
		t.Errorf("file value lost: width = %v", cfg.Map.Width)
	}
	if cfg.Map.Height != 3500 {
		t.Errorf("env override lost: height = %v", cfg.Map.Height)
	}
	if cfg.Display.Width != 800 {
		t.Errorf("flag override lost: display width = %d", cfg.Display.Width)
	}
	if cfg.Display.FPS != 60 {
		t.Errorf("fps = %d, expected 60", cfg.Display.FPS)
	}
	if len(cfg.Wells) != len(config.DefaultConfig().Wells) {
		t.Error("default obstacles should survive a partial file")
	}
}

func TestLoadWorldConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := loadWorldConfig(options{configPath: filepath.Join(t.TempDir(), "none.json")}); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("bad env", func(t *testing.T) {
		t.Setenv(config.EnvFPS, "fast")
		if _, err := loadWorldConfig(options{}); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("invalid result", func(t *testing.T) {
		t.Setenv(config.EnvMapWidth, "-5")
		_, err := loadWorldConfig(options{})
		if !errors.Is(err, config.ErrInvalidMap) {
			t.Errorf("expected ErrInvalidMap, got %v", err)
		}
	})
}

func TestRunHeadless(t *testing.T) {
	run := func() engine.Frame {
		sim := engine.NewSimulation(context.Background(), config.DefaultConfig(), nil)
		return runHeadless(context.Background(), sim, 300, engine.Input{Thrust: true, RotateLeft: true}, logging.Discard())
	}

	first := run()
	second := run()

	if first.Tick != 300 {
		t.Errorf("expected 300 ticks, got %d", first.Tick)
	}
	if first.Craft != second.Craft {
		t.Errorf("headless runs diverged: %+v vs %+v", first.Craft, second.Craft)
	}
}

func TestRunHeadless_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := engine.NewSimulation(ctx, config.DefaultConfig(), nil)
	frame := runHeadless(ctx, sim, 1000, engine.Input{}, logging.Discard())

	if frame.Tick != 0 {
		t.Errorf("cancelled run advanced to tick %d", frame.Tick)
	}
	if sim.Running {
		t.Error("simulation should be stopped")
	}
}

func TestRun_HeadlessLogsFinalPose(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithWriter(&buf, slog.LevelInfo)

	opts, err := parse(t, "-frontend", "headless", "-ticks", "10", "-thrust")
	if err != nil {
		t.Fatal(err)
	}
	if err := run(context.Background(), opts, logger); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"msg":"Final pose"`) || !strings.Contains(out, `"tick":10`) {
		t.Errorf("final pose not logged: %s", out)
	}
}

func TestRun_DumpConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")

	opts, err := parse(t, "-dump-config", path, "-width", "640")
	if err != nil {
		t.Fatal(err)
	}
	if err := run(context.Background(), opts, logging.Discard()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("dumped config does not load: %v", err)
	}
	if cfg.Display.Width != 640 {
		t.Errorf("dumped width = %d, expected 640", cfg.Display.Width)
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("terminal without file discards", func(t *testing.T) {
		logger, closer, err := newLogger(options{frontend: "terminal"})
		if err != nil || logger == nil {
			t.Fatalf("newLogger() = %v, %v", logger, err)
		}
		closer.Close()
	})

	t.Run("log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gravflight.log")
		logger, closer, err := newLogger(options{frontend: "terminal", logFile: path})
		if err != nil {
			t.Fatalf("newLogger() error = %v", err)
		}
		logger.Error(context.Background(), "written", nil)
		closer.Close()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "written") {
			t.Errorf("log file missing entry: %s", data)
		}
	})
}
