package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-gravflight/pkg/engine"
	"github.com/opd-ai/go-gravflight/pkg/logging"
)

// TerminalScreen is the subset of tcell.Screen the terminal loop needs
type TerminalScreen interface {
	CellSurface
	PollEvent() tcell.Event
	Sync()
}

// TerminalOptions configures RunTerminal
type TerminalOptions struct {
	FPS     int
	Scale   float64
	KeyHold time.Duration
	Logger  *logging.Logger
	// OnStep is called after every step, before drawing. The audio layer
	// uses it to follow the thrust flag.
	OnStep func(engine.Report)
}

// RunTerminal drives the simulation at a fixed rate, reading keys from the
// screen and drawing each frame to it. It returns when the player quits or
// ctx is cancelled. The caller owns the screen and must Fini it.
func RunTerminal(ctx context.Context, screen TerminalScreen, sim *engine.Simulation, opts TerminalOptions) error {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Scale <= 0 {
		opts.Scale = 8
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	renderer := NewTerminalRenderer(screen, opts.Scale)
	latch := NewKeyLatch(opts.KeyHold)

	ticker := time.NewTicker(time.Second / time.Duration(opts.FPS))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	sim.Start()
	defer sim.Stop()
	renderer.DrawFrame(sim.Frame())

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "terminal frontend cancelled", "ticks", sim.CurrentTick)
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				latch.Handle(ev, time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			input := latch.Input(now)
			if input.Quit {
				logger.Info(ctx, "player quit", "ticks", sim.CurrentTick)
				return nil
			}
			report := sim.Step(input)
			if opts.OnStep != nil {
				opts.OnStep(report)
			}
			renderer.DrawFrame(sim.Frame())
		}
	}
}
