package render

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-gravflight/pkg/config"
	"github.com/opd-ai/go-gravflight/pkg/engine"
	"github.com/opd-ai/go-gravflight/pkg/entity"
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// fakeSurface records the last rune drawn in every cell
type fakeSurface struct {
	mu     sync.Mutex
	width  int
	height int
	cells  map[[2]int]rune
	shows  int
}

func newFakeSurface(width, height int) *fakeSurface {
	return &fakeSurface{width: width, height: height, cells: make(map[[2]int]rune)}
}

func (s *fakeSurface) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells[[2]int{x, y}] = primary
}

func (s *fakeSurface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *fakeSurface) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows++
}

func (s *fakeSurface) at(x, y int) rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cells[[2]int{x, y}]
}

func (s *fakeSurface) count(r rune) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.cells {
		if c == r {
			n++
		}
	}
	return n
}

func (s *fakeSurface) showCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shows
}

// fakeScreen feeds events from a channel
type fakeScreen struct {
	*fakeSurface
	events chan tcell.Event
}

func (s *fakeScreen) PollEvent() tcell.Event {
	ev, ok := <-s.events
	if !ok {
		return nil
	}
	return ev
}

func (s *fakeScreen) Sync() {}

func TestTerminalRenderer_WorldToScreen(t *testing.T) {
	surface := newFakeSurface(80, 24)
	r := NewTerminalRenderer(surface, 8)
	r.SetCenter(physics.Vector2D{X: 512, Y: 370})

	tests := []struct {
		name  string
		pos   physics.Vector2D
		wantX int
		wantY int
	}{
		{"centre", physics.Vector2D{X: 512, Y: 370}, 40, 12},
		{"one column right", physics.Vector2D{X: 520, Y: 370}, 41, 12},
		{"one row down", physics.Vector2D{X: 512, Y: 386}, 40, 13},
		{"left of centre", physics.Vector2D{X: 511, Y: 370}, 39, 12},
		{"top left corner", physics.Vector2D{X: 192, Y: 178}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := r.worldToScreen(tt.pos)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("worldToScreen(%v) = (%d,%d), expected (%d,%d)", tt.pos, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTerminalRenderer_DrawFrame_DefaultWorld(t *testing.T) {
	surface := newFakeSurface(80, 24)
	r := NewTerminalRenderer(surface, 8)

	sim := engine.NewSimulation(context.Background(), config.DefaultConfig(), nil)
	sim.Step(engine.Input{Thrust: true})
	r.DrawFrame(sim.Frame())

	if surface.showCount() != 1 {
		t.Errorf("expected 1 Show, got %d", surface.showCount())
	}

	x, y := r.worldToScreen(sim.Craft.Position)
	if got := surface.at(x, y); got != '^' {
		t.Errorf("craft cell = %q, expected '^'", got)
	}
	if got := surface.at(x, y+1); got != '*' {
		t.Errorf("exhaust cell = %q, expected '*'", got)
	}
	if surface.count('O') == 0 {
		t.Error("expected the grey well to be visible")
	}
	if surface.count('#') == 0 {
		t.Error("expected the barrier to be visible")
	}
	if surface.count('.') == 0 {
		t.Error("expected an orbit ring to be visible")
	}
}

func TestTerminalRenderer_Border(t *testing.T) {
	surface := newFakeSurface(40, 20)
	r := NewTerminalRenderer(surface, 10)
	r.SetMapSize(300, 300)
	r.SetCenter(physics.Vector2D{X: 150, Y: 150})

	r.Clear()
	r.Present()

	left, top := r.worldToScreen(physics.Vector2D{X: 0, Y: 0})
	right, bottom := r.worldToScreen(physics.Vector2D{X: 300, Y: 300})

	corners := [][2]int{{left, top}, {right, top}, {left, bottom}, {right, bottom}}
	for _, c := range corners {
		if got := surface.at(c[0], c[1]); got != '+' {
			t.Errorf("corner (%d,%d) = %q, expected '+'", c[0], c[1], got)
		}
	}
	if got := surface.at(left, top+1); got != '|' {
		t.Errorf("left edge = %q, expected '|'", got)
	}
	if got := surface.at(left+1, bottom); got != '-' {
		t.Errorf("bottom edge = %q, expected '-'", got)
	}
}

func TestTerminalRenderer_ResizesOnClear(t *testing.T) {
	surface := newFakeSurface(20, 10)
	r := NewTerminalRenderer(surface, 1)

	surface.mu.Lock()
	surface.width, surface.height = 50, 30
	surface.mu.Unlock()

	r.Clear()
	if r.width != 50 || r.height != 30 || len(r.buffer) != 30 || len(r.buffer[0]) != 50 {
		t.Errorf("buffer not resized: %dx%d", r.width, r.height)
	}
}

func TestTerminalRenderer_OffscreenIsIgnored(t *testing.T) {
	surface := newFakeSurface(10, 5)
	r := NewTerminalRenderer(surface, 1)

	r.Clear()
	well := entity.NewGravityWell(1, "far", physics.Vector2D{X: 5000, Y: 5000}, 10, 0)
	r.RenderWell(&well)
	r.RenderCraft(entity.NewCraft(physics.Vector2D{X: -4000, Y: 0}))
	r.Present()

	if surface.count('O') != 0 || surface.count('^') != 0 {
		t.Error("offscreen objects should not be drawn")
	}
}

func TestHeadingRune(t *testing.T) {
	tests := []struct {
		rotation float64
		expected rune
	}{
		{0, '^'},
		{physics.DegreesToRadians(90), '>'},
		{physics.DegreesToRadians(180), 'v'},
		{physics.DegreesToRadians(270), '<'},
		{physics.DegreesToRadians(-90), '<'},
		{physics.DegreesToRadians(45), '/'},
		{physics.DegreesToRadians(135), '\\'},
		{physics.DegreesToRadians(720), '^'},
	}

	for _, tt := range tests {
		if got := HeadingRune(tt.rotation); got != tt.expected {
			t.Errorf("HeadingRune(%v) = %q, expected %q", tt.rotation, got, tt.expected)
		}
	}
}

func TestRunTerminal_QuitKey(t *testing.T) {
	screen := &fakeScreen{fakeSurface: newFakeSurface(80, 24), events: make(chan tcell.Event, 4)}
	defer close(screen.events)

	sim := engine.NewSimulation(context.Background(), config.DefaultConfig(), nil)

	steps := 0
	opts := TerminalOptions{
		FPS:    200,
		OnStep: func(engine.Report) { steps++ },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- RunTerminal(context.Background(), screen, sim, opts)
	}()

	time.Sleep(50 * time.Millisecond)
	screen.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("RunTerminal returned %v, expected nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("RunTerminal did not return after quit")
	}

	if steps == 0 || sim.CurrentTick == 0 {
		t.Error("expected at least one step before quitting")
	}
	if sim.Running {
		t.Error("simulation should be stopped on return")
	}
	if screen.showCount() < 2 {
		t.Errorf("expected several frames drawn, got %d", screen.showCount())
	}
}

func TestRunTerminal_ContextCancel(t *testing.T) {
	screen := &fakeScreen{fakeSurface: newFakeSurface(40, 12), events: make(chan tcell.Event)}
	defer close(screen.events)

	sim := engine.NewSimulation(context.Background(), config.DefaultConfig(), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := RunTerminal(ctx, screen, sim, TerminalOptions{FPS: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("RunTerminal returned %v, expected deadline exceeded", err)
	}
}
