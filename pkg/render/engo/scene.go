// pkg/render/engo/scene.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravflight/pkg/engine"
	"github.com/opd-ai/go-gravflight/pkg/logging"
)

// WindowOptions configures the engo window frontend
type WindowOptions struct {
	Fullscreen bool
	Logger     *logging.Logger
	// OnStep is called after every simulation step
	OnStep func(engine.Report)
}

// RunWindow opens the window described by the simulation's display config
// and blocks until it closes.
func RunWindow(sim *engine.Simulation, opts WindowOptions) {
	display := sim.Config.Display
	engo.Run(engo.RunOptions{
		Title:        display.Title,
		Width:        display.Width,
		Height:       display.Height,
		Fullscreen:   opts.Fullscreen,
		FPSLimit:     display.FPS,
		NotResizable: !display.Resizable,
		VSync:        true,
	}, NewFlightScene(sim, opts))
}

// FlightScene represents the flight scene in Engo
type FlightScene struct {
	sim  *engine.Simulation
	opts WindowOptions

	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
	flight   *FlightSystem
}

// NewFlightScene creates a scene driving sim
func NewFlightScene(sim *engine.Simulation, opts WindowOptions) *FlightScene {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &FlightScene{sim: sim, opts: opts}
}

// Type returns the scene type (required by Engo)
func (scene *FlightScene) Type() string {
	return "FlightScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *FlightScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *FlightScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)

	common.SetBackground(color.Black)

	// The render system adds engo's camera when it joins the world.
	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	SetupInputBindings()

	scene.renderer = NewEngoRenderer(renderSystem)
	scene.camera = NewCameraSystem()
	scene.camera.SetMapBounds(scene.sim.Config.Map.Width, scene.sim.Config.Map.Height)
	scene.input = NewInputSystem(nil)
	scene.flight = NewFlightSystem(scene.sim, scene.input, scene.renderer, scene.camera)
	scene.flight.onStep = scene.opts.OnStep
	scene.flight.logger = scene.opts.Logger

	// Systems update in the order they are added.
	world.AddSystem(scene.input)
	world.AddSystem(scene.flight)
	world.AddSystem(scene.camera)

	scene.sim.Start()
	scene.flight.draw()
}

// Exit is called when the window closes
func (scene *FlightScene) Exit() {
	scene.sim.Stop()
}

// FlightSystem steps the simulation once per frame and redraws it
type FlightSystem struct {
	sim      *engine.Simulation
	input    *InputSystem
	renderer *EngoRenderer
	camera   *CameraSystem

	onStep func(engine.Report)
	exit   func()
	logger *logging.Logger
}

// NewFlightSystem wires a simulation to its input, renderer and camera
func NewFlightSystem(sim *engine.Simulation, input *InputSystem, renderer *EngoRenderer, camera *CameraSystem) *FlightSystem {
	return &FlightSystem{
		sim:      sim,
		input:    input,
		renderer: renderer,
		camera:   camera,
		exit:     engo.Exit,
		logger:   logging.Discard(),
	}
}

// Remove satisfies the ecs.System interface
func (fs *FlightSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the simulation by one tick
func (fs *FlightSystem) Update(dt float32) {
	if !fs.sim.Running {
		return
	}

	input := fs.input.Current()
	if input.Quit {
		fs.logger.Info(fs.sim.Context(), "player quit", "ticks", fs.sim.CurrentTick)
		fs.sim.Stop()
		fs.exit()
		return
	}

	report := fs.sim.Step(input)
	if fs.onStep != nil {
		fs.onStep(report)
	}
	fs.draw()
}

func (fs *FlightSystem) draw() {
	frame := fs.sim.Frame()
	fs.renderer.DrawFrame(frame)
	fs.camera.SetTarget(frame.CameraTarget)
}
