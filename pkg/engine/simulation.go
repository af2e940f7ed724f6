// pkg/engine/simulation.go
package engine

import (
	"context"
	"math"
	"slices"

	"github.com/opd-ai/go-gravflight/pkg/config"
	"github.com/opd-ai/go-gravflight/pkg/entity"
	"github.com/opd-ai/go-gravflight/pkg/event"
	"github.com/opd-ai/go-gravflight/pkg/logging"
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// Simulation owns the craft and the obstacle field of one session.
// It is driven by a single frontend loop and is not safe for concurrent use.
type Simulation struct {
	Config      *config.WorldConfig
	Craft       *entity.Craft
	Obstacles   []entity.Obstacle
	CurrentTick uint64
	Running     bool
	EventBus    *event.Bus

	ctx    context.Context
	logger *logging.Logger
}

// Report summarises what happened during one Step
type Report struct {
	Tick        uint64
	Contacts    []Contact
	Reflections []event.Edge
}

// NewSimulation creates a simulation from the configuration. The context
// carries the session ID used in log entries; a nil logger discards output.
func NewSimulation(ctx context.Context, cfg *config.WorldConfig, logger *logging.Logger) *Simulation {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	craft := entity.NewCraft(cfg.StartPosition())
	craft.Radius = cfg.Craft.Radius

	sim := &Simulation{
		Config:   cfg,
		Craft:    craft,
		EventBus: event.NewEventBus(),
		ctx:      ctx,
		logger:   logger.With("component", "simulation"),
	}
	sim.initObstacles()

	return sim
}

// initObstacles builds the obstacle field. Wells come first, then barriers,
// with IDs assigned in that order starting at 1.
func (s *Simulation) initObstacles() {
	var nextID entity.ID = 1

	for _, wc := range s.Config.Wells {
		well := entity.NewGravityWell(nextID, wc.Name, physics.Vector2D{X: wc.X, Y: wc.Y}, wc.Radius, wc.Mass)
		if wc.Color != "" {
			well.Color = wc.Color
		}
		s.Obstacles = append(s.Obstacles, well)
		nextID++
	}

	for _, bc := range s.Config.Barriers {
		barrier := entity.NewBarrier(nextID,
			bc.Name,
			physics.Vector2D{X: bc.StartX, Y: bc.StartY},
			physics.Vector2D{X: bc.EndX, Y: bc.EndY},
		)
		if bc.Color != "" {
			barrier.Color = bc.Color
		}
		s.Obstacles = append(s.Obstacles, barrier)
		nextID++
	}
}

// Start marks the simulation as running. Starting a running simulation is a
// no-op.
func (s *Simulation) Start() {
	if s.Running {
		return
	}
	s.Running = true
	s.logger.Info(s.ctx, "simulation started",
		"wells", len(s.Config.Wells),
		"barriers", len(s.Config.Barriers),
		"x", s.Craft.Position.X,
		"y", s.Craft.Position.Y,
	)
	s.EventBus.Publish(event.NewLifecycleEvent(event.SimulationStarted, s, s.CurrentTick))
}

// Stop marks the simulation as halted. Stopping a halted simulation is a
// no-op.
func (s *Simulation) Stop() {
	if !s.Running {
		return
	}
	s.Running = false
	s.logger.Info(s.ctx, "simulation stopped", "ticks", s.CurrentTick)
	s.EventBus.Publish(event.NewLifecycleEvent(event.SimulationStopped, s, s.CurrentTick))
}

// Step advances the simulation by one tick
func (s *Simulation) Step(input Input) Report {
	p := s.Config.Physics
	craft := s.Craft

	applyInput(craft, input, p)

	// Gravity and collision passes both read this snapshot.
	snapshot := slices.Clone(s.Obstacles)

	craft.Position = craft.Position.Sub(craft.Velocity)

	report := Report{Tick: s.CurrentTick}
	report.Reflections = reflectEdges(craft, s.Config.Map, p)
	craft.Rotation += craft.RotationVelocity

	for _, edge := range report.Reflections {
		s.logger.Debug(s.ctx, "boundary reflection", "edge", string(edge), "tick", s.CurrentTick)
		s.EventBus.Publish(event.NewBoundaryEvent(s, edge))
	}

	for _, o := range snapshot {
		applyGravity(o, craft, p.GravityEpsilon)
	}

	for _, o := range snapshot {
		contact := ResolveCollision(o, craft)
		if !contact.Hit() {
			continue
		}
		report.Contacts = append(report.Contacts, contact)
		s.publishContact(o, contact)
	}

	contain(craft, s.Config.Map)

	s.CurrentTick++
	return report
}

func (s *Simulation) publishContact(o entity.Obstacle, contact Contact) {
	speed := s.Craft.Velocity.Length()

	switch contact.Kind {
	case ContactWell:
		s.logger.Debug(s.ctx, "well contact",
			"well", o.GetName(),
			"distance", contact.Point.Distance(o.Anchor()),
			"tick", s.CurrentTick,
		)
		s.EventBus.Publish(event.NewContactEvent(event.WellContact, s, uint64(contact.Obstacle), contact.Point, speed))
	case ContactBarrier:
		s.logger.Debug(s.ctx, "barrier contact",
			"barrier", o.GetName(),
			"angle_deg", math.Round(physics.RadiansToDegrees(contact.Angle)),
			"tick", s.CurrentTick,
		)
		s.EventBus.Publish(event.NewContactEvent(event.BarrierContact, s, uint64(contact.Obstacle), contact.Point, speed))
	}
}

// Frame returns the drawable state after the most recent Step
func (s *Simulation) Frame() Frame {
	return Frame{
		Tick: s.CurrentTick,
		Craft: CraftPose{
			Position:  s.Craft.Position,
			Rotation:  s.Craft.Rotation,
			Thrusting: s.Craft.Thrusting,
			Radius:    s.Craft.Radius,
		},
		CameraTarget: s.Craft.Position,
		MapWidth:     s.Config.Map.Width,
		MapHeight:    s.Config.Map.Height,
		Obstacles:    s.Obstacles,
	}
}

// Context returns the context the simulation logs with
func (s *Simulation) Context() context.Context {
	return s.ctx
}
