package engine

import (
	"github.com/opd-ai/go-gravflight/pkg/entity"
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// CraftPose is the part of the craft state a frontend draws
type CraftPose struct {
	Position  physics.Vector2D
	Rotation  float64
	Thrusting bool
	Radius    float64
}

// Frame is the per-tick output handed to a rendering surface
type Frame struct {
	Tick         uint64
	Craft        CraftPose
	CameraTarget physics.Vector2D
	MapWidth     float64
	MapHeight    float64
	Obstacles    []entity.Obstacle
}

// Render clears the surface, draws every obstacle and then the craft, and
// presents the result.
func (f Frame) Render(r entity.Renderer) {
	r.Clear()
	for _, o := range f.Obstacles {
		o.Render(r)
	}
	craft := entity.Craft{
		Position:  f.Craft.Position,
		Rotation:  f.Craft.Rotation,
		Thrusting: f.Craft.Thrusting,
		Radius:    f.Craft.Radius,
	}
	craft.Render(r)
	r.Present()
}
