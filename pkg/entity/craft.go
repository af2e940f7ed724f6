// pkg/entity/craft.go
package entity

import (
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// DefaultCraftRadius is the collision radius of the player's craft
const DefaultCraftRadius = 10.0

// Craft is the single player-controlled ship. Only the simulation step
// mutates it.
type Craft struct {
	// Velocity is a per-tick displacement; it is subtracted from Position.
	Velocity         physics.Vector2D
	Position         physics.Vector2D
	Rotation         float64 // radians, unbounded
	RotationVelocity float64
	Thrusting        bool
	Radius           float64
}

// NewCraft creates a craft at rest at the given position
func NewCraft(position physics.Vector2D) *Craft {
	return &Craft{
		Position: position,
		Radius:   DefaultCraftRadius,
	}
}

// Collider returns the craft's collision circle
func (c *Craft) Collider() physics.Circle {
	return physics.Circle{Center: c.Position, Radius: c.Radius}
}

// NextPosition is where the craft ends up after one more integration step
// at its current velocity.
func (c *Craft) NextPosition() physics.Vector2D {
	return c.Position.Sub(c.Velocity)
}

// Render dispatches to the renderer's craft handler
func (c *Craft) Render(r Renderer) {
	r.RenderCraft(c)
}
