// pkg/entity/obstacle.go
package entity

import (
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// InfluenceRadiusPerMass is the gravity range granted per unit of (mass+1).
const InfluenceRadiusPerMass = 200.0

// GravityWell is a circular celestial body. It can be collided with and pulls
// the craft while it is inside the influence radius.
type GravityWell struct {
	ID       ID
	Name     string
	Position physics.Vector2D
	Radius   float64
	Mass     float64
	Color    string // hex "#RRGGBB", consumed by renderers only
}

// NewGravityWell creates a new gravity well
func NewGravityWell(id ID, name string, position physics.Vector2D, radius, mass float64) GravityWell {
	return GravityWell{
		ID:       id,
		Name:     name,
		Position: position,
		Radius:   radius,
		Mass:     mass,
		Color:    "#828282",
	}
}

// GetID returns the well's identifier
func (w GravityWell) GetID() ID { return w.ID }

// GetName returns the well's display name
func (w GravityWell) GetName() string { return w.Name }

// Kind returns KindGravityWell
func (w GravityWell) Kind() Kind { return KindGravityWell }

// Anchor returns the well centre
func (w GravityWell) Anchor() physics.Vector2D { return w.Position }

// InfluenceRadius is the distance within which the well affects the craft.
// Renderers draw it as the orbit ring.
func (w GravityWell) InfluenceRadius() float64 {
	return (w.Mass + 1) * InfluenceRadiusPerMass
}

// Collider returns the well's body as a circle
func (w GravityWell) Collider() physics.Circle {
	return physics.Circle{Center: w.Position, Radius: w.Radius}
}

// Barrier is an infinitely thin static line segment. It has no gravity.
type Barrier struct {
	ID    ID
	Name  string
	Start physics.Vector2D
	End   physics.Vector2D
	Color string
}

// NewBarrier creates a new barrier segment
func NewBarrier(id ID, name string, start, end physics.Vector2D) Barrier {
	return Barrier{
		ID:    id,
		Name:  name,
		Start: start,
		End:   end,
		Color: "#CD853F",
	}
}

// GetID returns the barrier's identifier
func (b Barrier) GetID() ID { return b.ID }

// GetName returns the barrier's display name
func (b Barrier) GetName() string { return b.Name }

// Kind returns KindBarrier
func (b Barrier) Kind() Kind { return KindBarrier }

// Anchor returns the barrier's start point
func (b Barrier) Anchor() physics.Vector2D { return b.Start }

// Segment returns the barrier geometry
func (b Barrier) Segment() physics.Segment {
	return physics.Segment{Start: b.Start, End: b.End}
}
