package engine

import (
	"math"

	"github.com/opd-ai/go-gravflight/pkg/entity"
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// ContactKind describes what, if anything, the craft touched
type ContactKind int

const (
	ContactNone ContactKind = iota
	ContactWell
	ContactBarrier
)

// String returns the kind name used in logs
func (k ContactKind) String() string {
	switch k {
	case ContactWell:
		return "well"
	case ContactBarrier:
		return "barrier"
	default:
		return "none"
	}
}

// Contact is the outcome of resolving the craft against one obstacle
type Contact struct {
	Kind     ContactKind
	Obstacle entity.ID
	// Point is the craft position for well contacts and the crossing
	// point for barrier contacts.
	Point physics.Vector2D
	// Angle is the direction, in radians, that drove the velocity rotation.
	Angle float64
}

// Hit reports whether the contact changed the craft
func (c Contact) Hit() bool {
	return c.Kind != ContactNone
}

// ResolveCollision applies a one-shot correction to the craft if it
// overlaps the obstacle or its next step crosses it.
func ResolveCollision(o entity.Obstacle, craft *entity.Craft) Contact {
	switch obs := o.(type) {
	case entity.GravityWell:
		return resolveWell(obs, craft)
	case entity.Barrier:
		return resolveBarrier(obs, craft)
	default:
		return Contact{}
	}
}

func resolveWell(well entity.GravityWell, craft *entity.Craft) Contact {
	if !well.Collider().Collides(craft.Collider()) {
		return Contact{}
	}

	var angle float64
	if craft.Position == well.Position {
		// Bearing to the well is undefined on its centre; use the heading
		// of the next step instead. A zero bearing would leave the velocity
		// unrotated, so it becomes a half turn.
		angle = craft.Position.AngleTo(craft.NextPosition())
		if angle == 0 {
			angle = math.Pi
		}
	} else {
		angle = craft.Position.AngleTo(well.Position)
	}

	contact := Contact{
		Kind:     ContactWell,
		Obstacle: well.ID,
		Point:    craft.Position,
		Angle:    angle,
	}

	craft.Velocity = craft.Velocity.Rotate(-math.Tanh(angle))
	craft.Position = craft.Position.Sub(craft.Velocity)

	return contact
}

func resolveBarrier(barrier entity.Barrier, craft *entity.Craft) Contact {
	path := physics.Segment{Start: craft.Position, End: craft.NextPosition()}

	point, ok := physics.SegmentIntersection(path, barrier.Segment())
	if !ok {
		return Contact{}
	}

	angle := craft.Position.AngleTo(point)

	craft.Velocity = craft.Velocity.Rotate(math.Tan(angle)).Rotate(math.Pi / 2)
	craft.Position = craft.Position.Sub(craft.Velocity)

	return Contact{
		Kind:     ContactBarrier,
		Obstacle: barrier.ID,
		Point:    point,
		Angle:    angle,
	}
}
