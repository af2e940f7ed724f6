package engine

import (
	"math"

	"github.com/opd-ai/go-gravflight/pkg/config"
	"github.com/opd-ai/go-gravflight/pkg/entity"
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// GravityDelta returns the amount to subtract from the craft's velocity for
// a craft at craftPos. It reports false when the craft is outside the well's
// influence radius or sits on the well centre.
func GravityDelta(well entity.GravityWell, craftPos physics.Vector2D) (physics.Vector2D, bool) {
	return gravityDelta(well, craftPos, config.DefaultGravityEpsilon)
}

func gravityDelta(well entity.GravityWell, craftPos physics.Vector2D, epsilon float64) (physics.Vector2D, bool) {
	distance := well.Position.Distance(craftPos)
	if distance > well.InfluenceRadius() || distance < epsilon {
		return physics.Vector2D{}, false
	}

	pull := physics.Vector2D{X: 0, Y: well.Mass}.
		Rotate(well.Position.AngleTo(craftPos)).
		Rotate(math.Pi / 2).
		Div(math.Sqrt(distance))

	return pull, true
}

// ApplyGravity perturbs the craft's velocity by the obstacle's pull.
// Barriers have no gravity. It reports whether the velocity changed.
func ApplyGravity(o entity.Obstacle, craft *entity.Craft) bool {
	return applyGravity(o, craft, config.DefaultGravityEpsilon)
}

func applyGravity(o entity.Obstacle, craft *entity.Craft, epsilon float64) bool {
	switch obs := o.(type) {
	case entity.GravityWell:
		delta, ok := gravityDelta(obs, craft.Position, epsilon)
		if !ok {
			return false
		}
		craft.Velocity = craft.Velocity.Sub(delta)
		return true
	case entity.Barrier:
		return false
	default:
		return false
	}
}
