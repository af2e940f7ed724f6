package engine

import (
	"github.com/opd-ai/go-gravflight/pkg/config"
	"github.com/opd-ai/go-gravflight/pkg/entity"
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// Input is the set of control intents sampled once per tick
type Input struct {
	Thrust      bool
	RotateLeft  bool
	RotateRight bool
	// Quit is read by the frontend loop; Step ignores it.
	Quit bool
}

// applyInput performs the thrust and rotation phase of a tick. On return
// both velocity components and the rotation velocity are within their limits.
func applyInput(craft *entity.Craft, input Input, p config.PhysicsConfig) {
	if input.Thrust {
		impulse := physics.Vector2D{X: 0, Y: p.ThrustImpulse}.Rotate(craft.Rotation)
		craft.Velocity = craft.Velocity.Add(impulse)
	}
	craft.Thrusting = input.Thrust

	craft.Velocity = physics.Vector2D{
		X: physics.ClampMagnitude(craft.Velocity.X, p.MaxVelocity),
		Y: physics.ClampMagnitude(craft.Velocity.Y, p.MaxVelocity),
	}.Div(p.VelocityDamping)

	if input.RotateLeft {
		craft.RotationVelocity -= p.RotationImpulse
	}
	if input.RotateRight {
		craft.RotationVelocity += p.RotationImpulse
	}

	craft.RotationVelocity = physics.ClampMagnitude(craft.RotationVelocity, p.MaxRotationVelocity) / p.RotationDamping
}
