package engine

import (
	"math"

	"github.com/opd-ai/go-gravflight/pkg/config"
	"github.com/opd-ai/go-gravflight/pkg/entity"
	"github.com/opd-ai/go-gravflight/pkg/event"
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// reflectEdges bounces the craft off any map edge it has reached, halving
// the crossing velocity component and nudging the spin. It returns the
// edges that were hit.
func reflectEdges(craft *entity.Craft, m config.MapConfig, p config.PhysicsConfig) []event.Edge {
	var edges []event.Edge

	avg := physics.AverageComponents(physics.Vector2D{
		X: math.Abs(craft.Velocity.X),
		Y: math.Abs(craft.Velocity.Y),
	})
	cos := math.Cos(craft.Rotation) / 2
	sin := math.Sin(craft.Rotation) / 2

	if craft.Position.X+m.EdgeMargin >= m.Width {
		craft.Position.X = m.Width - m.EdgeMargin
		craft.Velocity.X = -craft.Velocity.X / p.BounceDivisor
		craft.RotationVelocity -= cos * avg / p.EdgeSpinDivisor
		edges = append(edges, event.EdgeRight)
	} else if craft.Position.X-m.EdgeMargin <= 0 {
		craft.Position.X = m.EdgeMargin
		craft.Velocity.X = -craft.Velocity.X / p.BounceDivisor
		craft.RotationVelocity += cos * avg / p.EdgeSpinDivisor
		edges = append(edges, event.EdgeLeft)
	}

	if craft.Position.Y+m.EdgeMargin >= m.Height {
		craft.Position.Y = m.Height - m.EdgeMargin
		craft.Velocity.Y = -craft.Velocity.Y / p.BounceDivisor
		craft.RotationVelocity -= sin * avg / p.BottomEdgeSpinDivisor
		edges = append(edges, event.EdgeBottom)
	} else if craft.Position.Y-m.EdgeMargin <= 0 {
		craft.Position.Y = m.EdgeMargin
		craft.Velocity.Y = -craft.Velocity.Y / p.BounceDivisor
		craft.RotationVelocity += sin * avg / p.EdgeSpinDivisor
		edges = append(edges, event.EdgeTop)
	}

	return edges
}

// contain clamps the craft back inside the margins without touching its
// velocity. Collision corrections near an edge can push it out.
func contain(craft *entity.Craft, m config.MapConfig) {
	craft.Position.X = math.Min(math.Max(craft.Position.X, m.EdgeMargin), m.Width-m.EdgeMargin)
	craft.Position.Y = math.Min(math.Max(craft.Position.Y, m.EdgeMargin), m.Height-m.EdgeMargin)
}
