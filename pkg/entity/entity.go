// pkg/entity/entity.go
package entity

import (
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// ID is a unique identifier for an obstacle within a session
type ID uint64

// Kind names an obstacle variant
type Kind int

const (
	KindGravityWell Kind = iota
	KindBarrier
)

// String returns the lower-case variant name used in logs and events
func (k Kind) String() string {
	switch k {
	case KindGravityWell:
		return "gravity_well"
	case KindBarrier:
		return "barrier"
	default:
		return "unknown"
	}
}

// Obstacle is the closed set of static world objects the craft interacts
// with. The unexported marker keeps the set limited to GravityWell and Barrier.
type Obstacle interface {
	GetID() ID
	GetName() string
	Kind() Kind
	// Anchor returns a representative world position (centre or start point).
	Anchor() physics.Vector2D
	Render(r Renderer)
	obstacle()
}

// Render dispatches to the renderer's well handler
func (w GravityWell) Render(r Renderer) {
	r.RenderWell(&w)
}

// Render dispatches to the renderer's barrier handler
func (b Barrier) Render(r Renderer) {
	r.RenderBarrier(&b)
}

func (GravityWell) obstacle() {}
func (Barrier) obstacle()     {}
