package config

// Map geometry
const (
	DefaultMapWidth   = 8192.0
	DefaultMapHeight  = 8192.0
	DefaultEdgeMargin = 10.0
)

// Craft handling. These values are tuned for a 30 Hz tick and must not be
// changed casually: trajectories depend on them bit for bit.
const (
	DefaultThrustImpulse       = 0.5
	DefaultMaxVelocity         = 10.0
	DefaultVelocityDamping     = 1.0005
	DefaultRotationImpulse     = 0.02125
	DefaultMaxRotationVelocity = 0.25
	DefaultRotationDamping     = 1.05
	DefaultCraftRadius         = 10.0
)

// Edge reflection
const (
	// DefaultBounceDivisor halves the velocity component that crossed an edge.
	DefaultBounceDivisor = 2.0
	// DefaultEdgeSpinDivisor scales the spin nudge on the left, right and top edges.
	DefaultEdgeSpinDivisor = 20.0
	// DefaultBottomEdgeSpinDivisor scales the spin nudge on the bottom edge (y = height).
	DefaultBottomEdgeSpinDivisor = 12.0
)

// DefaultGravityEpsilon is the distance below which a well exerts no pull.
const DefaultGravityEpsilon = 1e-6

// Display
const (
	DefaultTitle         = "Gravflight"
	DefaultDisplayWidth  = 1024
	DefaultDisplayHeight = 740
	DefaultFPS           = 30
)
