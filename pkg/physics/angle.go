package physics

import "math"

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(radians float64) float64 {
	return radians * (180.0 / math.Pi)
}

// AverageComponents returns the mean of the vector's two components.
func AverageComponents(v Vector2D) float64 {
	return (v.X + v.Y) / 2.0
}

// ClampMagnitude limits |value| to limit while keeping its sign.
func ClampMagnitude(value, limit float64) float64 {
	return math.Copysign(math.Min(math.Abs(value), limit), value)
}
