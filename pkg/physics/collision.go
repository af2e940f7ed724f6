// pkg/physics/collision.go
package physics

import "math"

// segmentEpsilon is the tolerance used to reject parallel segments and to
// skip bounds checks on axis-aligned segments.
const segmentEpsilon = 1.1920929e-07

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are colliding. Touching circles collide.
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) <= c.Radius+other.Radius
}

// Segment is a line segment between two points.
type Segment struct {
	Start Vector2D
	End   Vector2D
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Angle returns the direction of the segment from Start to End in radians.
func (s Segment) Angle() float64 {
	return s.Start.AngleTo(s.End)
}

// SegmentIntersection returns the point where segments a and b cross.
// Parallel (or nearly parallel) segments never intersect.
func SegmentIntersection(a, b Segment) (Vector2D, bool) {
	div := (b.End.Y-b.Start.Y)*(a.End.X-a.Start.X) - (b.End.X-b.Start.X)*(a.End.Y-a.Start.Y)
	if math.Abs(div) < segmentEpsilon {
		return Vector2D{}, false
	}

	crossA := a.Start.X*a.End.Y - a.Start.Y*a.End.X
	crossB := b.Start.X*b.End.Y - b.Start.Y*b.End.X

	point := Vector2D{
		X: ((b.Start.X-b.End.X)*crossA - (a.Start.X-a.End.X)*crossB) / div,
		Y: ((b.Start.Y-b.End.Y)*crossA - (a.Start.Y-a.End.Y)*crossB) / div,
	}

	if !withinSpan(point.X, a.Start.X, a.End.X) || !withinSpan(point.X, b.Start.X, b.End.X) ||
		!withinSpan(point.Y, a.Start.Y, a.End.Y) || !withinSpan(point.Y, b.Start.Y, b.End.Y) {
		return Vector2D{}, false
	}

	return point, true
}

// withinSpan reports whether value lies between from and to. Degenerate
// spans (an axis-aligned segment) accept any value on that axis.
func withinSpan(value, from, to float64) bool {
	if math.Abs(from-to) <= segmentEpsilon {
		return true
	}
	return value >= math.Min(from, to) && value <= math.Max(from, to)
}
