// pkg/physics/collision_test.go
package physics

import (
	"testing"
)

func TestCircle_Collides(t *testing.T) {
	tests := []struct {
		name     string
		circle1  Circle
		circle2  Circle
		expected bool
	}{
		{
			name:     "circles_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "circles_overlapping",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 5, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "circles_not_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 15, Y: 0}, Radius: 5},
			expected: false,
		},
		{
			name:     "circles_same_position",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 3},
			circle2:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 2},
			expected: true,
		},
		{
			name:     "craft_inside_well",
			circle1:  Circle{Center: Vector2D{X: 1600, Y: 700}, Radius: 50},
			circle2:  Circle{Center: Vector2D{X: 1640, Y: 720}, Radius: 10},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.circle1.Collides(tt.circle2)
			if result != tt.expected {
				t.Errorf("Circle.Collides() = %v, expected %v", result, tt.expected)
			}
			if tt.circle2.Collides(tt.circle1) != result {
				t.Errorf("Circle.Collides() is not symmetric")
			}
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	barrier := Segment{Start: Vector2D{X: 200, Y: 200}, End: Vector2D{X: 400, Y: 400}}

	tests := []struct {
		name      string
		a         Segment
		b         Segment
		wantHit   bool
		wantPoint Vector2D
	}{
		{
			name:      "vertical_path_crosses_diagonal",
			a:         barrier,
			b:         Segment{Start: Vector2D{X: 300, Y: 100}, End: Vector2D{X: 300, Y: 500}},
			wantHit:   true,
			wantPoint: Vector2D{X: 300, Y: 300},
		},
		{
			name:      "argument_order_irrelevant",
			a:         Segment{Start: Vector2D{X: 300, Y: 100}, End: Vector2D{X: 300, Y: 500}},
			b:         barrier,
			wantHit:   true,
			wantPoint: Vector2D{X: 300, Y: 300},
		},
		{
			name:    "path_stops_short",
			a:       barrier,
			b:       Segment{Start: Vector2D{X: 300, Y: 100}, End: Vector2D{X: 300, Y: 250}},
			wantHit: false,
		},
		{
			name:    "path_on_one_side",
			a:       barrier,
			b:       Segment{Start: Vector2D{X: 350, Y: 100}, End: Vector2D{X: 450, Y: 250}},
			wantHit: false,
		},
		{
			name:    "parallel",
			a:       barrier,
			b:       Segment{Start: Vector2D{X: 210, Y: 200}, End: Vector2D{X: 410, Y: 400}},
			wantHit: false,
		},
		{
			name:    "line_crosses_beyond_segment_end",
			a:       barrier,
			b:       Segment{Start: Vector2D{X: 500, Y: 400}, End: Vector2D{X: 500, Y: 600}},
			wantHit: false,
		},
		{
			name:      "horizontal_path",
			a:         barrier,
			b:         Segment{Start: Vector2D{X: 100, Y: 250}, End: Vector2D{X: 400, Y: 250}},
			wantHit:   true,
			wantPoint: Vector2D{X: 250, Y: 250},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, hit := SegmentIntersection(tt.a, tt.b)
			if hit != tt.wantHit {
				t.Fatalf("SegmentIntersection() hit = %v, expected %v (point %v)", hit, tt.wantHit, point)
			}
			if hit && (!almostEqual(point.X, tt.wantPoint.X) || !almostEqual(point.Y, tt.wantPoint.Y)) {
				t.Errorf("SegmentIntersection() point = %v, expected %v", point, tt.wantPoint)
			}
		})
	}
}

func TestSegment_LengthAngle(t *testing.T) {
	s := Segment{Start: Vector2D{X: 0, Y: 0}, End: Vector2D{X: 0, Y: 4}}
	if s.Length() != 4 {
		t.Errorf("Length() = %v, expected 4", s.Length())
	}
	if !almostEqual(RadiansToDegrees(s.Angle()), 90) {
		t.Errorf("Angle() = %v degrees, expected 90", RadiansToDegrees(s.Angle()))
	}
}
