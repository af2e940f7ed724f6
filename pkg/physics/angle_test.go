package physics

import (
	"math"
	"testing"
)

func TestDegreesRadiansConversion(t *testing.T) {
	tests := []struct {
		degrees float64
		radians float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-45, -math.Pi / 4},
		{360, 2 * math.Pi},
	}

	for _, tt := range tests {
		if got := DegreesToRadians(tt.degrees); !almostEqual(got, tt.radians) {
			t.Errorf("DegreesToRadians(%v) = %v, expected %v", tt.degrees, got, tt.radians)
		}
		if got := RadiansToDegrees(tt.radians); !almostEqual(got, tt.degrees) {
			t.Errorf("RadiansToDegrees(%v) = %v, expected %v", tt.radians, got, tt.degrees)
		}
	}
}

func TestAverageComponents(t *testing.T) {
	if got := AverageComponents(Vector2D{X: 4, Y: 8}); got != 6 {
		t.Errorf("AverageComponents() = %v, expected 6", got)
	}
	if got := AverageComponents(Vector2D{X: -4, Y: 4}); got != 0 {
		t.Errorf("AverageComponents() = %v, expected 0", got)
	}
}

func TestClampMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		limit    float64
		expected float64
	}{
		{"within", 3, 10, 3},
		{"positive_over", 12.5, 10, 10},
		{"negative_over", -12.5, 10, -10},
		{"negative_within", -0.1, 0.25, -0.1},
		{"at_limit", 0.25, 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampMagnitude(tt.value, tt.limit); got != tt.expected {
				t.Errorf("ClampMagnitude(%v, %v) = %v, expected %v", tt.value, tt.limit, got, tt.expected)
			}
		})
	}
}
