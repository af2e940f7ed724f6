// pkg/config/config.go
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// ErrUnsupportedFormat is returned for config paths that are neither .json nor .toml
var ErrUnsupportedFormat = errors.New("unsupported config format")

// WorldConfig contains the configuration for a simulation session
type WorldConfig struct {
	Map      MapConfig       `json:"map" toml:"map"`
	Craft    CraftConfig     `json:"craft" toml:"craft"`
	Physics  PhysicsConfig   `json:"physics" toml:"physics"`
	Display  DisplayConfig   `json:"display" toml:"display"`
	Wells    []WellConfig    `json:"wells" toml:"wells"`
	Barriers []BarrierConfig `json:"barriers" toml:"barriers"`
}

// MapConfig describes the playable area
type MapConfig struct {
	Width      float64 `json:"width" toml:"width"`
	Height     float64 `json:"height" toml:"height"`
	EdgeMargin float64 `json:"edgeMargin" toml:"edge_margin"`
}

// PointConfig is a world-space coordinate
type PointConfig struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Vector converts the point to a physics vector
func (p PointConfig) Vector() physics.Vector2D {
	return physics.Vector2D{X: p.X, Y: p.Y}
}

// CraftConfig contains the player craft's parameters
type CraftConfig struct {
	Radius float64 `json:"radius" toml:"radius"`
	// Start overrides the spawn point. When nil the craft spawns at the
	// centre of the display.
	Start *PointConfig `json:"start,omitempty" toml:"start,omitempty"`
}

// PhysicsConfig contains the tuning constants of the simulation step
type PhysicsConfig struct {
	ThrustImpulse         float64 `json:"thrustImpulse" toml:"thrust_impulse"`
	MaxVelocity           float64 `json:"maxVelocity" toml:"max_velocity"`
	VelocityDamping       float64 `json:"velocityDamping" toml:"velocity_damping"`
	RotationImpulse       float64 `json:"rotationImpulse" toml:"rotation_impulse"`
	MaxRotationVelocity   float64 `json:"maxRotationVelocity" toml:"max_rotation_velocity"`
	RotationDamping       float64 `json:"rotationDamping" toml:"rotation_damping"`
	BounceDivisor         float64 `json:"bounceDivisor" toml:"bounce_divisor"`
	EdgeSpinDivisor       float64 `json:"edgeSpinDivisor" toml:"edge_spin_divisor"`
	BottomEdgeSpinDivisor float64 `json:"bottomEdgeSpinDivisor" toml:"bottom_edge_spin_divisor"`
	GravityEpsilon        float64 `json:"gravityEpsilon" toml:"gravity_epsilon"`
}

// DisplayConfig contains window settings used by the frontends
type DisplayConfig struct {
	Title     string `json:"title" toml:"title"`
	Width     int    `json:"width" toml:"width"`
	Height    int    `json:"height" toml:"height"`
	FPS       int    `json:"fps" toml:"fps"`
	Resizable bool   `json:"resizable" toml:"resizable"`
}

// WellConfig contains configuration for a gravity well
type WellConfig struct {
	Name   string  `json:"name" toml:"name"`
	X      float64 `json:"x" toml:"x"`
	Y      float64 `json:"y" toml:"y"`
	Radius float64 `json:"radius" toml:"radius"`
	Mass   float64 `json:"mass" toml:"mass"`
	Color  string  `json:"color" toml:"color"`
}

// BarrierConfig contains configuration for a barrier segment
type BarrierConfig struct {
	Name   string  `json:"name" toml:"name"`
	StartX float64 `json:"startX" toml:"start_x"`
	StartY float64 `json:"startY" toml:"start_y"`
	EndX   float64 `json:"endX" toml:"end_x"`
	EndY   float64 `json:"endY" toml:"end_y"`
	Color  string  `json:"color" toml:"color"`
}

// StartPosition returns where the craft spawns
func (c *WorldConfig) StartPosition() physics.Vector2D {
	if c.Craft.Start != nil {
		return c.Craft.Start.Vector()
	}
	return physics.Vector2D{
		X: float64(c.Display.Width) / 2,
		Y: float64(c.Display.Height) / 2,
	}
}

// LoadConfig loads a configuration from a .json or .toml file. Values present
// in the file override DefaultConfig; omitted sections keep their defaults.
func LoadConfig(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()

	// Decoders reuse existing slice elements, so obstacles are decoded into
	// empty lists. Otherwise a file well would inherit the default well's
	// fields at the same index.
	defaultWells, defaultBarriers := config.Wells, config.Barriers
	config.Wells, config.Barriers = nil, nil

	switch format(path) {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if config.Wells == nil {
		config.Wells = defaultWells
	}
	if config.Barriers == nil {
		config.Barriers = defaultBarriers
	}

	return config, nil
}

// SaveConfig saves a configuration to a .json or .toml file
func SaveConfig(config *WorldConfig, path string) error {
	if config == nil {
		return errors.New("config is nil")
	}

	var data []byte
	switch format(path) {
	case ".json":
		encoded, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = encoded
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = buf.Bytes()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func format(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// DefaultConfig returns the default world: three wells and one barrier
func DefaultConfig() *WorldConfig {
	return &WorldConfig{
		Map: MapConfig{
			Width:      DefaultMapWidth,
			Height:     DefaultMapHeight,
			EdgeMargin: DefaultEdgeMargin,
		},
		Craft: CraftConfig{
			Radius: DefaultCraftRadius,
		},
		Physics: DefaultPhysics(),
		Display: DisplayConfig{
			Title:     DefaultTitle,
			Width:     DefaultDisplayWidth,
			Height:    DefaultDisplayHeight,
			FPS:       DefaultFPS,
			Resizable: true,
		},
		Wells: []WellConfig{
			{
				Name:   "Grey Giant",
				X:      900,
				Y:      700,
				Radius: 200,
				Mass:   3.0,
				Color:  "#828282",
			},
			{
				Name:   "Red Dwarf",
				X:      1600,
				Y:      700,
				Radius: 50,
				Mass:   3.0,
				Color:  "#E62937",
			},
			{
				Name:   "Violet",
				X:      1200,
				Y:      1200,
				Radius: 75,
				Mass:   3.0,
				Color:  "#8A2BE2",
			},
		},
		Barriers: []BarrierConfig{
			{
				Name:   "Wall",
				StartX: 200,
				StartY: 200,
				EndX:   400,
				EndY:   400,
				Color:  "#CD853F",
			},
		},
	}
}

// DefaultPhysics returns the stock tuning constants
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		ThrustImpulse:         DefaultThrustImpulse,
		MaxVelocity:           DefaultMaxVelocity,
		VelocityDamping:       DefaultVelocityDamping,
		RotationImpulse:       DefaultRotationImpulse,
		MaxRotationVelocity:   DefaultMaxRotationVelocity,
		RotationDamping:       DefaultRotationDamping,
		BounceDivisor:         DefaultBounceDivisor,
		EdgeSpinDivisor:       DefaultEdgeSpinDivisor,
		BottomEdgeSpinDivisor: DefaultBottomEdgeSpinDivisor,
		GravityEpsilon:        DefaultGravityEpsilon,
	}
}
