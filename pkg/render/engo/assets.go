// pkg/render/engo/assets.go
package engo

import (
	"image/color"
	"strconv"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// Everything is drawn from engo's built-in shapes, so there are no files to
// preload.
var (
	colorCraft   color.Color = color.White
	colorExhaust color.Color = color.RGBA{255, 161, 0, 255}
	colorBorder  color.Color = color.RGBA{230, 41, 55, 255}
	colorMarker  color.Color = color.RGBA{230, 41, 55, 255}
	colorOrbit   color.Color = color.RGBA{130, 130, 130, 255}
	colorWell    color.Color = color.RGBA{130, 130, 130, 255}
	colorBarrier color.Color = color.RGBA{205, 133, 63, 255}
)

// Draw order, back to front
const (
	zBorder float32 = iota
	zOrbit
	zObstacle
	zExhaust
	zCraft
)

// Craft and flame geometry in world units
const (
	craftWidth   = 14.0
	craftHeight  = 21.0
	craftNose    = 14.0
	flameWidth   = 16.0
	flameHeight  = 18.0
	flameReach   = 24.0
	barrierWidth = 2.0
	borderWidth  = 1.0
)

// Marker is the fixed red disc drawn near the map origin
var (
	markerCenter = physics.Vector2D{X: 100, Y: 100}
	markerRadius = 30.0
)

// sprite bundles the components common.RenderSystem needs for one shape
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

func newSprite(drawable common.Drawable, c color.Color, space common.SpaceComponent, z float32) *sprite {
	s := &sprite{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: drawable,
			Color:    c,
		},
		SpaceComponent: space,
	}
	s.RenderComponent.SetZIndex(z)
	return s
}

func filledCircle() common.Drawable {
	return common.Circle{}
}

func ring(width float32, c color.Color) common.Drawable {
	return common.Circle{BorderWidth: width, BorderColor: c}
}

func solidRect() common.Drawable {
	return common.Rectangle{}
}

func triangle() common.Drawable {
	return common.Triangle{TriangleType: common.TriangleIsosceles}
}

// parseColor converts "#RRGGBB" to an opaque color. Anything else yields
// fallback.
func parseColor(hex string, fallback color.Color) color.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return fallback
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func toPoint(v physics.Vector2D) engo.Point {
	return engo.Point{X: float32(v.X), Y: float32(v.Y)}
}

// circleSpace returns the bounding box of a circle
func circleSpace(center physics.Vector2D, radius float64) common.SpaceComponent {
	return common.SpaceComponent{
		Position: toPoint(center.Sub(physics.Vector2D{X: radius, Y: radius})),
		Width:    float32(2 * radius),
		Height:   float32(2 * radius),
	}
}

// pivotSpace places a width x height box rotated by rotation radians about
// anchor. offset is the box's top-left corner relative to anchor before
// rotation. engo rotates a SpaceComponent about its Position, so the corner
// is rotated here and the box is rotated by the same angle at draw time.
func pivotSpace(anchor, offset physics.Vector2D, width, height, rotation float64) common.SpaceComponent {
	return common.SpaceComponent{
		Position: toPoint(anchor.Add(offset.Rotate(rotation))),
		Width:    float32(width),
		Height:   float32(height),
		Rotation: float32(physics.RadiansToDegrees(rotation)),
	}
}

// barrierSpace lays a thin rectangle along a segment
func barrierSpace(seg physics.Segment) common.SpaceComponent {
	return pivotSpace(seg.Start, physics.Vector2D{X: 0, Y: -barrierWidth / 2}, seg.Length(), barrierWidth, seg.Angle())
}

// craftSpace places the craft triangle with its nose along the heading
func craftSpace(pos physics.Vector2D, rotation float64) common.SpaceComponent {
	offset := physics.Vector2D{X: -craftWidth / 2, Y: -craftNose}
	return pivotSpace(pos, offset, craftWidth, craftHeight, rotation)
}

// flameSpace places the exhaust triangle behind the craft, shrunk by scale.
// The flame points backwards, so it is laid out in the reversed frame.
func flameSpace(pos physics.Vector2D, rotation, scale float64) common.SpaceComponent {
	offset := physics.Vector2D{X: -flameWidth / 2, Y: -flameReach}.Div(scale)
	return pivotSpace(pos, offset, flameWidth/scale, flameHeight/scale, rotation+physics.DegreesToRadians(180))
}

// borderSpaces returns the four edges of a width x height map
func borderSpaces(width, height float64) []common.SpaceComponent {
	w, h := float32(width), float32(height)
	return []common.SpaceComponent{
		{Position: engo.Point{X: 0, Y: 0}, Width: w, Height: borderWidth},
		{Position: engo.Point{X: 0, Y: h}, Width: w + borderWidth, Height: borderWidth},
		{Position: engo.Point{X: 0, Y: 0}, Width: borderWidth, Height: h},
		{Position: engo.Point{X: w, Y: 0}, Width: borderWidth, Height: h},
	}
}

// FlickerScale maps a uniform sample in [0,1) to the flame's shrink factor
func FlickerScale(sample float64) float64 {
	return 1.125 + (sample-0.25)/3
}
