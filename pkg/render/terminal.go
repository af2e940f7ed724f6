package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-gravflight/pkg/engine"
	"github.com/opd-ai/go-gravflight/pkg/entity"
	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// CellSurface is the part of tcell.Screen the terminal renderer draws on
type CellSurface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// cellAspect is how much taller a terminal cell is than it is wide
const cellAspect = 2.0

var (
	styleDefault = tcell.StyleDefault
	styleBorder  = styleDefault.Foreground(tcell.ColorDarkGray)
	styleOrbit   = styleDefault.Foreground(tcell.ColorGray)
	styleCraft   = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleExhaust = styleDefault.Foreground(tcell.ColorOrange)
	styleStatus  = styleDefault.Foreground(tcell.ColorLime)
)

type cell struct {
	r     rune
	style tcell.Style
}

// TerminalRenderer provides an ASCII rendering of the world on a cell surface.
// The view is centred on the camera target; scale is world units per column.
type TerminalRenderer struct {
	surface   CellSurface
	width     int
	height    int
	buffer    [][]cell
	scale     float64
	centerPos physics.Vector2D
	mapWidth  float64
	mapHeight float64
	status    string
}

// NewTerminalRenderer creates a new terminal renderer drawing onto surface
func NewTerminalRenderer(surface CellSurface, scale float64) *TerminalRenderer {
	if scale <= 0 {
		scale = 1
	}
	r := &TerminalRenderer{
		surface: surface,
		scale:   scale,
	}
	r.resize()
	return r
}

// SetCenter sets the center position of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// SetMapSize sets the map extent used for the border
func (r *TerminalRenderer) SetMapSize(width, height float64) {
	r.mapWidth = width
	r.mapHeight = height
}

// DrawFrame centres the view on the frame's camera target and renders it
func (r *TerminalRenderer) DrawFrame(f engine.Frame) {
	r.SetCenter(f.CameraTarget)
	r.SetMapSize(f.MapWidth, f.MapHeight)
	r.status = fmt.Sprintf(" tick %d  x %.0f  y %.0f ", f.Tick, f.Craft.Position.X, f.Craft.Position.Y)
	f.Render(r)
}

func (r *TerminalRenderer) resize() {
	width, height := r.surface.Size()
	if width == r.width && height == r.height && r.buffer != nil {
		return
	}
	r.width, r.height = width, height
	r.buffer = make([][]cell, height)
	for i := range r.buffer {
		r.buffer[i] = make([]cell, width)
	}
}

// worldToScreen converts world coordinates to screen coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := math.Floor((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2)
	screenY := math.Floor((pos.Y-r.centerPos.Y)/(r.scale*cellAspect) + float64(r.height)/2)
	return int(screenX), int(screenY)
}

// screenToWorld returns the world position at the centre of a cell
func (r *TerminalRenderer) screenToWorld(x, y int) physics.Vector2D {
	return physics.Vector2D{
		X: (float64(x)+0.5-float64(r.width)/2)*r.scale + r.centerPos.X,
		Y: (float64(y)+0.5-float64(r.height)/2)*r.scale*cellAspect + r.centerPos.Y,
	}
}

func (r *TerminalRenderer) put(x, y int, ch rune, style tcell.Style) {
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = cell{r: ch, style: style}
	}
}

func (r *TerminalRenderer) putWorld(pos physics.Vector2D, ch rune, style tcell.Style) {
	x, y := r.worldToScreen(pos)
	r.put(x, y, ch, style)
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	r.resize()
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = cell{r: ' ', style: styleDefault}
		}
	}
	r.drawBorder()
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	for i, ch := range r.status {
		r.put(i, 0, ch, styleStatus)
	}
	for y := range r.buffer {
		for x, c := range r.buffer[y] {
			r.surface.SetContent(x, y, c.r, nil, c.style)
		}
	}
	r.surface.Show()
}

// drawBorder draws the visible parts of the map edge
func (r *TerminalRenderer) drawBorder() {
	if r.mapWidth <= 0 || r.mapHeight <= 0 {
		return
	}
	left, top := r.worldToScreen(physics.Vector2D{X: 0, Y: 0})
	right, bottom := r.worldToScreen(physics.Vector2D{X: r.mapWidth, Y: r.mapHeight})

	for x := max(left, 0); x <= min(right, r.width-1); x++ {
		r.put(x, top, '-', styleBorder)
		r.put(x, bottom, '-', styleBorder)
	}
	for y := max(top, 0); y <= min(bottom, r.height-1); y++ {
		r.put(left, y, '|', styleBorder)
		r.put(right, y, '|', styleBorder)
	}
	r.put(left, top, '+', styleBorder)
	r.put(right, top, '+', styleBorder)
	r.put(left, bottom, '+', styleBorder)
	r.put(right, bottom, '+', styleBorder)
}

// RenderWell implements entity.Renderer
func (r *TerminalRenderer) RenderWell(well *entity.GravityWell) {
	style := styleDefault.Foreground(tcell.GetColor(well.Color))

	r.drawRing(well.Position, well.InfluenceRadius(), '.', styleOrbit)

	// Fill every cell whose centre lies on the body.
	minX, minY := r.worldToScreen(well.Position.Sub(physics.Vector2D{X: well.Radius, Y: well.Radius}))
	maxX, maxY := r.worldToScreen(well.Position.Add(physics.Vector2D{X: well.Radius, Y: well.Radius}))
	for y := max(minY, 0); y <= min(maxY, r.height-1); y++ {
		for x := max(minX, 0); x <= min(maxX, r.width-1); x++ {
			if r.screenToWorld(x, y).Distance(well.Position) <= well.Radius {
				r.put(x, y, 'O', style)
			}
		}
	}
	// Small wells still show up as one cell.
	r.putWorld(well.Position, 'O', style)
}

// drawRing plots a circle outline with enough samples to leave no gaps
func (r *TerminalRenderer) drawRing(center physics.Vector2D, radius float64, ch rune, style tcell.Style) {
	steps := int(2*math.Pi*radius/r.scale) + 8
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		r.putWorld(center.Add(physics.Vector2D{X: radius, Y: 0}.Rotate(angle)), ch, style)
	}
}

// RenderBarrier implements entity.Renderer
func (r *TerminalRenderer) RenderBarrier(barrier *entity.Barrier) {
	style := styleDefault.Foreground(tcell.GetColor(barrier.Color))
	seg := barrier.Segment()

	steps := int(seg.Length()/r.scale) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.putWorld(seg.Start.Add(seg.End.Sub(seg.Start).Scale(t)), '#', style)
	}
}

// RenderCraft implements entity.Renderer
func (r *TerminalRenderer) RenderCraft(craft *entity.Craft) {
	heading := Heading(craft.Rotation)

	if craft.Thrusting {
		// One cell behind the nose.
		behind := craft.Position.Sub(heading.Scale(r.scale * cellAspect))
		r.putWorld(behind, '*', styleExhaust)
	}
	r.putWorld(craft.Position, HeadingRune(craft.Rotation), styleCraft)
}

// Heading returns the unit direction the craft travels when thrusting at
// the given rotation. Velocity is subtracted from position, so this is the
// negated thrust vector.
func Heading(rotation float64) physics.Vector2D {
	return physics.Vector2D{X: 0, Y: -1}.Rotate(rotation)
}

var headingRunes = [8]rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}

// HeadingRune picks an arrow for the craft's heading in screen space
func HeadingRune(rotation float64) rune {
	angle := Heading(rotation).Angle()
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingRunes[octant]
}
