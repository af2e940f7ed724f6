// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math/rand/v2"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravflight/pkg/engine"
	"github.com/opd-ai/go-gravflight/pkg/entity"
)

// EntitySink receives the shapes the renderer creates. *common.RenderSystem
// satisfies it.
type EntitySink interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
}

type wellSprites struct {
	body  *sprite
	orbit *sprite
}

// EngoRenderer implements entity.Renderer using the Engo game engine.
// Obstacles get their ECS entities the first time they are drawn; the craft
// and its flame are moved every frame.
type EngoRenderer struct {
	sink EntitySink

	wells    map[entity.ID]wellSprites
	barriers map[entity.ID]*sprite
	craft    *sprite
	flame    *sprite
	border   []*sprite
	marker   *sprite

	// flicker returns a uniform sample in [0,1)
	flicker func() float64
	frames  uint64
}

// NewEngoRenderer creates a renderer that adds its shapes to sink
func NewEngoRenderer(sink EntitySink) *EngoRenderer {
	return &EngoRenderer{
		sink:     sink,
		wells:    make(map[entity.ID]wellSprites),
		barriers: make(map[entity.ID]*sprite),
		flicker:  rand.Float64,
	}
}

func (r *EngoRenderer) add(s *sprite) {
	r.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
}

// DrawFrame draws the map decorations once and then renders the frame
func (r *EngoRenderer) DrawFrame(f engine.Frame) {
	if r.border == nil && f.MapWidth > 0 && f.MapHeight > 0 {
		r.drawMap(f.MapWidth, f.MapHeight)
	}
	f.Render(r)
}

func (r *EngoRenderer) drawMap(width, height float64) {
	for _, space := range borderSpaces(width, height) {
		s := newSprite(solidRect(), colorBorder, space, zBorder)
		r.border = append(r.border, s)
		r.add(s)
	}
	r.marker = newSprite(filledCircle(), colorMarker, circleSpace(markerCenter, markerRadius), zObstacle)
	r.add(r.marker)
}

// Frames returns how many frames have been presented
func (r *EngoRenderer) Frames() uint64 {
	return r.frames
}

// Clear implements entity.Renderer. engo redraws every entity each frame,
// so there is nothing to erase.
func (r *EngoRenderer) Clear() {}

// Present implements entity.Renderer
func (r *EngoRenderer) Present() {
	r.frames++
}

// RenderWell implements entity.Renderer
func (r *EngoRenderer) RenderWell(well *entity.GravityWell) {
	if _, ok := r.wells[well.ID]; ok {
		return
	}

	orbit := newSprite(ring(1, colorOrbit), color.Transparent, circleSpace(well.Position, well.InfluenceRadius()), zOrbit)
	body := newSprite(filledCircle(), parseColor(well.Color, colorWell), circleSpace(well.Position, well.Radius), zObstacle)
	r.add(orbit)
	r.add(body)
	r.wells[well.ID] = wellSprites{body: body, orbit: orbit}
}

// RenderBarrier implements entity.Renderer
func (r *EngoRenderer) RenderBarrier(barrier *entity.Barrier) {
	if _, ok := r.barriers[barrier.ID]; ok {
		return
	}

	s := newSprite(solidRect(), parseColor(barrier.Color, colorBarrier), barrierSpace(barrier.Segment()), zObstacle)
	r.add(s)
	r.barriers[barrier.ID] = s
}

// RenderCraft implements entity.Renderer
func (r *EngoRenderer) RenderCraft(craft *entity.Craft) {
	if r.craft == nil {
		r.craft = newSprite(triangle(), colorCraft, craftSpace(craft.Position, craft.Rotation), zCraft)
		r.flame = newSprite(triangle(), colorExhaust, flameSpace(craft.Position, craft.Rotation, 1), zExhaust)
		r.add(r.flame)
		r.add(r.craft)
	}

	r.craft.SpaceComponent = craftSpace(craft.Position, craft.Rotation)

	r.flame.RenderComponent.Hidden = !craft.Thrusting
	if craft.Thrusting {
		r.flame.SpaceComponent = flameSpace(craft.Position, craft.Rotation, FlickerScale(r.flicker()))
	}
}
