// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-gravflight/pkg/entity"
	"github.com/opd-ai/go-gravflight/pkg/logging"
)

// NullRenderer is an entity.Renderer that only logs what it is asked to draw.
// The headless frontend uses it.
type NullRenderer struct {
	logger *logging.Logger
	ctx    context.Context
	frames uint64
}

// NewNullRenderer creates a new NullRenderer with structured logging.
// A nil logger discards output.
func NewNullRenderer(ctx context.Context, logger *logging.Logger) *NullRenderer {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{
		logger: logger,
		ctx:    ctx,
	}
}

// Frames returns how many frames have been presented
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(d.ctx, "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.frames++
	d.logger.Debug(d.ctx, "Present called", "frame", d.frames)
}

// RenderWell implements entity.Renderer.
func (d *NullRenderer) RenderWell(well *entity.GravityWell) {
	if well == nil {
		d.logger.Debug(d.ctx, "RenderWell called with nil well")
		return
	}
	d.logger.Debug(d.ctx, "RenderWell called",
		"well_id", uint64(well.ID),
		"well_name", well.Name,
		"radius", well.Radius,
	)
}

// RenderBarrier implements entity.Renderer.
func (d *NullRenderer) RenderBarrier(barrier *entity.Barrier) {
	if barrier == nil {
		d.logger.Debug(d.ctx, "RenderBarrier called with nil barrier")
		return
	}
	d.logger.Debug(d.ctx, "RenderBarrier called",
		"barrier_id", uint64(barrier.ID),
		"barrier_name", barrier.Name,
	)
}

// RenderCraft implements entity.Renderer.
func (d *NullRenderer) RenderCraft(craft *entity.Craft) {
	if craft == nil {
		d.logger.Debug(d.ctx, "RenderCraft called with nil craft")
		return
	}
	d.logger.Debug(d.ctx, "RenderCraft called",
		"x", craft.Position.X,
		"y", craft.Position.Y,
		"rotation", craft.Rotation,
		"thrusting", craft.Thrusting,
	)
}
