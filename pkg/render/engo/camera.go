// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-gravflight/pkg/physics"
)

// CameraSystem keeps the engo camera centred on the craft
type CameraSystem struct {
	// Target to follow
	target    physics.Vector2D
	targetSet bool

	// Camera properties
	zoom    float32
	minZoom float32
	maxZoom float32

	// Smooth following
	followSpeed float32
	smoothing   bool

	// Current camera state
	currentPos physics.Vector2D

	// Viewport size in pixels, used for coordinate conversion
	viewWidth  float32
	viewHeight float32

	dispatch func(engo.Message)
}

// NewCameraSystem creates a camera that snaps to its target every frame
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		zoom:        1.0,
		minZoom:     0.25,
		maxZoom:     3.0,
		followSpeed: 8.0,
		dispatch: func(msg engo.Message) {
			engo.Mailbox.Dispatch(msg)
		},
	}
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Update updates the camera position and zoom
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()
	cs.viewWidth, cs.viewHeight = engo.GameWidth(), engo.GameHeight()

	if cs.targetSet {
		cs.updateCameraPosition(dt)
	}

	cs.applyCameraTransform()
}

// handleZoomInput processes zoom-related input
func (cs *CameraSystem) handleZoomInput() {
	if scrollY := engo.Input.Mouse.ScrollY; scrollY != 0 {
		cs.SetZoom(cs.zoom * (1.0 + scrollY*0.1))
	}
	if engo.Input.Button(buttonResetZoom).JustPressed() {
		cs.SetZoom(1.0)
	}
}

// updateCameraPosition moves the camera toward the target
func (cs *CameraSystem) updateCameraPosition(dt float32) {
	if !cs.smoothing {
		cs.currentPos = cs.target
		return
	}

	step := float64(cs.followSpeed * dt)
	if step > 1 {
		step = 1
	}
	cs.currentPos = cs.currentPos.Add(cs.target.Sub(cs.currentPos).Scale(step))
}

// applyCameraTransform sends the camera position and zoom to engo's camera
func (cs *CameraSystem) applyCameraTransform() {
	for _, msg := range cs.cameraMessages() {
		cs.dispatch(msg)
	}
}

// cameraMessages returns absolute camera moves for the current state. engo's
// camera distance grows as the view zooms out.
func (cs *CameraSystem) cameraMessages() []common.CameraMessage {
	return []common.CameraMessage{
		{Axis: common.XAxis, Value: float32(cs.currentPos.X)},
		{Axis: common.YAxis, Value: float32(cs.currentPos.Y)},
		{Axis: common.ZAxis, Value: 1 / cs.zoom},
	}
}

// SetTarget sets the target position for the camera to follow
func (cs *CameraSystem) SetTarget(target physics.Vector2D) {
	first := !cs.targetSet
	cs.target = target
	cs.targetSet = true

	// Jump straight to the first target.
	if first || !cs.smoothing {
		cs.currentPos = target
	}
}

// ClearTarget clears the camera target
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// SetMapBounds limits the camera to the map
func (cs *CameraSystem) SetMapBounds(width, height float64) {
	common.CameraBounds = engo.AABB{
		Min: engo.Point{X: 0, Y: 0},
		Max: engo.Point{X: float32(width), Y: float32(height)},
	}
}

// SetZoom sets the camera zoom level
func (cs *CameraSystem) SetZoom(zoom float32) {
	cs.zoom = cs.clampZoom(zoom)
}

// GetZoom returns the current zoom level
func (cs *CameraSystem) GetZoom() float32 {
	return cs.zoom
}

// clampZoom ensures zoom is within valid bounds
func (cs *CameraSystem) clampZoom(zoom float32) float32 {
	if zoom < cs.minZoom {
		return cs.minZoom
	}
	if zoom > cs.maxZoom {
		return cs.maxZoom
	}
	return zoom
}

// EnableSmoothing enables or disables camera smoothing
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// GetCurrentPosition returns the current camera position
func (cs *CameraSystem) GetCurrentPosition() physics.Vector2D {
	return cs.currentPos
}

// WorldToScreen converts world coordinates to screen coordinates
func (cs *CameraSystem) WorldToScreen(worldPos physics.Vector2D) physics.Vector2D {
	rel := worldPos.Sub(cs.currentPos).Scale(float64(cs.zoom))
	return rel.Add(physics.Vector2D{X: float64(cs.viewWidth / 2), Y: float64(cs.viewHeight / 2)})
}

// ScreenToWorld converts screen coordinates to world coordinates
func (cs *CameraSystem) ScreenToWorld(screenPos physics.Vector2D) physics.Vector2D {
	rel := screenPos.Sub(physics.Vector2D{X: float64(cs.viewWidth / 2), Y: float64(cs.viewHeight / 2)})
	return rel.Div(float64(cs.zoom)).Add(cs.currentPos)
}
