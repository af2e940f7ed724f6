// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-gravflight/pkg/engine"
)

// Button names registered with engo
const (
	buttonThrust      = "thrust"
	buttonRotateLeft  = "rotateLeft"
	buttonRotateRight = "rotateRight"
	buttonQuit        = "quit"
	buttonResetZoom   = "resetZoom"
)

// ButtonReader reports the state of named buttons
type ButtonReader interface {
	Down(name string) bool
	JustPressed(name string) bool
}

// engoButtons reads buttons from engo's global input manager
type engoButtons struct{}

func (engoButtons) Down(name string) bool        { return engo.Input.Button(name).Down() }
func (engoButtons) JustPressed(name string) bool { return engo.Input.Button(name).JustPressed() }

// InputSystem samples the keyboard once per frame
type InputSystem struct {
	buttons ButtonReader
	current engine.Input
}

// NewInputSystem creates an input system. A nil reader uses engo's keyboard.
func NewInputSystem(buttons ButtonReader) *InputSystem {
	if buttons == nil {
		buttons = engoButtons{}
	}
	return &InputSystem{buttons: buttons}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update reads the bound buttons
func (is *InputSystem) Update(dt float32) {
	is.current = engine.Input{
		Thrust:      is.buttons.Down(buttonThrust),
		RotateLeft:  is.buttons.Down(buttonRotateLeft),
		RotateRight: is.buttons.Down(buttonRotateRight),
		Quit:        is.buttons.JustPressed(buttonQuit),
	}
}

// Current returns the input sampled by the last Update
func (is *InputSystem) Current() engine.Input {
	return is.current
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonThrust, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(buttonRotateLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(buttonRotateRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(buttonQuit, engo.KeyEscape)
	engo.Input.RegisterButton(buttonResetZoom, engo.KeyR)
}
