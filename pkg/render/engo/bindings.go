// pkg/render/engo/bindings.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-flight/pkg/input"
)

// Binding ties an intent to the engo button that triggers it
type Binding struct {
	Intent input.Intent
	Button string
	Keys   []engo.Key
}

// DefaultBindings are the arrow keys plus WASD, and Escape to quit
func DefaultBindings() []Binding {
	return []Binding{
		{input.TurnLeft, "turnLeft", []engo.Key{engo.KeyArrowLeft, engo.KeyA}},
		{input.TurnRight, "turnRight", []engo.Key{engo.KeyArrowRight, engo.KeyD}},
		{input.Climb, "climb", []engo.Key{engo.KeyArrowUp, engo.KeyW}},
		{input.Descend, "descend", []engo.Key{engo.KeyArrowDown, engo.KeyS}},
		{input.Exit, "exit", []engo.Key{engo.KeyEscape}},
	}
}

// ButtonSource is an input.KeySource backed by engo buttons
type ButtonSource struct {
	buttons map[input.Intent]string
}

// NewButtonSource maps each intent to the button named in bindings
func NewButtonSource(bindings []Binding) *ButtonSource {
	buttons := make(map[input.Intent]string, len(bindings))
	for _, b := range bindings {
		buttons[b.Intent] = b.Button
	}
	return &ButtonSource{buttons: buttons}
}

// ButtonName returns the button bound to i, or "" when unbound
func (s *ButtonSource) ButtonName(i input.Intent) string {
	return s.buttons[i]
}

// Down implements input.KeySource
func (s *ButtonSource) Down(i input.Intent) bool {
	name, ok := s.buttons[i]
	return ok && engo.Input.Button(name).Down()
}

// JustPressed implements input.KeySource
func (s *ButtonSource) JustPressed(i input.Intent) bool {
	name, ok := s.buttons[i]
	return ok && engo.Input.Button(name).JustPressed()
}

// RegisterBindings registers the buttons with engo. It must run inside
// Scene.Setup, once the engine exists.
func RegisterBindings(bindings []Binding) {
	for _, b := range bindings {
		engo.Input.RegisterButton(b.Button, b.Keys...)
	}
}
