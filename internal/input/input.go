// Package input maps raw engine keys onto the named actions the gameplay
// code reads, so scripts never poll the keyboard directly.
package input

import "chosenoffset.com/embervale/internal/render"

// Action identifies a named gameplay input.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionInteract
	ActionMenu
)

// String returns the binding-table name of the action.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionInteract:
		return "Interact"
	case ActionMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Source answers pressed-state queries for actions. Gameplay code takes a
// Source so tests can substitute scripted input.
type Source interface {
	// Pressed reports whether any key bound to the action is held down.
	Pressed(a Action) bool
	// JustPressed reports whether a key bound to the action went down this frame.
	JustPressed(a Action) bool
}

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]render.Key

// DefaultBindings returns the standard layout: arrows or WASD to move,
// Space or E to interact, Escape or M for the menu.
func DefaultBindings() Bindings {
	return Bindings{
		ActionLeft:     {render.KeyLeft, render.KeyA},
		ActionRight:    {render.KeyRight, render.KeyD},
		ActionUp:       {render.KeyUp, render.KeyW},
		ActionDown:     {render.KeyDown, render.KeyS},
		ActionInteract: {render.KeySpace, render.KeyE},
		ActionMenu:     {render.KeyEscape, render.KeyM},
	}
}

// Keyboard is a Source that reads a render.InputManager through a binding table.
type Keyboard struct {
	input    render.InputManager
	bindings Bindings
}

// NewKeyboard creates a keyboard source. A nil bindings table selects the
// default layout.
func NewKeyboard(input render.InputManager, bindings Bindings) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Keyboard{input: input, bindings: bindings}
}

// Pressed reports whether any key bound to the action is held down.
func (k *Keyboard) Pressed(a Action) bool {
	for _, key := range k.bindings[a] {
		if k.input.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// JustPressed reports whether any key bound to the action went down this frame.
func (k *Keyboard) JustPressed(a Action) bool {
	for _, key := range k.bindings[a] {
		if k.input.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
