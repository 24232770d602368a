package player

import (
	"chosenoffset.com/embervale/internal/dialogue"
	"chosenoffset.com/embervale/internal/geom"
	"chosenoffset.com/embervale/internal/input"
	"chosenoffset.com/embervale/internal/logger"
	"chosenoffset.com/embervale/internal/menu"
	"chosenoffset.com/embervale/internal/signal"
)

// Speed is the walk speed in pixels per second.
const Speed = 180.0

// InteractMarker is the child name an object must carry for the player to
// interact with it.
const InteractMarker = "Interact"

// Signals owned by the character.
const (
	SignalAnimate     = "animate"
	SignalInteracting = "player_interacting"
	SignalPosition    = "player_position"
)

// HandleInteraction info values with dedicated transitions. Any other value
// returns the character to Idle.
const (
	InfoOnDialogue = "on_dialogue"
	InfoMenuActive = "menu_active"
)

// Collider is whatever a move ran into.
type Collider interface {
	HasChild(name string) bool
}

// Mover moves a collision body through the world on the character's behalf.
// MoveAndCollide returns the collider hit during the move, or nil.
type Mover interface {
	MoveAndCollide(motion geom.Vec2) Collider
	Position() geom.Vec2
	SetPosition(pos geom.Vec2)
}

// Character drives the player: it resolves held movement keys into motion,
// walks the body through the world, opens interactions, and reports its
// activity over the signal hub.
type Character struct {
	hub   *signal.Hub
	input input.Source
	mover Mover

	status          Status
	menuStatus      menu.Status
	dialogueStatus  dialogue.Status
	motion          geom.Vec2
	currentPosition geom.Vec2
}

// NewCharacter creates an idle character and declares its signals on the hub.
func NewCharacter(hub *signal.Hub, in input.Source, mover Mover) *Character {
	hub.Declare(SignalAnimate)
	hub.Declare(SignalInteracting)
	hub.Declare(SignalPosition)
	return &Character{hub: hub, input: in, mover: mover}
}

// Ready places the character at pos before the first tick.
func (c *Character) Ready(pos geom.Vec2) {
	c.mover.SetPosition(pos)
	c.currentPosition = pos
}

// ResolveMotion maps the held movement actions to a motion vector and
// status. One axis wins per frame: left beats right beats up beats down,
// and the losing axis is zeroed. No held action means Idle with zero motion.
func ResolveMotion(in input.Source) (geom.Vec2, Status) {
	switch {
	case in.Pressed(input.ActionLeft):
		return geom.Vec2{X: -Speed}, StatusWalking
	case in.Pressed(input.ActionRight):
		return geom.Vec2{X: Speed}, StatusWalking
	case in.Pressed(input.ActionUp):
		return geom.Vec2{Y: -Speed}, StatusWalking
	case in.Pressed(input.ActionDown):
		return geom.Vec2{Y: Speed}, StatusWalking
	default:
		return geom.Vec2{}, StatusIdle
	}
}

// PhysicsProcess runs one fixed tick. It first reports the previous tick's
// motion on the animate signal, so the animation always trails the move by
// one frame. While interacting that report is all that happens. Otherwise
// the character resolves fresh motion, moves, and handles the interact and
// menu presses.
func (c *Character) PhysicsProcess(delta float64) {
	c.emit(SignalAnimate, c.motion)

	if c.status == StatusInteracting {
		return
	}

	c.motion, c.status = ResolveMotion(c.input)

	collider := c.mover.MoveAndCollide(c.motion.Scaled(delta))
	c.currentPosition = c.mover.Position()

	if c.input.JustPressed(input.ActionInteract) {
		c.interact(collider)
	}
	if c.input.JustPressed(input.ActionMenu) {
		c.emit(SignalPosition, c.currentPosition.X, c.currentPosition.Y)
	}
}

// interact opens an interaction with the collider hit this tick, if any.
// Walls and plain objects pass through here as well; only a collider
// carrying the Interact marker opens anything, and never while a dialogue
// is already up.
func (c *Character) interact(collider Collider) {
	if collider == nil {
		return
	}
	if !c.isValidInteraction(collider) {
		return
	}
	c.status = StatusInteracting
	c.emit(SignalInteracting)
}

func (c *Character) isValidInteraction(collider Collider) bool {
	return collider.HasChild(InteractMarker) && c.dialogueStatus == dialogue.StatusInactive
}

// HandleInteraction transitions the character in response to UI activity.
// Dialogue and menu openings freeze the character in place. Anything else,
// including dialogue and menu closings, releases it back to Idle.
func (c *Character) HandleInteraction(info string) {
	switch info {
	case InfoOnDialogue:
		c.status = StatusInteracting
		c.motion = geom.Vec2{}
		c.dialogueStatus = dialogue.StatusActive
	case InfoMenuActive:
		c.status = StatusInteracting
		c.motion = geom.Vec2{}
		c.menuStatus = menu.StatusOpen
	default:
		c.status = StatusIdle
		c.dialogueStatus = dialogue.StatusInactive
		c.menuStatus = menu.StatusClosed
	}
}

// Status returns the character's current behavior state.
func (c *Character) Status() Status {
	return c.status
}

// Motion returns the last resolved motion vector in pixels per second.
func (c *Character) Motion() geom.Vec2 {
	return c.motion
}

// Position returns the character's current world position.
func (c *Character) Position() geom.Vec2 {
	return c.currentPosition
}

// DialogueStatus returns the character's view of the dialogue box.
func (c *Character) DialogueStatus() dialogue.Status {
	return c.dialogueStatus
}

// MenuStatus returns the character's view of the menu.
func (c *Character) MenuStatus() menu.Status {
	return c.menuStatus
}

func (c *Character) emit(name string, args ...any) {
	if err := c.hub.Emit(name, args...); err != nil {
		logger.Log.Errorf("emit %s: %v", name, err)
	}
}
