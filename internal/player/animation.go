package player

import (
	"chosenoffset.com/embervale/internal/geom"
	"chosenoffset.com/embervale/internal/input"
	"chosenoffset.com/embervale/internal/logger"
	"chosenoffset.com/embervale/internal/signal"
)

// SignalDirection is owned by the animator and carries the facing to
// persist when the player opens the menu.
const SignalDirection = "player_direction"

// Sprite is the animated sprite the animator drives. Play switches to the
// named clip and is called every frame with the current choice.
type Sprite interface {
	Play(clip string)
}

// Animator selects the sprite clip matching the motion the character
// reports each tick. It remembers the last walk direction so an idle
// character keeps facing the way it walked.
type Animator struct {
	hub    *signal.Hub
	input  input.Source
	sprite Sprite

	status    Status
	direction Direction
}

// NewAnimator creates an animator facing Downwards and declares its signal
// on the hub.
func NewAnimator(hub *signal.Hub, in input.Source, sprite Sprite) *Animator {
	hub.Declare(SignalDirection)
	return &Animator{hub: hub, input: in, sprite: sprite}
}

// Ready restores a remembered facing and shows its idle clip.
func (a *Animator) Ready(facing Direction) {
	a.direction = facing
	a.sprite.Play(IdleClip(facing))
}

// Process runs every frame, whatever the character is doing. A menu press
// reports the current facing so it can be persisted.
func (a *Animator) Process() {
	if a.input.JustPressed(input.ActionMenu) {
		if err := a.hub.Emit(SignalDirection, a.direction); err != nil {
			logger.Log.Errorf("emit %s: %v", SignalDirection, err)
		}
	}
}

// OnPlayerAnimate picks the clip for the reported motion. The checks run in
// x-right, x-left, y-up, y-down order, so a diagonal report lands on its
// horizontal clip. Zero motion plays the idle clip of the last walk
// direction without changing it.
func (a *Animator) OnPlayerAnimate(motion geom.Vec2) {
	switch {
	case motion.X > 0:
		a.direction = DirectionRight
		a.status = StatusWalking
	case motion.X < 0:
		a.direction = DirectionLeft
		a.status = StatusWalking
	case motion.Y < 0:
		a.direction = DirectionUpwards
		a.status = StatusWalking
	case motion.Y > 0:
		a.direction = DirectionDownwards
		a.status = StatusWalking
	default:
		a.status = StatusIdle
	}

	if a.status == StatusIdle {
		a.sprite.Play(IdleClip(a.direction))
		return
	}
	a.sprite.Play(WalkClip(a.direction))
}

// Facing returns the direction the sprite is showing.
func (a *Animator) Facing() Direction {
	return a.direction
}

// IdleClip returns the standing clip name for a facing.
func IdleClip(d Direction) string {
	switch d {
	case DirectionUpwards:
		return "idle back"
	case DirectionLeft:
		return "idle left"
	case DirectionRight:
		return "idle right"
	default:
		return "idle front"
	}
}

// WalkClip returns the walking clip name for a facing.
func WalkClip(d Direction) string {
	switch d {
	case DirectionUpwards:
		return "walk upwards"
	case DirectionLeft:
		return "walk left"
	case DirectionRight:
		return "walk right"
	default:
		return "walk downwards"
	}
}
