// Package dialogue implements the bottom-screen text box shown when the
// player interacts with something. The box pages through its lines one
// interact press at a time and announces itself over the signal hub.
package dialogue

import (
	"image/color"

	"chosenoffset.com/embervale/internal/input"
	"chosenoffset.com/embervale/internal/logger"
	"chosenoffset.com/embervale/internal/render"
	"chosenoffset.com/embervale/internal/signal"
)

// Status reports whether a dialogue is on screen.
type Status int

const (
	StatusInactive Status = iota
	StatusActive
)

func (s Status) String() string {
	switch s {
	case StatusInactive:
		return "Inactive"
	case StatusActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Signals owned by the dialogue box.
const (
	SignalStarted  = "dialogue_started"
	SignalFinished = "dialogue_finished"
)

// Box is the dialogue UI and its paging state.
type Box struct {
	hub   *signal.Hub
	input input.Source

	status Status
	title  string
	lines  []string
	line   int

	// The interact press that opened the box must not also advance it, so
	// the first Update after Open skips input.
	justOpened bool

	// OnAdvance fires when an interact press turns the page. Optional.
	OnAdvance func()
}

// NewBox creates a closed dialogue box and declares its signals on the hub.
func NewBox(hub *signal.Hub, in input.Source) *Box {
	hub.Declare(SignalStarted)
	hub.Declare(SignalFinished)
	return &Box{hub: hub, input: in}
}

// Status returns whether the box is currently shown.
func (b *Box) Status() Status {
	return b.status
}

// Open shows the box with a title and its lines, starting at the first
// line, and emits dialogue_started. A dialogue with no lines shows its
// title as the only line. Opening an already open box restarts it.
func (b *Box) Open(title string, lines []string) {
	if len(lines) == 0 {
		lines = []string{title}
	}
	b.status = StatusActive
	b.title = title
	b.lines = lines
	b.line = 0
	b.justOpened = true

	if err := b.hub.Emit(SignalStarted); err != nil {
		logger.Log.Errorf("emit %s: %v", SignalStarted, err)
	}
}

// Update advances the dialogue on an interact press. Past the last line the
// box closes and emits dialogue_finished.
func (b *Box) Update() {
	if b.status != StatusActive {
		return
	}
	if b.justOpened {
		b.justOpened = false
		return
	}
	if !b.input.JustPressed(input.ActionInteract) {
		return
	}
	if b.line+1 < len(b.lines) {
		b.line++
		if b.OnAdvance != nil {
			b.OnAdvance()
		}
		return
	}
	b.Close()
}

// Close hides the box and emits dialogue_finished.
func (b *Box) Close() {
	if b.status != StatusActive {
		return
	}
	b.status = StatusInactive
	b.title = ""
	b.lines = nil
	b.line = 0

	if err := b.hub.Emit(SignalFinished); err != nil {
		logger.Log.Errorf("emit %s: %v", SignalFinished, err)
	}
}

// Line returns the line currently shown.
func (b *Box) Line() string {
	if b.status != StatusActive || b.line >= len(b.lines) {
		return ""
	}
	return b.lines[b.line]
}

// Title returns the speaker or object name shown above the text.
func (b *Box) Title() string {
	return b.title
}

// Draw renders the box across the bottom of the screen.
func (b *Box) Draw(r render.Renderer, screen render.Image, screenW, screenH int) {
	if b.status != StatusActive {
		return
	}

	const margin = 16
	const height = 96
	x := margin
	y := screenH - height - margin
	w := screenW - 2*margin

	bg := color.RGBA{R: 16, G: 16, B: 28, A: 235}
	border := color.RGBA{R: 120, G: 120, B: 150, A: 255}
	titleColor := color.RGBA{R: 240, G: 220, B: 130, A: 255}
	textColor := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	hintColor := color.RGBA{R: 140, G: 140, B: 160, A: 255}

	r.FillRect(screen, float32(x), float32(y), float32(w), float32(height), bg)
	r.StrokeRect(screen, float32(x), float32(y), float32(w), float32(height), 2, border)

	r.DrawText(screen, b.title, x+12, y+10, titleColor)
	r.DrawText(screen, b.Line(), x+12, y+34, textColor)

	hint := "[Space] Next"
	if b.line+1 >= len(b.lines) {
		hint = "[Space] Close"
	}
	hw, _ := r.MeasureText(hint)
	r.DrawText(screen, hint, x+w-hw-12, y+height-22, hintColor)
}
