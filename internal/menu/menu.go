// Package menu implements the in-game pause menu. Opening and closing are
// announced over the signal hub so the player character can freeze and
// unfreeze without the menu knowing about it.
package menu

import (
	"image/color"

	"chosenoffset.com/embervale/internal/logger"
	"chosenoffset.com/embervale/internal/render"
	"chosenoffset.com/embervale/internal/signal"
)

// Status reports whether the menu is on screen.
type Status int

const (
	StatusClosed Status = iota
	StatusOpen
)

func (s Status) String() string {
	switch s {
	case StatusClosed:
		return "Closed"
	case StatusOpen:
		return "Open"
	default:
		return "Unknown"
	}
}

// Signals owned by the menu.
const (
	SignalOpened = "menu_opened"
	SignalClosed = "menu_closed"
)

// Entry is one selectable menu row.
type Entry int

const (
	EntryResume Entry = iota
	EntryLogOut
)

func (e Entry) String() string {
	switch e {
	case EntryResume:
		return "Resume"
	case EntryLogOut:
		return "Log out"
	default:
		return "Unknown"
	}
}

var entries = []Entry{EntryResume, EntryLogOut}

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(px, py int) bool {
	fx, fy := float64(px), float64(py)
	return fx >= r.x && fx < r.x+r.w && fy >= r.y && fy < r.y+r.h
}

// Menu is the pause menu state.
type Menu struct {
	hub      *signal.Hub
	inputMgr render.InputManager

	screenW int
	screenH int

	status    Status
	selected  int
	lastClick bool

	// OnLogout fires after the menu closes itself on a Log out choice.
	OnLogout func()
}

// New creates a closed menu sized for the given screen and declares its
// signals on the hub.
func New(hub *signal.Hub, inputMgr render.InputManager, screenW, screenH int) *Menu {
	hub.Declare(SignalOpened)
	hub.Declare(SignalClosed)
	return &Menu{
		hub:      hub,
		inputMgr: inputMgr,
		screenW:  screenW,
		screenH:  screenH,
	}
}

// Status returns whether the menu is open.
func (m *Menu) Status() Status {
	return m.status
}

// Selected returns the highlighted entry.
func (m *Menu) Selected() Entry {
	return entries[m.selected]
}

// Open shows the menu with the first entry selected and emits menu_opened.
func (m *Menu) Open() {
	if m.status == StatusOpen {
		return
	}
	m.status = StatusOpen
	m.selected = 0

	if err := m.hub.Emit(SignalOpened); err != nil {
		logger.Log.Errorf("emit %s: %v", SignalOpened, err)
	}
}

// Close hides the menu and emits menu_closed.
func (m *Menu) Close() {
	if m.status == StatusClosed {
		return
	}
	m.status = StatusClosed

	if err := m.hub.Emit(SignalClosed); err != nil {
		logger.Log.Errorf("emit %s: %v", SignalClosed, err)
	}
}

// Update handles navigation and activation while the menu is open.
func (m *Menu) Update() {
	if m.status != StatusOpen {
		return
	}

	if m.inputMgr.IsKeyJustPressed(render.KeyUp) || m.inputMgr.IsKeyJustPressed(render.KeyW) {
		m.selected = (m.selected + len(entries) - 1) % len(entries)
	}
	if m.inputMgr.IsKeyJustPressed(render.KeyDown) || m.inputMgr.IsKeyJustPressed(render.KeyS) {
		m.selected = (m.selected + 1) % len(entries)
	}

	mx, my := m.inputMgr.GetCursorPosition()
	clicked := m.inputMgr.IsMouseButtonPressed(render.MouseButtonLeft)
	clickEdge := clicked && !m.lastClick
	m.lastClick = clicked

	for i := range entries {
		if m.entryRect(i).contains(mx, my) {
			m.selected = i
			if clickEdge {
				m.activate(i)
				return
			}
		}
	}

	if m.inputMgr.IsKeyJustPressed(render.KeyEnter) || m.inputMgr.IsKeyJustPressed(render.KeySpace) {
		m.activate(m.selected)
	}
}

func (m *Menu) activate(i int) {
	switch entries[i] {
	case EntryResume:
		m.Close()
	case EntryLogOut:
		m.Close()
		if m.OnLogout != nil {
			m.OnLogout()
		}
	}
}

func (m *Menu) panelRect() rect {
	const w, h = 220, 130
	return rect{
		x: float64(m.screenW-w) / 2,
		y: float64(m.screenH-h) / 2,
		w: w,
		h: h,
	}
}

func (m *Menu) entryRect(i int) rect {
	panel := m.panelRect()
	const rowH = 30
	return rect{
		x: panel.x + 14,
		y: panel.y + 46 + float64(i)*rowH,
		w: panel.w - 28,
		h: rowH - 6,
	}
}

// Draw renders the menu panel centered on screen.
func (m *Menu) Draw(r render.Renderer, screen render.Image) {
	if m.status != StatusOpen {
		return
	}

	panel := m.panelRect()
	bg := color.RGBA{R: 20, G: 20, B: 32, A: 240}
	border := color.RGBA{R: 120, G: 120, B: 150, A: 255}
	titleColor := color.RGBA{R: 240, G: 220, B: 130, A: 255}
	textColor := color.RGBA{R: 210, G: 210, B: 210, A: 255}
	selectedBG := color.RGBA{R: 60, G: 60, B: 90, A: 255}

	fillRect(r, screen, panel, bg)
	r.StrokeRect(screen, float32(panel.x), float32(panel.y), float32(panel.w), float32(panel.h), 2, border)

	title := "Menu"
	tw, _ := r.MeasureText(title)
	r.DrawText(screen, title, int(panel.x+panel.w/2)-tw/2, int(panel.y)+12, titleColor)

	for i, entry := range entries {
		row := m.entryRect(i)
		label := entry.String()
		if i == m.selected {
			fillRect(r, screen, row, selectedBG)
			label = "> " + label
		}
		r.DrawText(screen, label, int(row.x)+8, int(row.y)+5, textColor)
	}
}

func fillRect(r render.Renderer, dst render.Image, rc rect, clr color.Color) {
	r.FillRect(dst, float32(rc.x), float32(rc.y), float32(rc.w), float32(rc.h), clr)
}
