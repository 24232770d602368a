package login

import (
	"image/color"
	"strings"
	"unicode"

	"chosenoffset.com/embervale/internal/logger"
	"chosenoffset.com/embervale/internal/render"
)

const maxFieldRunes = 24

// Focus order: username, password, login button.
const (
	focusUsername = iota
	focusPassword
	focusButton
	focusCount
)

type field struct {
	label  string
	value  []rune
	masked bool
}

func (f *field) text() string {
	return string(f.value)
}

func (f *field) display() string {
	if f.masked {
		return strings.Repeat("*", len(f.value))
	}
	return f.text()
}

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(px, py int) bool {
	fx, fy := float64(px), float64(py)
	return fx >= r.x && fx < r.x+r.w && fy >= r.y && fy < r.y+r.h
}

// Screen is the login form. Tab cycles focus through the fields and the
// button, typed characters go to the focused field, and Enter either
// advances focus or submits from the button.
type Screen struct {
	renderer render.Renderer
	inputMgr render.InputManager

	screenW int
	screenH int

	username field
	password field

	focus     int
	lastClick bool
	status    []string

	// OnLogin fires with the authenticated account.
	OnLogin func(account *Account)
	// OnDenied fires when a submit is rejected. Optional.
	OnDenied func()
}

// NewScreen creates an empty login form sized for the given screen.
func NewScreen(renderer render.Renderer, inputMgr render.InputManager, screenW, screenH int) *Screen {
	return &Screen{
		renderer: renderer,
		inputMgr: inputMgr,
		screenW:  screenW,
		screenH:  screenH,
		username: field{label: "Username"},
		password: field{label: "Password", masked: true},
	}
}

// Reset clears both fields and any status messages.
func (s *Screen) Reset() {
	s.username.value = nil
	s.password.value = nil
	s.focus = focusUsername
	s.status = nil
}

// Update handles one frame of form input.
func (s *Screen) Update() {
	s.handleFocus()
	s.handleText()
	s.handleMouse()

	if s.inputMgr.IsKeyJustPressed(render.KeyEnter) {
		s.activate()
	}
}

func (s *Screen) handleFocus() {
	if !s.inputMgr.IsKeyJustPressed(render.KeyTab) {
		return
	}
	if s.inputMgr.IsKeyPressed(render.KeyShift) {
		s.focus = (s.focus + focusCount - 1) % focusCount
		return
	}
	s.focus = (s.focus + 1) % focusCount
}

func (s *Screen) handleText() {
	f := s.focusedField()
	if f == nil {
		return
	}

	for _, r := range s.inputMgr.AppendInputChars(nil) {
		if !unicode.IsPrint(r) {
			continue
		}
		if len(f.value) >= maxFieldRunes {
			break
		}
		f.value = append(f.value, r)
	}

	if s.inputMgr.IsKeyJustPressed(render.KeyBackspace) && len(f.value) > 0 {
		f.value = f.value[:len(f.value)-1]
	}
}

func (s *Screen) handleMouse() {
	clicked := s.inputMgr.IsMouseButtonPressed(render.MouseButtonLeft)
	clickEdge := clicked && !s.lastClick
	s.lastClick = clicked
	if !clickEdge {
		return
	}

	mx, my := s.inputMgr.GetCursorPosition()
	switch {
	case s.fieldRect(focusUsername).contains(mx, my):
		s.focus = focusUsername
	case s.fieldRect(focusPassword).contains(mx, my):
		s.focus = focusPassword
	case s.buttonRect().contains(mx, my):
		s.focus = focusButton
		s.submit()
	}
}

// activate advances focus through the fields; from the button it submits.
func (s *Screen) activate() {
	if s.focus == focusButton {
		s.submit()
		return
	}
	s.focus++
}

func (s *Screen) focusedField() *field {
	switch s.focus {
	case focusUsername:
		return &s.username
	case focusPassword:
		return &s.password
	default:
		return nil
	}
}

func (s *Screen) submit() {
	username := s.username.text()
	password := s.password.text()

	var msgs []string
	if username == "" {
		msgs = append(msgs, "Provide an username")
	}
	if password == "" {
		msgs = append(msgs, "Provide a password")
	}

	usernameOK, passwordOK, err := CheckCredentials(&username, &password)
	if err != nil {
		logger.Log.Errorf("credential check: %v", err)
		s.deny(append(msgs, "Wrong credentials. Try again."))
		return
	}

	switch {
	case usernameOK && passwordOK:
		account := NewAccount(username, password, initialLevel)
		logger.Log.Infof("login granted: username=%s level=%d", account.Username, account.Level)
		s.status = nil
		if s.OnLogin != nil {
			s.OnLogin(account)
		}
	case usernameOK:
		s.deny(append(msgs, "Wrong password. Try again."))
	default:
		s.deny(append(msgs, "Wrong credentials. Try again."))
	}
}

func (s *Screen) deny(msgs []string) {
	s.status = msgs
	logger.Log.Infof("login denied: %s", strings.Join(msgs, "; "))
	if s.OnDenied != nil {
		s.OnDenied()
	}
}

func (s *Screen) fieldRect(focus int) rect {
	const w, h = 280, 28
	x := float64(s.screenW-w) / 2
	y := 150.0
	if focus == focusPassword {
		y = 214
	}
	return rect{x: x, y: y, w: w, h: h}
}

func (s *Screen) buttonRect() rect {
	const w, h = 120, 32
	return rect{
		x: float64(s.screenW-w) / 2,
		y: 278,
		w: w,
		h: h,
	}
}

// Draw renders the form.
func (s *Screen) Draw(screen render.Image) {
	bg := color.RGBA{R: 18, G: 18, B: 26, A: 255}
	boxBG := color.RGBA{R: 32, G: 32, B: 44, A: 255}
	border := color.RGBA{R: 90, G: 90, B: 120, A: 255}
	focusBorder := color.RGBA{R: 200, G: 180, B: 90, A: 255}
	titleColor := color.RGBA{R: 240, G: 220, B: 130, A: 255}
	labelColor := color.RGBA{R: 160, G: 160, B: 180, A: 255}
	textColor := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	errColor := color.RGBA{R: 220, G: 100, B: 100, A: 255}

	screen.Fill(bg)

	title := "EMBERVALE"
	tw, _ := s.renderer.MeasureText(title)
	s.renderer.DrawText(screen, title, s.screenW/2-tw/2, 70, titleColor)

	sub := "Sign in to continue"
	sw, _ := s.renderer.MeasureText(sub)
	s.renderer.DrawText(screen, sub, s.screenW/2-sw/2, 96, labelColor)

	s.drawField(screen, &s.username, focusUsername, boxBG, border, focusBorder, labelColor, textColor)
	s.drawField(screen, &s.password, focusPassword, boxBG, border, focusBorder, labelColor, textColor)

	btn := s.buttonRect()
	btnBorder := border
	if s.focus == focusButton {
		btnBorder = focusBorder
	}
	s.drawRect(screen, btn, boxBG)
	s.drawRectOutline(screen, btn, 2, btnBorder)
	label := "Login"
	lw, lh := s.renderer.MeasureText(label)
	s.renderer.DrawText(screen, label, int(btn.x+btn.w/2)-lw/2, int(btn.y+btn.h/2)-lh/2, textColor)

	for i, msg := range s.status {
		mw, _ := s.renderer.MeasureText(msg)
		s.renderer.DrawText(screen, msg, s.screenW/2-mw/2, 330+i*20, errColor)
	}

	hint := "Tab switches fields, Enter confirms"
	hw, _ := s.renderer.MeasureText(hint)
	s.renderer.DrawText(screen, hint, s.screenW/2-hw/2, s.screenH-40, labelColor)
}

func (s *Screen) drawField(screen render.Image, f *field, focus int, boxBG, border, focusBorder, labelColor, textColor color.RGBA) {
	box := s.fieldRect(focus)

	s.renderer.DrawText(screen, f.label, int(box.x), int(box.y)-18, labelColor)

	outline := border
	if s.focus == focus {
		outline = focusBorder
	}
	s.drawRect(screen, box, boxBG)
	s.drawRectOutline(screen, box, 2, outline)

	value := f.display()
	if s.focus == focus {
		value += "_"
	}
	_, th := s.renderer.MeasureText(value)
	s.renderer.DrawText(screen, value, int(box.x)+8, int(box.y)+int(box.h)/2-th/2, textColor)
}

func (s *Screen) drawRect(screen render.Image, r rect, clr color.Color) {
	s.renderer.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), clr)
}

func (s *Screen) drawRectOutline(screen render.Image, r rect, strokeWidth float32, clr color.Color) {
	s.renderer.StrokeRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), strokeWidth, clr)
}
