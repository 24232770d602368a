// Package game owns the top-level state machine: the login screen at
// startup and the play session after a successful login, including the
// signal wiring between the player, the world, and the overlay UIs.
package game

import (
	"chosenoffset.com/embervale/internal/audio"
	"chosenoffset.com/embervale/internal/config"
	"chosenoffset.com/embervale/internal/logger"
	"chosenoffset.com/embervale/internal/login"
	"chosenoffset.com/embervale/internal/render"
)

// State tracks which top-level screen is active.
type State int

const (
	StateLogin State = iota
	StatePlaying
)

// levelFile is the level loaded after login, relative to the data dir.
const levelFile = "level_1.json"

// Manager implements render.Game and routes updates and drawing to the
// active screen.
type Manager struct {
	renderer render.Renderer
	inputMgr render.InputManager
	loader   render.ResourceLoader
	cues     *audio.Cues
	cfg      *config.Config

	state   State
	login   *login.Screen
	session *Session
}

// NewManager builds the login screen and wires the state transitions.
func NewManager(renderer render.Renderer, inputMgr render.InputManager, loader render.ResourceLoader, cues *audio.Cues, cfg *config.Config) *Manager {
	m := &Manager{
		renderer: renderer,
		inputMgr: inputMgr,
		loader:   loader,
		cues:     cues,
		cfg:      cfg,
		state:    StateLogin,
	}

	m.login = login.NewScreen(renderer, inputMgr, cfg.WindowWidth, cfg.WindowHeight)
	m.login.OnLogin = m.handleLogin
	m.login.OnDenied = func() { m.cues.Play(audio.CueLoginFail) }
	return m
}

// State returns the active top-level state.
func (m *Manager) State() State {
	return m.state
}

// handleLogin runs on a successful credential check. A session that fails
// to load keeps the player on the login screen.
func (m *Manager) handleLogin(account *login.Account) {
	if err := m.StartSession(account); err != nil {
		logger.Log.Errorf("failed to start session: %v", err)
	}
}

// StartSession loads the level for the account and switches to play.
func (m *Manager) StartSession(account *login.Account) error {
	session, err := newSession(m.renderer, m.inputMgr, m.loader, m.cues, m.cfg, account)
	if err != nil {
		return err
	}
	session.OnLogout = m.EndSession

	m.session = session
	m.state = StatePlaying
	m.cues.Play(audio.CueLoginOK)
	logger.Log.Infof("scene transition: login -> level")
	return nil
}

// EndSession drops the play session and returns to a cleared login screen.
func (m *Manager) EndSession() {
	m.session = nil
	m.state = StateLogin
	m.login.Reset()
	logger.Log.Infof("scene transition: level -> login")
}

// Update advances the active screen by one tick.
func (m *Manager) Update() error {
	switch m.state {
	case StateLogin:
		m.login.Update()
	case StatePlaying:
		if m.session != nil {
			return m.session.Update()
		}
	}
	return nil
}

// Draw renders the active screen.
func (m *Manager) Draw(screen render.Image) {
	switch m.state {
	case StateLogin:
		m.login.Draw(screen)
	case StatePlaying:
		if m.session != nil {
			m.session.Draw(screen)
		}
	}
}

// Layout reports the fixed logical screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.cfg.WindowWidth, m.cfg.WindowHeight
}
