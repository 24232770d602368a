package game

import (
	"errors"
	"fmt"
	"path/filepath"

	"chosenoffset.com/embervale/internal/audio"
	"chosenoffset.com/embervale/internal/config"
	"chosenoffset.com/embervale/internal/dialogue"
	"chosenoffset.com/embervale/internal/geom"
	"chosenoffset.com/embervale/internal/hud"
	"chosenoffset.com/embervale/internal/input"
	"chosenoffset.com/embervale/internal/logger"
	"chosenoffset.com/embervale/internal/login"
	"chosenoffset.com/embervale/internal/menu"
	"chosenoffset.com/embervale/internal/player"
	"chosenoffset.com/embervale/internal/render"
	"chosenoffset.com/embervale/internal/savegame"
	"chosenoffset.com/embervale/internal/signal"
	"chosenoffset.com/embervale/internal/sprites"
	"chosenoffset.com/embervale/internal/world"
)

// tick is the fixed simulation step in seconds.
const tick = 1.0 / 60.0

// Collision box of the player body, slightly narrower than a sprite frame
// so the body slips through tile-wide gaps.
const (
	playerBodyW = 22.0
	playerBodyH = 26.0
)

// bodyMover adapts world.Body to the player.Mover interface. The typed nil
// a *world.Object would become inside a player.Collider has to be caught
// here, on the concrete type.
type bodyMover struct {
	body *world.Body
}

func (b bodyMover) MoveAndCollide(motion geom.Vec2) player.Collider {
	if obj := b.body.MoveAndCollide(motion); obj != nil {
		return obj
	}
	return nil
}

func (b bodyMover) Position() geom.Vec2 {
	return b.body.Position()
}

func (b bodyMover) SetPosition(pos geom.Vec2) {
	b.body.SetPosition(pos)
}

// Session is a running play state: one level, one player, and the overlay
// UIs, connected through a signal hub.
type Session struct {
	renderer render.Renderer
	input    input.Source
	cues     *audio.Cues
	screenW  int
	screenH  int

	hub      *signal.Hub
	level    *world.Level
	body     *world.Body
	char     *player.Character
	animator *player.Animator
	sprite   *sprites.AnimatedSprite
	box      *dialogue.Box
	menu     *menu.Menu
	hud      *hud.HUD

	tiles        map[string]render.Image
	objectImages []render.Image

	data    *player.Data
	saveDir string

	// OnLogout runs when the player picks log out from the menu.
	OnLogout func()
}

// newSession loads the level and save data for the account and wires every
// component together.
func newSession(renderer render.Renderer, inputMgr render.InputManager, loader render.ResourceLoader, cues *audio.Cues, cfg *config.Config, account *login.Account) (*Session, error) {
	level, err := world.LoadLevel(filepath.Join(cfg.DataDir, levelFile))
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}

	tiles, err := sprites.TileImages(renderer, level.Data.TileSize, level.Data.TileDefs)
	if err != nil {
		return nil, fmt.Errorf("building tiles: %w", err)
	}

	objectImages := make([]render.Image, len(level.Data.Objects))
	for i := range level.Data.Objects {
		img, err := sprites.ObjectImage(renderer, &level.Data.Objects[i])
		if err != nil {
			return nil, fmt.Errorf("building objects: %w", err)
		}
		objectImages[i] = img
	}

	data := loadPlayerData(cfg.SaveDir, account, level)
	pos := geom.Vec2{X: data.Position.X, Y: data.Position.Y}

	hub := signal.NewHub()
	src := input.NewKeyboard(inputMgr, nil)
	body := world.NewBody(level, pos, playerBodyW, playerBodyH)
	sprite := sprites.NewAnimatedSprite(sessionClips(renderer, loader, cfg))

	s := &Session{
		renderer:     renderer,
		input:        src,
		cues:         cues,
		screenW:      cfg.WindowWidth,
		screenH:      cfg.WindowHeight,
		hub:          hub,
		level:        level,
		body:         body,
		char:         player.NewCharacter(hub, src, bodyMover{body: body}),
		animator:     player.NewAnimator(hub, src, sprite),
		sprite:       sprite,
		box:          dialogue.NewBox(hub, src),
		menu:         menu.New(hub, inputMgr, cfg.WindowWidth, cfg.WindowHeight),
		tiles:        tiles,
		objectImages: objectImages,
		data:         data,
		saveDir:      cfg.SaveDir,
	}

	hudCfg := hud.DefaultConfig()
	hudCfg.Enabled = cfg.HUDEnabled
	s.hud = hud.New(hudCfg, cfg.WindowWidth, cfg.WindowHeight)
	s.hud.SetAccount(account.Username, account.Level)

	if err := s.wire(); err != nil {
		return nil, fmt.Errorf("connecting signals: %w", err)
	}

	s.box.OnAdvance = func() { s.cues.Play(audio.CueDialogue) }
	s.menu.OnLogout = func() {
		if s.OnLogout != nil {
			s.OnLogout()
		}
	}

	s.char.Ready(pos)
	s.animator.Ready(data.Direction)

	logger.Log.Infof("session started: level=%s player=%s position=(%.0f, %.0f)",
		level.Data.Name, data.Name, pos.X, pos.Y)
	return s, nil
}

// sessionClips prefers the configured sprite sheet and falls back to the
// generated frames when the sheet is missing or broken.
func sessionClips(renderer render.Renderer, loader render.ResourceLoader, cfg *config.Config) map[string][]render.Image {
	if cfg.SpriteSheet == "" {
		return sprites.PlayerClips(renderer)
	}
	clips, err := sprites.LoadSheet(cfg.SpriteSheet, loader)
	if err != nil {
		logger.Log.Warnf("sprite sheet %s unusable, using generated frames: %v", cfg.SpriteSheet, err)
		return sprites.PlayerClips(renderer)
	}
	return clips
}

// loadPlayerData restores the save record, falling back to a fresh record
// at the level spawn when no usable save exists. The logged-in account
// always owns the record name.
func loadPlayerData(saveDir string, account *login.Account, level *world.Level) *player.Data {
	spawn := level.SpawnPoint()
	fresh := &player.Data{
		Name:      account.Username,
		Direction: player.DirectionDownwards,
		Position:  player.Position{X: spawn.X, Y: spawn.Y},
	}

	data, err := savegame.Load(saveDir)
	if errors.Is(err, savegame.ErrNoSave) {
		return fresh
	}
	if err != nil {
		logger.Log.Warnf("save unusable, starting fresh: %v", err)
		return fresh
	}

	data.Name = account.Username
	if !level.Contains(geom.Vec2{X: data.Position.X, Y: data.Position.Y}) {
		logger.Log.Warnf("saved position (%.0f, %.0f) outside level %s, using spawn",
			data.Position.X, data.Position.Y, level.Data.Name)
		data.Position = player.Position{X: spawn.X, Y: spawn.Y}
	}
	return data
}

// wire connects every cross-component signal route.
func (s *Session) wire() error {
	routes := []struct {
		name string
		fn   signal.Handler
	}{
		{player.SignalAnimate, s.onAnimate},
		{player.SignalInteracting, s.onPlayerInteracting},
		{player.SignalPosition, s.onPlayerPosition},
		{player.SignalDirection, s.onPlayerDirection},
		{dialogue.SignalStarted, func(...any) { s.char.HandleInteraction(player.InfoOnDialogue) }},
		{dialogue.SignalFinished, func(...any) { s.char.HandleInteraction(dialogue.SignalFinished) }},
		{menu.SignalOpened, func(...any) { s.char.HandleInteraction(player.InfoMenuActive) }},
		{menu.SignalClosed, func(...any) { s.char.HandleInteraction(menu.SignalClosed) }},
	}
	for _, route := range routes {
		if err := s.hub.Connect(route.name, route.fn); err != nil {
			return fmt.Errorf("route %s: %w", route.name, err)
		}
	}
	return nil
}

func (s *Session) onAnimate(args ...any) {
	if len(args) != 1 {
		return
	}
	if motion, ok := args[0].(geom.Vec2); ok {
		s.animator.OnPlayerAnimate(motion)
	}
}

// onPlayerInteracting opens the dialogue box for whatever the body last
// pushed against.
func (s *Session) onPlayerInteracting(...any) {
	obj := s.body.LastCollision()
	if obj == nil {
		return
	}
	title := obj.Dialogue.Title
	if title == "" {
		title = obj.Name
	}
	s.cues.Play(audio.CueInteract)
	s.box.Open(title, obj.Dialogue.Lines)
}

func (s *Session) onPlayerPosition(args ...any) {
	if len(args) != 2 {
		return
	}
	x, xok := args[0].(float64)
	y, yok := args[1].(float64)
	if !xok || !yok {
		return
	}
	s.SavePlayerPosition(x, y)
}

func (s *Session) onPlayerDirection(args ...any) {
	if len(args) != 1 {
		return
	}
	if d, ok := args[0].(player.Direction); ok {
		s.SavePlayerDirection(d)
	}
}

// SavePlayerPosition persists a reported position into the player record.
func (s *Session) SavePlayerPosition(x, y float64) {
	s.data.Position = player.Position{X: x, Y: y}
	if err := savegame.Save(s.saveDir, s.data); err != nil {
		logger.Log.Errorf("saving player position: %v", err)
		return
	}
	logger.Log.Debugf("saved player position (%.0f, %.0f)", x, y)
}

// SavePlayerDirection persists a reported facing into the player record.
func (s *Session) SavePlayerDirection(d player.Direction) {
	s.data.Direction = d
	if err := savegame.Save(s.saveDir, s.data); err != nil {
		logger.Log.Errorf("saving player direction: %v", err)
		return
	}
	logger.Log.Debugf("saved player direction %s", d)
}

// Update advances one fixed tick: the character and animator first, then
// whichever overlay currently owns input.
func (s *Session) Update() error {
	s.char.PhysicsProcess(tick)
	s.animator.Process()
	s.sprite.Update(tick)

	switch {
	case s.menu.Status() == menu.StatusOpen:
		if s.input.JustPressed(input.ActionMenu) {
			s.cues.Play(audio.CueMenu)
			s.menu.Close()
		} else {
			s.menu.Update()
		}
	case s.box.Status() == dialogue.StatusActive:
		s.box.Update()
	default:
		if s.input.JustPressed(input.ActionMenu) {
			s.cues.Play(audio.CueMenu)
			s.menu.Open()
		}
	}

	s.hud.SetPlayerState(s.char.Position(), s.animator.Facing(), s.char.Status())
	return nil
}
