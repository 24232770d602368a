// Package hud draws a one-line status overlay over the play field: who is
// logged in, where the player stands, and what it is doing.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/embervale/internal/geom"
	"chosenoffset.com/embervale/internal/player"
	"chosenoffset.com/embervale/internal/render"
)

// Config controls whether and where the overlay is drawn.
type Config struct {
	Enabled  bool    `json:"enabled"`
	Position string  `json:"position"` // top-left, top-right, bottom-left, bottom-right
	Opacity  float64 `json:"opacity"`
}

// DefaultConfig returns the overlay defaults.
func DefaultConfig() *Config {
	return &Config{
		Enabled:  true,
		Position: "top-left",
		Opacity:  0.75,
	}
}

// HUD renders the status line.
type HUD struct {
	config  *Config
	screenW int
	screenH int

	account string
	level   int
	pos     geom.Vec2
	facing  player.Direction
	status  player.Status
}

// New creates a HUD for the given screen size. A nil config uses defaults,
// and out-of-range opacity falls back to the default.
func New(config *Config, screenW, screenH int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Opacity <= 0 || config.Opacity > 1 {
		config.Opacity = DefaultConfig().Opacity
	}
	return &HUD{config: config, screenW: screenW, screenH: screenH}
}

// SetAccount records who is logged in.
func (h *HUD) SetAccount(name string, level int) {
	h.account = name
	h.level = level
}

// SetPlayerState records what the overlay shows this frame.
func (h *HUD) SetPlayerState(pos geom.Vec2, facing player.Direction, status player.Status) {
	h.pos = pos
	h.facing = facing
	h.status = status
}

// Line returns the overlay text.
func (h *HUD) Line() string {
	return fmt.Sprintf("%s  Lv %d  (%.0f, %.0f)  %s  %s",
		h.account, h.level, h.pos.X, h.pos.Y, h.facing, h.status)
}

// Draw renders the overlay unless disabled.
func (h *HUD) Draw(r render.Renderer, screen render.Image) {
	if !h.config.Enabled {
		return
	}

	line := h.Line()
	tw, th := r.MeasureText(line)
	const pad = 6
	w := tw + 2*pad
	hgt := th + 2*pad
	x, y := h.calculatePosition(w, hgt)

	alpha := uint8(h.config.Opacity * 255)
	r.FillRect(screen, float32(x), float32(y), float32(w), float32(hgt),
		color.RGBA{R: 10, G: 10, B: 16, A: alpha})
	r.DrawText(screen, line, x+pad, y+pad, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

// calculatePosition anchors the panel to the configured corner.
func (h *HUD) calculatePosition(w, hgt int) (int, int) {
	const margin = 8
	switch h.config.Position {
	case "top-right":
		return h.screenW - w - margin, margin
	case "bottom-left":
		return margin, h.screenH - hgt - margin
	case "bottom-right":
		return h.screenW - w - margin, h.screenH - hgt - margin
	default:
		return margin, margin
	}
}
