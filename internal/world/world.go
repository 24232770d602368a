// Package world loads level definitions from JSON and resolves movement
// against them. A level is a grid of named tiles plus a set of placed
// objects; a Body is an axis-aligned box that slides through the level one
// pixel at a time and reports what it ran into.
package world

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/embervale/internal/geom"
)

// TileDef describes one tile kind referenced by the level grid.
type TileDef struct {
	Walkable bool   `json:"walkable"`
	Color    string `json:"color"`
}

// Dialogue is the text an object offers when the player interacts with it.
type Dialogue struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Object is a solid thing placed in the level at pixel coordinates.
type Object struct {
	Name     string   `json:"name"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	W        float64  `json:"w"`
	H        float64  `json:"h"`
	Color    string   `json:"color"`
	Children []string `json:"children"`
	Dialogue Dialogue `json:"dialogue"`
}

// HasChild reports whether the object carries a child node with the given
// name. Child names act as behavior markers, e.g. "Interact".
func (o *Object) HasChild(name string) bool {
	for _, child := range o.Children {
		if child == name {
			return true
		}
	}
	return false
}

// Bounds returns the object's collision box.
func (o *Object) Bounds() geom.Rect {
	return geom.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Spawn is the default player start point in pixels.
type Spawn struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LevelData is the on-disk level format.
type LevelData struct {
	Name        string             `json:"name"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	TileSize    int                `json:"tile_size"`
	TileDefs    map[string]TileDef `json:"tile_defs"`
	Tiles       [][]string         `json:"tiles"`
	PlayerSpawn Spawn              `json:"player_spawn"`
	Objects     []Object           `json:"objects"`
}

// Level is a validated, loaded level.
type Level struct {
	Data *LevelData
}

// LoadLevel reads and validates a level file.
func LoadLevel(filePath string) (*Level, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}

	var data LevelData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse level JSON: %w", err)
	}

	if err := validateLevelData(&data); err != nil {
		return nil, fmt.Errorf("invalid level data: %w", err)
	}

	return &Level{Data: &data}, nil
}

func validateLevelData(data *LevelData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("level dimensions must be positive, got %dx%d", data.Width, data.Height)
	}
	if data.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", data.TileSize)
	}
	if len(data.TileDefs) == 0 {
		return fmt.Errorf("level defines no tile kinds")
	}
	if len(data.Tiles) != data.Height {
		return fmt.Errorf("tile grid has %d rows, expected %d", len(data.Tiles), data.Height)
	}
	for y, row := range data.Tiles {
		if len(row) != data.Width {
			return fmt.Errorf("tile row %d has %d entries, expected %d", y, len(row), data.Width)
		}
		for x, name := range row {
			if _, ok := data.TileDefs[name]; !ok {
				return fmt.Errorf("tile (%d, %d) references unknown kind %q", x, y, name)
			}
		}
	}

	w := float64(data.Width * data.TileSize)
	h := float64(data.Height * data.TileSize)
	if data.PlayerSpawn.X < 0 || data.PlayerSpawn.X >= w || data.PlayerSpawn.Y < 0 || data.PlayerSpawn.Y >= h {
		return fmt.Errorf("player spawn (%v, %v) is outside the level", data.PlayerSpawn.X, data.PlayerSpawn.Y)
	}

	for i, obj := range data.Objects {
		if obj.Name == "" {
			return fmt.Errorf("object %d has no name", i)
		}
		if obj.W <= 0 || obj.H <= 0 {
			return fmt.Errorf("object %q has non-positive size %vx%v", obj.Name, obj.W, obj.H)
		}
	}

	return nil
}

// TileAt returns the tile kind at grid position (x, y).
func (l *Level) TileAt(x, y int) (string, error) {
	if x < 0 || x >= l.Data.Width || y < 0 || y >= l.Data.Height {
		return "", fmt.Errorf("tile coordinates (%d, %d) out of bounds", x, y)
	}
	return l.Data.Tiles[y][x], nil
}

// IsWalkable reports whether the tile at grid position (x, y) can be walked
// on. Positions outside the grid are not walkable.
func (l *Level) IsWalkable(x, y int) bool {
	name, err := l.TileAt(x, y)
	if err != nil {
		return false
	}
	return l.Data.TileDefs[name].Walkable
}

// PixelSize returns the level's size in pixels.
func (l *Level) PixelSize() (int, int) {
	return l.Data.Width * l.Data.TileSize, l.Data.Height * l.Data.TileSize
}

// SpawnPoint returns the default player start position.
func (l *Level) SpawnPoint() geom.Vec2 {
	return geom.Vec2{X: l.Data.PlayerSpawn.X, Y: l.Data.PlayerSpawn.Y}
}

// Contains reports whether a pixel position lies inside the level.
func (l *Level) Contains(p geom.Vec2) bool {
	w, h := l.PixelSize()
	return p.X >= 0 && p.X < float64(w) && p.Y >= 0 && p.Y < float64(h)
}

// solidAt reports whether the rect overlaps any unwalkable tile.
func (l *Level) solidAt(r geom.Rect) bool {
	ts := float64(l.Data.TileSize)
	// Shrink the far edges a hair so a rect flush against a tile boundary
	// does not count as occupying the next tile over.
	const edge = 1e-9
	x0 := int(math.Floor(r.X / ts))
	x1 := int(math.Floor((r.X + r.W - edge) / ts))
	y0 := int(math.Floor(r.Y / ts))
	y1 := int(math.Floor((r.Y + r.H - edge) / ts))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !l.IsWalkable(x, y) {
				return true
			}
		}
	}
	return false
}

// Body is a kinematic collision box. Position refers to the box center.
type Body struct {
	level         *Level
	rect          geom.Rect
	lastCollision *Object
}

// NewBody creates a body of the given size centered on pos.
func NewBody(level *Level, pos geom.Vec2, w, h float64) *Body {
	b := &Body{
		level: level,
		rect:  geom.Rect{W: w, H: h},
	}
	b.SetPosition(pos)
	return b
}

// Position returns the center of the body.
func (b *Body) Position() geom.Vec2 {
	return geom.Vec2{X: b.rect.X + b.rect.W/2, Y: b.rect.Y + b.rect.H/2}
}

// SetPosition recenters the body on pos without collision checks.
func (b *Body) SetPosition(pos geom.Vec2) {
	b.rect.X = pos.X - b.rect.W/2
	b.rect.Y = pos.Y - b.rect.H/2
}

// Rect returns the body's current collision box.
func (b *Body) Rect() geom.Rect {
	return b.rect
}

// MoveAndCollide moves the body by motion, sliding each axis independently
// and stopping flush against whatever blocks it. It returns the object hit
// during the move, or nil when the body hit nothing or only level tiles.
// Zero motion never collides.
func (b *Body) MoveAndCollide(motion geom.Vec2) *Object {
	hitX := b.moveAxis(motion.X, 0)
	hitY := b.moveAxis(0, motion.Y)

	hit := hitX
	if hit == nil {
		hit = hitY
	}
	b.lastCollision = hit
	return hit
}

// LastCollision returns the object hit by the most recent MoveAndCollide
// call, or nil.
func (b *Body) LastCollision() *Object {
	return b.lastCollision
}

// moveAxis advances along one axis in steps of at most one pixel, stopping
// at the first blocked step. Exactly one of dx, dy is non-zero.
func (b *Body) moveAxis(dx, dy float64) *Object {
	remaining := math.Abs(dx + dy)
	if remaining == 0 {
		return nil
	}
	stepX := sign(dx)
	stepY := sign(dy)

	for remaining > 0 {
		step := math.Min(1, remaining)
		candidate := b.rect.Moved(geom.Vec2{X: stepX * step, Y: stepY * step})
		if obj, blocked := b.collide(candidate); blocked {
			return obj
		}
		b.rect = candidate
		remaining -= step
	}
	return nil
}

// collide reports whether the rect is blocked, and by which object if any.
func (b *Body) collide(r geom.Rect) (*Object, bool) {
	for i := range b.level.Data.Objects {
		if r.Overlaps(b.level.Data.Objects[i].Bounds()) {
			return &b.level.Data.Objects[i], true
		}
	}
	if b.level.solidAt(r) {
		return nil, true
	}
	return nil, false
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
