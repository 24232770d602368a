package sprites

import (
	"fmt"

	"chosenoffset.com/embervale/internal/player"
	"chosenoffset.com/embervale/internal/render"
	"chosenoffset.com/embervale/internal/world"
)

// defaultFrameTime is how long one animation frame stays up, in seconds.
const defaultFrameTime = 0.15

// AnimatedSprite holds named clips and advances whichever one is playing.
type AnimatedSprite struct {
	clips     map[string][]render.Image
	clip      string
	frame     int
	elapsed   float64
	frameTime float64
}

// NewAnimatedSprite wraps a clip set. Nothing plays until the first Play.
func NewAnimatedSprite(clips map[string][]render.Image) *AnimatedSprite {
	return &AnimatedSprite{clips: clips, frameTime: defaultFrameTime}
}

// Play switches to the named clip. Re-playing the active clip is a no-op,
// so callers may invoke it every frame. Unknown names keep the current
// clip.
func (s *AnimatedSprite) Play(name string) {
	if name == s.clip {
		return
	}
	if _, ok := s.clips[name]; !ok {
		return
	}
	s.clip = name
	s.frame = 0
	s.elapsed = 0
}

// Update advances the playing clip by delta seconds.
func (s *AnimatedSprite) Update(delta float64) {
	frames := s.clips[s.clip]
	if len(frames) < 2 {
		return
	}
	s.elapsed += delta
	for s.elapsed >= s.frameTime {
		s.elapsed -= s.frameTime
		s.frame = (s.frame + 1) % len(frames)
	}
}

// Frame returns the image to draw, or nil before the first Play.
func (s *AnimatedSprite) Frame() render.Image {
	frames := s.clips[s.clip]
	if len(frames) == 0 {
		return nil
	}
	if s.frame >= len(frames) {
		s.frame = 0
	}
	return frames[s.frame]
}

// Clip returns the name of the playing clip.
func (s *AnimatedSprite) Clip() string {
	return s.clip
}

// PlayerClips builds the generated player animation set: one idle frame per
// facing and a two-step walk cycle per facing.
func PlayerClips(r render.Renderer) map[string][]render.Image {
	build := func(facing string, steps ...int) []render.Image {
		frames := make([]render.Image, 0, len(steps))
		for _, step := range steps {
			frames = append(frames, r.NewImageFromImage(CharacterFrame(facing, step)))
		}
		return frames
	}

	return map[string][]render.Image{
		player.IdleClip(player.DirectionDownwards): build(FacingFront, 0),
		player.IdleClip(player.DirectionUpwards):   build(FacingBack, 0),
		player.IdleClip(player.DirectionLeft):      build(FacingLeft, 0),
		player.IdleClip(player.DirectionRight):     build(FacingRight, 0),
		player.WalkClip(player.DirectionDownwards): build(FacingFront, 1, 2),
		player.WalkClip(player.DirectionUpwards):   build(FacingBack, 1, 2),
		player.WalkClip(player.DirectionLeft):      build(FacingLeft, 1, 2),
		player.WalkClip(player.DirectionRight):     build(FacingRight, 1, 2),
	}
}

// TileImages builds one image per tile kind from its declared color.
// Walkable tiles get a speckled texture, solid ones a darker border.
func TileImages(r render.Renderer, size int, defs map[string]world.TileDef) (map[string]render.Image, error) {
	images := make(map[string]render.Image, len(defs))
	for name, def := range defs {
		c, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", name, err)
		}
		if def.Walkable {
			images[name] = r.NewImageFromImage(PatternedTile(size, c))
			continue
		}
		images[name] = r.NewImageFromImage(BorderedTile(size, c, Darken(c, 0.6), 2))
	}
	return images, nil
}

// ObjectImage builds the box drawn for a placed level object.
func ObjectImage(r render.Renderer, obj *world.Object) (render.Image, error) {
	c, err := ParseHexColor(obj.Color)
	if err != nil {
		return nil, fmt.Errorf("object %q: %w", obj.Name, err)
	}
	box := BorderedBox(int(obj.W), int(obj.H), c, Darken(c, 0.55), 2)
	return r.NewImageFromImage(box), nil
}
