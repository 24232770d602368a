package sprites

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/embervale/internal/player"
	"chosenoffset.com/embervale/internal/render"
	"chosenoffset.com/embervale/internal/world"
)

type fakeImage struct {
	rect image.Rectangle
}

func (f *fakeImage) Bounds() image.Rectangle { return f.rect }
func (f *fakeImage) Size() (int, int)        { return f.rect.Dx(), f.rect.Dy() }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{rect: r}
}
func (f *fakeImage) Fill(clr color.Color)                                  {}
func (f *fakeImage) Clear()                                                {}
func (f *fakeImage) DrawImage(src render.Image, o *render.DrawImageOptions) {}
func (f *fakeImage) Dispose()                                              {}

type fakeRenderer struct{}

func (fakeRenderer) NewImage(w, h int) render.Image {
	return &fakeImage{rect: image.Rect(0, 0, w, h)}
}
func (fakeRenderer) NewImageFromImage(src image.Image) render.Image {
	return &fakeImage{rect: src.Bounds()}
}
func (fakeRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {}
func (fakeRenderer) StrokeRect(dst render.Image, x, y, w, h, sw float32, clr color.Color) {
}
func (fakeRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {}
func (fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color)  {}
func (fakeRenderer) MeasureText(text string) (int, int)                                 { return len(text) * 7, 13 }

type fakeLoader struct {
	img render.Image
	err error
}

func (f *fakeLoader) LoadImage(path string) (render.Image, error) {
	return f.img, f.err
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#3c6e3c")
	if err != nil {
		t.Fatalf("ParseHexColor failed: %v", err)
	}
	want := color.RGBA{R: 0x3c, G: 0x6e, B: 0x3c, A: 255}
	if c != want {
		t.Errorf("Expected %v, got %v", want, c)
	}

	for _, bad := range []string{"", "3c6e3c", "#fff", "#zzzzzz", "#12345"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("Expected error for %q, got nil", bad)
		}
	}
}

func TestAnimatedSpritePlayAndUpdate(t *testing.T) {
	walk0 := &fakeImage{rect: image.Rect(0, 0, 32, 32)}
	walk1 := &fakeImage{rect: image.Rect(32, 0, 64, 32)}
	idle0 := &fakeImage{rect: image.Rect(0, 32, 32, 64)}
	sprite := NewAnimatedSprite(map[string][]render.Image{
		"walk": {walk0, walk1},
		"idle": {idle0},
	})

	if sprite.Frame() != nil {
		t.Error("Expected no frame before the first Play")
	}

	sprite.Play("walk")
	if sprite.Frame() != walk0 {
		t.Error("Expected the first walk frame after Play")
	}

	sprite.Update(defaultFrameTime)
	if sprite.Frame() != walk1 {
		t.Error("Expected the second walk frame after one frame time")
	}

	sprite.Update(defaultFrameTime)
	if sprite.Frame() != walk0 {
		t.Error("Expected the clip to wrap to its first frame")
	}

	// Re-playing the active clip must not restart it.
	sprite.Update(defaultFrameTime)
	sprite.Play("walk")
	if sprite.Frame() != walk1 {
		t.Error("Expected Play of the active clip to keep its frame")
	}

	sprite.Play("idle")
	if sprite.Frame() != idle0 {
		t.Error("Expected the idle frame after switching clips")
	}
	if sprite.Clip() != "idle" {
		t.Errorf("Expected clip 'idle', got %q", sprite.Clip())
	}
}

func TestAnimatedSpriteIgnoresUnknownClip(t *testing.T) {
	idle0 := &fakeImage{rect: image.Rect(0, 0, 32, 32)}
	sprite := NewAnimatedSprite(map[string][]render.Image{"idle": {idle0}})

	sprite.Play("idle")
	sprite.Play("swim")

	if sprite.Clip() != "idle" {
		t.Errorf("Expected unknown clip ignored, got %q", sprite.Clip())
	}
}

func TestAnimatedSpriteSingleFrameHolds(t *testing.T) {
	idle0 := &fakeImage{rect: image.Rect(0, 0, 32, 32)}
	sprite := NewAnimatedSprite(map[string][]render.Image{"idle": {idle0}})

	sprite.Play("idle")
	sprite.Update(10 * defaultFrameTime)

	if sprite.Frame() != idle0 {
		t.Error("Expected a single-frame clip to hold its frame")
	}
}

func TestPlayerClipsComplete(t *testing.T) {
	clips := PlayerClips(fakeRenderer{})

	directions := []player.Direction{
		player.DirectionDownwards,
		player.DirectionUpwards,
		player.DirectionLeft,
		player.DirectionRight,
	}
	for _, d := range directions {
		idle := clips[player.IdleClip(d)]
		if len(idle) != 1 {
			t.Errorf("Expected 1 frame in %q, got %d", player.IdleClip(d), len(idle))
		}
		walk := clips[player.WalkClip(d)]
		if len(walk) != 2 {
			t.Errorf("Expected 2 frames in %q, got %d", player.WalkClip(d), len(walk))
		}
	}
}

func TestCharacterFrames(t *testing.T) {
	frame := CharacterFrame(FacingFront, 0)
	if frame.Bounds().Dx() != FrameSize || frame.Bounds().Dy() != FrameSize {
		t.Errorf("Expected %dx%d frame, got %v", FrameSize, FrameSize, frame.Bounds())
	}

	// The walk steps must differ from the standing pose and each other.
	step1 := CharacterFrame(FacingFront, 1)
	step2 := CharacterFrame(FacingFront, 2)
	if bytes.Equal(frame.Pix, step1.Pix) {
		t.Error("Expected step 1 to differ from standing")
	}
	if bytes.Equal(step1.Pix, step2.Pix) {
		t.Error("Expected step 2 to differ from step 1")
	}

	// Facings must be distinguishable.
	if bytes.Equal(CharacterFrame(FacingLeft, 0).Pix, CharacterFrame(FacingRight, 0).Pix) {
		t.Error("Expected left and right facings to differ")
	}
}

func TestTileImages(t *testing.T) {
	defs := map[string]world.TileDef{
		"grass": {Walkable: true, Color: "#3c6e3c"},
		"wall":  {Walkable: false, Color: "#5a5a66"},
	}

	images, err := TileImages(fakeRenderer{}, 32, defs)
	if err != nil {
		t.Fatalf("TileImages failed: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("Expected 2 tile images, got %d", len(images))
	}
	for name, img := range images {
		w, h := img.Size()
		if w != 32 || h != 32 {
			t.Errorf("Expected 32x32 for %q, got %dx%d", name, w, h)
		}
	}
}

func TestTileImagesRejectsBadColor(t *testing.T) {
	defs := map[string]world.TileDef{"grass": {Walkable: true, Color: "green"}}

	if _, err := TileImages(fakeRenderer{}, 32, defs); err == nil {
		t.Error("Expected error for a malformed color, got nil")
	}
}

func writeSheetConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write sheet config: %v", err)
	}
	return path
}

func TestLoadSheetConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing image path", `{"frame_width": 32, "frame_height": 32, "clips": [{"name": "idle front", "frames": [{"col": 0, "row": 0}]}]}`},
		{"zero frame size", `{"image_path": "p.png", "frame_width": 0, "frame_height": 32, "clips": [{"name": "idle front", "frames": [{"col": 0, "row": 0}]}]}`},
		{"no clips", `{"image_path": "p.png", "frame_width": 32, "frame_height": 32, "clips": []}`},
		{"clip without frames", `{"image_path": "p.png", "frame_width": 32, "frame_height": 32, "clips": [{"name": "idle front", "frames": []}]}`},
		{"negative frame ref", `{"image_path": "p.png", "frame_width": 32, "frame_height": 32, "clips": [{"name": "idle front", "frames": [{"col": -1, "row": 0}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadSheetConfig(writeSheetConfig(t, tt.json)); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestLoadSheet(t *testing.T) {
	cfgPath := writeSheetConfig(t, `{
		"name": "player",
		"image_path": "player.png",
		"frame_width": 32,
		"frame_height": 32,
		"clips": [
			{"name": "idle front", "frames": [{"col": 0, "row": 0}]},
			{"name": "walk downwards", "frames": [{"col": 0, "row": 1}, {"col": 1, "row": 1}]}
		]
	}`)
	loader := &fakeLoader{img: &fakeImage{rect: image.Rect(0, 0, 128, 96)}}

	clips, err := LoadSheet(cfgPath, loader)
	if err != nil {
		t.Fatalf("LoadSheet failed: %v", err)
	}
	if len(clips["idle front"]) != 1 {
		t.Errorf("Expected 1 idle frame, got %d", len(clips["idle front"]))
	}
	if len(clips["walk downwards"]) != 2 {
		t.Errorf("Expected 2 walk frames, got %d", len(clips["walk downwards"]))
	}

	w, h := clips["walk downwards"][1].Size()
	if w != 32 || h != 32 {
		t.Errorf("Expected 32x32 frame, got %dx%d", w, h)
	}
}

func TestLoadSheetRejectsOutOfRangeFrame(t *testing.T) {
	cfgPath := writeSheetConfig(t, `{
		"image_path": "player.png",
		"frame_width": 32,
		"frame_height": 32,
		"clips": [{"name": "idle front", "frames": [{"col": 9, "row": 0}]}]
	}`)
	loader := &fakeLoader{img: &fakeImage{rect: image.Rect(0, 0, 64, 64)}}

	if _, err := LoadSheet(cfgPath, loader); err == nil {
		t.Error("Expected error for an out-of-range frame, got nil")
	}
}

func TestWritePlayerSheet(t *testing.T) {
	dir := t.TempDir()

	if err := WritePlayerSheet(dir); err != nil {
		t.Fatalf("WritePlayerSheet failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "player_sheet.png"))
	if err != nil {
		t.Fatalf("Expected sheet PNG: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Sheet PNG does not decode: %v", err)
	}
	if img.Bounds().Dx() != 4*FrameSize || img.Bounds().Dy() != 3*FrameSize {
		t.Errorf("Expected %dx%d sheet, got %v", 4*FrameSize, 3*FrameSize, img.Bounds())
	}

	cfg, err := LoadSheetConfig(filepath.Join(dir, "player_sheet.json"))
	if err != nil {
		t.Fatalf("Generated config does not validate: %v", err)
	}
	if len(cfg.Clips) != 8 {
		t.Errorf("Expected 8 clips, got %d", len(cfg.Clips))
	}
}
