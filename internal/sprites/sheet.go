package sprites

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	"chosenoffset.com/embervale/internal/player"
	"chosenoffset.com/embervale/internal/render"
)

// SheetConfig describes a sprite sheet: a PNG image and the animation clips
// cut from its grid of fixed-size frames.
type SheetConfig struct {
	Name        string    `json:"name"`
	ImagePath   string    `json:"image_path"`
	FrameWidth  int       `json:"frame_width"`
	FrameHeight int       `json:"frame_height"`
	Clips       []ClipDef `json:"clips"`
}

// ClipDef names one clip and lists the sheet cells it plays, in order.
type ClipDef struct {
	Name   string     `json:"name"`
	Frames []FrameRef `json:"frames"`
}

// FrameRef addresses a sheet cell in frame units, not pixels.
type FrameRef struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// LoadSheetConfig reads and validates a sheet description.
func LoadSheetConfig(path string) (*SheetConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet config: %w", err)
	}

	var cfg SheetConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sheet config: %w", err)
	}

	if err := validateSheetConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid sheet config: %w", err)
	}
	return &cfg, nil
}

func validateSheetConfig(cfg *SheetConfig) error {
	if cfg.ImagePath == "" {
		return fmt.Errorf("image_path is required")
	}
	if cfg.FrameWidth <= 0 || cfg.FrameHeight <= 0 {
		return fmt.Errorf("frame size must be positive, got %dx%d", cfg.FrameWidth, cfg.FrameHeight)
	}
	if len(cfg.Clips) == 0 {
		return fmt.Errorf("sheet defines no clips")
	}
	for _, clip := range cfg.Clips {
		if clip.Name == "" {
			return fmt.Errorf("sheet has a clip without a name")
		}
		if len(clip.Frames) == 0 {
			return fmt.Errorf("clip %q has no frames", clip.Name)
		}
		for _, ref := range clip.Frames {
			if ref.Col < 0 || ref.Row < 0 {
				return fmt.Errorf("clip %q has a negative frame reference", clip.Name)
			}
		}
	}
	return nil
}

// LoadSheet loads the sheet image and cuts every clip's frames out of it.
func LoadSheet(configPath string, loader render.ResourceLoader) (map[string][]render.Image, error) {
	cfg, err := LoadSheetConfig(configPath)
	if err != nil {
		return nil, err
	}

	img, err := loader.LoadImage(cfg.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet image: %w", err)
	}

	iw, ih := img.Size()
	cols := iw / cfg.FrameWidth
	rows := ih / cfg.FrameHeight

	clips := make(map[string][]render.Image, len(cfg.Clips))
	for _, clip := range cfg.Clips {
		frames := make([]render.Image, 0, len(clip.Frames))
		for _, ref := range clip.Frames {
			if ref.Col >= cols || ref.Row >= rows {
				return nil, fmt.Errorf("clip %q frame (%d, %d) is outside the %dx%d sheet",
					clip.Name, ref.Col, ref.Row, cols, rows)
			}
			cell := image.Rect(
				ref.Col*cfg.FrameWidth,
				ref.Row*cfg.FrameHeight,
				(ref.Col+1)*cfg.FrameWidth,
				(ref.Row+1)*cfg.FrameHeight,
			)
			frames = append(frames, img.SubImage(cell))
		}
		clips[clip.Name] = frames
	}
	return clips, nil
}

// WritePlayerSheet generates the player sheet PNG plus its config under
// dir. The sheet holds the same frames PlayerClips builds in memory, so a
// hand-drawn replacement only has to keep the grid layout.
func WritePlayerSheet(dir string) error {
	type cell struct {
		facing string
		step   int
	}
	// Row 0 holds the idle poses, rows 1 and 2 the walk cycles.
	layout := [][]cell{
		{{FacingFront, 0}, {FacingBack, 0}, {FacingLeft, 0}, {FacingRight, 0}},
		{{FacingFront, 1}, {FacingFront, 2}, {FacingBack, 1}, {FacingBack, 2}},
		{{FacingLeft, 1}, {FacingLeft, 2}, {FacingRight, 1}, {FacingRight, 2}},
	}

	atlas := image.NewRGBA(image.Rect(0, 0, 4*FrameSize, 3*FrameSize))
	for row, cells := range layout {
		for col, c := range cells {
			dst := image.Rect(col*FrameSize, row*FrameSize, (col+1)*FrameSize, (row+1)*FrameSize)
			draw.Draw(atlas, dst, CharacterFrame(c.facing, c.step), image.Point{}, draw.Src)
		}
	}

	pngPath := filepath.Join(dir, "player_sheet.png")
	if err := SavePNG(atlas, pngPath); err != nil {
		return err
	}

	cfg := SheetConfig{
		Name:        "player",
		ImagePath:   filepath.ToSlash(pngPath),
		FrameWidth:  FrameSize,
		FrameHeight: FrameSize,
		Clips: []ClipDef{
			{Name: player.IdleClip(player.DirectionDownwards), Frames: []FrameRef{{Col: 0, Row: 0}}},
			{Name: player.IdleClip(player.DirectionUpwards), Frames: []FrameRef{{Col: 1, Row: 0}}},
			{Name: player.IdleClip(player.DirectionLeft), Frames: []FrameRef{{Col: 2, Row: 0}}},
			{Name: player.IdleClip(player.DirectionRight), Frames: []FrameRef{{Col: 3, Row: 0}}},
			{Name: player.WalkClip(player.DirectionDownwards), Frames: []FrameRef{{Col: 0, Row: 1}, {Col: 1, Row: 1}}},
			{Name: player.WalkClip(player.DirectionUpwards), Frames: []FrameRef{{Col: 2, Row: 1}, {Col: 3, Row: 1}}},
			{Name: player.WalkClip(player.DirectionLeft), Frames: []FrameRef{{Col: 0, Row: 2}, {Col: 1, Row: 2}}},
			{Name: player.WalkClip(player.DirectionRight), Frames: []FrameRef{{Col: 2, Row: 2}, {Col: 3, Row: 2}}},
		},
	}

	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sheet config: %w", err)
	}
	cfgPath := filepath.Join(dir, "player_sheet.json")
	if err := os.WriteFile(cfgPath, raw, 0o644); err != nil {
		return fmt.Errorf("writing sheet config: %w", err)
	}
	return nil
}
