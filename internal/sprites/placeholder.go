// Package sprites generates the game's placeholder artwork, animates the
// player sprite, and can cut animation clips out of an external sprite
// sheet instead.
package sprites

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// FrameSize is the pixel size of one player frame.
const FrameSize = 32

// Facing names accepted by CharacterFrame.
const (
	FacingFront = "front"
	FacingBack  = "back"
	FacingLeft  = "left"
	FacingRight = "right"
)

// Palette holds the colors of the generated player artwork.
var Palette = struct {
	Cloak color.RGBA
	Trim  color.RGBA
	Skin  color.RGBA
	Hair  color.RGBA
	Boots color.RGBA
	Eyes  color.RGBA
}{
	Cloak: color.RGBA{R: 70, G: 90, B: 140, A: 255},
	Trim:  color.RGBA{R: 50, G: 64, B: 100, A: 255},
	Skin:  color.RGBA{R: 232, G: 190, B: 160, A: 255},
	Hair:  color.RGBA{R: 90, G: 60, B: 40, A: 255},
	Boots: color.RGBA{R: 60, G: 46, B: 36, A: 255},
	Eyes:  color.RGBA{R: 30, G: 30, B: 30, A: 255},
}

// ParseHexColor parses a "#rrggbb" string into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q is not in #rrggbb form", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("color %q is not in #rrggbb form", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Darken scales a color toward black. factor 1.0 keeps the color.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten scales a color toward white. factor 0.0 keeps the color.
func Lighten(c color.RGBA, factor float64) color.RGBA {
	lift := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*factor)
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}

// SolidTile fills a size x size image with one color.
func SolidTile(size int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillSpan(img, 0, 0, size, size, c)
	return img
}

// PatternedTile is a solid tile speckled with a lighter shade for texture.
func PatternedTile(size int, c color.RGBA) *image.RGBA {
	img := SolidTile(size, c)
	speck := Lighten(c, 0.12)
	for y := 2; y < size; y += 5 {
		for x := (y / 5 * 3) % 5; x < size; x += 7 {
			img.SetRGBA(x, y, speck)
		}
	}
	return img
}

// BorderedTile is a solid tile ringed by a border color.
func BorderedTile(size int, fill, border color.RGBA, borderWidth int) *image.RGBA {
	return BorderedBox(size, size, fill, border, borderWidth)
}

// BorderedBox is a filled w x h box ringed by a border color.
func BorderedBox(w, h int, fill, border color.RGBA, borderWidth int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillSpan(img, 0, 0, w, h, fill)
	for i := 0; i < borderWidth; i++ {
		fillSpan(img, i, i, w-i, i+1, border)
		fillSpan(img, i, h-i-1, w-i, h-i, border)
		fillSpan(img, i, i, i+1, h-i, border)
		fillSpan(img, w-i-1, i, w-i, h-i, border)
	}
	return img
}

// CharacterFrame draws one frame of the hooded player figure. facing picks
// which way it looks; step 0 is the standing pose, steps 1 and 2 alternate
// the feet for the walk cycle.
func CharacterFrame(facing string, step int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameSize, FrameSize))

	leftY, rightY := 26, 26
	switch step {
	case 1:
		leftY, rightY = 25, 27
	case 2:
		leftY, rightY = 27, 25
	}
	fillSpan(img, 11, leftY, 14, leftY+3, Palette.Boots)
	fillSpan(img, 18, rightY, 21, rightY+3, Palette.Boots)

	fillSpan(img, 10, 12, 22, 26, Palette.Cloak)
	fillSpan(img, 10, 12, 22, 14, Palette.Trim)

	fillSpan(img, 11, 4, 21, 13, Palette.Skin)
	fillSpan(img, 11, 4, 21, 7, Palette.Hair)

	switch facing {
	case FacingBack:
		// Hair covers the whole head seen from behind.
		fillSpan(img, 11, 4, 21, 11, Palette.Hair)
	case FacingLeft:
		fillSpan(img, 12, 8, 14, 10, Palette.Eyes)
	case FacingRight:
		fillSpan(img, 18, 8, 20, 10, Palette.Eyes)
	default:
		fillSpan(img, 13, 8, 15, 10, Palette.Eyes)
		fillSpan(img, 17, 8, 19, 10, Palette.Eyes)
	}

	return img
}

// SavePNG writes img to path, creating parent directories as needed.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

func fillSpan(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
