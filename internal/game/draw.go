package game

import (
	"image/color"

	"chosenoffset.com/embervale/internal/render"
)

var (
	backgroundColor     = color.RGBA{18, 20, 28, 255}
	playerFallbackColor = color.RGBA{235, 220, 120, 255}
)

// Draw renders the play field back to front: tiles, objects, the player,
// then the overlay UIs.
func (s *Session) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	s.drawTiles(screen)
	s.drawObjects(screen)
	s.drawPlayer(screen)

	s.box.Draw(s.renderer, screen, s.screenW, s.screenH)
	s.menu.Draw(s.renderer, screen)
	s.hud.Draw(s.renderer, screen)
}

func (s *Session) drawTiles(screen render.Image) {
	tileSize := s.level.Data.TileSize
	for y := 0; y < s.level.Data.Height; y++ {
		for x := 0; x < s.level.Data.Width; x++ {
			img := s.tiles[s.level.Data.Tiles[y][x]]
			if img == nil {
				continue
			}
			opts := &render.DrawImageOptions{}
			opts.GeoM = render.NewGeoM()
			opts.GeoM.Translate(float64(x*tileSize), float64(y*tileSize))
			screen.DrawImage(img, opts)
		}
	}
}

func (s *Session) drawObjects(screen render.Image) {
	for i := range s.level.Data.Objects {
		img := s.objectImages[i]
		if img == nil {
			continue
		}
		obj := &s.level.Data.Objects[i]
		opts := &render.DrawImageOptions{}
		opts.GeoM = render.NewGeoM()
		opts.GeoM.Translate(obj.X, obj.Y)
		screen.DrawImage(img, opts)
	}
}

func (s *Session) drawPlayer(screen render.Image) {
	pos := s.char.Position()

	frame := s.sprite.Frame()
	if frame == nil {
		s.renderer.FillCircle(screen, float32(pos.X), float32(pos.Y), 12, playerFallbackColor)
		return
	}

	w, h := frame.Size()
	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Translate(pos.X-float64(w)/2, pos.Y-float64(h)/2)
	screen.DrawImage(frame, opts)
}
