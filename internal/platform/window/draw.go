package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-bee/internal/core"
)

// Scene clear colors.
var clearColors = map[string]color.RGBA{
	"menu": {R: 0xff, G: 0xf0, B: 0x91, A: 0xff},
	"game": {R: 0x59, G: 0xcc, B: 0xff, A: 0xff},
}

var defaultClear = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

// blockRunes are drawn as filled rectangles: top offset and height as
// fractions of the tile.
var blockRunes = map[rune][2]float32{
	'█': {0, 1},
	'▒': {0, 1},
	'▀': {0, 0.5},
	'▄': {0.5, 0.5},
}

// asciiFallback replaces glyphs the debug font lacks.
var asciiFallback = map[rune]rune{
	'●': 'o',
	'·': '.',
	'↑': '^',
	'↓': 'v',
	'─': '-',
	'│': '|',
	'┌': '+',
	'┐': '+',
	'└': '+',
	'┘': '+',
}

// glyphRune returns the rune the debug font can print for r.
func glyphRune(r rune) rune {
	if f, ok := asciiFallback[r]; ok {
		return f
	}
	if r < 0x20 || r > 0x7e {
		return '?'
	}
	return r
}

func cellColor(c core.Color, scene string) color.RGBA {
	if c == core.ColorDefault {
		if scene == sceneGame {
			return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		return color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	}
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// glyph returns a white tile with r printed on it. Tiles are tinted when
// drawn.
func (w *Window) glyph(r rune) *ebiten.Image {
	if img, ok := w.glyphs[r]; ok {
		return img
	}
	img := ebiten.NewImage(CellW, CellH)
	ebitenutil.DebugPrintAt(img, string(r), 2, 0)
	w.glyphs[r] = img
	return img
}

// Draw paints the game screen buffer and any overlay.
func (w *Window) Draw(dst *ebiten.Image) {
	bg, ok := clearColors[w.state.Scene]
	if !ok {
		bg = defaultClear
	}
	dst.Fill(bg)

	w.game.Render(w.screen)
	w.drawScreen(dst, w.screen, w.state.Scene)

	if w.board != nil {
		w.drawBoard(dst)
	}
}

func (w *Window) drawScreen(dst *ebiten.Image, s *core.Screen, scene string) {
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			w.drawCell(dst, x, y, cell.Rune, cellColor(cell.Color, scene))
		}
	}
}

func (w *Window) drawCell(dst *ebiten.Image, x, y int, r rune, clr color.RGBA) {
	px, py := float32(x*CellW), float32(y*CellH)

	if block, ok := blockRunes[r]; ok {
		vector.DrawFilledRect(dst, px, py+block[0]*CellH, CellW, block[1]*CellH, clr, false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(px), float64(py))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(w.glyph(glyphRune(r)), op)
}

// drawBoard shows the scoreboard lines centered on a dark panel.
func (w *Window) drawBoard(dst *ebiten.Image) {
	board := core.NewScreen(w.config.ScreenW, w.config.ScreenH)
	top := (board.Height() - len(w.board)) / 2
	for i, line := range w.board {
		board.DrawTextCentered(top+i, line, core.ColorBrightWhite)
	}

	width := 0
	for _, line := range w.board {
		width = max(width, len(line))
	}
	panel := core.NewRect((board.Width()-width)/2-2, top-1, width+4, len(w.board)+2)
	vector.DrawFilledRect(dst,
		float32(panel.X*CellW), float32(panel.Y*CellH),
		float32(panel.W*CellW), float32(panel.H*CellH),
		color.RGBA{R: 0x12, G: 0x16, B: 0x24, A: 0xe6}, false)

	w.drawScreen(dst, board, "")
}
