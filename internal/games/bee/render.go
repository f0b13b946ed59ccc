package bee

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/ecs"
	"github.com/vovakirdan/tui-bee/internal/scene"
)

// Visual characters for rendering
const (
	PillarChar    = '█'
	PillarCapTop  = '▀'
	PillarCapDown = '▄'
	GroundChar    = '▒'
)

// beeFrames holds the wing-up and wing-down sprites.
var beeFrames = [][]string{
	{"\\ /", "<●>"},
	{"/ \\", "<●>"},
}

const menuHint = "↑/↓ select · enter choose · q quit"

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	g.drawClouds(dst)

	if g.scenes.Current() == scene.Game {
		pillarQuery.Each(g.world, func(e *donburi.Entry) {
			g.drawPillar(dst, e)
		})
		if e, ok := g.player(); ok {
			g.drawBee(dst, e)
		}
	}

	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar, core.ColorGreen)

	switch g.scenes.Current() {
	case scene.Menu:
		g.drawMenu(dst)
	case scene.Game:
		text := fmt.Sprintf(" BEE %d ", g.score)
		dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(text)-1, g.groundY, text, core.ColorBrightWhite)

		if g.paused {
			drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
		if g.gameOver {
			drawCenteredMessage(dst, "GAME OVER",
				fmt.Sprintf("Score: %d  |  R restart  |  B menu", g.score))
		}
	}
}

func (g *Game) drawClouds(dst *core.Screen) {
	cloudQuery.Each(g.world, func(e *donburi.Entry) {
		c := Cloud.Get(e)
		pos := Position.Get(e)
		x0, y0 := int(math.Floor(pos.X)), int(pos.Y)
		for dy, row := range cloudShapes[c.Shape%len(cloudShapes)] {
			dx := 0
			for _, r := range row {
				if r != ' ' {
					dst.SetColor(x0+dx, y0+dy, r, core.ColorWhite)
				}
				dx++
			}
		}
	})
}

func (g *Game) drawPillar(dst *core.Screen, e *donburi.Entry) {
	top, bottom := g.pillarRects(e)

	dst.DrawRectColor(top, PillarChar, core.ColorGreen)
	if !top.Empty() {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PillarCapTop, core.ColorBrightGreen)
	}
	dst.DrawRectColor(bottom, PillarChar, core.ColorGreen)
	if !bottom.Empty() {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PillarCapDown, core.ColorBrightGreen)
	}
}

func (g *Game) drawBee(dst *core.Screen, e *donburi.Entry) {
	r := g.beeRect(e)
	frame := beeFrames[Anim.Get(e).Frame%len(beeFrames)]

	for dy := 0; dy < r.H; dy++ {
		row := []rune(frame[dy%len(frame)])
		for dx := 0; dx < r.W; dx++ {
			ch := row[dx%len(row)]
			color := core.ColorBrightYellow
			if dy == 0 {
				color = core.ColorBrightWhite
			}
			if ch != ' ' {
				dst.SetColor(r.X+dx, r.Y+dy, ch, color)
			}
		}
	}
}

func (g *Game) drawMenu(dst *core.Screen) {
	labelQuery.Each(g.world, func(e *donburi.Entry) {
		l := Label.Get(e)
		pos := Position.Get(e)
		dst.DrawTextColor(int(pos.X), int(pos.Y), l.Text, l.Color)
	})

	cursor := -1
	if m, ok := ecs.Single[MenuData](g.world, Menu); ok {
		cursor = m.Cursor
	}
	for _, b := range g.Buttons() {
		color, text := core.ColorWhite, b.Text
		if b.Index == cursor {
			color, text = core.ColorBrightYellow, "> "+b.Text+" <"
		}
		dst.DrawRect(b.Bounds, ' ')
		dst.DrawBox(b.Bounds, color)
		tx := b.Bounds.X + (b.Bounds.W-utf8.RuneCountInString(text))/2
		dst.DrawTextColor(tx, b.Bounds.Y+1, text, color)
	}

	if dst.Height() > 2 {
		dst.DrawTextCentered(dst.Height()-2, menuHint, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	tw, sw := utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)
	boxW := core.Max(tw, sw) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextColor(box.X+(boxW-tw)/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextColor(box.X+(boxW-sw)/2, box.Y+3, subtitle, core.ColorWhite)
}
