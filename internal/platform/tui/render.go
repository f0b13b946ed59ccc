package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bee/internal/core"
)

// Scene backgrounds. The menu keeps the terminal's own background.
var sceneBackgrounds = map[string]lipgloss.Color{
	sceneGame: lipgloss.Color("#59CCFF"),
}

// colorCodes maps core.Color to terminal color codes.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Renderer turns screen buffers into styled strings. Styles are built once
// per color and background.
type Renderer struct {
	r      *lipgloss.Renderer
	styles map[styleKey]lipgloss.Style
}

type styleKey struct {
	fg core.Color
	bg string
}

// NewRenderer creates a renderer. A nil lipgloss renderer uses the default
// one; SSH sessions pass the session's own so colors match the client.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{r: r, styles: make(map[styleKey]lipgloss.Style)}
}

func (rd *Renderer) style(fg core.Color, bg string) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}
	if s, ok := rd.styles[k]; ok {
		return s
	}
	s := rd.r.NewStyle()
	if c, ok := colorCodes[fg]; ok {
		s = s.Foreground(c)
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	rd.styles[k] = s
	return s
}

// Render converts a screen to a styled string for the given scene. Adjacent
// cells of the same color are grouped to keep escape sequences short.
func (rd *Renderer) Render(s *core.Screen, scene string) string {
	bg := string(sceneBackgrounds[scene])

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(rd.style(start, bg).Render(run.String()))
		}
	}
	return sb.String()
}
