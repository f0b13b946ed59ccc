package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/vovakirdan/tui-bee/internal/config"
)

// saveScreenshot writes the current frame as plain text under the state
// directory and, when enabled, copies it to the clipboard.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)
	text := m.screen.String()

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path, err := config.ScreenshotPath(name)
	if err != nil {
		m.opts.Logger.Warn("screenshot directory unavailable", "err", err)
		m.setStatus("screenshot failed")
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		m.opts.Logger.Warn("could not write screenshot", "path", path, "err", err)
		m.setStatus("screenshot failed")
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)

	status := "saved " + filepath.Base(path)
	if m.opts.Clipboard {
		if err := clipboard.WriteAll(text); err != nil {
			m.opts.Logger.Debug("clipboard unavailable", "err", err)
		} else {
			status += " (copied)"
		}
	}
	m.setStatus(status)
}
