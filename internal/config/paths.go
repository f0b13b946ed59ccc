package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultDBPath returns the scores database location, creating its parent
// directory. It falls back to a relative path if the data dir is unusable.
func DefaultDBPath() string {
	p, err := xdg.DataFile(filepath.Join(AppName, "scores.db"))
	if err != nil {
		return "scores.db"
	}
	return p
}

// LogFilePath returns the log file location under the XDG state dir.
func LogFilePath() (string, error) {
	return xdg.StateFile(filepath.Join(AppName, "bee.log"))
}

// ScreenshotPath returns a path for a named screenshot under the XDG state dir.
func ScreenshotPath(name string) (string, error) {
	return xdg.StateFile(filepath.Join(AppName, "screenshots", name))
}
