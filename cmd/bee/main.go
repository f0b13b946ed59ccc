// bee is a flappy-style arcade game for the terminal: steer a bee through
// scrolling pillar pairs.
//
// Usage:
//
//	bee play             - Play in the terminal (or --window for a desktop window)
//	bee scores           - Show high scores
//	bee serve            - Start SSH server for remote play
//	bee config           - Print the default tuning YAML
//	bee list             - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: XDG data dir)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bee/internal/config"
	_ "github.com/vovakirdan/tui-bee/internal/games/bee" // registers "bee"
	"github.com/vovakirdan/tui-bee/internal/storage"
)

const gameID = "bee"

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bee",
	Short: "Bee - fly a bee through the pillars in your terminal",
	Long: `Bee is a flappy-style arcade game. Flap to keep the bee in the air
and slip through the gaps between scrolling pillars.

Available commands:
  play     - Play in the terminal or a desktop window
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default tuning file
  list     - Show registered games

Examples:
  bee play
  bee play --difficulty hard
  bee play --window
  bee serve --ssh :2222
  bee scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return config.DefaultDBPath()
}

// newLogger builds a logger at --log-level writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// fileLogger logs to the state dir, since the alt screen owns the terminal.
// The returned closer must be called on exit.
func fileLogger() (*log.Logger, func(), error) {
	path, err := config.LogFilePath()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot resolve log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "bee")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database. A failure is logged and play goes on
// without scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(dbPath(), logger)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}
