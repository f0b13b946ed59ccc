package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bee/internal/audio"
	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/core"
	"github.com/vovakirdan/tui-bee/internal/games/bee"
	"github.com/vovakirdan/tui-bee/internal/platform/tui"
	"github.com/vovakirdan/tui-bee/internal/platform/window"
	"github.com/vovakirdan/tui-bee/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
	flagMute       bool
	flagProfile    string
	flagClipboard  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on its menu.

Controls:
  Up/Down    - Choose a menu button
  Enter      - Activate the button
  Space/Up   - Flap
  P          - Pause
  R          - Restart (after game over)
  B/Esc      - Back to the menu
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit
  Mouse      - Click buttons, click to flap

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  bee play
  bee play --difficulty hard
  bee play --config ./my-bee.yaml
  bee play --window --mute
  bee play --profile cpu`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a profile to the current dir: cpu or mem")
	playCmd.Flags().BoolVar(&flagClipboard, "clipboard", true, "Copy screenshots to the clipboard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if stop := startProfile(flagProfile); stop != nil {
		defer stop()
	}

	beeCfg, err := config.LoadBee(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	bee.SetConfigPath(flagConfig)
	bee.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := newPlayer(beeCfg.Audio, logger)
	defer player.Close()

	if flagWindow {
		cfg := runtimeConfig(80, 24)
		logger.Info("starting window", "seed", cfg.Seed, "fps", cfg.TickRate)
		return window.Run(game, cfg, window.Options{
			Store:  store,
			Player: player,
			Logger: logger,
		})
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := runtimeConfig(width, height)
	logger.Info("starting terminal game", "size", fmt.Sprintf("%dx%d", width, height), "seed", cfg.Seed)

	return tui.Run(game, cfg, tui.Options{
		Store:     store,
		Player:    player,
		Logger:    logger,
		Clipboard: flagClipboard,
	})
}

func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newPlayer returns the sound manager, or a silent player when muted or when
// the audio device cannot be opened.
func newPlayer(cfg config.AudioConfig, logger *log.Logger) audio.Player {
	if flagMute || !cfg.Enabled {
		return audio.Nop{}
	}
	sm := audio.NewSoundManager(cfg, logger)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		return audio.Nop{}
	}
	return sm
}

// startProfile starts pkg/profile for "cpu" or "mem" and returns its stop
// function.
func startProfile(kind string) func() {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		fmt.Fprintf(os.Stderr, "Warning: unknown profile %q, profiling disabled\n", kind)
		return nil
	}
	return profile.Start(mode, profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook).Stop
}
