package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"survivors-lab/internal/commons/logger_config"
	"survivors-lab/internal/tui"
)

var flagLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play in the terminal",
	Long: `Play in the current terminal.

Controls:
  WASD/Arrows/HJKL  - Move (hold)
  R                 - Restart
  Q/Esc/Ctrl+C      - Quit

Logs go to --log-file while the game owns the screen.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagLogFile, "log-file", "survivors.log", "Where to write logs while playing")
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	logger_config.SetOutput(f)
	defer logger_config.SetOutput(os.Stderr)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	st, err := tui.Run(tui.Config{
		World:    cfg,
		Width:    width,
		Height:   height,
		TickRate: flagFPS,
	})
	if err != nil {
		return err
	}
	logger_config.Logger.Info("session ended", "kills", st.EnemiesKilled, "levelups", st.LevelUps)
	return nil
}
