package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"survivors-lab/internal/commons/logger_config"
	"survivors-lab/internal/game"
)

var (
	flagWidth     int
	flagHeight    int
	flagAssetDirs []string
	flagHUD       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and play.

Controls:
  WASD/Arrows  - Move
  R            - Restart

Sprite sheets (background.png, player.webp, enemy.webp, gem.png, digits.png)
are looked up in each --assets directory in order; missing sheets are drawn
as flat shapes.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 960, "Window width")
	playCmd.Flags().IntVar(&flagHeight, "height", 540, "Window height")
	playCmd.Flags().StringSliceVar(&flagAssetDirs, "assets", []string{"assets", "internal/assets"}, "Sprite sheet directories")
	playCmd.Flags().BoolVar(&flagHUD, "hud", true, "Print HUD numbers over the frame")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(flagWidth, flagHeight)
	ebiten.SetWindowTitle("Survivors")
	ebiten.SetTPS(flagFPS)

	g := game.New(cfg, game.Options{AssetDirs: flagAssetDirs, ShowHUD: flagHUD})
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	st := g.Stats()
	logger_config.Logger.Info("game over", "kills", st.EnemiesKilled, "levelups", st.LevelUps, "damage", st.DamageTaken)
	return nil
}
