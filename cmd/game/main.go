// game runs the survivors world in a window, a terminal, over SSH or headless.
//
// Usage:
//
//	game play     - open a window (ebiten)
//	game tui      - play in the current terminal
//	game serve    - SSH server, one private world per connection
//	game sim      - run seeded headless sessions and log their summaries
//
// Global flags:
//
//	--config <path>     - tuning file (default: configs/survivors.yaml if present)
//	--fps <rate>        - update rate
//	--log-level <lvl>   - debug|info|warn|error (overrides LOG_LEVEL)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"survivors-lab/internal/commons/logger_config"
	"survivors-lab/internal/world"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Survivors - auto-firing horde survival",
	Long: `Move with WASD or the arrow keys. Bullets fire on their own and home in
on the nearest enemy; kills drop gems that level you up.

Examples:
  game play
  game play --config ./my-tuning.yaml
  game tui --fps 30
  game serve --ssh :2222
  game sim --sessions 8 --ticks 3600`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagLogLevel != "" {
			logger_config.SetLevel(flagLogLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Update rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig resolves the tuning for every subcommand.
func loadConfig() (world.Config, error) {
	cfg, err := world.LoadConfig(flagConfig)
	if err != nil {
		return cfg, err
	}
	source := flagConfig
	if source == "" {
		source = world.DefaultConfigPath + " (or built-in defaults)"
	}
	logger_config.Logger.Debug("config loaded", "source", source)
	return cfg, nil
}
