package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"survivors-lab/internal/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server. Every connection plays its own world in the
terminal; nothing is shared between connections.

Examples:
  game serve                           # Listen on :23234 with a generated key
  game serve --ssh :2222               # Listen on port 2222
  game serve --host-key ./my_host_key  # Use a specific host key

Connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	wcfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.World = wcfg
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
