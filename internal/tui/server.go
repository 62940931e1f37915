package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"survivors-lab/internal/commons/logger_config"
	"survivors-lab/internal/world"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is generated at ~/.survivors/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	World    world.Config
	TickRate int
}

func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		World:       world.DefaultConfig(),
		TickRate:    30,
	}
}

// SSHServer gives every connection its own single-player World.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
}

func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	srv := &SSHServer{config: cfg}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".survivors", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		logger_config.Logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	m := NewModel(Config{
		World:    s.config.World,
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
		TickRate: s.config.TickRate,
	})
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		log := logger_config.With("ssh").With("user", sess.User(), "remote", sess.RemoteAddr().String())
		start := time.Now()
		log.Info("session started")
		next(sess)
		log.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until SIGINT/SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	logger_config.Logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		return fmt.Errorf("ssh server: %w", err)
	}
	logger_config.Logger.Info("shutting down...")
	return s.Shutdown()
}

func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) Addr() string {
	return s.config.Address
}
