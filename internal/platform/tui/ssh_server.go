package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-syzygy/internal/core"
	"github.com/vovakirdan/tui-syzygy/internal/storage"
)

// anonymousSlot is the save slot of sessions without a user name.
const anonymousSlot = "anonymous"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.syzygy/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// ShowHelp draws the key hint line in puzzles.
	ShowHelp bool
}

// SSHServer wraps a Wish SSH server. Every SSH user plays in the save
// slot named after their user name, one session per slot at a time.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	slots  *slotLocks
}

// slotLocks tracks the save slots that have a live session.
type slotLocks struct {
	mu     sync.Mutex
	active map[string]bool
}

func newSlotLocks() *slotLocks {
	return &slotLocks{active: make(map[string]bool)}
}

// acquire claims slot. It reports false if another session holds it.
func (l *slotLocks) acquire(slot string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active[slot] {
		return false
	}
	l.active[slot] = true
	return true
}

func (l *slotLocks) release(slot string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.active, slot)
}

// NewSSHServer creates a new SSH server. The server does not own store.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
		slots:  newSlotLocks(),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".syzygy", "host_key")
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
			srv.slotLockMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// slotFor returns the save slot of an SSH user.
func slotFor(user string) string {
	if user == "" {
		return anonymousSlot
	}
	return user
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	slot := slotFor(sshSession.User())
	game, err := s.store.LoadState(slot, s.logger)
	if err != nil {
		s.logger.Error("cannot load game", "slot", slot, "error", err)
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		ShowHelp: s.config.ShowHelp,
	}
	session := &Session{
		Store:  s.store,
		Slot:   slot,
		Game:   game,
		Logger: s.logger.With("slot", slot),
	}

	return NewAppModel(session, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// slotLockMiddleware refuses a session whose save slot is already being
// played.
func (s *SSHServer) slotLockMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		slot := slotFor(sshSession.User())
		if !s.slots.acquire(slot) {
			s.logger.Warn("slot already in use", "slot", slot, "remote", sshSession.RemoteAddr().String())
			fmt.Fprintf(sshSession.Stderr(), "save slot %q is already being played; try again later\n", slot)
			_ = sshSession.Exit(1)
			return
		}
		defer s.slots.release(slot)
		next(sshSession)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

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
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
