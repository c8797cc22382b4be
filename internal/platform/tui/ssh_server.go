package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/highscore"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/session"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the remote play server.
type SSHServerConfig struct {
	Address string

	// HostKeyPath defaults to ~/.shooter/host_key, generated on first start.
	HostKeyPath string

	DBPath string

	// Mode is the registered mode every connection plays.
	Mode string

	TickRate    int
	IdleTimeout time.Duration

	// MaxSessions caps concurrent players. Zero means unlimited.
	MaxSessions int
}

// DefaultSSHServerConfig returns the settings used by `shooter serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.shooter/scores.db",
		Mode:        "shooter",
		TickRate:    core.DefaultTickRate,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer gives every SSH connection its own round of the configured mode.
// All connections share one scores database.
type SSHServer struct {
	cfg    SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer validates cfg and prepares the listener. A database that
// cannot be opened disables score keeping instead of failing.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "shooter-ssh"})
	}
	if !registry.Exists(cfg.Mode) {
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{cfg: cfg, logger: logger}
	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("scores disabled", "db", cfg.DBPath, "error", err)
		s.store = nil
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		// Middlewares run last to first: logging, then the limit, then the round.
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			s.limitMiddleware,
			s.loggingMiddleware,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return s, nil
}

// resolveHostKey returns the host key path, creating its directory.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".shooter", "host_key")
	} else if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "a terminal is required: connect with ssh -t")
		return nil, nil
	}

	round, err := s.newRound(sess.User())
	if err != nil {
		s.logger.Error("cannot create round", "mode", s.cfg.Mode, "error", err)
		wish.Fatalln(sess, "server error, try again later")
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	return NewModel(round, rt, Options{}), []tea.ProgramOption{tea.WithAltScreen()}
}

// newRound builds a session for one player, wired to the shared store.
func (s *SSHServer) newRound(user string) (*session.Session, error) {
	game, err := registry.Create(s.cfg.Mode)
	if err != nil {
		return nil, err
	}
	logger := s.logger.With("user", user)
	opts := []session.Option{session.WithLogger(logger)}
	if s.store != nil {
		backend := highscore.NewSQLiteBackend(s.store, game.ID())
		opts = append(opts,
			session.WithKeeper(highscore.NewKeeper(backend, logger)),
			session.WithLedger(s.store),
		)
	}
	return session.New(game, opts...), nil
}

func (s *SSHServer) limitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if !s.acquire() {
			s.logger.Warn("session refused", "user", sess.User(), "max", s.cfg.MaxSessions)
			wish.Fatalln(sess, "server is full, try again later")
			return
		}
		defer s.active.Add(-1)
		next(sess)
	}
}

// acquire reserves a session slot.
func (s *SSHServer) acquire() bool {
	n := s.active.Add(1)
	if s.cfg.MaxSessions > 0 && int(n) > s.cfg.MaxSessions {
		s.active.Add(-1)
		return false
	}
	return true
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("connected", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("disconnected", "user", sess.User(), "duration", time.Since(start).Round(time.Second))
	}
}

// Serve accepts connections until ctx is cancelled, then shuts down.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.cfg.Address, "mode", s.cfg.Mode)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and waits for running rounds.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("closing scores database", "error", err)
		}
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}

// Active returns the number of connected players.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}
