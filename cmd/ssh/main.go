package main

import (
	"bufio"
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"sshbreak/internal/config"
	"sshbreak/internal/draw"
	"sshbreak/internal/loop"
	"sshbreak/internal/store"
)

// playerIDKey carries the authenticated player through the ssh.Context
// from the password callback to the session handler.
const playerIDKey = "sshbreak-player-id"

var userStore *store.Store

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error", "err", err)
	}

	if cfg.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxSize:  cfg.LogMaxSize,
			MaxAge:   cfg.LogMaxAge,
			Compress: true,
		})
	}

	userStore, err = store.Open(cfg.UsersFile)
	if err != nil {
		log.Fatal("failed to open user store", "path", cfg.UsersFile, "err", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSHHost, cfg.SSHPort)),
		wish.WithPasswordAuth(authenticate),
		wish.WithMiddleware(
			gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Game input is latency sensitive
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if cfg.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("starting SSH server", "host", cfg.SSHHost, "port", cfg.SSHPort)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "err", err)
		}
	}()

	<-done
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Fatal("shutdown error", "err", err)
	}
}

// authenticate checks the SSH password against the user store. The first
// connection with an unknown username creates the account.
func authenticate(ctx ssh.Context, password string) bool {
	username := ctx.User()

	id, err := userStore.Register(username, password)
	if err != nil {
		if !errors.Is(err, store.ErrUserExists) {
			log.Warn("registration rejected", "user", username, "err", err)
			return false
		}
		id, err = userStore.Authenticate(username, password)
		if err != nil {
			log.Info("auth failed", "user", username)
			return false
		}
	}

	ctx.SetValue(playerIDKey, id)
	return true
}

// gameMiddleware runs a game session on each SSH connection.
func gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			wish.Fatalln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		id, ok := sess.Context().Value(playerIDKey).(store.PlayerID)
		if !ok {
			wish.Fatalln(sess, "Error: session has no authenticated player")
			return
		}

		log.Info("session started",
			"user", sess.User(), "term", pty.Term,
			"width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		reader := bufio.NewReader(sess)
		err := loop.Run(reader, sess, loop.Options{
			Gateway:   userStore,
			PreAuthed: true,
			PlayerID:  id,
			Username:  sess.User(),
			TermSize:  sizeTracker.getSize,
		})
		if err != nil {
			log.Warn("game error", "user", sess.User(), "err", err)
		}

		log.Info("session ended", "user", sess.User())
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
