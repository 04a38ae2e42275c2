package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"sshbreak/internal/audio"
	"sshbreak/internal/config"
	"sshbreak/internal/loop"
	"sshbreak/internal/store"
)

func main() {
	// The terminal is in raw mode while the game runs, so logs go to a
	// file instead of wrecking the screen.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile("sshbreak.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// A broken user store degrades to guest play rather than refusing to
	// start.
	var gateway loop.ScoreGateway
	if st, err := store.Open(cfg.UsersFile); err != nil {
		log.Warn("user store unavailable, playing as guest", "path", cfg.UsersFile, "err", err)
	} else {
		gateway = st
	}

	var sink loop.AudioSink
	if cfg.AudioOn {
		engine := audio.NewEngine(cfg.MusicOn)
		if err := engine.Start(); err != nil {
			log.Warn("audio engine start failed", "err", err)
		}
		defer engine.Close()
		sink = audio.NewSink(engine)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, loop.Options{
		Gateway: gateway,
		Sink:    sink,
	}); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
