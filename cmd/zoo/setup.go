package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-zoo/internal/audio"
	"github.com/vovakirdan/tui-zoo/internal/core"
	"github.com/vovakirdan/tui-zoo/internal/games/zoo"
	"github.com/vovakirdan/tui-zoo/internal/platform/spectate"
	"github.com/vovakirdan/tui-zoo/internal/storage"
)

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Failure is reported but not fatal.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newLogger returns a debug logger writing to --log-file, or a discarding
// logger when unset. The TUI owns the terminal, so logs never go to stderr.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), nil, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "zoo",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// setupGame wires the logger, sound and spectator feed into the game package.
// The returned func releases everything it opened.
func setupGame() (cleanup func(), err error) {
	var closers []func()
	cleanup = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	zoo.SetConfigPath(flagConfig)
	zoo.SetDifficultyPreset(flagDifficulty)

	logger, logFile, err := newLogger()
	if err != nil {
		return cleanup, err
	}
	if logFile != nil {
		closers = append(closers, func() { logFile.Close() })
	}
	zoo.SetLogger(logger)

	if flagSound {
		sm := audio.NewSoundManager(0.4)
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			sm.Mute(core.CueRemove)
			zoo.SetCuePlayer(sm)
			closers = append(closers, sm.Cleanup)
		}
	}

	if flagSpectate != "" {
		hub := spectate.NewHub(logger)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := hub.ListenAndServe(ctx, flagSpectate); err != nil {
				logger.Error("spectator feed stopped", "err", err)
			}
		}()
		zoo.SetObserver(hub.Publish)
		closers = append(closers, func() {
			cancel()
			<-done
		})
	}

	return cleanup, nil
}
