package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/riverraid/internal/config"
)

// loadSettings resolves the effective game configuration from the config
// search path, the difficulty preset and the --tick override.
func loadSettings(path, difficulty string, tick time.Duration) (config.RiverRaidConfig, error) {
	cfg, err := config.LoadRiverRaid(path)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyRiverRaidPreset(&cfg, preset)

	if tick > 0 {
		cfg.Loop.TickMS = int(tick / time.Millisecond)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Without a log file, logs are discarded
// since the game owns the terminal.
func newLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "riverraid",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
