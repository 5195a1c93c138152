package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gnu-dash/internal/config"
	"github.com/vovakirdan/gnu-dash/internal/core"
	"github.com/vovakirdan/gnu-dash/internal/games/dash"
	"github.com/vovakirdan/gnu-dash/internal/logging"
	"github.com/vovakirdan/gnu-dash/internal/storage"
)

var (
	flagConfig string
	flagPreset string
	flagWatch  bool
)

// addGameFlags registers the flags shared by every command that starts a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom dash.yaml")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
}

// session holds what a game command needs for its lifetime.
type session struct {
	logger     *log.Logger
	logCloser  io.Closer
	store      *storage.Store
	runtime    core.RuntimeConfig
	cfg        config.DashConfig
	preset     config.Preset
	configPath string
}

// openSession sets up logging, the game configuration and the run store.
// A missing run store is not fatal; the game simply does not record runs.
func openSession() (*session, error) {
	logger, closer, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}

	preset := config.ParsePreset(flagPreset)
	if flagPreset != "" && preset == "" {
		_ = closer.Close()
		return nil, fmt.Errorf("unknown preset %q (want easy, normal or hard)", flagPreset)
	}

	// Fail early on a broken config rather than inside the alt screen.
	cfg, err := config.Load(flagConfig)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)

	dash.SetConfigPath(flagConfig)
	dash.SetPreset(preset)
	dash.SetLogger(logger)

	store, err := storage.Open()
	if err != nil {
		logger.Warn("run store unavailable", "err", err)
		store = nil
	}

	s := &session{
		logger:     logger,
		logCloser:  closer,
		store:      store,
		cfg:        cfg,
		preset:     preset,
		configPath: flagConfig,
		runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		s.runtime.ScreenW = w
		s.runtime.ScreenH = h
	}
	return s, nil
}

// watcher starts a config watcher when --watch is set. Without --config
// the user config file is watched.
func (s *session) watcher() *config.Watcher {
	if !flagWatch {
		return nil
	}
	path := s.configPath
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		s.logger.Warn("config watch disabled", "err", err)
		return nil
	}
	s.logger.Info("watching config", "path", path)
	return w
}

func (s *session) presetName() string {
	if s.preset == "" {
		return string(config.PresetNormal)
	}
	return string(s.preset)
}

// Close releases the run store and the log file.
func (s *session) Close() {
	if s.store != nil {
		_ = s.store.Close()
	}
	_ = s.logCloser.Close()
}
