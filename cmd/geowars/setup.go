package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/geowars/internal/advisor"
	"github.com/vovakirdan/geowars/internal/audio"
	"github.com/vovakirdan/geowars/internal/config"
	"github.com/vovakirdan/geowars/internal/core"
	"github.com/vovakirdan/geowars/internal/registry"
	"github.com/vovakirdan/geowars/internal/storage"
)

// logFile is where terminal play logs go; the alt screen owns stdout.
const logFile = "~/.geowars/geowars.log"

// advisoryRetry is how soon the observer may ask again after a failed call.
const advisoryRetry = 2 * time.Second

// app holds everything a command needs. Close releases it.
type app struct {
	log    *log.Logger
	cfg    config.GeowarsConfig
	broker *advisor.Broker
	store  *storage.Store
	sound  *audio.SoundManager
	closer io.Closer
}

// newLogger builds the process logger. toFile sends output to logFile,
// falling back to stderr if the file cannot be opened.
func newLogger(toFile bool) (*log.Logger, io.Closer) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer
	)
	if toFile {
		path := config.ExpandHome(logFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
				out, closer = f, f
			}
		}
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "geowars",
		Level:           level,
	}), closer
}

// loadEnv reads ./.env and ~/.geowars/.env; the first one wins.
func loadEnv(logger *log.Logger) {
	if err := config.LoadEnv(".env", "~/.geowars/.env"); err != nil {
		logger.Warn("could not load .env", "err", err)
	}
}

// loadConfig reads the game config and applies --difficulty.
func loadConfig(logger *log.Logger) config.GeowarsConfig {
	cfg, err := config.LoadGeowars(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultGeowarsConfig()
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	return cfg
}

// newBroker connects the observer. A missing key or --no-ai yields a
// disabled broker; the game runs either way.
func newBroker(cfg config.AdvisorConfig, logger *log.Logger) *advisor.Broker {
	bcfg := advisor.BrokerConfig{
		Cooldown:   cfg.Cooldown,
		RetryAfter: advisoryRetry,
		Timeout:    cfg.Timeout,
		Logger:     logger,
	}
	if flagNoAI || !cfg.Enabled {
		return advisor.NewBroker(nil, bcfg)
	}

	key, _ := config.EnvValue(cfg.APIKeyEnv)
	gem, err := advisor.NewGemini(context.Background(), advisor.GeminiConfig{
		APIKey: key,
		Model:  cfg.Model,
	})
	switch {
	case errors.Is(err, advisor.ErrNoAPIKey):
		logger.Info("observer offline", "env", cfg.APIKeyEnv)
		return advisor.NewBroker(nil, bcfg)
	case err != nil:
		logger.Warn("observer offline", "err", err)
		return advisor.NewBroker(nil, bcfg)
	}

	logger.Info("observer online", "model", gem.Model())
	return advisor.NewBroker(gem, bcfg)
}

// setup wires logging, config, observer, storage and sound.
func setup(logToFile bool) *app {
	logger, closer := newLogger(logToFile)

	loadEnv(logger)
	cfg := loadConfig(logger)
	a := &app{
		log:    logger,
		cfg:    cfg,
		broker: newBroker(cfg.Advisor, logger),
		closer: closer,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
	} else {
		a.store = store
	}

	if flagSound {
		sm := audio.NewSoundManager(0.5)
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			a.sound = sm
		}
	}
	return a
}

// deps returns the game dependencies for a local session.
func (a *app) deps() registry.Deps {
	return registry.Deps{
		Logger:     a.log,
		Advisor:    a.broker,
		ConfigPath: flagConfig,
		Preset:     flagDifficulty,
	}
}

// Close releases everything setup opened.
func (a *app) Close() {
	a.broker.Close()
	a.sound.Cleanup()
	if a.store != nil {
		a.store.Close() //nolint:errcheck // shutting down
	}
	if a.closer != nil {
		a.closer.Close() //nolint:errcheck // shutting down
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// portOf returns the port of a host:port address, or the address itself.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}

// fail reports an unrecoverable error; cobra prints it and main exits 1.
func fail(what string, err error) error {
	return fmt.Errorf("%s: %w", what, err)
}
