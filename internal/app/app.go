package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/stepper/internal/config"
	"github.com/specialistvlad/stepper/internal/hcl"
	"github.com/specialistvlad/stepper/internal/tomlconfig"
	"github.com/specialistvlad/stepper/internal/yamlconfig"
)

// App encapsulates the application's dependencies and configuration for a
// single resolution.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. The resolved value is
// written to outW and log records to logW. A nil loader selects the default
// extension-based loader.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg, logW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = DefaultLoader()
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// DefaultLoader reads plain-text candidate files, plus HCL, YAML and TOML
// files recognized by extension.
func DefaultLoader() config.Loader {
	return config.NewDispatcher(config.NewTextLoader()).
		Register(hcl.NewLoader(), "hcl").
		Register(yamlconfig.NewLoader(), "yaml", "yml").
		Register(tomlconfig.NewLoader(), "toml")
}

// newLogger builds the run's own slog.Logger from the configured level and
// format. Unknown or empty levels fall back to warn, which keeps a
// successful run silent.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if cfg.LogLevel != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
			level = parsed
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
