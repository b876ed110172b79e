// Package app provides the application context and dependency management
// for the enroller CLI: configuration, logging and build information are
// loaded once and handed to every command.
package app

import (
	"github.com/rs/zerolog"

	"github.com/upbvirtual/enroller/internal/cmd/application"
	"github.com/upbvirtual/enroller/internal/cmd/output"
	"github.com/upbvirtual/enroller/pkg/batch"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// App represents the enroller application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from the default locations; options run last.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}
	app.reportWarnings()

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format. Without one, a
// terminal gets a table and a pipe gets JSON.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Settings returns the run settings of a variant as configured. The
// consolidated file is produced unless a command turns it off.
func (a *App) Settings(variant roster.Variant) batch.Settings {
	return batch.Settings{
		Variant:      variant,
		Mode:         a.config.ProcessMode,
		BannerDir:    a.config.BannerDirectory,
		AccountsFile: a.config.AccountsFile,
		CoursesFile:  a.config.CoursesFile,
		OutputDir:    a.config.OutputDirectory,
		Merge:        true,
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// reportWarnings logs configuration problems once a logger exists.
func (a *App) reportWarnings() {
	for _, w := range a.config.Warnings {
		a.logger.Warn().Err(w).Msg("Configuration problem")
	}
}
