// Package app provides the application context and dependency management
// for the kuniv CLI. Configuration, logging and the catalog index live here
// and are handed to each command through its AppContext interface.
package app

import (
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/kuniv"
	"github.com/agentstation/kuniv/internal/appcontext"
	"github.com/agentstation/kuniv/internal/cmd/output"
	"github.com/agentstation/kuniv/pkg/errors"
	"github.com/agentstation/kuniv/pkg/query"
)

var _ appcontext.Interface = (*App)(nil)

// App represents the kuniv application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Where commands write; nil means the cobra default.
	out io.Writer

	// Catalog index (lazy-initialized)
	mu    sync.RWMutex
	index *query.Index
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment and
// config file, which options may replace.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

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

// OutputFormat returns the configured output format, detecting one from
// the terminal when none is set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// DataDir returns the directory the build step reads and writes.
func (a *App) DataDir() string {
	return a.config.DataDir
}

// IDSeed returns the first id handed to synthesized records.
func (a *App) IDSeed() int {
	return a.config.IDSeed
}

// Index returns the catalog index, loading it on first use. The embedded
// dataset is used unless a catalog directory is configured.
func (a *App) Index() (*query.Index, error) {
	a.mu.RLock()
	if a.index != nil {
		idx := a.index
		a.mu.RUnlock()
		return idx, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.index != nil {
		return a.index, nil
	}

	var (
		idx *query.Index
		err error
	)
	if dir := a.config.CatalogDir; dir != "" {
		a.logger.Debug().Str("dir", dir).Msg("Loading catalog from directory")
		idx, err = kuniv.LoadDir(dir)
	} else {
		idx, err = kuniv.Load()
	}
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", a.config.CatalogDir, err)
	}

	a.index = idx
	return idx, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "cannot be nil")
		}
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

// WithIndex sets a prebuilt index (useful for testing).
func WithIndex(idx *query.Index) Option {
	return func(a *App) error {
		a.index = idx
		return nil
	}
}

// WithOutput redirects command output.
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
