package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/kuniv/pkg/constants"
	"github.com/agentstation/kuniv/pkg/query"
	"github.com/agentstation/kuniv/pkg/universities"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	IndexFunc        func() (*query.Index, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	DataDirFunc      func() string
	IDSeedFunc       func() int
	VersionFunc      func() string
}

var _ Interface = (*Mock)(nil)

// Index returns an index using the mock function or an empty index.
func (m *Mock) Index() (*query.Index, error) {
	if m.IndexFunc != nil {
		return m.IndexFunc()
	}
	return query.New(nil, universities.LibraryMetadata{}), nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// DataDir returns the data directory using the mock function or the default.
func (m *Mock) DataDir() string {
	if m.DataDirFunc != nil {
		return m.DataDirFunc()
	}
	return constants.DefaultDataDir
}

// IDSeed returns the seed using the mock function or the default.
func (m *Mock) IDSeed() int {
	if m.IDSeedFunc != nil {
		return m.IDSeedFunc()
	}
	return constants.DefaultSyntheticIDSeed
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }
