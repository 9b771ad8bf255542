// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type so they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/kuniv/pkg/query"
)

// Interface defines the application context interface that commands need.
type Interface interface {
	// Index returns the catalog index, loading it on first use. It reads
	// the configured catalog directory when one is set and the embedded
	// dataset otherwise.
	Index() (*query.Index, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// DataDir returns the directory holding build inputs and outputs.
	DataDir() string

	// IDSeed returns the first id for synthesized records.
	IDSeed() int

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
