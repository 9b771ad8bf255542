// Package validate provides the command that checks the institution
// directory against the closed vocabularies.
package validate

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/kuniv/internal/cmd/emoji"
	"github.com/agentstation/kuniv/internal/cmd/output"
	"github.com/agentstation/kuniv/internal/snapshot"
	"github.com/agentstation/kuniv/pkg/constants"
	"github.com/agentstation/kuniv/pkg/universities"
)

// AppContext defines the interface that the validate command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	OutputFormat() string
	DataDir() string
}

// Flags holds the validate command flags.
type Flags struct {
	Universities string
	Strict       bool
}

// IssuesError is returned in strict mode when the directory has issues.
type IssuesError struct {
	Count int
	Path  string
}

// Error implements the error interface.
func (e *IssuesError) Error() string {
	return fmt.Sprintf("%s: %d validation issue(s)", e.Path, e.Count)
}

// NewCommand creates the validate command.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Check the institution directory for unknown values",
		Long: `Validate reads the institution directory and reports rows whose level,
type, establishment or region fall outside the known vocabularies, along
with empty names and duplicate ids.

Issues are informational; build trusts its sources. Use --strict to exit
non-zero when any issue is found.`,
		Example: `  kuniv validate
  kuniv validate --universities ./scrape/universities.json --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Universities, "universities", "",
		"Institution directory file (default <data-dir>/universities.json)")
	cmd.Flags().BoolVar(&flags.Strict, "strict", false,
		"Exit with an error when issues are found")

	return cmd
}

func run(cmd *cobra.Command, app AppContext, flags *Flags) error {
	path := flags.Universities
	if path == "" {
		path = filepath.Join(app.DataDir(), constants.UniversitiesFile)
	}

	rows, err := snapshot.ReadDirectory(path)
	if err != nil {
		return err
	}

	issues := universities.Validate(rows)
	app.Logger().Debug().
		Str("path", path).
		Int("rows", len(rows)).
		Int("issues", len(issues)).
		Msg("Validated directory")

	w := cmd.OutOrStdout()
	format := output.Format(app.OutputFormat())
	switch {
	case !format.IsTable():
		if err := output.Issues(w, issues, format); err != nil {
			return err
		}
	case len(issues) == 0:
		fmt.Fprintf(w, "%s %d rows, no issues\n", emoji.Success, len(rows))
	default:
		fmt.Fprintf(w, "%s %d rows, %d issue(s)\n", emoji.Warning, len(rows), len(issues))
		if err := output.Issues(w, issues, format); err != nil {
			return err
		}
	}

	if flags.Strict && len(issues) > 0 {
		cmd.SilenceUsage = true
		return &IssuesError{Count: len(issues), Path: path}
	}
	return nil
}
