// Package build provides the command that merges the two scraped sources
// into the final dataset.
package build

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/kuniv/internal/cmd/emoji"
	"github.com/agentstation/kuniv/internal/cmd/output"
	"github.com/agentstation/kuniv/internal/snapshot"
	"github.com/agentstation/kuniv/pkg/logging"
	"github.com/agentstation/kuniv/pkg/reconciler"
	"github.com/agentstation/kuniv/pkg/universities"
)

// AppContext defines the interface that the build command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	OutputFormat() string
	DataDir() string
	IDSeed() int
}

// Flags holds the build command flags.
type Flags struct {
	DataDir      string
	Universities string
	Accredited   string
	Output       string
	Metadata     string
	IDSeed       int
	DryRun       bool
}

// Report is the structured output of a build.
type Report struct {
	Metadata    universities.LibraryMetadata `json:"metadata" yaml:"metadata"`
	Synthesized []universities.University    `json:"synthesized" yaml:"synthesized"`
	Buckets     []reconciler.BucketResult    `json:"buckets" yaml:"buckets"`
	Warnings    []string                     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Written     []string                     `json:"written" yaml:"written"`
}

// NewCommand creates the build command.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "build",
		GroupID: "management",
		Short:   "Merge the scraped sources into the final dataset",
		Long: `Build reads the institution directory and the accreditation directory,
flags every accredited institution, synthesizes records for accredited
names missing from the directory, and writes the merged dataset and its
build summary.

The build aborts without writing anything if either input is missing.`,
		Example: `  kuniv build                                  # Use the default data directory
  kuniv build --data-dir ./data                # Read and write under ./data
  kuniv build --dry-run -o json                # Print the report without writing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.DataDir, "data-dir", "",
		"Directory holding inputs and outputs (default from config)")
	cmd.Flags().StringVar(&flags.Universities, "universities", "",
		"Institution directory file (default <data-dir>/universities.json)")
	cmd.Flags().StringVar(&flags.Accredited, "accredited", "",
		"Accreditation directory file (default <data-dir>/accredited.json)")
	cmd.Flags().StringVar(&flags.Output, "output", "",
		"Merged dataset file (default <data-dir>/universities-final.json)")
	cmd.Flags().StringVar(&flags.Metadata, "metadata", "",
		"Build summary file (default <data-dir>/metadata.json)")
	cmd.Flags().IntVar(&flags.IDSeed, "id-seed", 0,
		"First id for synthesized records (default from config)")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false,
		"Run the merge without writing outputs")

	return cmd
}

// Paths resolves the file locations from flags and app defaults.
func (f *Flags) Paths(defaultDir string) snapshot.Paths {
	dir := f.DataDir
	if dir == "" {
		dir = defaultDir
	}

	paths := snapshot.DefaultPaths(dir)
	if f.Universities != "" {
		paths.Universities = f.Universities
	}
	if f.Accredited != "" {
		paths.Accredited = f.Accredited
	}
	if f.Output != "" {
		paths.Final = f.Output
	}
	if f.Metadata != "" {
		paths.Metadata = f.Metadata
	}
	return paths
}

func run(cmd *cobra.Command, app AppContext, flags *Flags) error {
	logger := app.Logger()
	ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), logger), "build")
	paths := flags.Paths(app.DataDir())

	directory, accredited, err := snapshot.LoadInputs(paths)
	if err != nil {
		return err
	}

	if issues := universities.Validate(directory); len(issues) > 0 {
		logger.Warn().
			Int("issues", len(issues)).
			Msg("Directory has values outside the vocabularies; run 'kuniv validate' for details")
	}

	seed := flags.IDSeed
	if seed == 0 {
		seed = app.IDSeed()
	}
	r, err := reconciler.New(reconciler.WithIDSeed(seed))
	if err != nil {
		return err
	}

	result, err := r.Reconcile(ctx, directory, accredited)
	if err != nil {
		return err
	}

	report := Report{
		Metadata:    result.Metadata,
		Synthesized: result.Synthesized,
		Buckets:     result.Buckets,
		Warnings:    result.Warnings,
		Written:     []string{},
	}

	if !flags.DryRun {
		if err := snapshot.WriteOutputs(paths, result.Universities, result.Metadata); err != nil {
			return err
		}
		report.Written = []string{paths.Final, paths.Metadata}
		logger.Info().
			Str("output", paths.Final).
			Str("metadata", paths.Metadata).
			Msg("Wrote build outputs")
	}

	format := output.Format(app.OutputFormat())
	if !format.IsTable() {
		return output.Any(cmd.OutOrStdout(), report, format)
	}
	return printReport(cmd.OutOrStdout(), result, report, format)
}

func printReport(w io.Writer, result *reconciler.Result, report Report, format output.Format) error {
	fmt.Fprintf(w, "%s %s\n", emoji.Success, result.Summary())
	for _, path := range report.Written {
		fmt.Fprintf(w, "  wrote %s\n", path)
	}
	if len(report.Written) == 0 {
		fmt.Fprintln(w, "  dry run, nothing written")
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "%s %s\n", emoji.Warning, warning)
	}

	if len(result.Synthesized) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\nSynthesized %d universities:\n", len(result.Synthesized))
	return output.Universities(w, result.Synthesized, format)
}
