// Package search provides the command that searches the catalog by name.
package search

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/kuniv/internal/cmd/globals"
	"github.com/agentstation/kuniv/internal/cmd/output"
	"github.com/agentstation/kuniv/pkg/query"
)

// AppContext defines the interface that the search command needs from the app.
type AppContext interface {
	Index() (*query.Index, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the search command.
func NewCommand(app AppContext) *cobra.Command {
	var flags *globals.FilterFlags

	cmd := &cobra.Command{
		Use:     "search <query...>",
		GroupID: "core",
		Aliases: []string{"find"},
		Short:   "Search institutions by name",
		Long: `Search matches the query against institution names, ignoring case and
whitespace. Multiple arguments are joined into one query, so
"서울 대학교" and "서울대학교" are the same search.

Filters narrow the matches the same way they do for list.`,
		Example: `  kuniv search 서울                       # Names containing 서울
  kuniv search kdi                        # Latin names match case-insensitively
  kuniv search 대학교 -r 경기도 --accredited`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, flags, strings.Join(args, " "))
		},
	}

	flags = globals.AddFilterFlags(cmd)

	return cmd
}

func run(cmd *cobra.Command, app AppContext, flags *globals.FilterFlags, q string) error {
	logger := app.Logger()

	if unknown := flags.Unknown(); len(unknown) > 0 {
		logger.Warn().
			Str("filters", strings.Join(unknown, ",")).
			Msg("Filter values outside the known vocabularies match nothing")
	}

	idx, err := app.Index()
	if err != nil {
		return err
	}

	records := flags.Apply(idx.Search(q, flags.Options()))
	logger.Debug().
		Str("query", q).
		Int("count", len(records)).
		Msg("Searched universities")

	return output.Universities(cmd.OutOrStdout(), records, output.Format(app.OutputFormat()))
}
