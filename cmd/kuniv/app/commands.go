package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/kuniv/cmd/kuniv/cmd/build"
	"github.com/agentstation/kuniv/cmd/kuniv/cmd/list"
	"github.com/agentstation/kuniv/cmd/kuniv/cmd/meta"
	"github.com/agentstation/kuniv/cmd/kuniv/cmd/search"
	"github.com/agentstation/kuniv/cmd/kuniv/cmd/show"
	"github.com/agentstation/kuniv/cmd/kuniv/cmd/validate"
	"github.com/agentstation/kuniv/cmd/kuniv/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(meta.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(build.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))

	rootCmd.AddCommand(version.NewCommand(a))
}
