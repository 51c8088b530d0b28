package cmd

import (
	"github.com/spf13/cobra"

	"github.com/templui/nyr/internal/app"
	"github.com/templui/nyr/internal/ui"
)

// RootCmd builds the command tree. Running it without a subcommand shows
// the dashboard.
func RootCmd(a *app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nyr",
		Short:         "A tool to manage progress tracking",
		Version:       "1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, a)
		},
	}

	rootCmd.AddCommand(TargetsCmd(a))
	rootCmd.AddCommand(RecordsCmd(a))
	rootCmd.AddCommand(ShowCmd(a))
	rootCmd.AddCommand(MigrateCmd(a))

	return rootCmd
}

func runDashboard(cmd *cobra.Command, a *app.App) error {
	// Everything the loop shows is read up front; the loop never touches storage.
	rows, err := a.ProgressService.AllTargetProgress(cmd.Context())
	if err != nil {
		return err
	}

	opts := a.UIOptions()
	opts.Output = cmd.OutOrStdout()
	return ui.RunDashboard(cmd.Context(), rows, opts)
}
