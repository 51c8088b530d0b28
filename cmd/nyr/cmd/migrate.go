package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templui/nyr/internal/app"
	"github.com/templui/nyr/internal/db"
)

func MigrateCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:    "migrate",
		Short:  "Database schema maintenance",
		Hidden: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := db.Version(cmd.Context(), a.DB.DB, a.Cfg.DBDriver)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := db.MigrateDown(cmd.Context(), a.DB.DB, a.Cfg.DBDriver)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "rolled back one migration")
			return nil
		},
	})

	return cmd
}
