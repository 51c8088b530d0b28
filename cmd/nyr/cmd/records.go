package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/templui/nyr/internal/app"
	"github.com/templui/nyr/internal/model"
	"github.com/templui/nyr/internal/service"
	"github.com/templui/nyr/internal/ui"
)

func RecordsCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record", "r"},
		Short:   "Manage progress records",
	}

	cmd.AddCommand(recordsListCmd(a))
	cmd.AddCommand(recordsCreateCmd(a))
	cmd.AddCommand(recordsDeleteCmd(a))

	return cmd
}

func recordsListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List progress records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.RecordService.Records(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RecordsTable("progress records", records))
			return nil
		},
	}
}

func recordsCreateCmd(a *app.App) *cobra.Command {
	var (
		targetID  string
		entryDate string
		itemName  string
		value     float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Log progress against a target",
		Long: `Log progress against a target.

Count targets need --item-name; value targets need --value.

Examples:
  nyr records create --target-id <id> --item-name "Dune"
  nyr records create --target-id <id> --value 85 --entry-date 2025-03-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.RecordInput{TargetID: targetID}
			if cmd.Flags().Changed("item-name") {
				in.ItemName = &itemName
			}
			if cmd.Flags().Changed("value") {
				in.Value = &value
			}
			if cmd.Flags().Changed("entry-date") {
				d, err := parseDate("entry-date", entryDate)
				if err != nil {
					return err
				}
				in.EntryDate = &d
			}

			record, err := a.RecordService.Append(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("log progress for target %s: %w", targetID, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.RecordsTable("progress record created", []*model.ProgressRecord{record}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetID, "target-id", "t", "", "The id of the target that this record is for")
	cmd.Flags().StringVarP(&entryDate, "entry-date", "e", "", "When the record was done (YYYY-MM-DD). Defaults to today")
	cmd.Flags().StringVarP(&itemName, "item-name", "i", "", `The name of the record (required for "count" targets)`)
	cmd.Flags().Float64VarP(&value, "value", "v", 0, `The value you want to record (required for "value" targets)`)
	_ = cmd.MarkFlagRequired("target-id")

	return cmd
}

func recordsDeleteCmd(a *app.App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a progress record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.RecordService.Delete(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("delete progress record %s: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Record deleted"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&id, "id", "i", "", "The id of the progress record to delete")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
