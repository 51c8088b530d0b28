package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/templui/nyr/internal/app"
	"github.com/templui/nyr/internal/model"
	"github.com/templui/nyr/internal/service"
	"github.com/templui/nyr/internal/ui"
)

const dateLayout = "2006-01-02"

func TargetsCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "targets",
		Aliases: []string{"target", "t"},
		Short:   "Manage targets",
	}

	cmd.AddCommand(targetsListCmd(a))
	cmd.AddCommand(targetsCreateCmd(a))
	cmd.AddCommand(targetsDeleteCmd(a))

	return cmd
}

func targetsListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := a.TargetService.Targets(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.TargetsTable("targets", targets))
			return nil
		},
	}
}

func targetsCreateCmd(a *app.App) *cobra.Command {
	var (
		name        string
		targetType  string
		targetDate  string
		startValue  float64
		targetValue float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a target",
		Long: `Create a target to track progress against.

Count targets measure the number of logged records; value targets measure
the highest value logged.

Examples:
  # Read 12 books by the end of the year
  nyr targets create --name "Read books" --target-value 12

  # Squat 100kg, starting from 60kg
  nyr targets create --name Squat --target-type value --start-value 60 --target-value 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.TargetInput{
				Name:        name,
				TargetValue: targetValue,
			}
			if cmd.Flags().Changed("target-type") {
				in.TargetType = &targetType
			}
			if cmd.Flags().Changed("start-value") {
				in.StartValue = &startValue
			}
			if cmd.Flags().Changed("target-date") {
				d, err := parseDate("target-date", targetDate)
				if err != nil {
					return err
				}
				in.TargetDate = &d
			}

			target, err := a.TargetService.Create(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.TargetsTable("target created", []*model.Target{target}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "The target you're trying to achieve")
	cmd.Flags().StringVar(&targetType, "target-type", "count", fmt.Sprintf("The type of target (%s)", model.TargetTypeTags(" or ")))
	cmd.Flags().StringVarP(&targetDate, "target-date", "d", "", "When you'd like to achieve the goal by (YYYY-MM-DD). Defaults to end of this year")
	cmd.Flags().Float64VarP(&startValue, "start-value", "s", 0, "The starting value of your target")
	cmd.Flags().Float64VarP(&targetValue, "target-value", "t", 0, "The target value you're trying to achieve")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target-value")

	return cmd
}

func targetsDeleteCmd(a *app.App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a target and its progress records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.TargetService.Delete(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("delete target %s: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Target deleted"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&id, "id", "i", "", "The id of the target to delete")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func parseDate(flag, value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: --%s must be a date like 2025-12-31", service.ErrValidation, flag)
	}
	return d, nil
}
