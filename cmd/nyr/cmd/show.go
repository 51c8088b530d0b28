package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templui/nyr/internal/app"
	"github.com/templui/nyr/internal/progress"
	"github.com/templui/nyr/internal/ui"
)

func ShowCmd(a *app.App) *cobra.Command {
	var (
		hold bool
		step float64
	)

	cmd := &cobra.Command{
		Use:   "show <target-id>...",
		Short: "Animate progress bars for one or more targets",
		Long: `Animate a progress bar for each target toward its current percentage.

The view closes once every bar has finished, or when "q" is pressed.
Bars for overachieved targets stop at 100% and show the true percentage.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := make([]ui.BarSpec, 0, len(args))
			for _, id := range args {
				row, err := a.ProgressService.TargetProgress(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("target %s: %w", id, err)
				}
				specs = append(specs, ui.BarSpec{
					Goal:       progress.DisplayPercent(row.Percentage),
					Label:      row.Name,
					TargetText: ui.TargetText(row.TargetValue),
				})
			}

			opts := a.UIOptions()
			opts.Output = cmd.OutOrStdout()
			opts.ExitOnDone = !hold
			if cmd.Flags().Changed("step") {
				opts.Step = step
			}
			return ui.RunAnimated(cmd.Context(), specs, opts)
		},
	}

	cmd.Flags().BoolVar(&hold, "hold", false, `Keep the view open after every bar finishes, until "q" is pressed`)
	cmd.Flags().Float64Var(&step, "step", ui.DefaultStep, "Percentage points each bar advances per animation tick")

	return cmd
}
