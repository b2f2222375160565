package cli

import (
	"fmt"

	"github.com/alexanderramin/lumieres/internal/cli/formatter"
	"github.com/alexanderramin/lumieres/internal/dates"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start [YYYY-MM-DD]",
		Short: "Commencer le plan (aujourd'hui par défaut) ou changer sa date de début",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.today()
			start := today
			if len(args) == 1 {
				parsed, err := dates.ParseStartDate(args[0], today.Location())
				if err != nil {
					return err
				}
				start = parsed
			}

			day, err := app.Tracker.Start(cmd.Context(), start)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Plan commencé le %s. Aujourd'hui : %s\n",
				formatter.Bold(formatter.LongDate(start)),
				formatter.Bold(fmt.Sprintf("jour %d", day)))
			return nil
		},
	}
}
