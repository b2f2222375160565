package cli

import (
	"fmt"

	"github.com/alexanderramin/lumieres/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Afficher la progression, les séries et l'avance ou le retard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := app.Tracker.Dashboard(cmd.Context())
			if err != nil {
				return notStartedHint(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(dash))
			return nil
		},
	}
}
