package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/lumieres/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const resetPrompt = "Tout réinitialiser ? Cela effacera votre progression et vous ramènera à l'écran d'accueil."

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Effacer la date de début et toute la progression (les notes sont conservées)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				if !app.interactive() {
					return errors.New("confirmation requise : relance avec --yes")
				}
				ok, err := app.confirm(resetPrompt)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, formatter.Dim("Rien n'a été effacé."))
					return nil
				}
			}

			if err := app.Tracker.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, "Progression effacée. Lance `lumieres start` pour recommencer.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Ne pas demander de confirmation")

	return cmd
}
