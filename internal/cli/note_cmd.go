package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lumieres/internal/cli/formatter"
	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	var clearNote bool

	cmd := &cobra.Command{
		Use:   "note N SLOT [TEXTE...]",
		Short: "Afficher, écrire ou effacer la note d'une lecture",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, slot, err := parseDaySlot(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 2 && !clearNote {
				text := app.Notes.Get(day, slot)
				if text == "" {
					text = formatter.Dim("Aucune note.")
				}
				fmt.Fprintln(out, text)
				return nil
			}

			text := strings.Join(args[2:], " ")
			if clearNote {
				text = ""
			}

			detach := app.Relay.onSaved(func(int, domain.Slot) {
				fmt.Fprintln(out, formatter.StyleGreen.Render("Enregistré ✔"))
			})
			defer detach()

			if err := app.Notes.Set(cmd.Context(), day, slot, text); err != nil {
				return err
			}
			app.Notes.Flush()
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearNote, "clear", false, "Effacer la note")

	return cmd
}
