package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/lumieres/internal/bible"
	"github.com/alexanderramin/lumieres/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReadCmd(app *App) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "read [N SLOT]",
		Short: "Lire le texte d'une lecture du plan ou d'une référence libre",
		Example: `  lumieres read 12 soir
  lumieres read --ref "Jean 3:16-18; Romains 8:28"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if ref != "" {
				return cobra.NoArgs(cmd, args)
			}
			if len(args) != 2 {
				return errors.New("attendu : read N SLOT, ou read --ref \"Livre chapitre:versets\"")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var passage bible.Passage
			if ref != "" {
				passage = app.Reader.ReadReference(cmd.Context(), ref)
			} else {
				day, slot, err := parseDaySlot(args[0], args[1])
				if err != nil {
					return err
				}
				reading, err := app.Reader.Read(cmd.Context(), day, slot)
				if err != nil {
					return err
				}
				passage = reading.Passage
				if passage.Title == "" {
					passage.Title = fmt.Sprintf("Jour %d · %s", day, slot.Label())
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPassage(passage))
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "Référence à lire, par exemple \"Psaumes 23\"")

	return cmd
}
