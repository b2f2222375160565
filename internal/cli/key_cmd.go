package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lumieres/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newKeyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Gérer la clé du service de secours (trousseau du système)",
	}
	cmd.AddCommand(newKeySetCmd(app), newKeyDeleteCmd(app))
	return cmd
}

func newKeySetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set [KEY]",
		Short: "Enregistrer la clé dans le trousseau",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Keys == nil {
				return errors.New("trousseau indisponible")
			}
			var key string
			switch {
			case len(args) == 1:
				key = args[0]
			case app.interactive():
				v, err := app.readSecret("Clé du service de secours")
				if err != nil {
					return err
				}
				key = v
			default:
				return errors.New("clé manquante : lumieres key set KEY")
			}
			key = strings.TrimSpace(key)
			if err := validateNonEmpty(key); err != nil {
				return err
			}
			if err := app.Keys.SetAPIKey(key); err != nil {
				return fmt.Errorf("enregistrement de la clé : %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Clé enregistrée ✔"))
			return nil
		},
	}
}

func newKeyDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Supprimer la clé du trousseau",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Keys == nil {
				return errors.New("trousseau indisponible")
			}
			if err := app.Keys.DeleteAPIKey(); err != nil {
				return fmt.Errorf("suppression de la clé : %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Clé supprimée.")
			return nil
		},
	}
}
