package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/lumieres/internal/cli/formatter"
	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/service"
	"github.com/alexanderramin/lumieres/internal/stats"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Afficher les lectures du jour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, ok := app.Tracker.StartDate()
			if !ok {
				return notStartedHint(service.ErrNotStarted)
			}
			return showDay(cmd, app, stats.CurrentDay(start, app.today()))
		},
	}
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day N",
		Short: "Afficher les lectures du jour N (1 à 365)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			return showDay(cmd, app, day)
		},
	}
}

func showDay(cmd *cobra.Command, app *App, day int) error {
	view, err := app.Tracker.Day(cmd.Context(), day)
	if err != nil {
		return notStartedHint(err)
	}
	hasNote := func(slot domain.Slot) bool { return app.Notes.Has(day, slot) }
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDay(view, hasNote))
	return nil
}

// notStartedHint points at the start command when no plan is running.
func notStartedHint(err error) error {
	if errors.Is(err, service.ErrNotStarted) {
		return fmt.Errorf("%w: lance d'abord `lumieres start [YYYY-MM-DD]`", err)
	}
	return err
}
