package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/lumieres/internal/cli/formatter"
	"github.com/alexanderramin/lumieres/internal/cue"
	"github.com/alexanderramin/lumieres/internal/service"
	"github.com/spf13/cobra"
)

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle N SLOT",
		Short: "Cocher ou décocher une lecture (matin, midi ou soir)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, slot, err := parseDaySlot(args[0], args[1])
			if err != nil {
				return err
			}
			return withCelebration(cmd, app, day, func(ctx context.Context) (*service.DayUpdate, error) {
				return app.Tracker.Toggle(ctx, day, slot)
			})
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done N",
		Short: "Marquer les trois lectures du jour N comme faites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			return withCelebration(cmd, app, day, func(ctx context.Context) (*service.DayUpdate, error) {
				return app.Tracker.MarkAllDone(ctx, day)
			})
		},
	}
}

// withCelebration runs a progress mutation and then plays the completion
// sequence for any day it validated. The command has no screen to keep
// open, so the sequence runs without delays and is awaited.
func withCelebration(cmd *cobra.Command, app *App, day int, mutate func(context.Context) (*service.DayUpdate, error)) error {
	var completed []int
	detach := app.Relay.onCompleted(func(d int) { completed = append(completed, d) })
	u, err := mutate(cmd.Context())
	detach()
	if err != nil {
		return notStartedHint(err)
	}

	out := cmd.OutOrStdout()
	io.WriteString(out, formatter.FormatDayUpdate(u))
	if len(completed) == 0 {
		return nil
	}

	viewed := day
	celebration := cue.NewCelebration(app.Motivation, cue.Hooks{
		ViewedDay: func() int { return viewed },
		SetViewedDay: func(next int) {
			viewed = next
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Prochaine étape : jour %d", next)))
		},
		Open: func(o cue.Overlay) { fmt.Fprintln(out, formatter.FormatOverlay(o)) },
	}, cue.Timings{})
	for _, d := range completed {
		celebration.DayCompleted(d)
	}
	celebration.Wait()
	return nil
}
