package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/service"
	"github.com/alexanderramin/lumieres/internal/stats"
)

const dashboardBarWidth = 20

// FormatDashboard renders the overview: today's plan day, global progress,
// streaks, schedule status and the reading chart.
func FormatDashboard(d *service.Dashboard) string {
	var b strings.Builder
	s := d.Summary

	fmt.Fprintf(&b, "%s %s\n\n",
		Bold(fmt.Sprintf("Jour %d / %d", d.CurrentDay, domain.TotalDays)),
		Dim("· "+LongDate(d.Today)))

	fmt.Fprintf(&b, "Progression     %s  %s\n",
		RenderProgress(float64(s.PartsPercent)/100, dashboardBarWidth),
		Dim(fmt.Sprintf("%d/%d lectures", s.CompletedParts, domain.TotalDays*domain.SlotsPerDay)))
	fmt.Fprintf(&b, "Jours validés   %d / %d %s\n", s.ValidatedDays, domain.TotalDays, Dim(fmt.Sprintf("(%d%%)", s.DayPercent)))
	fmt.Fprintf(&b, "Semaines        %d / %d\n", s.ValidatedWeeks, s.TotalWeeks)
	fmt.Fprintf(&b, "Série actuelle  %s\n", StyleGreen.Render(streakText(s.CurrentStreak)))
	fmt.Fprintf(&b, "Meilleure série %s\n", streakText(s.BestStreak))
	fmt.Fprintf(&b, "Constance       %d%%\n\n", s.Consistency)

	b.WriteString(ScheduleIndicator(d.Status.Label) + "\n")
	b.WriteString(ScheduleColor(d.Status.Label).Render(d.Message) + "\n")

	if len(d.Chart) > 0 {
		b.WriteString("\n" + FormatChart(d.Chart))
	}

	return RenderBox("365 Lumières", b.String())
}

// FormatChart renders one row per plan week with one cell per day.
func FormatChart(days []stats.DailyStat) string {
	headers := []string{"SEMAINE", "DU", "JOURS", "VALIDÉS"}
	var rows [][]string
	for i := 0; i < len(days); i += domain.DaysPerWeek {
		week := days[i:min(i+domain.DaysPerWeek, len(days))]
		var cells strings.Builder
		validated := 0
		for _, day := range week {
			cells.WriteString(DayCell(day.CompletedSlots, domain.SlotsPerDay))
			if day.Validated {
				validated++
			}
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i/domain.DaysPerWeek+1),
			ShortDate(week[0].Date),
			cells.String(),
			fmt.Sprintf("%d/%d", validated, len(week)),
		})
	}
	return RenderTable(headers, rows)
}

func streakText(n int) string {
	if n > 1 {
		return fmt.Sprintf("%d jours", n)
	}
	return fmt.Sprintf("%d jour", n)
}
