package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lumieres/internal/domain"
	"github.com/alexanderramin/lumieres/internal/service"
)

// FormatDay renders the reading card of one plan day. hasNote marks slots
// that carry a note; it may be nil.
func FormatDay(v *service.DayView, hasNote func(domain.Slot) bool) string {
	var b strings.Builder

	weekday := ""
	if v.Plan != nil && v.Plan.Weekday != "" {
		weekday = v.Plan.Weekday + " · "
	}
	fmt.Fprintf(&b, "%s\n", Dim(weekday+LongDate(v.Date)))

	headers := []string{"", "LECTURE", "RÉFÉRENCE", ""}
	rows := make([][]string, 0, len(domain.Slots))
	for _, slot := range domain.Slots {
		ref := Dim("--")
		if v.Plan != nil {
			ref = v.Plan.Reference(slot)
		}
		note := ""
		if hasNote != nil && hasNote(slot) {
			note = StylePurple.Render("✎")
		}
		rows = append(rows, []string{Check(v.Progress.Done(slot)), slot.Label(), ref, note})
	}
	b.WriteString("\n" + RenderTable(headers, rows))

	done := v.Progress.CompletedSlots()
	status := Dim(fmt.Sprintf("%d/%d lectures", done, domain.SlotsPerDay))
	if v.Progress.Complete() {
		status = StyleGreen.Render("Jour validé ✔")
	}
	b.WriteString("\n" + status + "\n")

	return RenderBox(fmt.Sprintf("Jour %d", v.Day), b.String())
}

// FormatDayUpdate is the one-line confirmation after a progress change.
func FormatDayUpdate(u *service.DayUpdate) string {
	var parts []string
	for _, slot := range domain.Slots {
		parts = append(parts, Check(u.Progress.Done(slot))+" "+slot.Label())
	}
	line := fmt.Sprintf("%s  %s", Bold(fmt.Sprintf("Jour %d", u.Day)), strings.Join(parts, "  "))
	if u.JustCompleted {
		line += "  " + StyleGreen.Render("Jour validé !")
	}
	return line + "\n"
}
