package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lumieres/internal/cue"
)

// FormatOverlay renders the motivation shown after a day is validated.
func FormatOverlay(o cue.Overlay) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Jour %d validé", o.Day)) + "\n\n")
	b.WriteString(o.Message + "\n")
	if o.Reference != "" {
		b.WriteString("\n" + StylePurple.Render("— "+o.Reference) + "\n")
	}
	return RenderBox("Bravo !", b.String())
}
