package formatter

import (
	"strings"

	"github.com/alexanderramin/lumieres/internal/bible"
	"github.com/charmbracelet/lipgloss"
)

var styleVerseNum = lipgloss.NewStyle().Foreground(ColorBlue).Width(4).Align(lipgloss.Right)

// FormatPassage renders headings and numbered verses. Text from the
// fallback service is labelled as such.
func FormatPassage(p bible.Passage) string {
	var b strings.Builder
	b.WriteString(Header(p.Title) + "\n")

	for _, item := range p.Content {
		switch item.Type {
		case bible.ItemHeading:
			b.WriteString("\n" + StyleBold.Render(item.Text) + "\n")
		default:
			b.WriteString(styleVerseNum.Render(item.Num) + " " + item.Text + "\n")
		}
	}

	if len(p.Content) == 0 {
		b.WriteString(Dim("Aucun texte.") + "\n")
	}
	if p.Source == bible.SourceAPI {
		b.WriteString("\n" + Dim("Texte obtenu via le service de secours.") + "\n")
	}
	return b.String()
}
