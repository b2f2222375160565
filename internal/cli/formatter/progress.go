package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	partBlock   = "▒"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clampRatio(pct)
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	var style = StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// DayCell renders one day of the chart: full block when validated, shaded
// when partly read, light when nothing is done.
func DayCell(completed, total int) string {
	switch {
	case total > 0 && completed >= total:
		return StyleGreen.Render(filledBlock)
	case completed > 0:
		return StyleYellow.Render(partBlock)
	default:
		return StyleDim.Render(emptyBlock)
	}
}

func clampRatio(pct float64) float64 {
	return min(1, max(0, pct))
}
