package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampBar(pct float64, width int) (float64, int, int) {
	pct = max(0, min(1, pct))
	width = max(2, width)
	filled := min(width, int(pct*float64(width)))
	return pct, filled, width - filled
}

// RenderProgress renders a completion bar like [████░░░░] 45%.
// Green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	pct, filled, empty := clampBar(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderBudget renders planned time against the weekly budget. The bar
// fills toward the budget and turns red once planned time exceeds it.
func RenderBudget(plannedMin, budgetMin, width int) string {
	ratio := 0.0
	if budgetMin > 0 {
		ratio = float64(plannedMin) / float64(budgetMin)
	}
	_, filled, empty := clampBar(ratio, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	switch {
	case ratio > 1:
		style = StyleRed
	case ratio > 0.9:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %s / %s", style.Render(bar), FormatMinutes(plannedMin), FormatMinutes(budgetMin))
}

// RenderCompactBar renders a bar without brackets or a percentage.
func RenderCompactBar(pct float64, width int, dim bool) string {
	_, filled, empty := clampBar(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)
	if dim {
		return StyleDim.Render(bar)
	}
	return StyleGreen.Render(bar)
}
