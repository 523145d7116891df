package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/sprint"
)

const monthBarWidth = 10

// FormatMonth renders every week of a month with its sprint label and load.
func FormatMonth(monthKey string, settings domain.MonthSettings, rows []sprint.Row, current string) string {
	var b strings.Builder
	b.WriteString(Header("Month " + monthKey))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d  %s %d\n\n",
		Dim("Sprint weeks"), settings.SprintWeeks,
		Dim("Integration every"), settings.IntegrationEvery)
	b.WriteString(renderRows(rows, current))
	return b.String()
}

// FormatOverview renders the rolling window around the current week.
func FormatOverview(rows []sprint.Row, current string) string {
	var b strings.Builder
	b.WriteString(Header("Overview"))
	b.WriteString("\n")
	b.WriteString(renderRows(rows, current))
	return b.String()
}

func renderRows(rows []sprint.Row, current string) string {
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		marker := " "
		if r.WeekStart == current {
			marker = StyleHeader.Render("▶")
		}
		planned, done, budget := Dim("--"), Dim("--"), Dim("--")
		if r.Planned {
			planned = fmt.Sprintf("%d tasks, %s", r.Stats.TotalTasks, FormatMinutes(r.Stats.PlannedMinutes))
			done = RenderProgress(float64(r.Stats.CompletionPercent())/100, monthBarWidth)
			budget = RenderCompactBar(r.Stats.BudgetRatio(), monthBarWidth, false)
			if r.Stats.OverBudget {
				budget = StyleRed.Render("over by " + FormatMinutes(r.Stats.PlannedMinutes-r.Stats.BudgetMinutes))
			}
		}
		table = append(table, []string{
			marker + " " + WeekRange(r.WeekStart, r.WeekEnd),
			KindBadge(r.Classification),
			planned,
			done,
			budget,
		})
	}
	return RenderTable([]string{"WEEK", "TYPE", "PLANNED", "DONE", "BUDGET"}, table)
}
