package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/planner"
	"github.com/alexanderramin/neurosprint/internal/sprint"
)

const weekBarWidth = 16

// FormatTaskLine renders one task: check mark, category, start time,
// title, duration, and a short id.
func FormatTaskLine(t domain.Task) string {
	var b strings.Builder
	b.WriteString(CheckMark(t.Completed))
	b.WriteString(" ")
	b.WriteString(CategoryBadge(t.Category))
	b.WriteString(" ")
	if t.StartTime != nil {
		b.WriteString(StyleYellow.Render(*t.StartTime))
		b.WriteString(" ")
	}
	title := t.Title
	if t.Completed {
		title = Dim(title)
	} else {
		title = StyleFg.Render(title)
	}
	b.WriteString(title)
	b.WriteString(" ")
	b.WriteString(Dim("(" + FormatMinutes(t.Duration) + ")"))
	b.WriteString(" ")
	b.WriteString(TruncID(t.ID))
	return b.String()
}

// FormatWeekHeader renders the week's title block: dates, structure option,
// sprint label, budget and completion.
func FormatWeekHeader(w domain.WeekPlan, stats planner.WeekStats, c sprint.Classification) string {
	end, _ := domain.DateForDay(w.WeekStart, domain.Sunday)
	preset := domain.StructureFor(w.StructureOption)

	var b strings.Builder
	b.WriteString(Header("Week of " + w.WeekStart))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n", StyleFg.Render(WeekRange(w.WeekStart, end)), KindBadge(c))
	fmt.Fprintf(&b, "%s %d %s\n", Dim("Option"), w.StructureOption, Dim("· "+preset.Description))
	fmt.Fprintf(&b, "%s %s\n", Dim("Budget  "), RenderBudget(stats.PlannedMinutes, stats.BudgetMinutes, weekBarWidth))
	fmt.Fprintf(&b, "%s %s %s\n", Dim("Done    "),
		RenderProgress(float64(stats.CompletionPercent())/100, weekBarWidth),
		Dim(fmt.Sprintf("%d/%d tasks", stats.CompletedTasks, stats.TotalTasks)))
	if stats.OverBudget {
		b.WriteString(StyleRed.Render("Over budget by " + FormatMinutes(stats.PlannedMinutes-stats.BudgetMinutes)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatWeek renders the header followed by each day's tasks in order.
func FormatWeek(w domain.WeekPlan, c sprint.Classification) string {
	stats := planner.Stats(w)

	var b strings.Builder
	b.WriteString(FormatWeekHeader(w, stats, c))
	for i, day := range domain.Days {
		b.WriteString("\n")
		b.WriteString(formatDayHeading(w.WeekStart, day, stats.Days[i]))
		b.WriteString("\n")
		tasks := w.TasksForDay(day)
		if len(tasks) == 0 {
			b.WriteString("  " + Dim("no tasks") + "\n")
			continue
		}
		for _, t := range tasks {
			b.WriteString("  " + FormatTaskLine(t) + "\n")
		}
	}
	return b.String()
}

// FormatDay renders a single day's tasks.
func FormatDay(w domain.WeekPlan, day domain.Day) string {
	stats := planner.Stats(w)
	var b strings.Builder
	b.WriteString(formatDayHeading(w.WeekStart, day, stats.Days[day.Index()]))
	b.WriteString("\n")
	tasks := w.TasksForDay(day)
	if len(tasks) == 0 {
		b.WriteString("  " + Dim("no tasks") + "\n")
	}
	for _, t := range tasks {
		b.WriteString("  " + FormatTaskLine(t) + "\n")
	}
	return b.String()
}

func formatDayHeading(weekStart string, day domain.Day, ds planner.DayStats) string {
	label := StyleHeader.Render(string(day))
	if date, err := domain.DateForDay(weekStart, day); err == nil {
		if t, err := time.Parse(domain.DateLayout, date); err == nil {
			label += " " + Dim(t.Format("Jan 2"))
		}
	}
	load := FormatMinutes(ds.PlannedMinutes)
	if ds.PresetMinutes > 0 {
		load += Dim(" / " + FormatMinutes(ds.PresetMinutes))
		if ds.PlannedMinutes > ds.PresetMinutes {
			load = StyleYellow.Render(FormatMinutes(ds.PlannedMinutes)) + Dim(" / "+FormatMinutes(ds.PresetMinutes))
		}
	} else if ds.PlannedMinutes == 0 {
		load = Dim("free")
	}
	return label + "  " + load
}

// FormatStats renders the per-category and per-day breakdown of a week.
func FormatStats(stats planner.WeekStats) string {
	var b strings.Builder
	b.WriteString(Header("Stats " + stats.WeekStart))
	b.WriteString("\n")

	rows := make([][]string, 0, len(stats.Categories))
	for _, cs := range stats.Categories {
		rows = append(rows, []string{
			CategoryBadge(cs.Category) + " " + cs.Category.Name(),
			fmt.Sprintf("%d", cs.Tasks),
			FormatMinutes(cs.PlannedMinutes),
			FormatMinutes(cs.CompletedMinutes),
			FormatMinutes(cs.PresetMinutes),
		})
	}
	b.WriteString(RenderTable([]string{"CATEGORY", "TASKS", "PLANNED", "DONE", "PRESET"}, rows))
	b.WriteString("\n")

	rows = rows[:0]
	for _, ds := range stats.Days {
		rows = append(rows, []string{
			string(ds.Day),
			fmt.Sprintf("%d", ds.Tasks),
			FormatMinutes(ds.PlannedMinutes),
			FormatMinutes(ds.CompletedMinutes),
			FormatMinutes(ds.PresetMinutes),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "TASKS", "PLANNED", "DONE", "PRESET"}, rows))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s\n", Dim("Budget"), RenderBudget(stats.PlannedMinutes, stats.BudgetMinutes, weekBarWidth))
	fmt.Fprintf(&b, "%s %d/%d tasks, %s done\n", Dim("Completed"),
		stats.CompletedTasks, stats.TotalTasks, FormatMinutes(stats.CompletedMinutes))
	return b.String()
}

// FormatReflection renders the weekly journal.
func FormatReflection(weekStart string, r domain.WeeklyReflection) string {
	var b strings.Builder
	title := "Reflection " + weekStart
	b.WriteString(Header(title))
	b.WriteString("\n")
	if r.IsEmpty() {
		b.WriteString(Dim("Nothing written yet.") + "\n")
		return b.String()
	}
	notes := func(heading string, n domain.CategoryNotes) {
		b.WriteString(Bold(heading) + "\n")
		for _, item := range []struct {
			c    domain.Category
			text string
		}{
			{domain.CategoryFoundation, n.Foundation},
			{domain.CategoryDrive, n.Drive},
			{domain.CategoryJoy, n.Joy},
		} {
			text := item.text
			if text == "" {
				text = Dim("-")
			}
			fmt.Fprintf(&b, "  %s %s\n", CategoryBadge(item.c), text)
		}
	}
	notes("Done", r.Done)
	notes("Not done", r.NotDone)
	b.WriteString(Bold("Adjustments") + "\n")
	if r.Adjustments == "" {
		b.WriteString("  " + Dim("-") + "\n")
	} else {
		b.WriteString("  " + r.Adjustments + "\n")
	}
	if r.Saved {
		b.WriteString(StyleGreen.Render("Saved") + "\n")
	} else {
		b.WriteString(StyleYellow.Render("Draft") + "\n")
	}
	return b.String()
}
