package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/neurosprint/internal/cli/formatter"
	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var errNotInteractive = errors.New("this command needs an interactive terminal")

// neurosprintHuhTheme returns a huh theme matching the formatter palette.
func neurosprintHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validatePositiveMinutes(n int) error {
	if n <= 0 {
		return fmt.Errorf("duration must be a positive number of minutes, got %d", n)
	}
	return nil
}

// validateOptionalStartTime accepts empty or HH:MM.
func validateOptionalStartTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return domain.ValidateStartTime(strings.TrimSpace(s))
}

func categoryOptions() []huh.Option[domain.Category] {
	opts := make([]huh.Option[domain.Category], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s  %s", c, c.Name()), c))
	}
	return opts
}

func dayOptions() []huh.Option[domain.Day] {
	opts := make([]huh.Option[domain.Day], 0, len(domain.Days))
	for _, d := range domain.Days {
		opts = append(opts, huh.NewOption(d.Name(), d))
	}
	return opts
}

// taskFormValues backs the task form; numbers stay strings until submit.
type taskFormValues struct {
	Category  domain.Category
	Title     string
	Duration  string
	Day       domain.Day
	StartTime string
}

func (v taskFormValues) toNewTask() (domain.NewTaskData, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(v.Duration))
	if err != nil {
		return domain.NewTaskData{}, fmt.Errorf("invalid duration %q", v.Duration)
	}
	data := domain.NewTaskData{
		Category: v.Category,
		Title:    strings.TrimSpace(v.Title),
		Duration: minutes,
		Day:      v.Day,
	}
	if st := strings.TrimSpace(v.StartTime); st != "" {
		data.StartTime = &st
	}
	return data, nil
}

func taskForm(v *taskFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Category]().Title("Project").Options(categoryOptions()...).Value(&v.Category),
			huh.NewInput().Title("Title").Value(&v.Title).Validate(validateRequired),
			huh.NewInput().Title("Duration (minutes)").Placeholder("30").Value(&v.Duration).Validate(validatePositiveInt),
			huh.NewSelect[domain.Day]().Title("Day").Options(dayOptions()...).Value(&v.Day),
			huh.NewInput().Title("Start time (HH:MM, blank for any)").Value(&v.StartTime).Validate(validateOptionalStartTime),
		),
	).WithTheme(neurosprintHuhTheme()).WithShowHelp(false)
}

func reflectionForm(r *domain.WeeklyReflection) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Done · Foundation").Value(&r.Done.Foundation),
			huh.NewText().Title("Done · Drive").Value(&r.Done.Drive),
			huh.NewText().Title("Done · Joy").Value(&r.Done.Joy),
		),
		huh.NewGroup(
			huh.NewText().Title("Not done · Foundation").Value(&r.NotDone.Foundation),
			huh.NewText().Title("Not done · Drive").Value(&r.NotDone.Drive),
			huh.NewText().Title("Not done · Joy").Value(&r.NotDone.Joy),
		),
		huh.NewGroup(
			huh.NewText().Title("Adjustments for next week").Value(&r.Adjustments),
		),
	).WithTheme(neurosprintHuhTheme())
}

func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(neurosprintHuhTheme()).WithShowHelp(false)
}

// confirm asks the user unless yes is already set. Non-interactive callers
// must pass --yes.
func confirm(app *App, title string, yes bool) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.interactive() {
		return false, fmt.Errorf("%w: pass --yes to confirm", errNotInteractive)
	}
	var ok bool
	if err := confirmForm(title, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}
