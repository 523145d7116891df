package cli

import (
	"strings"

	"github.com/alexanderramin/neurosprint/internal/cli/formatter"
	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/planner"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive week board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			_, err := tea.NewProgram(newBoardModel(app.Store), tea.WithAltScreen()).Run()
			return err
		},
	}
}

type boardKeyMap struct {
	PrevWeek key.Binding
	NextWeek key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	PrevDay  key.Binding
	NextDay  key.Binding
	Today    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.PrevWeek, k.NextWeek, k.Help, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.PrevDay, k.NextDay},
		{k.PrevWeek, k.NextWeek, k.Today},
		{k.Help, k.Quit},
	}
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		PrevWeek: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev week")),
		NextWeek: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next week")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "done")),
		PrevDay:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "move to prev day")),
		NextDay:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "move to next day")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this week")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// boardModel shows the current week day by day with a cursor over the
// flattened task list.
type boardModel struct {
	store  *planner.Store
	week   domain.WeekPlan
	tasks  []domain.Task // day order, then task order
	cursor int
	err    error
	keys   boardKeyMap
	help   help.Model
	width  int
}

func newBoardModel(store *planner.Store) *boardModel {
	m := &boardModel{
		store: store,
		keys:  defaultBoardKeys(),
		help:  help.New(),
	}
	m.reload("")
	return m
}

// reload refreshes the week and keeps the cursor on focusID when it is
// still present.
func (m *boardModel) reload(focusID string) {
	m.week = m.store.CurrentWeek()
	m.tasks = m.tasks[:0]
	for _, d := range domain.Days {
		m.tasks = append(m.tasks, m.week.TasksForDay(d)...)
	}
	if focusID != "" {
		for i, t := range m.tasks {
			if t.ID == focusID {
				m.cursor = i
				return
			}
		}
	}
	m.cursor = max(0, min(m.cursor, len(m.tasks)-1))
}

func (m *boardModel) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *boardModel) Init() tea.Cmd { return nil }

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.err = nil
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if t, ok := m.selected(); ok {
				_, m.err = m.store.ToggleTaskComplete(t.ID)
				m.reload(t.ID)
			}
		case key.Matches(msg, m.keys.PrevDay):
			m.shiftDay(-1)
		case key.Matches(msg, m.keys.NextDay):
			m.shiftDay(1)
		case key.Matches(msg, m.keys.PrevWeek):
			m.stepWeek(-1)
		case key.Matches(msg, m.keys.NextWeek):
			m.stepWeek(1)
		case key.Matches(msg, m.keys.Today):
			if _, m.err = m.store.GoToToday(); m.err == nil {
				m.cursor = 0
			}
			m.reload("")
		}
	}
	return m, nil
}

// shiftDay moves the selected task to the end of the neighbouring day.
func (m *boardModel) shiftDay(delta int) {
	t, ok := m.selected()
	if !ok {
		return
	}
	idx := t.Day.Index() + delta
	if idx < 0 || idx >= len(domain.Days) {
		return
	}
	target := domain.Days[idx]
	m.err = m.store.MoveTask(t.ID, target, endOrder(m.week, target))
	m.reload(t.ID)
}

func (m *boardModel) stepWeek(delta int) {
	target, err := domain.AddWeeks(m.week.WeekStart, delta)
	if err != nil {
		m.err = err
		return
	}
	if _, m.err = m.store.GoToWeek(target); m.err == nil {
		m.cursor = 0
	}
	m.reload("")
}

func (m *boardModel) View() string {
	stats := planner.Stats(m.week)
	c, _ := classifyWeek(m.store, m.week.WeekStart)

	var b strings.Builder
	b.WriteString(formatter.FormatWeekHeader(m.week, stats, c))

	i := 0
	for di, day := range domain.Days {
		b.WriteString("\n")
		ds := stats.Days[di]
		heading := formatter.StyleHeader.Render(day.Name())
		if ds.PresetMinutes > 0 || ds.PlannedMinutes > 0 {
			heading += "  " + formatter.Dim(formatter.FormatMinutes(ds.PlannedMinutes)+" / "+formatter.FormatMinutes(ds.PresetMinutes))
		}
		b.WriteString(heading + "\n")
		n := m.week.CountInDay(day)
		if n == 0 {
			b.WriteString("    " + formatter.Dim("·") + "\n")
		}
		for j := 0; j < n; j++ {
			prefix := "    "
			if i == m.cursor {
				prefix = formatter.StyleHeader.Render("  › ")
			}
			b.WriteString(prefix + formatter.FormatTaskLine(m.tasks[i]) + "\n")
			i++
		}
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
