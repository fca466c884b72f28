package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"habit-tracker/internal/domain"
	"habit-tracker/internal/errors"
	"habit-tracker/internal/logging"
	"habit-tracker/internal/services"
	"habit-tracker/internal/validation"
)

const defaultRefreshInterval = 250 * time.Millisecond

type tickMsg time.Time

// Model is the bubbletea model of the habit view
type Model struct {
	ctx       context.Context
	tracker   services.Tracker
	validator *validation.HabitValidator
	logger    *zap.Logger
	styles    Styles

	dateFormat string
	location   *time.Location
	interval   time.Duration
	now        func() time.Time

	snapshot services.Snapshot
	cursor   int
	edit     EditState
	input    textinput.Model
	hint     string
	warning  string
}

// NewModel builds the view over opts.Tracker
func NewModel(ctx context.Context, opts Options) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0

	m := &Model{
		ctx:        ctx,
		tracker:    opts.Tracker,
		validator:  opts.Validator,
		logger:     logging.OrNop(opts.Logger),
		styles:     DefaultStyles(),
		dateFormat: opts.DateFormat,
		location:   opts.Location,
		interval:   opts.RefreshInterval,
		now:        time.Now,
		input:      input,
	}
	if m.validator == nil {
		m.validator = validation.NewHabitValidator()
	}
	if m.dateFormat == "" {
		m.dateFormat = "Mon Jan 2 2006"
	}
	if m.location == nil {
		m.location = time.Local
	}
	if m.interval <= 0 {
		m.interval = defaultRefreshInterval
	}
	m.refresh()
	return m
}

// Init starts the refresh ticker
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses and refresh ticks
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.interval)
	case tea.KeyMsg:
		if m.edit.Active() {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snapshot.Habits)-1 {
			m.cursor++
		}
	case " ", "enter", "x":
		if habit, ok := m.current(); ok {
			m.report(m.tracker.Toggle(m.ctx, habit.ID))
		}
	case "e":
		if habit, ok := m.current(); ok {
			m.startEdit(habit)
			return m, textinput.Blink
		}
	case "r":
		m.report(m.tracker.ResetDay(m.ctx))
	}
	m.refresh()
	return m, nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.cancelEdit()
		return m, nil
	case tea.KeyEnter:
		m.commitEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) startEdit(habit domain.Habit) {
	m.edit.Start(habit.ID)
	m.hint = ""
	m.input.SetValue(habit.Name)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) cancelEdit() {
	m.edit.Cancel()
	m.hint = ""
	m.input.Blur()
	m.input.Reset()
}

// commitEdit renames the habit; a name the tracker would reject keeps the
// editor open with a hint instead.
func (m *Model) commitEdit() {
	value := m.input.Value()
	if err := m.validator.ValidateHabitName(value); err != nil {
		if ve, ok := validation.AsValidationError(err); ok {
			m.hint = ve.GetUserFriendlyMessage()
		} else {
			m.hint = err.Error()
		}
		return
	}

	m.report(m.tracker.Rename(m.ctx, m.edit.ID(), value))
	m.cancelEdit()
	m.refresh()
}

func (m *Model) current() (domain.Habit, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Habits) {
		return domain.Habit{}, false
	}
	return m.snapshot.Habits[m.cursor], true
}

// report surfaces a failed save as a warning line; the view keeps working
func (m *Model) report(err error) {
	if err == nil {
		m.warning = ""
		return
	}
	if errors.ShouldLogError(err) {
		m.logger.Warn("tracker state not saved", zap.Error(err))
	}
	m.warning = errors.GetUserMessage(err)
}

func (m *Model) refresh() {
	m.snapshot = m.tracker.Snapshot()
	if m.cursor >= len(m.snapshot.Habits) {
		m.cursor = len(m.snapshot.Habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	// the habit being edited may have disappeared from a reloaded list
	if m.edit.Active() && domain.IndexOf(m.snapshot.Habits, m.edit.ID()) < 0 {
		m.cancelEdit()
	}
}

// View renders the habit view
func (m *Model) View() string {
	s := m.styles
	snap := m.snapshot
	var b strings.Builder

	b.WriteString(s.Title.Render("Daily Habits"))
	b.WriteString("  ")
	b.WriteString(s.Subtitle.Render(m.now().In(m.location).Format(m.dateFormat)))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render("Build consistency, one day at a time"))
	b.WriteString("\n\n")

	b.WriteString(s.Stat.Render("Current Streak "))
	b.WriteString(s.StatValue.Render(fmt.Sprintf("%d days", snap.Streak)))
	b.WriteString("   ")
	b.WriteString(s.Stat.Render("Today's Progress "))
	b.WriteString(s.StatValue.Render(fmt.Sprintf("%d%%", snap.ProgressPercentage)))
	b.WriteString("\n\n")

	b.WriteString(progressBar(snap.ProgressPercentage, s))
	b.WriteString(fmt.Sprintf("  %d/%d completed\n", snap.CompletedCount, snap.Total))
	b.WriteString(s.Message.Render(snap.Tier.Message()))
	b.WriteString("\n\n")

	if snap.CelebrationActive {
		b.WriteString(s.Celebration.Render(domain.CelebrationTitle + "  " + domain.CelebrationMessage(snap.Streak)))
		b.WriteString("\n\n")
	}

	for i, habit := range snap.Habits {
		cursor := "  "
		if i == m.cursor {
			cursor = s.Cursor.Render("> ")
		}
		mark := "[ ]"
		name := s.Habit.Render(habit.Name)
		if habit.Completed {
			mark = "[x]"
			name = s.Done.Render(habit.Name)
		}
		if m.edit.Editing(habit.ID) {
			name = m.input.View()
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, name))
	}

	if m.hint != "" {
		b.WriteString("\n")
		b.WriteString(s.Hint.Render(m.hint))
		b.WriteString("\n")
	}
	if m.warning != "" {
		b.WriteString("\n")
		b.WriteString(s.Hint.Render(m.warning))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.edit.Active() {
		b.WriteString(s.Help.Render("enter save • esc cancel"))
	} else {
		b.WriteString(s.Help.Render("↑/↓ move • space toggle • e rename • r reset day • q quit"))
	}
	b.WriteString("\n")

	return b.String()
}
