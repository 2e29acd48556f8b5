// Package tui is the interactive terminal client.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutlog/internal/catalog"
	"github.com/2beens/workoutlog/internal/tracker"
	"github.com/2beens/workoutlog/internal/workouts"
)

type historyFetchedMsg struct {
	records []workouts.Record
	err     error
}

type workoutSavedMsg struct {
	entry workouts.Record
	saved *workouts.Record
	err   error
}

type clearNotificationMsg struct {
	id int
}

// formField is the focused input of the workout form.
type formField int

const (
	fieldWeight formField = iota
	fieldReps
)

// Model is the bubbletea model. All state changes go through the
// controller; the model only keeps cursors and input widgets.
type Model struct {
	ctx  context.Context
	ctrl *tracker.Controller
	loc  *time.Location

	width  int
	height int

	homeCursor     int
	exerciseCursor int
	dayCursor      time.Time

	field         formField
	weightInput   textinput.Model
	repsInput     textinput.Model
	filterInput   textinput.Model
	filterFocused bool

	spinner spinner.Model
	// tick schedules the notification clear.
	tick func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, ctrl *tracker.Controller) error {
	p := tea.NewProgram(
		New(ctx, ctrl),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func New(ctx context.Context, ctrl *tracker.Controller) Model {
	weight := textinput.New()
	weight.Placeholder = "Weight (lbs)"
	weight.CharLimit = 10
	weight.Width = 14

	reps := textinput.New()
	reps.Placeholder = "Reps (optional)"
	reps.CharLimit = 5
	reps.Width = 16

	filter := textinput.New()
	filter.Placeholder = "Filter by exercise..."
	filter.CharLimit = 64
	filter.Width = 30

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = selectedStyle

	now := ctrl.Now()
	return Model{
		ctx:         ctx,
		ctrl:        ctrl,
		loc:         now.Location(),
		dayCursor:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		weightInput: weight,
		repsInput:   reps,
		filterInput: filter,
		spinner:     s,
		tick:        tea.Tick,
	}
}

// State is the controller state, exposed for the views.
func (m Model) State() tracker.State {
	return m.ctrl.State()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.ctrl.BeginFetch()
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m Model) fetchCmd() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		records, err := ctrl.Fetch(ctx)
		return historyFetchedMsg{records: records, err: err}
	}
}

func (m Model) saveCmd(entry workouts.Record) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		saved, err := ctrl.Save(ctx, entry)
		return workoutSavedMsg{entry: entry, saved: saved, err: err}
	}
}

func (m Model) clearNotificationCmd() tea.Cmd {
	id := m.State().NotificationID
	return m.tick(tracker.NotificationTTL, func(time.Time) tea.Msg {
		return clearNotificationMsg{id: id}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case historyFetchedMsg:
		m.ctrl.CompleteFetch(m.ctx, msg.records, msg.err)
		return m, nil

	case workoutSavedMsg:
		m.ctrl.CompleteLog(m.ctx, msg.entry, msg.saved, msg.err)
		m.weightInput.SetValue("")
		m.repsInput.SetValue("")
		return m, m.clearNotificationCmd()

	case clearNotificationMsg:
		m.ctrl.Dispatch(tracker.ClearNotification{ID: msg.id})
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.State().Tab {
		case tracker.TabHome:
			return m.updateHome(msg)
		case tracker.TabWorkout:
			return m.updateWorkout(msg)
		case tracker.TabHistory:
			return m.updateHistory(msg)
		}
	}

	return m, nil
}

// homeItems is the number of home menu entries: one per plan plus history.
func homeItems() int {
	return len(catalog.All()) + 1
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	plans := catalog.All()
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case "down", "j":
		if m.homeCursor < homeItems()-1 {
			m.homeCursor++
		}
	case "h":
		m.ctrl.Dispatch(tracker.ViewHistory{})
	case "1", "2", "3":
		idx := int(msg.Runes[0] - '1')
		if idx < len(plans) {
			m.homeCursor = idx
			return m.enterWorkout(plans[idx].Key)
		}
	case "enter", " ":
		if m.homeCursor < len(plans) {
			return m.enterWorkout(plans[m.homeCursor].Key)
		}
		m.ctrl.Dispatch(tracker.ViewHistory{})
	}
	return m, nil
}

func (m Model) enterWorkout(plan catalog.Kind) (tea.Model, tea.Cmd) {
	m.ctrl.Dispatch(tracker.SelectPlan{Plan: plan})
	m.exerciseCursor = 0
	m.closeForm()
	return m, nil
}

func (m Model) exercises() []string {
	plan, ok := catalog.Lookup(m.State().Plan)
	if !ok {
		return nil
	}
	return plan.Exercises()
}

func (m Model) updateWorkout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.State().Exercise != "" {
		return m.updateForm(msg)
	}

	exercises := m.exercises()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.ctrl.Dispatch(tracker.Back{})
	case "up", "k":
		if m.exerciseCursor > 0 {
			m.exerciseCursor--
		}
	case "down", "j":
		if m.exerciseCursor < len(exercises)-1 {
			m.exerciseCursor++
		}
	case "enter", " ":
		if m.exerciseCursor < len(exercises) {
			m.ctrl.Dispatch(tracker.SelectExercise{Name: exercises[m.exerciseCursor]})
			m.field = fieldWeight
			cmd := m.focusField()
			return m, cmd
		}
	}
	return m, nil
}

// updateForm handles keys while an exercise is selected and its weight
// and reps inputs are open.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// selecting the selected exercise deselects it
		m.ctrl.Dispatch(tracker.SelectExercise{Name: m.State().Exercise})
		m.closeForm()
		return m, nil
	case "tab", "shift+tab", "up", "down":
		if m.field == fieldWeight {
			m.field = fieldReps
		} else {
			m.field = fieldWeight
		}
		cmd := m.focusField()
		return m, cmd
	case "enter":
		return m.logWorkout()
	}

	var cmd tea.Cmd
	if m.field == fieldWeight {
		m.weightInput, cmd = m.weightInput.Update(msg)
		s := m.ctrl.Dispatch(tracker.WeightInput{Value: m.weightInput.Value()})
		m.weightInput.SetValue(s.Weight)
	} else {
		m.repsInput, cmd = m.repsInput.Update(msg)
		s := m.ctrl.Dispatch(tracker.RepsInput{Value: m.repsInput.Value()})
		m.repsInput.SetValue(s.Reps)
	}
	return m, cmd
}

func (m Model) logWorkout() (tea.Model, tea.Cmd) {
	if m.State().Loading {
		return m, nil
	}
	entry, err := m.ctrl.PrepareLog(m.ctrl.Now())
	if err != nil {
		log.Debugf("log workout blocked: %s", err)
		m.ctrl.Dispatch(tracker.RequestFailed{Message: tracker.MsgLogPreconditions})
		return m, nil
	}
	m.ctrl.Dispatch(tracker.LogStarted{})
	return m, tea.Batch(m.spinner.Tick, m.saveCmd(entry))
}

func (m *Model) focusField() tea.Cmd {
	if m.field == fieldWeight {
		m.repsInput.Blur()
		return m.weightInput.Focus()
	}
	m.weightInput.Blur()
	return m.repsInput.Focus()
}

func (m *Model) closeForm() {
	m.field = fieldWeight
	m.weightInput.Blur()
	m.repsInput.Blur()
	m.weightInput.SetValue("")
	m.repsInput.SetValue("")
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterFocused {
		switch msg.String() {
		case "esc", "enter":
			m.filterFocused = false
			m.filterInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.ctrl.Dispatch(tracker.FilterInput{Value: m.filterInput.Value()})
		return m, cmd
	}

	s := m.State()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.ctrl.Dispatch(tracker.Back{})
		return m, nil
	case "/":
		m.filterFocused = true
		cmd := m.filterInput.Focus()
		return m, cmd
	case "c":
		m.ctrl.Dispatch(tracker.ToggleHistoryMode{})
		return m, nil
	case "r":
		if !s.Loading {
			m.ctrl.BeginFetch()
			return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
		}
		return m, nil
	}

	if s.Mode != tracker.ModeCalendar {
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		m.moveDayCursor(0, -1)
	case "right", "l":
		m.moveDayCursor(0, 1)
	case "up", "k":
		m.moveDayCursor(0, -7)
	case "down", "j":
		m.moveDayCursor(0, 7)
	case "[", "p":
		m.ctrl.Dispatch(tracker.ShiftMonth{Months: -1})
		m.dayCursor = m.State().CalendarMonth
	case "]", "n":
		m.ctrl.Dispatch(tracker.ShiftMonth{Months: 1})
		m.dayCursor = m.State().CalendarMonth
	case "enter", " ":
		m.ctrl.Dispatch(tracker.SelectDay{Day: m.dayCursor})
	}
	return m, nil
}

// moveDayCursor moves the calendar cursor, following it into the
// neighbouring month when it leaves the shown one.
func (m *Model) moveDayCursor(months, days int) {
	m.dayCursor = m.dayCursor.AddDate(0, months, days)
	shown := m.State().CalendarMonth
	cursorMonth := time.Date(m.dayCursor.Year(), m.dayCursor.Month(), 1, 0, 0, 0, 0, shown.Location())
	if !cursorMonth.Equal(shown) {
		diff := (cursorMonth.Year()-shown.Year())*12 + int(cursorMonth.Month()) - int(shown.Month())
		m.ctrl.Dispatch(tracker.ShiftMonth{Months: diff})
	}
}
