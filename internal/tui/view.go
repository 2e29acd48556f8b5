package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/2beens/workoutlog/internal/catalog"
	"github.com/2beens/workoutlog/internal/history"
	"github.com/2beens/workoutlog/internal/tracker"
	"github.com/2beens/workoutlog/internal/workouts"
)

const appTitle = "Workout Logger"

// View implements tea.Model.
func (m Model) View() string {
	s := m.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n")
	b.WriteString(m.renderBanners(s))

	switch s.Tab {
	case tracker.TabHome:
		b.WriteString(m.renderHome())
	case tracker.TabWorkout:
		b.WriteString(m.renderWorkout(s))
	case tracker.TabHistory:
		b.WriteString(m.renderHistory(s))
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.helpLine(s)))
	return b.String()
}

func (m Model) renderBanners(s tracker.State) string {
	var lines []string
	if s.Loading {
		lines = append(lines, m.spinner.View()+" Loading...")
	}
	if s.Err != "" {
		lines = append(lines, errorStyle.Render(s.Err))
	}
	if s.Info != "" {
		lines = append(lines, infoStyle.Render(s.Info))
	}
	if s.Notification != "" {
		lines = append(lines, successStyle.Render(s.Notification))
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n\n"
}

func (m Model) renderHome() string {
	var lines []string
	for i, p := range catalog.All() {
		info, _ := catalog.TypeInfo(p.Key)
		label := fmt.Sprintf("%d. %s %s", i+1, info.Icon, p.Button)
		lines = append(lines, m.menuLine(i, label, kindStyle(info)))
	}
	lines = append(lines, m.menuLine(len(catalog.All()), "h. View History", lipgloss.NewStyle()))
	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func (m Model) menuLine(idx int, label string, style lipgloss.Style) string {
	if idx == m.homeCursor {
		return selectedStyle.Render("> ") + style.Bold(true).Render(label)
	}
	return "  " + style.Render(label)
}

func (m Model) renderWorkout(s tracker.State) string {
	plan, ok := catalog.Lookup(s.Plan)
	if !ok {
		return ""
	}
	info, _ := catalog.TypeInfo(plan.Key)
	done := tracker.CompletedToday(s.History, m.ctrl.Now())

	var b strings.Builder
	b.WriteString(kindStyle(info).Bold(true).Render(info.Icon + " " + plan.Title))
	b.WriteString("\n\n")

	idx := 0
	for _, section := range plan.Sections {
		b.WriteString(sectionStyle.Render(section.Title))
		b.WriteString("\n")
		for _, exercise := range section.Exercises {
			b.WriteString(m.exerciseLine(idx, exercise, s.Exercise == exercise, done[exercise]))
			b.WriteString("\n")
			if s.Exercise == exercise {
				b.WriteString(m.renderForm())
			}
			idx++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) exerciseLine(idx int, exercise string, selected, doneToday bool) string {
	cursor := "  "
	if idx == m.exerciseCursor {
		cursor = selectedStyle.Render("> ")
	}
	switch {
	case selected:
		return cursor + selectedStyle.Render(exercise)
	case doneToday:
		return cursor + doneStyle.Render(exercise) + subtleStyle.Render(" ✓")
	}
	return cursor + exercise
}

func (m Model) renderForm() string {
	form := lipgloss.JoinHorizontal(lipgloss.Top,
		m.weightInput.View(),
		"  ",
		m.repsInput.View(),
	)
	return boxStyle.MarginLeft(4).Render(form+"\n"+subtleStyle.Render("enter: Log Workout")) + "\n"
}

func (m Model) renderHistory(s tracker.State) string {
	var b strings.Builder
	modeLabel := "List"
	if s.Mode == tracker.ModeCalendar {
		modeLabel = "Calendar"
	}
	b.WriteString(sectionStyle.Render("Workout History") + subtleStyle.Render(" ("+modeLabel+")"))
	b.WriteString("\n")
	b.WriteString(m.filterInput.View())
	b.WriteString("\n\n")

	filtered := history.FilterByExercise(s.History, s.Filter)
	if s.Mode == tracker.ModeCalendar {
		b.WriteString(m.renderCalendar(s, filtered))
		return b.String()
	}

	if len(filtered) == 0 {
		if s.Err == "" && !s.Loading {
			b.WriteString(subtleStyle.Render(history.EmptyMessage))
			b.WriteString("\n")
		}
		return b.String()
	}
	for _, r := range filtered {
		b.WriteString(m.recordLine(r))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) recordLine(r workouts.Record) string {
	info := catalog.StyleFor(r.Workout)
	tag := kindStyle(info).Render(fmt.Sprintf("%s %-5s", info.Icon, info.Label))
	return fmt.Sprintf("%s  %-28s %-20s %s",
		tag,
		r.Exercise,
		history.FormatPerformance(r),
		subtleStyle.Render(history.FormatDate(r.Date, m.loc)),
	)
}

func (m Model) renderCalendar(s tracker.State, records []workouts.Record) string {
	month := s.CalendarMonth
	grid := history.BuildCalendar(records, month.Year(), month.Month(), m.loc)

	var b strings.Builder
	b.WriteString(selectedStyle.Render(month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	for _, week := range history.Weeks(grid) {
		cells := make([]string, 0, 7)
		for _, day := range week {
			cells = append(cells, m.dayCell(s, day))
		}
		b.WriteString(strings.Join(cells, ""))
		b.WriteString("\n")
	}

	legend := make([]string, 0, 3)
	for _, kind := range catalog.Kinds() {
		info, _ := catalog.TypeInfo(kind)
		legend = append(legend, kindStyle(info).Render("● "+info.Label))
	}
	b.WriteString(strings.Join(legend, "  "))
	b.WriteString("\n")

	if s.HasSelectedDay() {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.SelectedDay.Format("Monday, January 2, 2006")))
		b.WriteString("\n")
		onDay := history.RecordsOnDay(records, s.SelectedDay, m.loc)
		if len(onDay) == 0 {
			b.WriteString(subtleStyle.Render("No workouts on this day."))
			b.WriteString("\n")
		}
		for _, r := range onDay {
			b.WriteString(m.recordLine(r))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) dayCell(s tracker.State, day history.Day) string {
	label := fmt.Sprintf("%2d", day.Date.Day())

	style := lipgloss.NewStyle()
	switch {
	case !day.InMonth:
		style = subtleStyle
	case day.Tagged():
		info, _ := catalog.TypeInfo(day.Kind)
		style = kindStyle(info).Bold(true)
	case day.Count > 0:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(catalog.StyleFor("").Color))
	}
	if sameDate(day.Date, m.dayCursor) {
		style = style.Inherit(cursorDayStyle)
	}

	left, right := " ", " "
	if s.HasSelectedDay() && sameDate(day.Date, s.SelectedDay) {
		left, right = "[", "]"
	}
	return left + style.Render(label) + right
}

func (m Model) helpLine(s tracker.State) string {
	switch s.Tab {
	case tracker.TabWorkout:
		if s.Exercise != "" {
			return "tab: switch field • enter: log • esc: close"
		}
		return "↑/↓: move • enter: select exercise • esc: back • q: quit"
	case tracker.TabHistory:
		if m.filterFocused {
			return "type to filter • enter/esc: done"
		}
		if s.Mode == tracker.ModeCalendar {
			return "arrows: move • enter: select day • [/]: month • c: list • /: filter • r: reload • esc: back"
		}
		return "c: calendar • /: filter • r: reload • esc: back • q: quit"
	}
	return "↑/↓: move • enter: select • 1-3: plan • h: history • q: quit"
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
