package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/2beens/workoutlog/internal/catalog"
)

var (
	primaryColor   = lipgloss.Color("#5FAFAF")
	secondaryColor = lipgloss.Color("#666666")
	successColor   = lipgloss.Color("#87AF87")
	errorColor     = lipgloss.Color("#AF5F5F")
	infoColor      = lipgloss.Color("#D7AF5F")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// doneStyle dims exercises already logged today.
	doneStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Strikethrough(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(infoColor)

	cursorDayStyle = lipgloss.NewStyle().
			Reverse(true)
)

func kindStyle(info catalog.Info) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(info.Color))
}
