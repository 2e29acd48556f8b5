package history

import (
	"time"

	"github.com/2beens/workoutlog/internal/catalog"
	"github.com/2beens/workoutlog/internal/workouts"
)

// Day is one cell of a month grid.
type Day struct {
	Date    time.Time
	InMonth bool
	Kind    catalog.Kind
	Count   int
}

// Tagged reports whether the day carries a workout kind.
func (d Day) Tagged() bool {
	return d.Kind != "" && d.Kind != catalog.KindUnknown
}

// MonthGrid lays out month in weeks starting on Sunday, padded with the
// days of the neighbouring months, so its length is always a multiple of 7.
func MonthGrid(year int, month time.Month, loc *time.Location) []Day {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	// normalized, so month 13 is january of the next year
	year, month = first.Year(), first.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	leading := int(first.Weekday())
	total := leading + daysInMonth
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	grid := make([]Day, 0, total)
	for i := 0; i < total; i++ {
		date := time.Date(year, month, 1+i-leading, 0, 0, 0, 0, loc)
		grid = append(grid, Day{
			Date:    date,
			InMonth: date.Month() == month,
		})
	}
	return grid
}

// BuildCalendar returns the month grid with every day annotated with the
// number of records on it and their majority kind.
func BuildCalendar(records []workouts.Record, year int, month time.Month, loc *time.Location) []Day {
	grid := MonthGrid(year, month, loc)
	for i := range grid {
		onDay := RecordsOnDay(records, grid[i].Date, loc)
		grid[i].Count = len(onDay)
		if kind, ok := DayKind(onDay); ok {
			grid[i].Kind = kind
		} else {
			grid[i].Kind = catalog.KindUnknown
		}
	}
	return grid
}

// Weeks splits a grid into rows of seven days.
func Weeks(grid []Day) [][]Day {
	weeks := make([][]Day, 0, len(grid)/7)
	for i := 0; i+7 <= len(grid); i += 7 {
		weeks = append(weeks, grid[i:i+7])
	}
	return weeks
}
