// Package history derives the list and calendar renderings of the
// workout history.
package history

import (
	"strings"
	"time"

	"github.com/2beens/workoutlog/internal/catalog"
	"github.com/2beens/workoutlog/internal/workouts"
)

// FilterByExercise keeps the records whose exercise contains filter,
// ignoring case. Order is preserved. An empty filter keeps everything.
func FilterByExercise(records []workouts.Record, filter string) []workouts.Record {
	filtered := make([]workouts.Record, 0, len(records))
	needle := strings.ToLower(filter)
	for _, r := range records {
		if needle == "" || strings.Contains(strings.ToLower(r.Exercise), needle) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// DayBounds returns the first and the last millisecond of day in loc.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	d := day.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// RecordsOnDay keeps the records dated within the local bounds of day.
func RecordsOnDay(records []workouts.Record, day time.Time, loc *time.Location) []workouts.Record {
	start, end := DayBounds(day, loc)
	onDay := make([]workouts.Record, 0)
	for _, r := range records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			onDay = append(onDay, r)
		}
	}
	return onDay
}

// DayKind tags a set of records with the workout kind most of them
// belong to. Ties go to the kind listed first in catalog.Kinds. Records
// whose title matches no kind are not counted.
func DayKind(records []workouts.Record) (catalog.Kind, bool) {
	counts := make(map[catalog.Kind]int)
	for _, r := range records {
		kind := catalog.ClassifyWorkoutName(r.Workout)
		if kind != catalog.KindUnknown {
			counts[kind]++
		}
	}

	best, bestCount := catalog.KindUnknown, 0
	for _, kind := range catalog.Kinds() {
		if counts[kind] > bestCount {
			best, bestCount = kind, counts[kind]
		}
	}
	return best, bestCount > 0
}
