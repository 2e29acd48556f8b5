package tracker

import (
	"time"

	"github.com/2beens/workoutlog/internal/history"
	"github.com/2beens/workoutlog/internal/workouts"
)

// CompletedToday returns the exercises with at least one record on the
// calendar day of now, in now's location.
func CompletedToday(records []workouts.Record, now time.Time) map[string]bool {
	done := make(map[string]bool)
	for _, r := range history.RecordsOnDay(records, now, now.Location()) {
		done[r.Exercise] = true
	}
	return done
}
