package history

import (
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/workoutlog/internal/workouts"
)

const (
	EmptyMessage = "No workout history found."
	dateLayout   = "Jan 2, 2006, 03:04 PM"
)

// FormatDate renders a record date like "May 14, 2025, 05:30 PM".
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(dateLayout)
}

// FormatWeight drops trailing zeros, so 185 stays "185" and 22.5 stays "22.5".
func FormatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'f', -1, 64)
}

// FormatPerformance renders "{weight} lbs × {reps} reps", leaving the reps
// part out when the record has none.
func FormatPerformance(r workouts.Record) string {
	s := FormatWeight(r.Weight) + " lbs"
	if r.Reps != nil {
		s += fmt.Sprintf(" × %d reps", *r.Reps)
	}
	return s
}
