package tracker

import (
	"time"

	"github.com/2beens/workoutlog/internal/catalog"
	"github.com/2beens/workoutlog/internal/workouts"
)

type Tab int

const (
	TabHome Tab = iota
	TabWorkout
	TabHistory
)

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "home"
	case TabWorkout:
		return "workout"
	case TabHistory:
		return "history"
	}
	return "unknown"
}

type HistoryMode int

const (
	ModeList HistoryMode = iota
	ModeCalendar
)

const (
	MsgLogPreconditions = "Please select an exercise and enter weight"
	MsgEmptyHistory     = "Connected to API, but no workout history found."
	MsgFetchFailed      = "Failed to contact the API. Using local data if available."
	MsgSaveFailed       = "Failed to save workout to server. Saving locally instead."
	MsgLogged           = "Workout logged successfully!"
	MsgSavedLocally     = "Workout saved locally (offline mode)."
	MsgDeleted          = "Workout deleted."
)

// State is everything the client shows. It only changes through Reduce.
type State struct {
	Tab      Tab
	Plan     catalog.Kind
	Exercise string
	Weight   string
	Reps     string

	// History is newest first.
	History []workouts.Record
	Filter  string
	Mode    HistoryMode
	// CalendarMonth is the first day of the shown month.
	CalendarMonth time.Time
	// SelectedDay is zero when no calendar day is selected.
	SelectedDay time.Time

	Loading bool
	Err     string
	Info    string

	Notification string
	// NotificationID identifies the current notification, so a stale
	// clear does not remove a newer one.
	NotificationID int
}

func NewState(now time.Time) State {
	return State{
		Tab:           TabHome,
		History:       []workouts.Record{},
		CalendarMonth: firstOfMonth(now),
	}
}

func (s State) HasSelectedDay() bool {
	return !s.SelectedDay.IsZero()
}

// Action is an input to Reduce.
type Action interface {
	isAction()
}

type (
	SelectPlan struct {
		Plan catalog.Kind
	}
	Back        struct{}
	ViewHistory struct{}
	// SelectExercise toggles the selection when Name is already selected.
	SelectExercise struct {
		Name string
	}
	WeightInput struct {
		Value string
	}
	RepsInput struct {
		Value string
	}
	FilterInput struct {
		Value string
	}
	ToggleHistoryMode struct{}
	ShiftMonth        struct {
		Months int
	}
	// SelectDay toggles the selection when Day is already selected.
	SelectDay struct {
		Day time.Time
	}
	FetchStarted  struct{}
	HistoryLoaded struct {
		Records []workouts.Record
	}
	// HistoryFailed replaces the history with Fallback unless it is nil.
	HistoryFailed struct {
		Fallback []workouts.Record
	}
	LogStarted  struct{}
	RecordSaved struct {
		Record workouts.Record
	}
	RecordSavedLocally struct {
		Record workouts.Record
	}
	RecordDeleted struct {
		ID int64
	}
	RequestFailed struct {
		Message string
	}
	ClearNotification struct {
		ID int
	}
)

func (SelectPlan) isAction() {}
func (Back) isAction() {}
func (ViewHistory) isAction() {}
func (SelectExercise) isAction() {}
func (WeightInput) isAction() {}
func (RepsInput) isAction() {}
func (FilterInput) isAction() {}
func (ToggleHistoryMode) isAction() {}
func (ShiftMonth) isAction() {}
func (SelectDay) isAction() {}
func (FetchStarted) isAction() {}
func (HistoryLoaded) isAction() {}
func (HistoryFailed) isAction() {}
func (LogStarted) isAction() {}
func (RecordSaved) isAction() {}
func (RecordSavedLocally) isAction() {}
func (RecordDeleted) isAction() {}
func (RequestFailed) isAction() {}
func (ClearNotification) isAction() {}

// Reduce returns the state after applying action. It never mutates the
// given state's history slice.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SelectPlan:
		if _, ok := catalog.Lookup(a.Plan); !ok {
			return s
		}
		s.Tab = TabWorkout
		s.Plan = a.Plan
		s.clearSelection()

	case Back:
		s.Tab = TabHome
		s.clearSelection()

	case ViewHistory:
		s.Tab = TabHistory

	case SelectExercise:
		if s.Tab != TabWorkout {
			return s
		}
		if s.Exercise == a.Name {
			s.clearSelection()
			return s
		}
		s.Exercise = a.Name
		s.Weight = ""
		s.Reps = ""

	case WeightInput:
		s.Weight = SanitizeWeight(a.Value)

	case RepsInput:
		s.Reps = SanitizeReps(a.Value)

	case FilterInput:
		s.Filter = a.Value

	case ToggleHistoryMode:
		if s.Mode == ModeList {
			s.Mode = ModeCalendar
		} else {
			s.Mode = ModeList
		}
		s.SelectedDay = time.Time{}

	case ShiftMonth:
		s.CalendarMonth = firstOfMonth(s.CalendarMonth).AddDate(0, a.Months, 0)
		s.SelectedDay = time.Time{}

	case SelectDay:
		if s.HasSelectedDay() && sameDay(s.SelectedDay, a.Day) {
			s.SelectedDay = time.Time{}
			return s
		}
		s.SelectedDay = a.Day

	case FetchStarted:
		s.Loading = true
		s.Err = ""
		s.Info = ""

	case HistoryLoaded:
		s.Loading = false
		s.History = nonNil(a.Records)
		if len(a.Records) == 0 {
			s.Info = MsgEmptyHistory
		}

	case HistoryFailed:
		s.Loading = false
		s.Err = MsgFetchFailed
		if a.Fallback != nil {
			s.History = a.Fallback
		}

	case LogStarted:
		s.Loading = true
		s.Err = ""

	case RecordSaved:
		s.Loading = false
		s.History = prepend(a.Record, s.History)
		s.Weight = ""
		s.Reps = ""
		s.notify(MsgLogged)

	case RecordSavedLocally:
		s.Loading = false
		s.Err = MsgSaveFailed
		s.History = prepend(a.Record, s.History)
		s.Weight = ""
		s.Reps = ""
		s.notify(MsgSavedLocally)

	case RecordDeleted:
		s.Loading = false
		kept := make([]workouts.Record, 0, len(s.History))
		for _, r := range s.History {
			if r.ID != a.ID {
				kept = append(kept, r)
			}
		}
		s.History = kept
		s.notify(MsgDeleted)

	case RequestFailed:
		s.Loading = false
		s.Err = a.Message

	case ClearNotification:
		if a.ID == s.NotificationID {
			s.Notification = ""
		}
	}

	return s
}

func (s *State) clearSelection() {
	s.Exercise = ""
	s.Weight = ""
	s.Reps = ""
}

func (s *State) notify(msg string) {
	s.NotificationID++
	s.Notification = msg
}

func prepend(r workouts.Record, history []workouts.Record) []workouts.Record {
	updated := make([]workouts.Record, 0, len(history)+1)
	updated = append(updated, r)
	return append(updated, history...)
}

func nonNil(records []workouts.Record) []workouts.Record {
	if records == nil {
		return []workouts.Record{}
	}
	return records
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
