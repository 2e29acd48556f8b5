// Package tracker holds the client view state and the effects that move it:
// fetching the history, logging a workout and mirroring the local cache.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/workoutlog/internal/catalog"
	"github.com/2beens/workoutlog/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=tracker_test

type workoutsAPI interface {
	List(ctx context.Context) ([]workouts.Record, error)
	Create(ctx context.Context, newRecord workouts.NewRecord) (*workouts.Record, error)
	Delete(ctx context.Context, id int64) error
}

type historyCache interface {
	LoadHistory(ctx context.Context) ([]workouts.Record, error)
	SaveHistory(ctx context.Context, records []workouts.Record) error
}

// NotificationTTL is how long a notification stays up.
const NotificationTTL = 3 * time.Second

var (
	ErrLogPreconditions = errors.New(MsgLogPreconditions)
	// ErrSavedLocally is returned by LogWorkout when the server could not
	// take the record and it was kept in the local history only.
	ErrSavedLocally = errors.New("workout saved locally")
)

// Controller owns the State. It is not safe for concurrent use: every
// method must be called from the goroutine driving the UI. The network
// helpers Fetch and Save are the exception, they do not touch the state.
type Controller struct {
	api   workoutsAPI
	cache historyCache
	state State
	now   func() time.Time
}

func NewController(api workoutsAPI, cache historyCache, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		api:   api,
		cache: cache,
		state: NewState(now()),
		now:   now,
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Now() time.Time {
	return c.now()
}

// Dispatch applies a plain state transition.
func (c *Controller) Dispatch(action Action) State {
	c.state = Reduce(c.state, action)
	return c.state
}

func (c *Controller) BeginFetch() {
	c.Dispatch(FetchStarted{})
}

// Fetch only performs the request.
func (c *Controller) Fetch(ctx context.Context) ([]workouts.Record, error) {
	return c.api.List(ctx)
}

// CompleteFetch applies a fetch result. On failure the history is
// restored from the local cache, ignoring unreadable cache content.
func (c *Controller) CompleteFetch(ctx context.Context, records []workouts.Record, fetchErr error) {
	if fetchErr == nil {
		c.Dispatch(HistoryLoaded{Records: records})
		c.mirror(ctx)
		return
	}

	log.Errorf("fetch workouts: %s", fetchErr)
	var fallback []workouts.Record
	if c.cache != nil {
		cached, err := c.cache.LoadHistory(ctx)
		if err != nil {
			log.Warnf("load local history: %s", err)
		} else {
			fallback = cached
		}
	}
	c.Dispatch(HistoryFailed{Fallback: fallback})
}

// FetchHistory runs a whole fetch cycle synchronously.
func (c *Controller) FetchHistory(ctx context.Context) State {
	c.BeginFetch()
	records, err := c.Fetch(ctx)
	c.CompleteFetch(ctx, records, err)
	return c.state
}

// PrepareLog checks the log preconditions and builds the record to send.
// The record has no id; it is what ends up in the history if the server
// cannot be reached.
func (c *Controller) PrepareLog(now time.Time) (workouts.Record, error) {
	s := c.state
	plan, ok := catalog.Lookup(s.Plan)
	if !ok || s.Exercise == "" || s.Weight == "" {
		return workouts.Record{}, ErrLogPreconditions
	}

	weight, err := strconv.ParseFloat(s.Weight, 64)
	if err != nil {
		return workouts.Record{}, fmt.Errorf("%w: weight %q", ErrLogPreconditions, s.Weight)
	}

	entry := workouts.Record{
		Date:     now,
		Workout:  plan.Title,
		Exercise: s.Exercise,
		Weight:   weight,
	}
	if s.Reps != "" {
		reps, err := strconv.Atoi(s.Reps)
		if err != nil {
			return workouts.Record{}, fmt.Errorf("%w: reps %q", ErrLogPreconditions, s.Reps)
		}
		entry.Reps = &reps
	}

	return entry, nil
}

// Save only performs the create request for a prepared entry.
func (c *Controller) Save(ctx context.Context, entry workouts.Record) (*workouts.Record, error) {
	date := entry.Date
	return c.api.Create(ctx, workouts.NewRecord{
		Date:     &date,
		Workout:  entry.Workout,
		Exercise: entry.Exercise,
		Weight:   &entry.Weight,
		Reps:     entry.Reps,
	})
}

// CompleteLog applies a create result. A failed create keeps the local
// entry in the history; it is never retried.
func (c *Controller) CompleteLog(ctx context.Context, entry workouts.Record, saved *workouts.Record, saveErr error) {
	if saveErr == nil && saved != nil {
		c.Dispatch(RecordSaved{Record: *saved})
	} else {
		log.Errorf("log workout [%s]: %v", entry.Exercise, saveErr)
		c.Dispatch(RecordSavedLocally{Record: entry})
	}
	c.mirror(ctx)
}

// LogWorkout runs a whole log cycle synchronously. It returns the record
// put in front of the history, and ErrSavedLocally when the server did
// not take it.
func (c *Controller) LogWorkout(ctx context.Context) (workouts.Record, error) {
	entry, err := c.PrepareLog(c.now())
	if err != nil {
		return workouts.Record{}, err
	}

	c.Dispatch(LogStarted{})
	saved, saveErr := c.Save(ctx, entry)
	c.CompleteLog(ctx, entry, saved, saveErr)

	if saveErr != nil || saved == nil {
		return entry, fmt.Errorf("%w: %v", ErrSavedLocally, saveErr)
	}
	return *saved, nil
}

// DeleteWorkout deletes the record on the server and drops it from the
// history. Nothing changes locally when the server refuses.
func (c *Controller) DeleteWorkout(ctx context.Context, id int64) error {
	c.Dispatch(LogStarted{})
	if err := c.api.Delete(ctx, id); err != nil {
		c.Dispatch(RequestFailed{Message: fmt.Sprintf("Failed to delete workout %d.", id)})
		return err
	}
	c.Dispatch(RecordDeleted{ID: id})
	c.mirror(ctx)
	return nil
}

func (c *Controller) mirror(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.SaveHistory(ctx, c.state.History); err != nil {
		log.Warnf("mirror history to local cache: %s", err)
	}
}
