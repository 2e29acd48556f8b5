package tracker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/2beens/workoutlog/internal/catalog"
	"github.com/2beens/workoutlog/internal/localcache"
	"github.com/2beens/workoutlog/internal/tracker"
	"github.com/2beens/workoutlog/internal/workouts"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixedNow() time.Time {
	return testNow
}

func newController(t *testing.T) (*tracker.Controller, *MockworkoutsAPI, *MockhistoryCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := NewMockworkoutsAPI(ctrl)
	cache := NewMockhistoryCache(ctrl)
	return tracker.NewController(api, cache, fixedNow), api, cache
}

func TestController_LogWithoutExerciseIsBlocked(t *testing.T) {
	c, _, _ := newController(t)
	c.Dispatch(tracker.SelectPlan{Plan: catalog.KindPush})
	c.Dispatch(tracker.WeightInput{Value: "135"})

	// no api or cache call is expected
	rec, err := c.LogWorkout(context.Background())
	assert.ErrorIs(t, err, tracker.ErrLogPreconditions)
	assert.Equal(t, tracker.MsgLogPreconditions, err.Error())
	assert.Empty(t, rec.Exercise)
	assert.Empty(t, c.State().History)
	assert.False(t, c.State().Loading)
}

func TestController_PrepareLogPreconditions(t *testing.T) {
	testCases := []struct {
		name    string
		actions []tracker.Action
	}{
		{
			name:    "NoPlan",
			actions: nil,
		},
		{
			name: "NoWeight",
			actions: []tracker.Action{
				tracker.SelectPlan{Plan: catalog.KindLegs},
				tracker.SelectExercise{Name: "Leg Press"},
			},
		},
		{
			name: "LoneDecimalPoint",
			actions: []tracker.Action{
				tracker.SelectPlan{Plan: catalog.KindLegs},
				tracker.SelectExercise{Name: "Leg Press"},
				tracker.WeightInput{Value: "."},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _, _ := newController(t)
			for _, a := range tc.actions {
				c.Dispatch(a)
			}
			_, err := c.PrepareLog(testNow)
			assert.ErrorIs(t, err, tracker.ErrLogPreconditions)
		})
	}
}

func TestController_LogWorkout(t *testing.T) {
	c, api, cache := newController(t)
	ctx := context.Background()
	legs, ok := catalog.Lookup(catalog.KindLegs)
	require.True(t, ok)

	older := workouts.Record{ID: 3, Date: testNow.Add(-48 * time.Hour), Workout: legs.Title, Exercise: "Leg Press", Weight: 400}
	api.EXPECT().List(gomock.Any()).Return([]workouts.Record{older}, nil)
	cache.EXPECT().SaveHistory(gomock.Any(), []workouts.Record{older}).Return(nil)
	c.FetchHistory(ctx)

	c.Dispatch(tracker.SelectPlan{Plan: catalog.KindLegs})
	c.Dispatch(tracker.SelectExercise{Name: "Barbell Squat"})
	c.Dispatch(tracker.WeightInput{Value: "225"})
	c.Dispatch(tracker.RepsInput{Value: ""})

	saved := workouts.Record{ID: 4, Date: testNow, Workout: legs.Title, Exercise: "Barbell Squat", Weight: 225}
	api.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, nr workouts.NewRecord) (*workouts.Record, error) {
			assert.Equal(t, "Barbell Squat", nr.Exercise)
			assert.Equal(t, legs.Title, nr.Workout)
			require.NotNil(t, nr.Weight)
			assert.Equal(t, 225.0, *nr.Weight)
			assert.Nil(t, nr.Reps)
			require.NotNil(t, nr.Date)
			assert.Equal(t, testNow, *nr.Date)
			return &saved, nil
		},
	)
	cache.EXPECT().SaveHistory(gomock.Any(), []workouts.Record{saved, older}).Return(nil)

	rec, err := c.LogWorkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, rec)

	s := c.State()
	require.Len(t, s.History, 2)
	assert.Equal(t, int64(4), s.History[0].ID)
	assert.Nil(t, s.History[0].Reps)
	assert.Equal(t, tracker.MsgLogged, s.Notification)
	assert.Empty(t, s.Weight)
	assert.Empty(t, s.Reps)
	assert.Empty(t, s.Err)
	assert.False(t, s.Loading)
}

func TestController_LogWorkoutServerDown(t *testing.T) {
	c, api, cache := newController(t)
	ctx := context.Background()

	c.Dispatch(tracker.SelectPlan{Plan: catalog.KindPush})
	c.Dispatch(tracker.SelectExercise{Name: "Cable Fly"})
	c.Dispatch(tracker.WeightInput{Value: "40.5"})
	c.Dispatch(tracker.RepsInput{Value: "12"})

	api.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	cache.EXPECT().SaveHistory(gomock.Any(), gomock.Len(1)).Return(errors.New("disk full"))

	rec, err := c.LogWorkout(ctx)
	assert.ErrorIs(t, err, tracker.ErrSavedLocally)
	assert.Zero(t, rec.ID)
	assert.Equal(t, 40.5, rec.Weight)
	require.NotNil(t, rec.Reps)
	assert.Equal(t, 12, *rec.Reps)

	s := c.State()
	require.Len(t, s.History, 1)
	assert.Zero(t, s.History[0].ID)
	assert.Equal(t, "Cable Fly", s.History[0].Exercise)
	assert.Equal(t, tracker.MsgSavedLocally, s.Notification)
	assert.Equal(t, tracker.MsgSaveFailed, s.Err)
	assert.Empty(t, s.Weight)
	assert.Empty(t, s.Reps)
}

func TestController_FetchFallsBackToCache(t *testing.T) {
	cached := []workouts.Record{{Exercise: "Cable Fly"}, {ID: 9, Exercise: "Dips"}}

	testCases := []struct {
		name        string
		cacheResult []workouts.Record
		cacheErr    error
		expected    int
	}{
		{name: "CacheHit", cacheResult: cached, expected: 2},
		{name: "CacheEmpty", cacheResult: nil, expected: 0},
		{name: "CacheCorrupt", cacheErr: localcache.ErrCorruptCache, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, api, cache := newController(t)
			api.EXPECT().List(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))
			cache.EXPECT().LoadHistory(gomock.Any()).Return(tc.cacheResult, tc.cacheErr)

			s := c.FetchHistory(context.Background())
			assert.False(t, s.Loading)
			assert.Equal(t, tracker.MsgFetchFailed, s.Err)
			assert.Empty(t, s.Info)
			assert.Len(t, s.History, tc.expected)
		})
	}
}

func TestController_FetchEmpty(t *testing.T) {
	c, api, cache := newController(t)
	api.EXPECT().List(gomock.Any()).Return([]workouts.Record{}, nil)
	cache.EXPECT().SaveHistory(gomock.Any(), []workouts.Record{}).Return(nil)

	s := c.FetchHistory(context.Background())
	assert.Equal(t, tracker.MsgEmptyHistory, s.Info)
	assert.Empty(t, s.Err)
	assert.Empty(t, s.History)
}

func TestController_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockworkoutsAPI(ctrl)
	c := tracker.NewController(api, nil, fixedNow)

	api.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))
	s := c.FetchHistory(context.Background())
	assert.Equal(t, tracker.MsgFetchFailed, s.Err)
	assert.Empty(t, s.History)
}

func TestController_DeleteWorkout(t *testing.T) {
	c, api, cache := newController(t)
	ctx := context.Background()

	records := []workouts.Record{{ID: 2, Exercise: "Dips"}, {ID: 1, Exercise: "Skull Crushers"}}
	api.EXPECT().List(gomock.Any()).Return(records, nil)
	cache.EXPECT().SaveHistory(gomock.Any(), gomock.Any()).Return(nil)
	c.FetchHistory(ctx)

	api.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
	cache.EXPECT().SaveHistory(gomock.Any(), []workouts.Record{{ID: 1, Exercise: "Skull Crushers"}}).Return(nil)
	require.NoError(t, c.DeleteWorkout(ctx, 2))
	assert.Len(t, c.State().History, 1)

	api.EXPECT().Delete(gomock.Any(), int64(1)).Return(errors.New("not found"))
	assert.Error(t, c.DeleteWorkout(ctx, 1))
	assert.Len(t, c.State().History, 1)
	assert.NotEmpty(t, c.State().Err)
	assert.False(t, c.State().Loading)
}

func TestController_WithLocalCache(t *testing.T) {
	store, err := localcache.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctrl := gomock.NewController(t)
	api := NewMockworkoutsAPI(ctrl)
	ctx := context.Background()

	// a first session logs while offline
	first := tracker.NewController(api, store, fixedNow)
	first.Dispatch(tracker.SelectPlan{Plan: catalog.KindPull})
	first.Dispatch(tracker.SelectExercise{Name: "Deadlifts"})
	first.Dispatch(tracker.WeightInput{Value: "315"})
	api.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("offline"))
	_, err = first.LogWorkout(ctx)
	require.ErrorIs(t, err, tracker.ErrSavedLocally)

	// the next one cannot reach the api either and sees the local entry
	second := tracker.NewController(api, store, fixedNow)
	api.EXPECT().List(gomock.Any()).Return(nil, errors.New("offline"))
	s := second.FetchHistory(ctx)
	require.Len(t, s.History, 1)
	assert.Equal(t, "Deadlifts", s.History[0].Exercise)
	assert.Equal(t, 315.0, s.History[0].Weight)
}
