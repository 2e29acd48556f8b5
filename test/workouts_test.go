//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/workoutlog/internal/client"
	"github.com/2beens/workoutlog/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) newClient() *client.Client {
	return client.New(serverEndpoint+"/api", s.httpClient)
}

func (s *IntegrationTestSuite) TestWorkouts_EmptyList() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/api/workouts", serverEndpoint), nil)
	require.NoError(t, err)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(respBytes))
}

func (s *IntegrationTestSuite) TestWorkouts_CreateListDelete() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()
	c := s.newClient()

	day := time.Now().Add(-2 * time.Hour).Truncate(time.Second)
	weight := 185.0
	reps := 5
	bench, err := c.Create(ctx, workouts.NewRecord{
		Date:     &day,
		Workout:  "PUSH (Chest, Shoulders, Triceps)",
		Exercise: "Barbell Bench Press",
		Weight:   &weight,
		Reps:     &reps,
	})
	require.NoError(t, err)
	assert.NotZero(t, bench.ID)

	squatWeight := 225.0
	squat, err := c.Create(ctx, workouts.NewRecord{
		Workout:  "LEGS (Quads, Hamstrings, Glutes, Calves, Core)",
		Exercise: "Barbell Squat",
		Weight:   &squatWeight,
	})
	require.NoError(t, err)
	assert.Nil(t, squat.Reps)

	records, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, squat.ID, records[0].ID)
	assert.Equal(t, bench.ID, records[1].ID)
	assert.True(t, day.Equal(records[1].Date))
	require.NotNil(t, records[1].Reps)
	assert.Equal(t, 5, *records[1].Reps)

	require.NoError(t, c.Delete(ctx, bench.ID))
	assert.ErrorIs(t, c.Delete(ctx, bench.ID), client.ErrNotFound)

	records, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, squat.ID, records[0].ID)
}

func (s *IntegrationTestSuite) TestWorkouts_InvalidRequests() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	testCases := []struct {
		name           string
		method         string
		path           string
		contentType    string
		body           string
		expectedStatus int
	}{
		{
			name:           "MalformedJSON",
			method:         "POST",
			path:           "/api/workouts",
			contentType:    "application/json",
			body:           `{"workout":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "WrongContentType",
			method:         "POST",
			path:           "/api/workouts",
			contentType:    "text/plain",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MissingWeight",
			method:         "POST",
			path:           "/api/workouts",
			contentType:    "application/json",
			body:           `{"workout":"PULL","exercise":"Deadlifts"}`,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "DeleteNonNumericID",
			method:         "DELETE",
			path:           "/api/workouts/abc",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "DeleteMissing",
			method:         "DELETE",
			path:           "/api/workouts/424242",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			req, err := http.NewRequestWithContext(ctx, tc.method, serverEndpoint+tc.path, strings.NewReader(tc.body))
			require.NoError(t, err)
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}

			resp, err := s.httpClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			var msg workouts.MessageResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
			assert.NotEmpty(t, msg.Message)
		})
	}

	var count int
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM workout`).Scan(&count))
	assert.Zero(t, count)
}

func (s *IntegrationTestSuite) TestWorkouts_CreateRateLimited() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()
	c := s.newClient()

	weight := 60.0
	newRecord := workouts.NewRecord{
		Workout:  "PULL (Back, Biceps, Rear Delts)",
		Exercise: "Barbell Curls",
		Weight:   &weight,
	}
	for i := 0; i < testCreatesPerMin; i++ {
		_, err := c.Create(ctx, newRecord)
		require.NoError(t, err, "create %d", i)
	}

	_, err := c.Create(ctx, newRecord)
	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)

	// reads are not limited
	records, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, testCreatesPerMin)
}
