package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/internal/workouts"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNotFound = errors.New("workout not found")

// StatusError is returned for every non 2xx API response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("api responded with status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the workouts API. It has no timeout of its own beyond
// what the given http client and the request context impose.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewTracedHttpClient returns an http client whose requests are traced.
func NewTracedHttpClient() *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// New creates a client for the API at baseURL, e.g. http://localhost:5000/api.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = NewTracedHttpClient()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns the full history, newest first.
func (c *Client) List(ctx context.Context) (_ []workouts.Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var records []workouts.Record
	if err := c.do(ctx, http.MethodGet, "/workouts", nil, http.StatusOK, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []workouts.Record{}
	}
	span.SetAttributes(attribute.Int("count", len(records)))
	return records, nil
}

// Create stores a new record and returns it as saved by the server.
func (c *Client) Create(ctx context.Context, newRecord workouts.NewRecord) (_ *workouts.Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	body, err := json.Marshal(newRecord)
	if err != nil {
		return nil, fmt.Errorf("marshal new workout: %w", err)
	}

	var saved workouts.Record
	if err := c.do(ctx, http.MethodPost, "/workouts", body, http.StatusCreated, &saved); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("workout.id", saved.ID))
	return &saved, nil
}

// Delete removes the record with id. ErrNotFound is returned for unknown ids.
func (c *Client) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	err = c.do(ctx, http.MethodDelete, fmt.Sprintf("/workouts/%d", id), nil, http.StatusOK, nil)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, expectedStatus int, out any) error {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != expectedStatus {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Message:    readMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func readMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var msg workouts.MessageResponse
	if err := json.Unmarshal(raw, &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	return strings.TrimSpace(string(raw))
}
