package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/workoutlog/internal/middleware"
	"github.com/2beens/workoutlog/internal/telemetry/metrics"
	"github.com/2beens/workoutlog/internal/telemetry/tracing"
	"github.com/2beens/workoutlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, newRecord NewRecord) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id int64) error
}

const (
	msgServerError    = "Server error"
	msgNotFound       = "Workout not found"
	msgDeleted        = "Workout deleted successfully"
	msgInvalidPayload = "Invalid workout payload"
)

// MessageResponse is the body of every non-record response.
type MessageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	repo    workoutsRepo
	metrics *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

// SetupRoutes registers the workouts API. When rateLimiter is nil,
// creates are not rate limited.
func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	createsAllowedPerMin int,
) {
	var addHandler http.Handler = http.HandlerFunc(handler.HandleAdd)
	if rateLimiter != nil && createsAllowedPerMin > 0 {
		addHandler = middleware.RateLimit(rateLimiter, "workouts-create", createsAllowedPerMin, handler.metrics)(addHandler)
	}

	mainRouter.HandleFunc("/api/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	mainRouter.Handle("/api/workouts", addHandler).Methods("POST").Name("new-workout")
	mainRouter.HandleFunc("/api/workouts/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	records, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("error fetching workouts: %s", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}
	span.SetAttributes(attribute.Int("count", len(records)))

	recordsJson, err := json.Marshal(records)
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordsJson, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != pkg.ContentType.JSON {
		writeMessage(w, http.StatusBadRequest, "invalid content type")
		return
	}

	var newRecord NewRecord
	if err := json.NewDecoder(r.Body).Decode(&newRecord); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		writeMessage(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	saved, err := handler.repo.Add(ctx, newRecord)
	if err != nil {
		// validation failures are not a separate kind for the client
		log.Errorf("error saving workout [%s] [%s]: %s", newRecord.Workout, newRecord.Exercise, err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	savedJson, err := json.Marshal(saved)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterWorkoutsCreated.Inc()
	}

	log.Debugf("new workout added: %s", savedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedJson, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		// no record can ever have this id
		log.Debugf("delete workout, invalid id [%s]", idStr)
		writeMessage(w, http.StatusNotFound, msgNotFound)
		return
	}
	span.SetAttributes(attribute.Int64("id", id))

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			log.Debugf("workout %d not found", id)
			writeMessage(w, http.StatusNotFound, msgNotFound)
			return
		}
		log.Errorf("error deleting workout %d: %s", id, err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterWorkoutsDeleted.Inc()
	}

	log.Debugf("workout %d deleted", id)
	writeMessage(w, http.StatusOK, msgDeleted)
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	msgJson, err := json.Marshal(MessageResponse{Message: message})
	if err != nil {
		log.Errorf("marshal message response: %s", err)
		http.Error(w, message, statusCode)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, msgJson, statusCode)
}
