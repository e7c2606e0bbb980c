package activities

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/trainingload/internal/db"
	"github.com/2beens/trainingload/internal/middleware"
	"github.com/2beens/trainingload/internal/telemetry/metrics"
	"github.com/2beens/trainingload/internal/telemetry/tracing"
	"github.com/2beens/trainingload/internal/trainingload/analysis"
	"github.com/2beens/trainingload/internal/trainingload/athletes"
	"github.com/2beens/trainingload/internal/trainingload/load"
	"github.com/2beens/trainingload/internal/trainingload/sessions"
	"github.com/2beens/trainingload/internal/trainingload/weeks"
	"github.com/2beens/trainingload/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=activities_test

const UserIDHeader = "X-User-Id"

type activitiesService interface {
	Create(ctx context.Context, userID int64, p sessions.Payload) (*sessions.Session, error)
	Update(ctx context.Context, userID, id int64, p sessions.Payload) (*sessions.Session, error)
	Delete(ctx context.Context, userID, id int64) error
	GetWeekSummary(ctx context.Context, userID int64, date time.Time) (*WeekSummary, error)
	GetMuscleLoad(ctx context.Context, userID int64, date time.Time) (*analysis.Report, error)
	RebuildDailyLoads(ctx context.Context, userID int64, start time.Time, end *time.Time) (int, error)
}

type DeleteActivityResponse struct {
	DeletedID int64 `json:"deleted_id"`
}

type RebuildRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}

type RebuildResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Replayed  int    `json:"replayed"`
}

type Handler struct {
	service       activitiesService
	defaultUserID int64
}

func NewHandler(service activitiesService, defaultUserID int64) *Handler {
	return &Handler{
		service:       service,
		defaultUserID: defaultUserID,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	rebuildAllowedPerMin int,
) {
	mainRouter.HandleFunc("/activities", handler.HandleCreate).Methods("POST").Name("create-activity")
	mainRouter.HandleFunc("/activities/{id}", handler.HandleUpdate).Methods("PUT").Name("update-activity")
	mainRouter.HandleFunc("/activities/{id}", handler.HandleDelete).Methods("DELETE").Name("delete-activity")
	mainRouter.HandleFunc("/week/{date}", handler.HandleWeekSummary).Methods("GET").Name("week-summary")
	mainRouter.HandleFunc("/muscle-load/{date}", handler.HandleMuscleLoad).Methods("GET").Name("muscle-load")

	// a rebuild replays every activity in the range, keep it rare
	rebuildSubrouter := mainRouter.PathPrefix("/daily-loads").Subrouter()
	rebuildSubrouter.HandleFunc("/rebuild", handler.HandleRebuild).Methods("POST").Name("rebuild-daily-loads")
	rebuildSubrouter.Use(middleware.RateLimit(rateLimiter, metricsManager, "rebuild", UserIDHeader, rebuildAllowedPerMin))
}

// ErrorStatus maps an operation error to its HTTP status code.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, sessions.ErrInvalidSession),
		errors.Is(err, sessions.ErrUnknownSport),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, load.ErrInvalidBaseline):
		return http.StatusBadRequest
	case errors.Is(err, sessions.ErrSessionNotFound),
		errors.Is(err, weeks.ErrWeekNotFound),
		errors.Is(err, athletes.ErrUserNotFound):
		return http.StatusNotFound
	case db.IsStoreError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.create")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	var payload sessions.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Tracef("create activity, unmarshal json: %s", err)
		http.Error(w, "error, invalid activity payload", http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(ctx, userID, payload)
	if err != nil {
		handler.writeError(w, "create activity", err)
		return
	}

	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.update")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}
	id, ok := activityID(w, r)
	if !ok {
		return
	}

	var payload sessions.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Tracef("update activity, unmarshal json: %s", err)
		http.Error(w, "error, invalid activity payload", http.StatusBadRequest)
		return
	}

	updated, err := handler.service.Update(ctx, userID, id, payload)
	if err != nil {
		handler.writeError(w, "update activity", err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.delete")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}
	id, ok := activityID(w, r)
	if !ok {
		return
	}

	if err := handler.service.Delete(ctx, userID, id); err != nil {
		handler.writeError(w, "delete activity", err)
		return
	}

	pkg.WriteJSON(w, DeleteActivityResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleWeekSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.week_summary")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	summary, err := handler.service.GetWeekSummary(ctx, userID, date)
	if err != nil {
		handler.writeError(w, "week summary", err)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func (handler *Handler) HandleMuscleLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.muscle_load")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}
	date, ok := pathDate(w, r)
	if !ok {
		return
	}

	report, err := handler.service.GetMuscleLoad(ctx, userID, date)
	if err != nil {
		handler.writeError(w, "muscle load", err)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}

func (handler *Handler) HandleRebuild(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.rebuild")
	defer span.End()

	userID, ok := handler.userID(w, r)
	if !ok {
		return
	}

	var req RebuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid rebuild request", http.StatusBadRequest)
		return
	}

	start, err := pkg.ParseDate(req.StartDate)
	if err != nil {
		http.Error(w, "error, invalid start date", http.StatusBadRequest)
		return
	}
	end := start
	if req.EndDate != "" {
		end, err = pkg.ParseDate(req.EndDate)
		if err != nil {
			http.Error(w, "error, invalid end date", http.StatusBadRequest)
			return
		}
	}

	replayed, err := handler.service.RebuildDailyLoads(ctx, userID, start, &end)
	if err != nil {
		handler.writeError(w, "rebuild daily loads", err)
		return
	}

	pkg.WriteJSON(w, RebuildResponse{
		StartDate: pkg.FormatDate(start),
		EndDate:   pkg.FormatDate(end),
		Replayed:  replayed,
	}, http.StatusOK)
}

func (handler *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.Header.Get(UserIDHeader)
	if raw == "" {
		return handler.defaultUserID, true
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}

func (handler *Handler) writeError(w http.ResponseWriter, op string, err error) {
	status := ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", status)
		return
	}
	log.Debugf("%s: %s", op, err)
	http.Error(w, "error, "+op+": "+err.Error(), status)
}

func activityID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func pathDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	date, err := pkg.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "error, invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
}
