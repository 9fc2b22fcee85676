package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainerdesk/internal/auth"
	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
	"github.com/2beens/trainerdesk/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=schedule_test

type scheduler interface {
	Preview(ctx context.Context, req recurrence.SessionRequest) ([]recurrence.SessionInstance, error)
	Schedule(ctx context.Context, params ScheduleParams) (*Series, error)
	ListForDay(ctx context.Context, date recurrence.Date) ([]Session, error)
	ListForClient(ctx context.Context, clientID int, dateRange DateRange) ([]Session, error)
	Upcoming(ctx context.Context, clientID int) ([]Session, error)
	Cancel(ctx context.Context, id int) error
	Complete(ctx context.Context, id int) error
	CancelSeries(ctx context.Context, seriesID uuid.UUID) (int, error)
}

// SessionRequestBody is the JSON body of the preview and schedule endpoints.
type SessionRequestBody struct {
	ClientID        int      `json:"clientId"`
	Type            string   `json:"type"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	DurationMinutes int      `json:"durationMinutes"`
	Notes           string   `json:"notes"`
	Repeat          bool     `json:"repeat"`
	Weekdays        []string `json:"weekdays"`
	WeekCount       int      `json:"weekCount"`
}

// toRequest builds a typed request, reporting problems in the same order Expand validates them.
func (b SessionRequestBody) toRequest() (recurrence.SessionRequest, error) {
	req := recurrence.SessionRequest{
		DurationMinutes: b.DurationMinutes,
		Repeat:          b.Repeat,
		WeekCount:       b.WeekCount,
	}

	date, dateErr := recurrence.ParseDate(b.Date)
	if dateErr == nil {
		req.AnchorDate = date
	}
	tod, timeErr := recurrence.ParseTimeOfDay(b.Time)
	if timeErr == nil {
		req.Time = tod
	}

	if err := req.Validate(); err != nil {
		if reason, _ := recurrence.ReasonOf(err); reason == recurrence.ReasonBadAnchorDate && dateErr != nil {
			return req, dateErr
		}
		return req, err
	}
	if timeErr != nil {
		return req, timeErr
	}

	if b.Repeat {
		weekdays, err := recurrence.ParseWeekdays(b.Weekdays)
		if err != nil {
			return req, err
		}
		req.Weekdays = weekdays
	}
	return req, nil
}

type PreviewResponse struct {
	Instances []recurrence.SessionInstance `json:"instances"`
	Total     int                          `json:"total"`
}

type SessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type Handler struct {
	scheduler scheduler
}

func NewHandler(scheduler scheduler) *Handler {
	return &Handler{
		scheduler: scheduler,
	}
}

// SetupRoutes registers the trainer routes under sessionsRouter and the client routes under meRouter.
func (handler *Handler) SetupRoutes(sessionsRouter, meRouter *mux.Router) {
	sessionsRouter.HandleFunc("/types", handler.HandleTypes).Methods("GET").Name("sessions-types")
	sessionsRouter.HandleFunc("/preview", handler.HandlePreview).Methods("POST").Name("sessions-preview")
	sessionsRouter.HandleFunc("", handler.HandleSchedule).Methods("POST").Name("sessions-schedule")
	sessionsRouter.HandleFunc("/day/{date}", handler.HandleListForDay).Methods("GET").Name("sessions-day")
	sessionsRouter.HandleFunc("/client/{clientId}", handler.HandleListForClient).Methods("GET").Name("sessions-client")
	sessionsRouter.HandleFunc("/series/{seriesId}", handler.HandleCancelSeries).Methods("DELETE").Name("sessions-cancel-series")
	sessionsRouter.HandleFunc("/{id:[0-9]+}/complete", handler.HandleComplete).Methods("POST").Name("sessions-complete")
	sessionsRouter.HandleFunc("/{id:[0-9]+}", handler.HandleCancel).Methods("DELETE").Name("sessions-cancel")

	meRouter.HandleFunc("/sessions", handler.HandleMySessions).Methods("GET").Name("me-sessions")
}

func writeScheduleError(w http.ResponseWriter, op string, err error) {
	if reason, ok := recurrence.ReasonOf(err); ok {
		pkg.WriteJSONError(w, err.Error(), reason.String(), http.StatusBadRequest)
		return
	}
	switch {
	case errors.Is(err, ErrInvalidSessionType):
		pkg.WriteJSONError(w, err.Error(), "bad_session_type", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidSessionRange):
		pkg.WriteJSONError(w, err.Error(), "bad_date_range", http.StatusBadRequest)
	case errors.Is(err, ErrNothingToSchedule):
		pkg.WriteJSONError(w, err.Error(), "nothing_to_schedule", http.StatusBadRequest)
	case errors.Is(err, ErrSessionNotScheduled):
		pkg.WriteJSONError(w, err.Error(), "not_scheduled", http.StatusConflict)
	case errors.Is(err, ErrSessionNotDue):
		pkg.WriteJSONError(w, err.Error(), "not_due", http.StatusConflict)
	case errors.Is(err, ErrClientNotFound), errors.Is(err, ErrSessionNotFound):
		pkg.WriteJSONError(w, err.Error(), "", http.StatusNotFound)
	default:
		log.Errorf("schedule handler, %s: %s", op, err)
		pkg.WriteJSONError(w, "internal server error", "", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleTypes(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, SessionTypes, http.StatusOK)
}

func (handler *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.preview")
	defer span.End()

	var body SessionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		pkg.WriteJSONError(w, "invalid session request json", "", http.StatusBadRequest)
		return
	}

	req, err := body.toRequest()
	if err != nil {
		writeScheduleError(w, "preview", err)
		return
	}

	instances, err := handler.scheduler.Preview(ctx, req)
	if err != nil {
		writeScheduleError(w, "preview", err)
		return
	}

	pkg.WriteJSON(w, PreviewResponse{Instances: instances, Total: len(instances)}, http.StatusOK)
}

func (handler *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.schedule")
	defer span.End()

	var body SessionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Tracef("schedule, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid session request json", "", http.StatusBadRequest)
		return
	}

	req, err := body.toRequest()
	if err != nil {
		writeScheduleError(w, "schedule", err)
		return
	}

	series, err := handler.scheduler.Schedule(ctx, ScheduleParams{
		ClientID: body.ClientID,
		Type:     SessionType(body.Type),
		Notes:    body.Notes,
		Request:  req,
	})
	if err != nil {
		writeScheduleError(w, "schedule", err)
		return
	}

	pkg.WriteJSON(w, series, http.StatusCreated)
}

func (handler *Handler) HandleListForDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.listForDay")
	defer span.End()

	date, err := recurrence.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		writeScheduleError(w, "list for day", err)
		return
	}

	sessions, err := handler.scheduler.ListForDay(ctx, date)
	if err != nil {
		writeScheduleError(w, "list for day", err)
		return
	}

	pkg.WriteJSON(w, SessionsResponse{Sessions: sessions, Total: len(sessions)}, http.StatusOK)
}

func dateRangeFromQuery(r *http.Request) (DateRange, error) {
	var dateRange DateRange
	if from := r.URL.Query().Get("from"); from != "" {
		d, err := recurrence.ParseDate(from)
		if err != nil {
			return dateRange, err
		}
		dateRange.From = &d
	}
	if to := r.URL.Query().Get("to"); to != "" {
		d, err := recurrence.ParseDate(to)
		if err != nil {
			return dateRange, err
		}
		dateRange.To = &d
	}
	return dateRange, nil
}

func (handler *Handler) HandleListForClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.listForClient")
	defer span.End()

	clientID, err := strconv.Atoi(mux.Vars(r)["clientId"])
	if err != nil || clientID <= 0 {
		pkg.WriteJSONError(w, "invalid client id", "", http.StatusBadRequest)
		return
	}

	dateRange, err := dateRangeFromQuery(r)
	if err != nil {
		writeScheduleError(w, "list for client", err)
		return
	}

	sessions, err := handler.scheduler.ListForClient(ctx, clientID, dateRange)
	if err != nil {
		writeScheduleError(w, "list for client", err)
		return
	}

	pkg.WriteJSON(w, SessionsResponse{Sessions: sessions, Total: len(sessions)}, http.StatusOK)
}

// HandleMySessions serves a client session its own sessions, upcoming by default.
func (handler *Handler) HandleMySessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.mySessions")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok || session.Role != auth.RoleClient {
		pkg.WriteJSONError(w, "client session required", "", http.StatusForbidden)
		return
	}

	dateRange, err := dateRangeFromQuery(r)
	if err != nil {
		writeScheduleError(w, "my sessions", err)
		return
	}

	var sessions []Session
	if dateRange.From == nil && dateRange.To == nil {
		sessions, err = handler.scheduler.Upcoming(ctx, session.ClientID)
	} else {
		sessions, err = handler.scheduler.ListForClient(ctx, session.ClientID, dateRange)
	}
	if err != nil {
		writeScheduleError(w, "my sessions", err)
		return
	}

	pkg.WriteJSON(w, SessionsResponse{Sessions: sessions, Total: len(sessions)}, http.StatusOK)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.cancel")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		pkg.WriteJSONError(w, "invalid session id", "", http.StatusBadRequest)
		return
	}

	if err := handler.scheduler.Cancel(ctx, id); err != nil {
		writeScheduleError(w, "cancel", err)
		return
	}

	pkg.WriteJSON(w, map[string]int{"cancelled": 1}, http.StatusOK)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.complete")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		pkg.WriteJSONError(w, "invalid session id", "", http.StatusBadRequest)
		return
	}

	if err := handler.scheduler.Complete(ctx, id); err != nil {
		writeScheduleError(w, "complete", err)
		return
	}

	pkg.WriteJSON(w, map[string]int{"completed": 1}, http.StatusOK)
}

func (handler *Handler) HandleCancelSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.cancelSeries")
	defer span.End()

	seriesID, err := uuid.Parse(mux.Vars(r)["seriesId"])
	if err != nil {
		pkg.WriteJSONError(w, "invalid series id", "", http.StatusBadRequest)
		return
	}

	count, err := handler.scheduler.CancelSeries(ctx, seriesID)
	if err != nil {
		writeScheduleError(w, "cancel series", err)
		return
	}

	pkg.WriteJSON(w, map[string]int{"cancelled": count}, http.StatusOK)
}
