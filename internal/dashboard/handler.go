package dashboard

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainerdesk/internal/auth"
	"github.com/2beens/trainerdesk/internal/clients"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
	"github.com/2beens/trainerdesk/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type analyzer interface {
	Summary(ctx context.Context) (*Summary, error)
	Progress(ctx context.Context, clientID, months int) (*Progress, error)
}

type Handler struct {
	analyzer analyzer
}

func NewHandler(analyzer analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(dashboardRouter, clientsRouter, meRouter *mux.Router) {
	dashboardRouter.HandleFunc("", handler.HandleSummary).Methods("GET").Name("dashboard-summary")
	clientsRouter.HandleFunc("/{id}/progress", handler.HandleProgress).Methods("GET").Name("clients-progress")
	meRouter.HandleFunc("/progress", handler.HandleMyProgress).Methods("GET").Name("me-progress")
}

func writeDashboardError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidPeriod):
		pkg.WriteJSONError(w, err.Error(), "bad_period", http.StatusBadRequest)
	case errors.Is(err, clients.ErrClientNotFound):
		pkg.WriteJSONError(w, err.Error(), "", http.StatusNotFound)
	default:
		log.Errorf("dashboard handler, %s: %s", op, err)
		pkg.WriteJSONError(w, "internal server error", "", http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	summary, err := handler.analyzer.Summary(ctx)
	if err != nil {
		writeDashboardError(w, "summary", err)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

// monthsFromQuery reads the months parameter; a missing one means DefaultProgressMonths.
func monthsFromQuery(r *http.Request) (int, bool) {
	monthsStr := r.URL.Query().Get("months")
	if monthsStr == "" {
		return DefaultProgressMonths, true
	}
	months, err := strconv.Atoi(monthsStr)
	if err != nil || months <= 0 {
		return 0, false
	}
	return months, true
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.progress")
	defer span.End()

	clientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || clientID <= 0 {
		pkg.WriteJSONError(w, "invalid client id", "", http.StatusBadRequest)
		return
	}
	months, ok := monthsFromQuery(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid months parameter (must be positive integer)", "bad_period", http.StatusBadRequest)
		return
	}

	progress, err := handler.analyzer.Progress(ctx, clientID, months)
	if err != nil {
		writeDashboardError(w, "progress", err)
		return
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}

// HandleMyProgress serves a client session its own progress.
func (handler *Handler) HandleMyProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.myProgress")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok || session.Role != auth.RoleClient {
		pkg.WriteJSONError(w, "client session required", "", http.StatusForbidden)
		return
	}
	months, ok := monthsFromQuery(r)
	if !ok {
		pkg.WriteJSONError(w, "invalid months parameter (must be positive integer)", "bad_period", http.StatusBadRequest)
		return
	}

	progress, err := handler.analyzer.Progress(ctx, session.ClientID, months)
	if err != nil {
		writeDashboardError(w, "my progress", err)
		return
	}

	pkg.WriteJSON(w, progress, http.StatusOK)
}
