package misc

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainerdesk/internal/auth"
	"github.com/2beens/trainerdesk/internal/middleware"
	"github.com/2beens/trainerdesk/internal/telemetry/metrics"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
	"github.com/2beens/trainerdesk/pkg"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck reports whether one dependency (db, redis) is reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	versionInfo  string
	authHandler  *auth.Handler
	healthChecks map[string]HealthCheck
}

func NewHandler(
	versionInfo string,
	authHandler *auth.Handler,
	healthChecks map[string]HealthCheck,
) *Handler {
	return &Handler{
		versionInfo:  versionInfo,
		authHandler:  authHandler,
		healthChecks: healthChecks,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	loginAllowedPerMin int,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")

	authSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	authSubrouter.
		HandleFunc("/login", handler.authHandler.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	authSubrouter.
		HandleFunc("/logout", handler.authHandler.HandleLogout).
		Methods("POST", "OPTIONS").Name("logout")
	authSubrouter.
		HandleFunc("/clients/{id}/token", handler.authHandler.HandleIssueClientToken).
		Methods("POST", "OPTIONS").Name("client-token")

	// rate limit the auth endpoints to prevent password guessing
	authSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginAllowedPerMin, metricsManager))
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(handler.healthChecks))
	for name := range handler.healthChecks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := healthResponse{Status: "ok", Checks: map[string]string{}}
	for _, name := range names {
		if err := handler.healthChecks[name](ctx); err != nil {
			log.Warnf("health check [%s] failed: %s", name, err)
			resp.Status = "degraded"
			resp.Checks[name] = err.Error()
			continue
		}
		resp.Checks[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	pkg.WriteJSON(w, resp, status)
}
