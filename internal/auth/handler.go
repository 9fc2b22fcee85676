package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
	"github.com/2beens/trainerdesk/pkg"
)

const bearerPrefix = "Bearer "

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type sessionIssuer interface {
	Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, error)
	IssueClientToken(ctx context.Context, clientID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type clientChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type Handler struct {
	sessions sessionIssuer
	clients  clientChecker
}

func NewHandler(sessions sessionIssuer, clients clientChecker) *Handler {
	return &Handler{
		sessions: sessions,
		clients:  clients,
	}
}

// TokenFromRequest reads the token from the "Authorization: Bearer <token>" header.
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

type tokenResponse struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Debugf("login, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid login request", "", http.StatusBadRequest)
		return
	}
	if creds.Username == "" || creds.Password == "" {
		pkg.WriteJSONError(w, "username and password are required", "", http.StatusBadRequest)
		return
	}

	token, err := h.sessions.Login(ctx, creds, time.Now())
	if err != nil {
		if errors.Is(err, ErrWrongUsername) || errors.Is(err, ErrWrongPassword) {
			log.Tracef("failed login attempt for user [%s]: %s", creds.Username, err)
			span.SetStatus(codes.Error, "wrong-credentials")
			pkg.WriteJSONError(w, "wrong credentials", "", http.StatusUnauthorized)
			return
		}
		log.Errorf("login failed: %s", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "login-failed")
		pkg.WriteJSONError(w, "login failed", "", http.StatusInternalServerError)
		return
	}

	log.Trace("new trainer login success")
	pkg.WriteJSON(w, tokenResponse{Token: token, Role: RoleTrainer}, http.StatusOK)
}

func (h *Handler) HandleIssueClientToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.issueClientToken")
	defer span.End()

	clientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || clientID <= 0 {
		pkg.WriteJSONError(w, "invalid client id", "", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("client.id", clientID))

	exists, err := h.clients.Exists(ctx, clientID)
	if err != nil {
		log.Errorf("issue client token, check client %d: %s", clientID, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "client-check-failed")
		pkg.WriteJSONError(w, "internal error", "", http.StatusInternalServerError)
		return
	}
	if !exists {
		pkg.WriteJSONError(w, fmt.Sprintf("client %d not found", clientID), "", http.StatusNotFound)
		return
	}

	token, err := h.sessions.IssueClientToken(ctx, clientID, time.Now())
	if err != nil {
		log.Errorf("issue client token for %d: %s", clientID, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "issue-token-failed")
		pkg.WriteJSONError(w, "issue token failed", "", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, tokenResponse{Token: token, Role: RoleClient}, http.StatusCreated)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	token := TokenFromRequest(r)
	if token == "" {
		pkg.WriteJSONError(w, "no can do", "", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.sessions.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "logout-failed")
		pkg.WriteJSONError(w, "logout failed", "", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		pkg.WriteJSONError(w, "no can do", "", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
