package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/trainerdesk/internal/auth"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
	"github.com/2beens/trainerdesk/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type loginChecker interface {
	Session(ctx context.Context, token string) (*auth.LoginSession, error)
}

type AuthMiddlewareHandler struct {
	loginChecker loginChecker
	allowedPaths map[string]bool
	// client sessions can only reach these
	clientPathPrefixes []string
	clientPaths        map[string]bool
}

func NewAuthMiddlewareHandler(loginChecker loginChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
			"/health":  true,
			"/a/login": true,
		},
		clientPathPrefixes: []string{"/me/"},
		clientPaths: map[string]bool{
			"/a/logout": true,
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	return h.allowedPaths[path]
}

func (h *AuthMiddlewareHandler) clientMayReach(path string) bool {
	if h.clientPaths[path] {
		return true
	}
	for _, prefix := range h.clientPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := auth.TokenFromRequest(r)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteJSONError(w, "no can do", "", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			session, err := h.loginChecker.Session(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrNotLoggedIn) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					span.SetStatus(codes.Error, "not-logged")
				} else {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
					span.SetStatus(codes.Error, "check-logged-err")
					span.RecordError(err)
				}
				pkg.WriteJSONError(w, "no can do", "", http.StatusUnauthorized)
				return
			}

			span.SetAttributes(attribute.String("session.role", session.Role.String()))
			if session.Role == auth.RoleClient && !h.clientMayReach(r.URL.Path) {
				log.Tracef("[client session] [auth middleware] forbidden => %s", r.URL.Path)
				pkg.WriteJSONError(w, "forbidden for client sessions", "", http.StatusForbidden)
				span.SetStatus(codes.Error, "client-forbidden")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithSession(r.Context(), session)))
		})
	}
}
