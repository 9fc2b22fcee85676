package auth

import (
	"context"
	"time"
)

// Role decides which part of the API a session may reach.
type Role string

const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleTrainer, RoleClient:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// LoginSession is what a token resolves to. Client sessions are bound to one client.
type LoginSession struct {
	Token     string    `json:"-"`
	Role      Role      `json:"role"`
	ClientID  int       `json:"clientId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *LoginSession) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.CreatedAt) > ttl
}

func (s *LoginSession) IsTrainer() bool {
	return s != nil && s.Role == RoleTrainer
}

type sessionCtxKey struct{}

func ContextWithSession(ctx context.Context, session *LoginSession) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

func SessionFromContext(ctx context.Context) (*LoginSession, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(*LoginSession)
	return session, ok && session != nil
}
