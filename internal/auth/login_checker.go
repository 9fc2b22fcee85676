package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Checker resolves a bearer token to its login session.
type Checker interface {
	Session(ctx context.Context, token string) (*LoginSession, error)
}

var _ Checker = (*LoginChecker)(nil)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	nowFunc     func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		nowFunc:     time.Now,
	}
}

// Session resolves a token. Unknown or expired tokens give ErrNotLoggedIn.
func (c *LoginChecker) Session(ctx context.Context, token string) (*LoginSession, error) {
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	sessionJson, err := c.redisClient.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	session := &LoginSession{}
	if err := json.Unmarshal([]byte(sessionJson), session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if !session.Role.IsValid() || session.Expired(c.ttl, c.nowFunc()) {
		return nil, ErrNotLoggedIn
	}

	session.Token = token
	return session, nil
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	_, err := c.Session(ctx, token)
	if errors.Is(err, ErrNotLoggedIn) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
