package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainerdesk/pkg"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "trainerdesk-session||"
	tokensSetKey     = "trainerdesk-sessions"
	tokenLength      = 35
)

var (
	ErrWrongUsername = errors.New("wrong username")
	ErrWrongPassword = errors.New("wrong password")
	ErrInvalidClient = errors.New("invalid client id")
)

// Admin is the trainer account; its password hash comes from the environment.
type Admin struct {
	Username     string
	PasswordHash string
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Service struct {
	admin       *Admin
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	admin *Admin,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		admin:          admin,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Login checks the trainer credentials and opens a trainer session.
func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (string, error) {
	if creds.Username != as.admin.Username {
		return "", ErrWrongUsername
	}
	if !pkg.CheckPasswordHash(creds.Password, as.admin.PasswordHash) {
		return "", ErrWrongPassword
	}

	return as.createSession(ctx, LoginSession{
		Role:      RoleTrainer,
		CreatedAt: createdAt,
	})
}

// IssueClientToken opens a session bound to one client, handed out by the trainer.
func (as *Service) IssueClientToken(ctx context.Context, clientID int, createdAt time.Time) (string, error) {
	if clientID <= 0 {
		return "", ErrInvalidClient
	}
	return as.createSession(ctx, LoginSession{
		Role:      RoleClient,
		ClientID:  clientID,
		CreatedAt: createdAt,
	})
}

func (as *Service) createSession(ctx context.Context, session LoginSession) (string, error) {
	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	if err := as.redisClient.Set(ctx, sessionKey(token), string(sessionJson), as.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to the set of sessions, used by scan and clean
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("track session: %w", err)
	}

	return token, nil
}

// Logout returns false if the token did not belong to a live session.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	deleted, err := as.redisClient.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}

	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old.
// Tokens whose keys already expired in redis are only dropped from the set.
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	now := time.Now()
	var toRemove []string
	for _, token := range sessionTokens {
		sessionJson, err := as.redisClient.Get(ctx, sessionKey(token)).Result()
		if errors.Is(err, redis.Nil) {
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("auth service, scan and clean, get token %s: %s", token, err)
			continue
		}

		var session LoginSession
		if err := json.Unmarshal([]byte(sessionJson), &session); err != nil {
			log.Errorf("auth service, scan and clean, token %s: %s", token, err)
			toRemove = append(toRemove, token)
			continue
		}

		if session.Expired(as.ttl, now) {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
		}
	}
	log.Debugf("auth service, scan and clean removed %d sessions", len(toRemove))
}
