package clients

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrInvalidClient  = errors.New("invalid client")
	ErrInvalidNote    = errors.New("invalid note")
	ErrEmailTaken     = errors.New("client email already taken")
)

// Tag is the kind of engagement a client has with the trainer.
type Tag string

const (
	TagSubscription Tag = "subscription"
	TagOneTime      Tag = "one-time"
	TagTrial        Tag = "trial"
)

func (t Tag) IsValid() bool {
	switch t {
	case TagSubscription, TagOneTime, TagTrial:
		return true
	default:
		return false
	}
}

type Client struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Tag       Tag       `json:"tag"`
	Plan      string    `json:"plan"`
	Goal      string    `json:"goal"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Client) normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Plan = strings.TrimSpace(c.Plan)
	c.Goal = strings.TrimSpace(c.Goal)
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name empty", ErrInvalidClient)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return fmt.Errorf("%w: bad email [%s]", ErrInvalidClient, c.Email)
	}
	if !c.Tag.IsValid() {
		return fmt.Errorf("%w: unknown tag [%s]", ErrInvalidClient, c.Tag)
	}
	return nil
}

// Matches does a case-insensitive substring search over name, email, goal and plan.
func (c *Client) Matches(search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, field := range []string{c.Name, c.Email, c.Goal, c.Plan} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

type Note struct {
	ID        int       `json:"id"`
	ClientID  int       `json:"clientId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListParams struct {
	Search string
	Tag    Tag
}
