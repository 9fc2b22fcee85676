package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrNothingToSchedule   = errors.New("request expands to no sessions")
	ErrInvalidSessionType  = errors.New("invalid session type")
	ErrInvalidSessionRange = errors.New("invalid session date range")
	ErrSessionNotScheduled = errors.New("session is not scheduled")
	ErrSessionNotDue       = errors.New("session has not taken place yet")
)

type SessionType string

const (
	TypeStrength    SessionType = "Strength Training"
	TypeCardio      SessionType = "Cardio"
	TypeHIIT        SessionType = "HIIT"
	TypeFlexibility SessionType = "Flexibility"
	TypeMobility    SessionType = "Mobility"
)

var SessionTypes = []SessionType{TypeStrength, TypeCardio, TypeHIIT, TypeFlexibility, TypeMobility}

func (t SessionType) IsValid() bool {
	for _, st := range SessionTypes {
		if t == st {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Session is one persisted occurrence. All occurrences created by one request share a SeriesID.
type Session struct {
	ID              int                  `json:"id"`
	SeriesID        uuid.UUID            `json:"seriesId"`
	ClientID        int                  `json:"clientId"`
	Type            SessionType          `json:"type"`
	Date            recurrence.Date      `json:"date"`
	StartTime       recurrence.TimeOfDay `json:"time"`
	DurationMinutes int                  `json:"durationMinutes"`
	SequenceIndex   int                  `json:"sequenceIndex"`
	Notes           string               `json:"notes"`
	Status          Status               `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// EndsAt is the wall-clock end of the session on its date.
func (s Session) EndsAt() recurrence.TimeOfDay {
	total := s.StartTime.Hour*60 + s.StartTime.Minute + s.DurationMinutes
	return recurrence.TimeOfDay{Hour: (total / 60) % 24, Minute: total % 60}
}

type ScheduleParams struct {
	ClientID int
	Type     SessionType
	Notes    string
	Request  recurrence.SessionRequest
}

func (p ScheduleParams) validate() error {
	if p.ClientID <= 0 {
		return ErrClientNotFound
	}
	if !p.Type.IsValid() {
		return fmt.Errorf("%w: [%s]", ErrInvalidSessionType, p.Type)
	}
	return nil
}

// DateRange bounds are inclusive; a nil bound is open.
type DateRange struct {
	From *recurrence.Date
	To   *recurrence.Date
}

func (r DateRange) validate() error {
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return fmt.Errorf("%w: %s is before %s", ErrInvalidSessionRange, r.To, r.From)
	}
	return nil
}

// Series is the outcome of one scheduling request.
type Series struct {
	SeriesID uuid.UUID `json:"seriesId"`
	Sessions []Session `json:"sessions"`
}
