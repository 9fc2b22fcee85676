package recurrence

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest matches every *InvalidRequestError under errors.Is.
var ErrInvalidRequest = errors.New("invalid session request")

// Reason tells the caller which input was rejected, so it can re-prompt the user.
type Reason string

const (
	ReasonBadDuration   Reason = "bad_duration"
	ReasonBadWeekCount  Reason = "bad_week_count"
	ReasonBadAnchorDate Reason = "bad_anchor_date"
	ReasonBadTime       Reason = "bad_time"
	ReasonBadWeekday    Reason = "bad_weekday"
)

func (r Reason) String() string {
	return string(r)
}

// InvalidRequestError rejects a SessionRequest before any instance is produced.
type InvalidRequestError struct {
	Reason Reason
	Detail string
}

func (e *InvalidRequestError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidRequest, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidRequest, e.Reason, e.Detail)
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// ReasonOf extracts the rejection reason from err, if err is (or wraps) an InvalidRequestError.
func ReasonOf(err error) (Reason, bool) {
	var invalidErr *InvalidRequestError
	if errors.As(err, &invalidErr) {
		return invalidErr.Reason, true
	}
	return "", false
}
