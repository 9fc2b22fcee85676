package recurrence

import (
	"fmt"
	"math"
	"sort"
)

const (
	daysInWeek = 7
	// instances are appended past this many without preallocation
	preallocLimit = 512
)

// lastSupportedDate is the last day a Date can be written as YYYY-MM-DD.
var lastSupportedDate = Date{Year: 9999, Month: 12, Day: 31}

// SessionRequest describes one scheduling submission: a single session, or a weekly
// pattern repeated over WeekCount week windows (Sunday to Saturday).
type SessionRequest struct {
	AnchorDate      Date       `json:"anchorDate"`
	Time            TimeOfDay  `json:"time"`
	DurationMinutes int        `json:"durationMinutes"`
	Repeat          bool       `json:"repeat"`
	Weekdays        WeekdaySet `json:"weekdays"`
	WeekCount       int        `json:"weekCount"`
}

// SessionInstance is one concrete occurrence produced by Expand.
type SessionInstance struct {
	Date            Date      `json:"date"`
	Time            TimeOfDay `json:"time"`
	DurationMinutes int       `json:"durationMinutes"`
	SequenceIndex   int       `json:"sequenceIndex"`
}

// Validate checks the request in a fixed order: duration, week count, anchor date, time,
// and finally that the last repeated window still ends inside the supported date range.
func (r SessionRequest) Validate() error {
	if r.DurationMinutes <= 0 {
		return &InvalidRequestError{
			Reason: ReasonBadDuration,
			Detail: fmt.Sprintf("duration must be positive, got %d", r.DurationMinutes),
		}
	}
	if r.Repeat && r.WeekCount < 1 {
		return &InvalidRequestError{
			Reason: ReasonBadWeekCount,
			Detail: fmt.Sprintf("week count must be at least 1, got %d", r.WeekCount),
		}
	}
	if !r.AnchorDate.Valid() {
		return &InvalidRequestError{
			Reason: ReasonBadAnchorDate,
			Detail: fmt.Sprintf("%s is not a calendar date", r.AnchorDate),
		}
	}
	if !r.Time.Valid() {
		return &InvalidRequestError{
			Reason: ReasonBadTime,
			Detail: fmt.Sprintf("%s is not a wall-clock time", r.Time),
		}
	}
	if r.Repeat && !r.Weekdays.IsEmpty() && !r.lastWindowSupported() {
		return &InvalidRequestError{
			Reason: ReasonBadWeekCount,
			Detail: fmt.Sprintf("%d weeks from %s run past %s", r.WeekCount, r.AnchorDate, lastSupportedDate),
		}
	}
	return nil
}

// lastWindowSupported reports whether the latest selected day of the last window
// is on or before lastSupportedDate. Works on day numbers so huge week counts cannot overflow.
func (r SessionRequest) lastWindowSupported() bool {
	days := r.Weekdays.Days()
	latestWeekday := int64(days[len(days)-1])
	remaining := lastSupportedDate.dayNumber() - r.AnchorDate.WeekStart().dayNumber() - latestWeekday
	if remaining < 0 {
		return false
	}
	return int64(r.WeekCount-1) <= remaining/daysInWeek
}

// MaxInstances is the upper bound on what Expand can return for r.
func (r SessionRequest) MaxInstances() int {
	if !r.Repeat {
		return 1
	}
	perWeek := r.Weekdays.Len()
	if perWeek == 0 || r.WeekCount <= 0 {
		return 0
	}
	if r.WeekCount > math.MaxInt/perWeek {
		return math.MaxInt
	}
	return r.WeekCount * perWeek
}

// Expand turns a request into its concrete, date-ordered session instances.
//
// A non-repeating request yields exactly the anchor date. A repeating one walks WeekCount
// week windows starting with the window that holds the anchor, emitting one instance per
// selected weekday and dropping days of the first window that fall before the anchor.
// An empty weekday set yields no instances.
func Expand(r SessionRequest) ([]SessionInstance, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if !r.Repeat {
		return []SessionInstance{
			{
				Date:            r.AnchorDate,
				Time:            r.Time,
				DurationMinutes: r.DurationMinutes,
				SequenceIndex:   0,
			},
		}, nil
	}

	if r.Weekdays.IsEmpty() {
		return []SessionInstance{}, nil
	}

	days := r.Weekdays.Days()
	instances := make([]SessionInstance, 0, min(r.MaxInstances(), preallocLimit))
	windowStart := r.AnchorDate.WeekStart()
	for w := 0; w < r.WeekCount; w++ {
		for _, weekday := range days {
			candidate := windowStart.AddDays(w*daysInWeek + int(weekday))
			if candidate.Before(r.AnchorDate) {
				continue
			}
			instances = append(instances, SessionInstance{
				Date:            candidate,
				Time:            r.Time,
				DurationMinutes: r.DurationMinutes,
			})
		}
	}

	// iteration order already yields ascending dates; keep the sort as a safety net
	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].Date.Before(instances[j].Date)
	})
	for i := range instances {
		instances[i].SequenceIndex = i
	}

	return instances, nil
}
