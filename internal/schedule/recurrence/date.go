package recurrence

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// Date is a calendar date with no time zone attached.
// All arithmetic goes through time.Date in UTC, so DST never shifts a day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, &InvalidRequestError{
			Reason: ReasonBadAnchorDate,
			Detail: fmt.Sprintf("%04d-%02d-%02d is not a calendar date", year, int(month), day),
		}
	}
	return d, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &InvalidRequestError{
			Reason: ReasonBadAnchorDate,
			Detail: fmt.Sprintf("parse date [%s]: %s", s, err),
		}
	}
	return DateOf(t), nil
}

// Valid reports whether d names an existing day in the proleptic Gregorian calendar.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	// time.Date normalizes overflow (Feb 30 -> Mar 2), so a round trip exposes bad days
	return DateOf(d.midnight()) == d
}

func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// dayNumber counts days since 1970-01-01; negative before it.
func (d Date) dayNumber() int64 {
	return d.midnight().Unix() / secondsPerDay
}

// Time returns the date at 00:00 UTC.
func (d Date) Time() time.Time {
	return d.midnight()
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Date) Weekday() time.Weekday {
	return d.midnight().Weekday()
}

// WeekStart returns the Sunday that opens the week window containing d.
func (d Date) WeekStart() Date {
	return d.AddDays(-int(d.Weekday()))
}

func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
