package recurrence

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// WeekdaySet is a bit set of weekdays, bit 0 being Sunday.
type WeekdaySet uint8

const allWeekdays WeekdaySet = 1<<7 - 1

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

func NewWeekdaySet(days ...time.Weekday) (WeekdaySet, error) {
	var set WeekdaySet
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return 0, &InvalidRequestError{
				Reason: ReasonBadWeekday,
				Detail: fmt.Sprintf("weekday %d out of range", int(d)),
			}
		}
		set = set.With(d)
	}
	return set, nil
}

// ParseWeekdays accepts short ("mon") or full ("monday") names, case-insensitive.
func ParseWeekdays(names []string) (WeekdaySet, error) {
	var set WeekdaySet
	for _, name := range names {
		d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, &InvalidRequestError{
				Reason: ReasonBadWeekday,
				Detail: fmt.Sprintf("unknown weekday [%s]", name),
			}
		}
		set = set.With(d)
	}
	return set, nil
}

func (s WeekdaySet) With(d time.Weekday) WeekdaySet {
	return (s | 1<<uint(d)) & allWeekdays
}

func (s WeekdaySet) Has(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}
	return s&(1<<uint(d)) != 0
}

func (s WeekdaySet) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

func (s WeekdaySet) IsEmpty() bool {
	return s&allWeekdays == 0
}

// Days lists the members in ascending order, Sunday first.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) String() string {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, strings.ToLower(d.String()[:3]))
	}
	return "[" + strings.Join(names, ",") + "]"
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, strings.ToLower(d.String()[:3]))
	}
	return json.Marshal(names)
}

func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParseWeekdays(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
