package dashboard

import (
	"errors"

	"github.com/2beens/trainerdesk/internal/clients"
	"github.com/2beens/trainerdesk/internal/schedule"
	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
)

var ErrInvalidPeriod = errors.New("invalid progress period")

// ProgressPeriods are the supported progress windows, in months.
var ProgressPeriods = []int{1, 3, 6, 12}

const DefaultProgressMonths = 3

// Summary is the trainer's overview for one day.
type Summary struct {
	Date                recurrence.Date   `json:"date"`
	TotalClients        int               `json:"totalClients"`
	ActiveClients       int               `json:"activeClients"`
	NewClientsThisMonth int               `json:"newClientsThisMonth"`
	UpcomingSessions    int               `json:"upcomingSessions"`
	TodaySessions       int               `json:"todaySessions"`
	Upcoming            []UpcomingSession `json:"upcoming"`
	TopClients          []TopClient       `json:"topClients"`
}

type UpcomingSession struct {
	SessionID       int                  `json:"sessionId"`
	ClientID        int                  `json:"clientId"`
	ClientName      string               `json:"clientName"`
	Type            schedule.SessionType `json:"type"`
	Date            recurrence.Date      `json:"date"`
	Time            recurrence.TimeOfDay `json:"time"`
	DurationMinutes int                  `json:"durationMinutes"`
}

// TopClient ranks a client by completed sessions. AttendancePercent is completed over completed plus cancelled.
type TopClient struct {
	ClientID          int     `json:"clientId"`
	Name              string  `json:"name"`
	Sessions          int     `json:"sessions"`
	AttendancePercent float64 `json:"attendancePercent"`
}

type MonthAttendance struct {
	Month     string `json:"month"` // YYYY-MM
	Completed int    `json:"completed"`
	Cancelled int    `json:"cancelled"`
}

// Progress is one client's history over the last Months calendar months, the current one included.
type Progress struct {
	ClientID       int                   `json:"clientId"`
	Months         int                   `json:"months"`
	From           recurrence.Date       `json:"from"`
	To             recurrence.Date       `json:"to"`
	Attendance     []MonthAttendance     `json:"attendance"`
	Completed      int                   `json:"completed"`
	Cancelled      int                   `json:"cancelled"`
	Measurements   []clients.Measurement `json:"measurements"`
	WeightChangeKg float64               `json:"weightChangeKg"`
}
