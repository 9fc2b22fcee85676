package dashboard

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainerdesk/internal/clients"
	"github.com/2beens/trainerdesk/internal/schedule"
	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=dashboard_test

const (
	activityLookbackDays = 30
	upcomingDays         = 7
	upcomingListLimit    = 5
	topClientsLimit      = 3
)

type clientsSource interface {
	List(ctx context.Context, params clients.ListParams) ([]clients.Client, error)
	Exists(ctx context.Context, id int) (bool, error)
	ListMeasurements(ctx context.Context, clientID int) ([]clients.Measurement, error)
}

type sessionsSource interface {
	ListBetween(ctx context.Context, dateRange schedule.DateRange) ([]schedule.Session, error)
	ListForClient(ctx context.Context, clientID int, dateRange schedule.DateRange) ([]schedule.Session, error)
}

// Analyzer aggregates the roster and the stored sessions into dashboard figures.
type Analyzer struct {
	clients  clientsSource
	sessions sessionsSource
	nowFunc  func() time.Time
}

func NewAnalyzer(clients clientsSource, sessions sessionsSource) *Analyzer {
	return &Analyzer{
		clients:  clients,
		sessions: sessions,
		nowFunc:  time.Now,
	}
}

// Summary covers the last activityLookbackDays days and the next upcomingDays days, today included in both.
func (a *Analyzer) Summary(ctx context.Context) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.dashboard.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := recurrence.DateOf(a.nowFunc())
	from := today.AddDays(-(activityLookbackDays - 1))
	to := today.AddDays(upcomingDays - 1)

	roster, err := a.clients.List(ctx, clients.ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	sessions, err := a.sessions.ListBetween(ctx, schedule.DateRange{From: &from, To: &to})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	span.SetAttributes(
		attribute.Int("clients.count", len(roster)),
		attribute.Int("sessions.count", len(sessions)),
	)

	names := make(map[int]string, len(roster))
	summary := &Summary{
		Date:         today,
		TotalClients: len(roster),
		Upcoming:     []UpcomingSession{},
		TopClients:   []TopClient{},
	}
	for _, c := range roster {
		names[c.ID] = c.Name
		joined := recurrence.DateOf(c.CreatedAt)
		if joined.Year == today.Year && joined.Month == today.Month {
			summary.NewClientsThisMonth++
		}
	}

	active := make(map[int]bool)
	completed := make(map[int]int)
	cancelled := make(map[int]int)
	for _, s := range sessions {
		if s.Status != schedule.StatusCancelled {
			active[s.ClientID] = true
		}
		if s.Date == today && s.Status != schedule.StatusCancelled {
			summary.TodaySessions++
		}

		if s.Date.Before(today) || s.Date == today {
			switch s.Status {
			case schedule.StatusCompleted:
				completed[s.ClientID]++
			case schedule.StatusCancelled:
				cancelled[s.ClientID]++
			}
		}

		if s.Status != schedule.StatusScheduled || s.Date.Before(today) {
			continue
		}
		summary.UpcomingSessions++
		if len(summary.Upcoming) < upcomingListLimit {
			summary.Upcoming = append(summary.Upcoming, UpcomingSession{
				SessionID:       s.ID,
				ClientID:        s.ClientID,
				ClientName:      names[s.ClientID],
				Type:            s.Type,
				Date:            s.Date,
				Time:            s.StartTime,
				DurationMinutes: s.DurationMinutes,
			})
		}
	}
	summary.ActiveClients = len(active)
	summary.TopClients = topClients(completed, cancelled, names)

	return summary, nil
}

func topClients(completed, cancelled map[int]int, names map[int]string) []TopClient {
	top := make([]TopClient, 0, len(completed))
	for clientID, count := range completed {
		top = append(top, TopClient{
			ClientID:          clientID,
			Name:              names[clientID],
			Sessions:          count,
			AttendancePercent: percent(count, count+cancelled[clientID]),
		})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Sessions != top[j].Sessions {
			return top[i].Sessions > top[j].Sessions
		}
		if top[i].Name != top[j].Name {
			return top[i].Name < top[j].Name
		}
		return top[i].ClientID < top[j].ClientID
	})
	if len(top) > topClientsLimit {
		top = top[:topClientsLimit]
	}
	return top
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	p := float64(part) / float64(total) * 100
	// leave only 2 decimals
	return float64(int(p*100)) / 100
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// Progress reports monthly attendance and the measurements taken since the first day of the window.
func (a *Analyzer) Progress(ctx context.Context, clientID, months int) (_ *Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.dashboard.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", clientID), attribute.Int("months", months))

	if !slices.Contains(ProgressPeriods, months) {
		return nil, fmt.Errorf("%w: %d months, allowed %v", ErrInvalidPeriod, months, ProgressPeriods)
	}

	exists, err := a.clients.Exists(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("check client %d: %w", clientID, err)
	}
	if !exists {
		return nil, clients.ErrClientNotFound
	}

	today := recurrence.DateOf(a.nowFunc())
	from := recurrence.DateOf(time.Date(today.Year, today.Month-time.Month(months-1), 1, 0, 0, 0, 0, time.UTC))

	sessions, err := a.sessions.ListForClient(ctx, clientID, schedule.DateRange{From: &from, To: &today})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	measurements, err := a.clients.ListMeasurements(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}

	progress := &Progress{
		ClientID:     clientID,
		Months:       months,
		From:         from,
		To:           today,
		Attendance:   make([]MonthAttendance, months),
		Measurements: []clients.Measurement{},
	}
	monthIndex := make(map[string]int, months)
	for i := 0; i < months; i++ {
		t := time.Date(from.Year, from.Month+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		key := monthKey(t.Year(), t.Month())
		progress.Attendance[i] = MonthAttendance{Month: key}
		monthIndex[key] = i
	}

	for _, s := range sessions {
		i, ok := monthIndex[monthKey(s.Date.Year, s.Date.Month)]
		if !ok {
			continue
		}
		switch s.Status {
		case schedule.StatusCompleted:
			progress.Attendance[i].Completed++
			progress.Completed++
		case schedule.StatusCancelled:
			progress.Attendance[i].Cancelled++
			progress.Cancelled++
		}
	}

	for _, m := range measurements {
		if m.MeasuredOn.Before(from) || today.Before(m.MeasuredOn) {
			continue
		}
		progress.Measurements = append(progress.Measurements, m)
	}
	if n := len(progress.Measurements); n > 1 {
		change := progress.Measurements[n-1].WeightKg - progress.Measurements[0].WeightKg
		progress.WeightChangeKg = float64(int(change*100)) / 100
	}

	return progress, nil
}
