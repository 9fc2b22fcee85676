package schedule

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainerdesk/internal/notify"
	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
	"github.com/2beens/trainerdesk/internal/telemetry/metrics"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=schedule_test

type sessionsRepo interface {
	AddSeries(ctx context.Context, sessions []Session) ([]Session, error)
	Get(ctx context.Context, id int) (*Session, error)
	ListForDay(ctx context.Context, date recurrence.Date) ([]Session, error)
	ListForClient(ctx context.Context, clientID int, dateRange DateRange) ([]Session, error)
	Cancel(ctx context.Context, id int) error
	Complete(ctx context.Context, id int) error
	CancelSeries(ctx context.Context, seriesID uuid.UUID) (int, error)
}

type clientsLookup interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type notifier interface {
	SessionsScheduled(ctx context.Context, event notify.SessionsScheduled) error
	SessionsCancelled(ctx context.Context, event notify.SessionsCancelled) error
}

type Service struct {
	repo           sessionsRepo
	clients        clientsLookup
	notifier       notifier
	metrics        *metrics.Manager
	maxRepeatWeeks int
	nowFunc        func() time.Time
	newSeriesID    func() uuid.UUID
}

func NewService(
	repo sessionsRepo,
	clients clientsLookup,
	notifier notifier,
	metricsManager *metrics.Manager,
	maxRepeatWeeks int,
) *Service {
	return &Service{
		repo:           repo,
		clients:        clients,
		notifier:       notifier,
		metrics:        metricsManager,
		maxRepeatWeeks: maxRepeatWeeks,
		nowFunc:        time.Now,
		newSeriesID:    uuid.New,
	}
}

// Preview expands the request without storing anything.
func (s *Service) Preview(ctx context.Context, req recurrence.SessionRequest) (_ []recurrence.SessionInstance, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.schedule.preview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if req.Repeat && s.maxRepeatWeeks > 0 && req.WeekCount > s.maxRepeatWeeks {
		return nil, &recurrence.InvalidRequestError{
			Reason: recurrence.ReasonBadWeekCount,
			Detail: fmt.Sprintf("week count %d exceeds the maximum of %d", req.WeekCount, s.maxRepeatWeeks),
		}
	}

	instances, err := recurrence.Expand(req)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("instances", len(instances)))
	return instances, nil
}

// Schedule stores every instance the request expands to as one series.
func (s *Service) Schedule(ctx context.Context, params ScheduleParams) (_ *Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.schedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("client.id", params.ClientID),
		attribute.String("session.type", string(params.Type)),
		attribute.Bool("repeat", params.Request.Repeat),
	)

	if err := params.validate(); err != nil {
		return nil, err
	}

	instances, err := s.Preview(ctx, params.Request)
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		return nil, ErrNothingToSchedule
	}

	exists, err := s.clients.Exists(ctx, params.ClientID)
	if err != nil {
		return nil, fmt.Errorf("check client %d: %w", params.ClientID, err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	seriesID := s.newSeriesID()
	now := s.nowFunc()
	sessions := make([]Session, len(instances))
	for i, inst := range instances {
		sessions[i] = Session{
			SeriesID:        seriesID,
			ClientID:        params.ClientID,
			Type:            params.Type,
			Date:            inst.Date,
			StartTime:       inst.Time,
			DurationMinutes: inst.DurationMinutes,
			SequenceIndex:   inst.SequenceIndex,
			Notes:           params.Notes,
			Status:          StatusScheduled,
			CreatedAt:       now,
		}
	}

	stored, err := s.repo.AddSeries(ctx, sessions)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("series.id", seriesID.String()))

	if s.metrics != nil {
		s.metrics.CounterSessionsScheduled.With(prometheus.Labels{
			"type":   string(params.Type),
			"repeat": strconv.FormatBool(params.Request.Repeat),
		}).Add(float64(len(stored)))
		s.metrics.HistogramSeriesSize.Observe(float64(len(stored)))
	}

	dates := make([]string, len(stored))
	for i := range stored {
		dates[i] = stored[i].Date.String()
	}
	if err := s.notifier.SessionsScheduled(ctx, notify.SessionsScheduled{
		SeriesID:        seriesID.String(),
		ClientID:        params.ClientID,
		SessionType:     string(params.Type),
		Time:            params.Request.Time.String(),
		DurationMinutes: params.Request.DurationMinutes,
		Dates:           dates,
		ScheduledAt:     now,
	}); err != nil {
		s.notifyFailed(err)
	}

	log.Debugf("schedule: series %s with %d sessions for client %d", seriesID, len(stored), params.ClientID)
	return &Series{SeriesID: seriesID, Sessions: stored}, nil
}

func (s *Service) notifyFailed(err error) {
	log.Errorf("schedule: notify: %s", err)
	if s.metrics != nil {
		s.metrics.CounterNotifyFailures.Inc()
	}
}

func (s *Service) ListForDay(ctx context.Context, date recurrence.Date) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.listForDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !date.Valid() {
		return nil, &recurrence.InvalidRequestError{
			Reason: recurrence.ReasonBadAnchorDate,
			Detail: fmt.Sprintf("%s is not a calendar date", date),
		}
	}
	return s.repo.ListForDay(ctx, date)
}

func (s *Service) ListForClient(ctx context.Context, clientID int, dateRange DateRange) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.listForClient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := dateRange.validate(); err != nil {
		return nil, err
	}

	exists, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("check client %d: %w", clientID, err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	return s.repo.ListForClient(ctx, clientID, dateRange)
}

// Upcoming lists a client's sessions from today on.
func (s *Service) Upcoming(ctx context.Context, clientID int) ([]Session, error) {
	today := recurrence.DateOf(s.nowFunc())
	return s.ListForClient(ctx, clientID, DateRange{From: &today})
}

func (s *Service) Cancel(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.cancel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Cancel(ctx, id); err != nil {
		return err
	}
	s.cancelled(ctx, notify.SessionsCancelled{SessionID: id, Count: 1, CancelledAt: s.nowFunc()})
	return nil
}

// Complete marks a scheduled session as done. Sessions dated after today cannot be completed.
func (s *Service) Complete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if session.Status != StatusScheduled {
		return fmt.Errorf("%w: session %d is %s", ErrSessionNotScheduled, id, session.Status)
	}
	if today := recurrence.DateOf(s.nowFunc()); today.Before(session.Date) {
		return fmt.Errorf("%w: session %d is on %s", ErrSessionNotDue, id, session.Date)
	}

	if err := s.repo.Complete(ctx, id); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.CounterSessionsCompleted.Inc()
	}
	log.Debugf("schedule: session %d completed", id)
	return nil
}

func (s *Service) CancelSeries(ctx context.Context, seriesID uuid.UUID) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.cancelSeries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := s.repo.CancelSeries(ctx, seriesID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.cancelled(ctx, notify.SessionsCancelled{SeriesID: seriesID.String(), Count: count, CancelledAt: s.nowFunc()})
	}
	return count, nil
}

func (s *Service) cancelled(ctx context.Context, event notify.SessionsCancelled) {
	if s.metrics != nil {
		s.metrics.CounterSessionsCancelled.Add(float64(event.Count))
	}
	if err := s.notifier.SessionsCancelled(ctx, event); err != nil {
		s.notifyFailed(err)
	}
}
