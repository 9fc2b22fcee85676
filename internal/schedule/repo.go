package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
	"github.com/2beens/trainerdesk/pkg"
)

const sessionColumns = `id, series_id, client_id, session_type, session_date, start_time,
	duration_minutes, sequence_index, notes, status, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanSession(row pgx.Row) (*Session, error) {
	var (
		s           Session
		sessionType string
		status      string
		date        time.Time
		startTime   string
	)
	if err := row.Scan(
		&s.ID, &s.SeriesID, &s.ClientID, &sessionType, &date, &startTime,
		&s.DurationMinutes, &s.SequenceIndex, &s.Notes, &status, &s.CreatedAt,
	); err != nil {
		return nil, err
	}

	tod, err := recurrence.ParseTimeOfDay(startTime)
	if err != nil {
		return nil, fmt.Errorf("stored start time [%s]: %w", startTime, err)
	}
	s.Type = SessionType(sessionType)
	s.Status = Status(status)
	s.Date = recurrence.DateOf(date)
	s.StartTime = tod
	return &s, nil
}

func collectSessions(rows pgx.Rows) ([]Session, error) {
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// AddSeries stores all sessions of a series in one transaction: either every row lands or none.
func (r *Repo) AddSeries(ctx context.Context, sessions []Session) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.addSeries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("series.size", len(sessions)))

	if len(sessions) == 0 {
		return nil, ErrNothingToSchedule
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for i := range sessions {
		s := sessions[i]
		batch.Queue(`
			INSERT INTO training_session
				(series_id, client_id, session_type, session_date, start_time,
				 duration_minutes, sequence_index, notes, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
			s.SeriesID, s.ClientID, string(s.Type), s.Date.Time(), s.StartTime.String(),
			s.DurationMinutes, s.SequenceIndex, s.Notes, string(s.Status), s.CreatedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	stored := make([]Session, len(sessions))
	for i := range sessions {
		stored[i] = sessions[i]
		if scanErr := results.QueryRow().Scan(&stored[i].ID); scanErr != nil {
			_ = results.Close()
			if pkg.IsForeignKeyViolationError(scanErr) {
				return nil, ErrClientNotFound
			}
			return nil, fmt.Errorf("insert session %d of series: %w", i, scanErr)
		}
	}
	if err = results.Close(); err != nil {
		return nil, fmt.Errorf("close batch: %w", err)
	}

	return stored, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	s, err := scanSession(r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM training_session WHERE id = $1;`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListForDay returns the day's sessions ordered by start time.
func (r *Repo) ListForDay(ctx context.Context, date recurrence.Date) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.listForDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM training_session
			WHERE session_date = $1
			ORDER BY start_time, id;`,
		date.Time(),
	)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

func (r *Repo) ListForClient(ctx context.Context, clientID int, dateRange DateRange) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.listForClient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", clientID))

	var from, to *time.Time
	if dateRange.From != nil {
		t := dateRange.From.Time()
		from = &t
		span.SetAttributes(attribute.String("from", dateRange.From.String()))
	}
	if dateRange.To != nil {
		t := dateRange.To.Time()
		to = &t
		span.SetAttributes(attribute.String("to", dateRange.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM training_session
			WHERE client_id = $1
				AND ($2::date IS NULL OR session_date >= $2::date)
				AND ($3::date IS NULL OR session_date <= $3::date)
			ORDER BY session_date, start_time, id;`,
		clientID, from, to,
	)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

// ListBetween returns the sessions of all clients within the range, ordered by date and start time.
func (r *Repo) ListBetween(ctx context.Context, dateRange DateRange) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.listBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if dateRange.From == nil || dateRange.To == nil {
		return nil, fmt.Errorf("%w: both bounds are required", ErrInvalidSessionRange)
	}
	if err := dateRange.validate(); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("from", dateRange.From.String()),
		attribute.String("to", dateRange.To.String()),
	)

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM training_session
			WHERE session_date >= $1 AND session_date <= $2
			ORDER BY session_date, start_time, id;`,
		dateRange.From.Time(), dateRange.To.Time(),
	)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

func (r *Repo) Cancel(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.cancel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	tag, err := r.db.Exec(ctx, `UPDATE training_session SET status = $1 WHERE id = $2;`, string(StatusCancelled), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Complete marks a still scheduled session as completed.
func (r *Repo) Complete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_session SET status = $1 WHERE id = $2 AND status = $3;`,
		string(StatusCompleted), id, string(StatusScheduled),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return ErrSessionNotScheduled
}

// CancelSeries cancels the still scheduled sessions of a series and returns how many changed.
func (r *Repo) CancelSeries(ctx context.Context, seriesID uuid.UUID) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.cancelSeries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("series.id", seriesID.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_session SET status = $1 WHERE series_id = $2 AND status = $3;`,
		string(StatusCancelled), seriesID, string(StatusScheduled),
	)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() > 0 {
		return int(tag.RowsAffected()), nil
	}

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM training_session WHERE series_id = $1);`,
		seriesID,
	).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrSessionNotFound
	}
	return 0, nil
}
