package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
	"github.com/2beens/trainerdesk/pkg"
)

const clientColumns = `id, name, email, tag, plan, goal, image_url, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanClient(row pgx.Row) (*Client, error) {
	var c Client
	var tag string
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &tag, &c.Plan, &c.Goal, &c.ImageURL, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Tag = Tag(tag)
	return &c, nil
}

func (r *Repo) Add(ctx context.Context, client Client) (_ *Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO client (name, email, tag, plan, goal, image_url, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;`,
		client.Name, client.Email, string(client.Tag), client.Plan, client.Goal, client.ImageURL, client.CreatedAt,
	).Scan(&client.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	span.SetAttributes(attribute.Int("client.id", client.ID))
	return &client, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", id))

	client, err := scanClient(r.db.QueryRow(
		ctx,
		`SELECT `+clientColumns+` FROM client WHERE id = $1;`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return client, nil
}

func (r *Repo) Update(ctx context.Context, client *Client) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", client.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE client SET name = $1, email = $2, tag = $3, plan = $4, goal = $5, image_url = $6 WHERE id = $7;`,
		client.Name, client.Email, string(client.Tag), client.Plan, client.Goal, client.ImageURL, client.ID,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrEmailTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM client WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

// List returns the whole roster ordered by name; filtering happens in the service.
func (r *Repo) List(ctx context.Context) (_ []Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+clientColumns+` FROM client ORDER BY name, id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, *client)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("clients.count", len(clients)))
	return clients, nil
}

func (r *Repo) Exists(ctx context.Context, id int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM client WHERE id = $1);`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repo) AddNote(ctx context.Context, note Note) (_ *Note, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.addNote")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", note.ClientID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO client_note (client_id, content, created_at) VALUES ($1, $2, $3) RETURNING id;`,
		note.ClientID, note.Content, note.CreatedAt,
	).Scan(&note.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("insert note: %w", err)
	}
	return &note, nil
}

func (r *Repo) ListNotes(ctx context.Context, clientID int) (_ []Note, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.listNotes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", clientID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, client_id, content, created_at FROM client_note
			WHERE client_id = $1
			ORDER BY created_at DESC, id DESC;`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.ClientID, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *Repo) AddMeasurement(ctx context.Context, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.addMeasurement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", m.ClientID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO client_measurement
			(client_id, measured_on, weight_kg, goal_weight_kg, body_fat_percent, waist_cm, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;`,
		m.ClientID, m.MeasuredOn.Time(), m.WeightKg, m.GoalWeightKg, m.BodyFatPercent, m.WaistCm, m.Notes, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("insert measurement: %w", err)
	}
	return &m, nil
}

// ListMeasurements returns the client's measurements oldest first.
func (r *Repo) ListMeasurements(ctx context.Context, clientID int) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.listMeasurements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", clientID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, client_id, measured_on, weight_kg, goal_weight_kg, body_fat_percent, waist_cm, notes, created_at
			FROM client_measurement
			WHERE client_id = $1
			ORDER BY measured_on, id;`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	measurements := []Measurement{}
	for rows.Next() {
		var (
			m          Measurement
			measuredOn time.Time
		)
		if err := rows.Scan(
			&m.ID, &m.ClientID, &measuredOn, &m.WeightKg, &m.GoalWeightKg,
			&m.BodyFatPercent, &m.WaistCm, &m.Notes, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		m.MeasuredOn = recurrence.DateOf(measuredOn)
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return measurements, nil
}
