package workouts

import (
	"context"
	"encoding/json"
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

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListExercises(ctx context.Context) (_ Library, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, category, body_part, difficulty FROM exercise ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	library := Library{}
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.BodyPart, &e.Difficulty); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		library = append(library, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("exercises", len(library)))
	return library, nil
}

func scanTemplate(row pgx.Row) (*Template, error) {
	var (
		t             Template
		sectionsBytes []byte
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &sectionsBytes, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sectionsBytes, &t.Sections); err != nil {
		return nil, fmt.Errorf("unmarshal sections of template %d: %w", t.ID, err)
	}
	t.normalize()
	return &t, nil
}

func (r *Repo) AddTemplate(ctx context.Context, template Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sectionsJson, err := json.Marshal(template.Sections)
	if err != nil {
		return nil, fmt.Errorf("marshal sections: %w", err)
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_template (name, description, sections, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			RETURNING id;`,
		template.Name, template.Description, sectionsJson, template.CreatedAt,
	).Scan(&template.ID); err != nil {
		return nil, err
	}
	template.UpdatedAt = template.CreatedAt
	return &template, nil
}

func (r *Repo) GetTemplate(ctx context.Context, id int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	t, err := scanTemplate(r.db.QueryRow(
		ctx,
		`SELECT id, name, description, sections, created_at, updated_at
			FROM workout_template WHERE id = $1;`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Repo) ListTemplates(ctx context.Context) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listTemplates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, sections, created_at, updated_at
			FROM workout_template ORDER BY name, id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *Repo) UpdateTemplate(ctx context.Context, template *Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", template.ID))

	sectionsJson, err := json.Marshal(template.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_template
			SET name = $1, description = $2, sections = $3, updated_at = $4
			WHERE id = $5;`,
		template.Name, template.Description, sectionsJson, template.UpdatedAt, template.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (r *Repo) DeleteTemplate(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_template WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (r *Repo) Assign(ctx context.Context, assignment Assignment) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.assign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("template.id", assignment.TemplateID),
		attribute.Int("client.id", assignment.ClientID),
	)

	var dueDate *time.Time
	if assignment.DueDate != nil {
		t := assignment.DueDate.Time()
		dueDate = &t
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_assignment (template_id, client_id, due_date, assigned_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		assignment.TemplateID, assignment.ClientID, dueDate, assignment.AssignedAt,
	).Scan(&assignment.ID); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: template %d or client %d", ErrInvalidAssignment, assignment.TemplateID, assignment.ClientID)
		}
		return nil, err
	}
	return &assignment, nil
}

// ListAssignments returns a client's assignments, soonest due first and undated last.
func (r *Repo) ListAssignments(ctx context.Context, clientID int) (_ []Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listAssignments")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("client.id", clientID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, template_id, client_id, due_date, assigned_at
			FROM workout_assignment
			WHERE client_id = $1
			ORDER BY due_date NULLS LAST, id;`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []Assignment{}
	for rows.Next() {
		var (
			a       Assignment
			dueDate *time.Time
		)
		if err := rows.Scan(&a.ID, &a.TemplateID, &a.ClientID, &dueDate, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		if dueDate != nil {
			d := recurrence.DateOf(*dueDate)
			a.DueDate = &d
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assignments, nil
}
