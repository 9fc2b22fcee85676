package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainerdesk/internal/cache"
	"github.com/2beens/trainerdesk/internal/schedule/recurrence"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

const (
	libraryCacheKey        = "all"
	libraryCacheSizeMB     = 1
	libraryCacheExpireSecs = 5 * 60
)

var ErrInvalidCategory = errors.New("invalid exercise category")

type workoutsRepo interface {
	ListExercises(ctx context.Context) (Library, error)
	AddTemplate(ctx context.Context, template Template) (*Template, error)
	GetTemplate(ctx context.Context, id int) (*Template, error)
	ListTemplates(ctx context.Context) ([]Template, error)
	UpdateTemplate(ctx context.Context, template *Template) error
	DeleteTemplate(ctx context.Context, id int) error
	Assign(ctx context.Context, assignment Assignment) (*Assignment, error)
	ListAssignments(ctx context.Context, clientID int) ([]Assignment, error)
}

type clientsLookup interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo         workoutsRepo
	clients      clientsLookup
	libraryCache *cache.JSONCache[Library]
	nowFunc      func() time.Time
}

func NewService(repo workoutsRepo, clients clientsLookup) *Service {
	return &Service{
		repo:         repo,
		clients:      clients,
		libraryCache: cache.New[Library]("exercises", libraryCacheSizeMB, libraryCacheExpireSecs),
		nowFunc:      time.Now,
	}
}

func (s *Service) library(ctx context.Context) (Library, error) {
	if library, found := s.libraryCache.Get(libraryCacheKey); found {
		return *library, nil
	}

	library, err := s.repo.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercise library: %w", err)
	}
	if err := s.libraryCache.Set(libraryCacheKey, &library); err != nil {
		log.Errorf("workouts: cache exercise library: %s", err)
	}
	return library, nil
}

func (s *Service) Exercises(ctx context.Context, category, search string) (_ Library, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category", category))

	if !IsValidCategory(category) {
		return nil, fmt.Errorf("%w: [%s]", ErrInvalidCategory, category)
	}

	library, err := s.library(ctx)
	if err != nil {
		return nil, err
	}
	return library.Filter(category, search), nil
}

func (s *Service) AddTemplate(ctx context.Context, template Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.addTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	template.normalize()
	library, err := s.library(ctx)
	if err != nil {
		return nil, err
	}
	if err := template.Validate(library); err != nil {
		return nil, err
	}
	template.CreatedAt = s.nowFunc()

	added, err := s.repo.AddTemplate(ctx, template)
	if err != nil {
		return nil, err
	}
	log.Debugf("workouts: new template [%d] %s", added.ID, added.Name)
	return added, nil
}

func (s *Service) GetTemplate(ctx context.Context, id int) (*Template, error) {
	return s.repo.GetTemplate(ctx, id)
}

func (s *Service) ListTemplates(ctx context.Context) ([]Template, error) {
	return s.repo.ListTemplates(ctx)
}

func (s *Service) UpdateTemplate(ctx context.Context, template *Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.updateTemplate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("template.id", template.ID))

	template.normalize()
	library, err := s.library(ctx)
	if err != nil {
		return err
	}
	if err := template.Validate(library); err != nil {
		return err
	}
	template.UpdatedAt = s.nowFunc()
	return s.repo.UpdateTemplate(ctx, template)
}

func (s *Service) DeleteTemplate(ctx context.Context, id int) error {
	return s.repo.DeleteTemplate(ctx, id)
}

// MoveExercise applies one drag-and-drop reorder inside a template section and stores the result.
func (s *Service) MoveExercise(ctx context.Context, templateID, section, from, to int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.moveExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("template.id", templateID),
		attribute.Int("section", section),
		attribute.Int("from", from),
		attribute.Int("to", to),
	)

	template, err := s.repo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if err := template.MoveExercise(section, from, to); err != nil {
		return nil, err
	}
	if from == to {
		return template, nil
	}

	template.UpdatedAt = s.nowFunc()
	if err := s.repo.UpdateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (s *Service) Assign(ctx context.Context, templateID, clientID int, dueDate *recurrence.Date) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.assign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if dueDate != nil && !dueDate.Valid() {
		return nil, fmt.Errorf("%w: due date %s", ErrInvalidAssignment, dueDate)
	}

	exists, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("check client %d: %w", clientID, err)
	}
	if !exists {
		return nil, ErrClientNotFound
	}
	if _, err := s.repo.GetTemplate(ctx, templateID); err != nil {
		return nil, err
	}

	return s.repo.Assign(ctx, Assignment{
		TemplateID: templateID,
		ClientID:   clientID,
		DueDate:    dueDate,
		AssignedAt: s.nowFunc(),
	})
}

func (s *Service) Assignments(ctx context.Context, clientID int) ([]Assignment, error) {
	return s.repo.ListAssignments(ctx, clientID)
}
