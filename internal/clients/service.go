package clients

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainerdesk/internal/cache"
	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=clients_test

const (
	clientCacheSizeMB     = 8
	clientCacheExpireSecs = 10 * 60
)

type clientsRepo interface {
	Add(ctx context.Context, client Client) (*Client, error)
	Get(ctx context.Context, id int) (*Client, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]Client, error)
	Exists(ctx context.Context, id int) (bool, error)
	AddNote(ctx context.Context, note Note) (*Note, error)
	ListNotes(ctx context.Context, clientID int) ([]Note, error)
	AddMeasurement(ctx context.Context, m Measurement) (*Measurement, error)
	ListMeasurements(ctx context.Context, clientID int) ([]Measurement, error)
}

type Service struct {
	repo    clientsRepo
	cache   *cache.JSONCache[Client]
	nowFunc func() time.Time
}

func NewService(repo clientsRepo) *Service {
	return &Service{
		repo:    repo,
		cache:   cache.New[Client]("client", clientCacheSizeMB, clientCacheExpireSecs),
		nowFunc: time.Now,
	}
}

func (s *Service) Add(ctx context.Context, client Client) (_ *Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.clients.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	client.normalize()
	if err := client.Validate(); err != nil {
		return nil, err
	}
	if client.CreatedAt.IsZero() {
		client.CreatedAt = s.nowFunc()
	}

	added, err := s.repo.Add(ctx, client)
	if err != nil {
		return nil, err
	}
	log.Debugf("clients: new client added [%d] %s", added.ID, added.Name)
	return added, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.clients.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := strconv.Itoa(id)
	if client, found := s.cache.Get(cacheKey); found {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return client, nil
	}

	client, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, client); err != nil {
		log.Errorf("clients: cache client %d: %s", id, err)
	}
	return client, nil
}

func (s *Service) Update(ctx context.Context, client *Client) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.clients.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	client.normalize()
	if err := client.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, client); err != nil {
		return err
	}
	s.cache.Del(strconv.Itoa(client.ID))
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.clients.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Del(strconv.Itoa(id))
	return nil
}

// List filters the roster by tag and search text; the result is never nil.
func (s *Service) List(ctx context.Context, params ListParams) (_ []Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.clients.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Tag != "" && !params.Tag.IsValid() {
		return nil, fmt.Errorf("%w: unknown tag [%s]", ErrInvalidClient, params.Tag)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Client, 0, len(all))
	for i := range all {
		if params.Tag != "" && all[i].Tag != params.Tag {
			continue
		}
		if !all[i].Matches(params.Search) {
			continue
		}
		filtered = append(filtered, all[i])
	}
	span.SetAttributes(attribute.Int("clients.count", len(filtered)))
	return filtered, nil
}

func (s *Service) Exists(ctx context.Context, id int) (bool, error) {
	if _, found := s.cache.Get(strconv.Itoa(id)); found {
		return true, nil
	}
	return s.repo.Exists(ctx, id)
}

func (s *Service) AddNote(ctx context.Context, clientID int, content string) (_ *Note, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.clients.addNote")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content empty", ErrInvalidNote)
	}

	return s.repo.AddNote(ctx, Note{
		ClientID:  clientID,
		Content:   content,
		CreatedAt: s.nowFunc(),
	})
}

// ListNotes returns the notes newest first.
func (s *Service) ListNotes(ctx context.Context, clientID int) (_ []Note, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.clients.listNotes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exists, err := s.Exists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	notes, err := s.repo.ListNotes(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

func (s *Service) AddMeasurement(ctx context.Context, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.clients.addMeasurement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.CreatedAt = s.nowFunc()

	added, err := s.repo.AddMeasurement(ctx, m)
	if err != nil {
		return nil, err
	}
	log.Debugf("clients: measurement %d added for client %d", added.ID, added.ClientID)
	return added, nil
}

// ListMeasurements returns the measurements oldest first.
func (s *Service) ListMeasurements(ctx context.Context, clientID int) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.clients.listMeasurements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exists, err := s.Exists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	measurements, err := s.repo.ListMeasurements(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if measurements == nil {
		measurements = []Measurement{}
	}
	span.SetAttributes(attribute.Int("measurements.count", len(measurements)))
	return measurements, nil
}
