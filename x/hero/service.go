package hero

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/totegamma/tourofheroes/core"
)

type service struct {
	repo      Repository
	publisher core.HeroPublisher
}

// NewService creates a new hero service
func NewService(repo Repository, publisher core.HeroPublisher) core.HeroService {
	return &service{repo, publisher}
}

// Count returns the count number of heroes
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.List")
	defer span.End()

	return s.repo.List(ctx)
}

// Search returns heroes whose name contains term. an empty term matches everyone
func (s *service) Search(ctx context.Context, term string) ([]core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.Search")
	defer span.End()

	if term == "" {
		return s.repo.List(ctx)
	}

	return s.repo.Search(ctx, term)
}

// Create registers a new hero. the server assigns the id
func (s *service) Create(ctx context.Context, name string) (core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.Create")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return core.Hero{}, core.NewErrorInvalidArgument("name is required")
	}

	created, err := s.repo.Create(ctx, core.Hero{Name: name})
	if err != nil {
		span.RecordError(err)
		return core.Hero{}, errors.Wrap(err, "failed to create hero")
	}

	s.publish(ctx, core.HeroEventCreated, created)

	return created, nil
}

// Update replaces the whole record. last write wins
func (s *service) Update(ctx context.Context, hero core.Hero) (core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Service.Update")
	defer span.End()

	if hero.ID == 0 {
		return core.Hero{}, core.NewErrorInvalidArgument("id is required")
	}

	updated, err := s.repo.Update(ctx, hero)
	if err != nil {
		span.RecordError(err)
		return core.Hero{}, err
	}

	s.publish(ctx, core.HeroEventUpdated, updated)

	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Hero.Service.Delete")
	defer span.End()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.publish(ctx, core.HeroEventDeleted, core.Hero{ID: id})

	return nil
}

// Seed fills an empty store with the given heroes
func (s *service) Seed(ctx context.Context, heroes []core.Hero) error {
	ctx, span := tracer.Start(ctx, "Hero.Service.Seed")
	defer span.End()

	existing, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to list heroes")
	}
	if len(existing) > 0 {
		return nil
	}

	for _, hero := range heroes {
		_, err := s.repo.Create(ctx, hero)
		if err != nil {
			span.RecordError(err)
			return errors.Wrapf(err, "failed to seed hero %d", hero.ID)
		}
	}

	slog.InfoContext(ctx, "seeded heroes", slog.Int("count", len(heroes)))

	return nil
}

func (s *service) publish(ctx context.Context, typ string, hero core.Hero) {
	err := s.publisher.Publish(ctx, core.HeroEvent{Type: typ, Hero: hero})
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to publish hero event",
			slog.String("error", err.Error()),
			slog.String("type", typ),
		)
	}
}
