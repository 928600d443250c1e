//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package hero

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/totegamma/tourofheroes/core"
)

// Repository is the interface for hero repository
type Repository interface {
	Get(ctx context.Context, id uint) (core.Hero, error)
	List(ctx context.Context) ([]core.Hero, error)
	Search(ctx context.Context, term string) ([]core.Hero, error)
	Create(ctx context.Context, hero core.Hero) (core.Hero, error)
	Update(ctx context.Context, hero core.Hero) (core.Hero, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new hero repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {

	var count int64
	err := db.Model(&core.Hero{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count heroes",
			slog.String("error", err.Error()),
		)
	}

	mc.Set(&memcache.Item{Key: core.HeroCountKey, Value: []byte(strconv.FormatInt(count, 10))})

	return &repository{db, mc}
}

// Count returns the total number of heroes
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(core.HeroCountKey)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	count, err := strconv.ParseInt(string(item.Value), 10, 64)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}

func (r *repository) refreshCount(ctx context.Context) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Hero{}).Count(&count).Error
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count heroes",
			slog.String("error", err.Error()),
		)
		return
	}

	r.mc.Set(&memcache.Item{Key: core.HeroCountKey, Value: []byte(strconv.FormatInt(count, 10))})
}

// Get returns a hero by id
func (r *repository) Get(ctx context.Context, id uint) (core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Get")
	defer span.End()

	var hero core.Hero
	if err := r.db.WithContext(ctx).Where("id = $1", id).First(&hero).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Hero{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Hero{}, err
	}

	return hero, nil
}

// List returns every hero ordered by id
func (r *repository) List(ctx context.Context) ([]core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.List")
	defer span.End()

	var heroes []core.Hero
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&heroes).Error; err != nil {
		span.RecordError(err)
		return []core.Hero{}, err
	}
	if heroes == nil {
		return []core.Hero{}, nil
	}

	return heroes, nil
}

// Search returns heroes whose name contains term, ignoring case
func (r *repository) Search(ctx context.Context, term string) ([]core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Search")
	defer span.End()

	pattern := "%" + escapeLike(term) + "%"

	var heroes []core.Hero
	if err := r.db.WithContext(ctx).Where("name ILIKE $1", pattern).Order("id ASC").Find(&heroes).Error; err != nil {
		span.RecordError(err)
		return []core.Hero{}, err
	}
	if heroes == nil {
		return []core.Hero{}, nil
	}

	return heroes, nil
}

// Create inserts a hero. a zero id lets the database assign one
func (r *repository) Create(ctx context.Context, hero core.Hero) (core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&hero).Error
	if err != nil {
		span.RecordError(err)
		return hero, err
	}

	// explicit ids (seeding) leave the serial behind
	err = r.db.WithContext(ctx).Exec(
		"SELECT setval(pg_get_serial_sequence('heroes', 'id'), GREATEST((SELECT MAX(id) FROM heroes), 1))",
	).Error
	if err != nil {
		span.RecordError(err)
		return hero, err
	}

	r.refreshCount(ctx)

	return hero, nil
}

// Update replaces the whole hero record
func (r *repository) Update(ctx context.Context, hero core.Hero) (core.Hero, error) {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Hero{}).Where("id = $1", hero.ID).Update("name", hero.Name)
	if result.Error != nil {
		span.RecordError(result.Error)
		return hero, result.Error
	}
	if result.RowsAffected == 0 {
		return hero, core.NewErrorNotFound()
	}

	return hero, nil
}

// Delete removes a hero by id
func (r *repository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Hero.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Where("id = $1", id).Delete(&core.Hero{})
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	r.refreshCount(ctx)

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
