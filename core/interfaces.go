//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
)

type AgentService interface {
	Boot()
}

type HeroService interface {
	Get(ctx context.Context, id uint) (Hero, error)
	List(ctx context.Context) ([]Hero, error)
	Search(ctx context.Context, term string) ([]Hero, error)
	Create(ctx context.Context, name string) (Hero, error)
	Update(ctx context.Context, hero Hero) (Hero, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, heroes []Hero) error
}

// HeroPublisher fans hero change events out to listeners
type HeroPublisher interface {
	Publish(ctx context.Context, event HeroEvent) error
}
