//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/totegamma/tourofheroes/core"
	"github.com/totegamma/tourofheroes/x/agent"
	"github.com/totegamma/tourofheroes/x/hero"
	"github.com/totegamma/tourofheroes/x/socket"
)

var heroServiceProvider = wire.NewSet(hero.NewService, hero.NewPublisher)

func SetupHeroRepository(db *gorm.DB, mc *memcache.Client) hero.Repository {
	wire.Build(hero.NewRepository)
	return nil
}

func SetupHeroService(repository hero.Repository, rdb *redis.Client) core.HeroService {
	wire.Build(heroServiceProvider)
	return nil
}

func SetupSocketHandler(service *socket.Service, manager socket.Manager, heroes core.HeroService, config core.Config) socket.Handler {
	wire.Build(socket.NewHandler)
	return nil
}

func SetupAgent(heroes core.HeroService, manager socket.Manager, service *socket.Service) core.AgentService {
	wire.Build(agent.NewAgent)
	return nil
}
