package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/totegamma/tourofheroes/core"
	"github.com/totegamma/tourofheroes/x/agent"
	"github.com/totegamma/tourofheroes/x/hero"
	"github.com/totegamma/tourofheroes/x/search"
	"github.com/totegamma/tourofheroes/x/socket"
	"github.com/totegamma/tourofheroes/x/util"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version = "unknown"
)

const banner = `
 _____                       __   _   _
|_   _|__  _   _ _ __    ___ / _| | | | | ___ _ __ ___   ___  ___
  | |/ _ \| | | | '__|  / _ \ |_  | |_| |/ _ \ '__/ _ \ / _ \/ __|
  | | (_) | |_| | |    | (_) |  _| |  _  |  __/ | | (_) |  __/\__ \
  |_|\___/ \__,_|_|     \___/|_|   |_| |_|\___|_|  \___/ \___||___/

`

func main() {

	fmt.Fprint(os.Stderr, banner)

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	version = util.GetFullVersion(version)
	slog.Info(fmt.Sprintf("Tour of Heroes %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true

	config := DefaultConfig()
	configPath := os.Getenv("HEROES_CONFIG")
	if configPath == "" {
		configPath = "/etc/heroes/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shared := config.Core()
	slog.Info(fmt.Sprintf("Config loaded! I am: %s", shared.FQDN))

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, shared.FQDN+"/heroes", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "heroes",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return c.Path()
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	var pingers []func(ctx context.Context) error

	var repository hero.Repository
	if config.Server.Dsn == "" {
		slog.Info("no dsn configured, heroes are kept in memory")
		repository = hero.NewMemoryRepository()
	} else {
		gormLogger := logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             300 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		)

		db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
			Logger: gormLogger,
		})
		if err != nil {
			panic("failed to connect database")
		}
		sqlDB, err := db.DB() // for pinging
		if err != nil {
			panic("failed to connect database")
		}
		defer sqlDB.Close()
		pingers = append(pingers, sqlDB.PingContext)

		err = db.Use(tracing.NewPlugin(
			tracing.WithDBName("postgres"),
		))
		if err != nil {
			panic("failed to setup tracing plugin")
		}

		slog.Info("start migrate")
		err = db.AutoMigrate(&core.Hero{})
		if err != nil {
			panic("failed to migrate schema")
		}

		mc := memcache.New(config.Server.MemcachedAddr)
		defer mc.Close()

		repository = SetupHeroRepository(db, mc)
	}

	var rdb *redis.Client
	if config.Server.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     config.Server.RedisAddr,
			Password: "", // no password set
			DB:       config.Server.RedisDB,
		})
		err = redisotel.InstrumentTracing(
			rdb,
			redisotel.WithAttributes(
				attribute.KeyValue{
					Key:   "db.name",
					Value: attribute.StringValue("redis"),
				},
			),
		)
		if err != nil {
			panic("failed to setup tracing plugin")
		}
		pingers = append(pingers, func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	heroService := SetupHeroService(repository, rdb)
	heroHandler := hero.NewHandler(heroService)

	if shared.Seed {
		err = heroService.Seed(context.Background(), core.ClassicHeroes)
		if err != nil {
			slog.Error("failed to seed heroes", slog.String("error", err.Error()))
		}
	}

	socketService := socket.NewService(rdb)
	socketManager := socket.NewManager()
	socketHandler := SetupSocketHandler(socketService, socketManager, heroService, shared)

	relayCtx, stopRelay := context.WithCancel(context.Background())
	defer stopRelay()
	go socketService.Relay(relayCtx)

	heroAgent := SetupAgent(heroService, socketManager, socketService)

	api := e.Group("/api")

	// heroes
	api.GET("/heroes", heroHandler.List)
	api.GET("/heroes/:id", heroHandler.Get)
	api.POST("/heroes", heroHandler.Create)
	api.PUT("/heroes/:id", heroHandler.Update)
	api.DELETE("/heroes/:id", heroHandler.Delete)

	// socket
	api.GET("/heroes/search/socket", socketHandler.Search)
	api.GET("/socket", socketHandler.Connect)

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		for _, ping := range pingers {
			err = ping(ctx)
			if err != nil {
				return c.String(http.StatusInternalServerError, "backend error")
			}
		}

		return c.String(http.StatusOK, "ok")
	})

	prometheus.MustRegister(search.Collectors()...)
	prometheus.MustRegister(agent.Collectors()...)

	e.GET("/metrics", echoprometheus.NewHandler())

	heroAgent.Boot()
	e.Logger.Fatal(e.Start(config.Server.Listen))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
