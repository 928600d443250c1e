// Package socket serves the websocket endpoints: live hero search and hero change events
package socket

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/tourofheroes/core"
	"github.com/totegamma/tourofheroes/x/search"
)

var tracer = otel.Tracer("socket")

// Handler is the interface for handling websocket requests
type Handler interface {
	Connect(c echo.Context) error
	Search(c echo.Context) error
}

type handler struct {
	service *Service
	manager Manager
	heroes  core.HeroService
	config  core.Config
}

// NewHandler is used for wire.go
func NewHandler(service *Service, manager Manager, heroes core.HeroService, config core.Config) Handler {
	return &handler{service, manager, heroes, config}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect starts an event socket. the client only listens
func (h handler) Connect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("failed to upgrade websocket", slog.String("error", err.Error()))
		return nil
	}

	h.service.AddClient(ws)
	defer h.service.RemoveClient(ws)

	for {
		// reads only detect the close
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	return nil
}

// Search starts a live search session. every frame is a term,
// every result batch is written back as it settles
func (h handler) Search(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("failed to upgrade websocket", slog.String("error", err.Error()))
		return nil
	}
	defer ws.Close()

	session := h.manager.Open(c.RealIP())
	defer h.manager.Close(session.ID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.Default().With(slog.String("session", session.ID))

	coordinator := search.NewCoordinator(
		h.heroes,
		search.WithQuietPeriod(h.config.QuietPeriod),
		search.WithLogger(logger),
	)
	batches := coordinator.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for batch := range batches {
			_, span := tracer.Start(ctx, "Socket.Handler.Search.Write")
			err := ws.WriteJSON(core.SearchResponse{Term: batch.Term, Data: batch.Heroes})
			span.End()
			if err != nil {
				logger.Error("failed to write search result", slog.String("error", err.Error()))
				cancel()
			}
		}
	}()

	for {
		var req core.SearchRequest
		err := ws.ReadJSON(&req)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Error("failed to read search term", slog.String("error", err.Error()))
			}
			break
		}
		coordinator.Submit(req.Term)
	}

	cancel()
	<-done

	return nil
}
