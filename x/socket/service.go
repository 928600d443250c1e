package socket

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/totegamma/tourofheroes/core"
)

// Service relays hero change events to every connected event socket
type Service struct {
	rdb          *redis.Client
	clients      map[*websocket.Conn]bool
	clientsMutex *sync.Mutex
}

// NewService is for wire.go
func NewService(rdb *redis.Client) *Service {
	return &Service{
		rdb,
		make(map[*websocket.Conn]bool),
		&sync.Mutex{},
	}
}

// AddClient adds a connection to the broadcast group
func (s *Service) AddClient(ws *websocket.Conn) {
	s.clientsMutex.Lock()
	s.clients[ws] = true
	s.clientsMutex.Unlock()
}

// RemoveClient removes a connection from the broadcast group
func (s *Service) RemoveClient(ws *websocket.Conn) {
	s.clientsMutex.Lock()
	delete(s.clients, ws)
	s.clientsMutex.Unlock()
	ws.Close()
}

// ClientCount returns the number of connected event sockets
func (s *Service) ClientCount() int {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()
	return len(s.clients)
}

// NotifyAllClients broadcasts message to all clients
func (s *Service) NotifyAllClients(message []byte) {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	for client := range s.clients {
		err := client.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			slog.Error(
				"failed to write websocket message",
				slog.String("error", err.Error()),
			)
			delete(s.clients, client)
			client.Close()
		}
	}
}

// Relay forwards the hero event channel until ctx is done.
// it returns immediately when redis is not configured
func (s *Service) Relay(ctx context.Context) {
	if s.rdb == nil {
		slog.Info("redis is not configured, hero events are not relayed")
		return
	}

	pubsub := s.rdb.Subscribe(ctx, core.HeroEventChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.NotifyAllClients([]byte(msg.Payload))
		}
	}
}
