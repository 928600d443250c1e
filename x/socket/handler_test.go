package socket

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/tourofheroes/core"
	"github.com/totegamma/tourofheroes/internal/testutil"
	"github.com/totegamma/tourofheroes/x/hero"
)

func setupServer(t *testing.T, service *Service, manager Manager) *httptest.Server {
	t.Helper()

	heroes := hero.NewService(hero.NewMemoryRepository(), hero.NewPublisher(nil))
	err := heroes.Seed(context.Background(), core.ClassicHeroes)
	assert.NoError(t, err)

	h := NewHandler(service, manager, heroes, core.Config{QuietPeriod: 20 * time.Millisecond})

	e := echo.New()
	e.GET("/api/socket", h.Connect)
	e.GET("/api/heroes/search/socket", h.Search)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server, path string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + path
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func TestSearchSocket(t *testing.T) {
	manager := NewManager()
	server := setupServer(t, NewService(nil), manager)

	ws := dial(t, server, "/api/heroes/search/socket")
	ws.SetReadDeadline(time.Now().Add(5 * time.Second))

	for _, term := range []string{"m", "ma", "mag"} {
		assert.NoError(t, ws.WriteJSON(core.SearchRequest{Term: term}))
	}

	// a slow writer may let an earlier term settle first
	var res core.SearchResponse
	for res.Term != "mag" {
		if err := ws.ReadJSON(&res); err != nil {
			t.Fatal(err)
		}
	}
	assert.Equal(t, []core.Hero{{ID: 15, Name: "Magneta"}, {ID: 19, Name: "Magma"}}, res.Data)

	assert.Len(t, manager.Sessions(), 1)

	assert.NoError(t, ws.WriteJSON(core.SearchRequest{Term: ""}))

	var empty core.SearchResponse
	assert.NoError(t, ws.ReadJSON(&empty))
	assert.Equal(t, "", empty.Term)
	assert.NotNil(t, empty.Data)
	assert.Empty(t, empty.Data)

	ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	ws.Close()

	assert.Eventually(t, func() bool {
		return len(manager.Sessions()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestEventSocketBroadcast(t *testing.T) {
	service := NewService(nil)
	server := setupServer(t, service, NewManager())

	first := dial(t, server, "/api/socket")
	second := dial(t, server, "/api/socket")

	assert.Eventually(t, func() bool {
		return service.ClientCount() == 2
	}, time.Second, 10*time.Millisecond)

	service.NotifyAllClients([]byte(`{"type":"created","hero":{"id":21,"name":"Bob"}}`))

	for _, ws := range []*websocket.Conn{first, second} {
		ws.SetReadDeadline(time.Now().Add(time.Second))
		var event core.HeroEvent
		assert.NoError(t, ws.ReadJSON(&event))
		assert.Equal(t, core.HeroEventCreated, event.Type)
		assert.Equal(t, core.Hero{ID: 21, Name: "Bob"}, event.Hero)
	}

	first.Close()
	assert.Eventually(t, func() bool {
		return service.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestEventSocketRelaysRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container backed test in short mode")
	}

	rdb, cleanup := testutil.CreateRDB()
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := NewService(rdb)
	go service.Relay(ctx)

	server := setupServer(t, service, NewManager())
	ws := dial(t, server, "/api/socket")

	assert.Eventually(t, func() bool {
		return service.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	publisher := hero.NewPublisher(rdb)

	// the relay subscribes asynchronously, so publish until something arrives
	received := make(chan core.HeroEvent, 1)
	go func() {
		var event core.HeroEvent
		ws.SetReadDeadline(time.Now().Add(10 * time.Second))
		if err := ws.ReadJSON(&event); err == nil {
			received <- event
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(10 * time.Second)

	for {
		select {
		case event := <-received:
			assert.Equal(t, core.HeroEventDeleted, event.Type)
			assert.Equal(t, uint(20), event.Hero.ID)
			return
		case <-ticker.C:
			err := publisher.Publish(ctx, core.HeroEvent{Type: core.HeroEventDeleted, Hero: core.Hero{ID: 20}})
			assert.NoError(t, err)
		case <-timeout:
			t.Fatal("no event relayed")
		}
	}
}
