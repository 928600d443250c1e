package socket

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/rs/xid"
)

// Manager keeps track of the open search sessions
type Manager interface {
	Open(remote string) Session
	Close(id string)
	Sessions() []Session
}

type manager struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewManager creates a new session manager
func NewManager() Manager {
	return &manager{
		sessions: make(map[string]Session),
	}
}

// Open registers a session under a fresh xid
func (m *manager) Open(remote string) Session {
	session := Session{
		ID:        xid.New().String(),
		Remote:    remote,
		StartedAt: time.Now(),
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	slog.Info(
		"search session opened",
		slog.String("session", session.ID),
		slog.String("remote", remote),
	)

	return session
}

// Close forgets a session. unknown ids are ignored
func (m *manager) Close(id string) {
	m.mu.Lock()
	session, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return
	}

	slog.Info(
		"search session closed",
		slog.String("session", id),
		slog.Duration("duration", time.Since(session.StartedAt)),
	)
}

// Sessions returns the open sessions, oldest first
func (m *manager) Sessions() []Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessions := make([]Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ID < sessions[j].ID
	})
	return sessions
}
