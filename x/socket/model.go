package socket

import (
	"time"
)

// Session is one live search connection
type Session struct {
	ID        string    `json:"id"`
	Remote    string    `json:"remote"`
	StartedAt time.Time `json:"startedAt"`
}
