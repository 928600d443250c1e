// Package agent runs some scheduled tasks
package agent

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/totegamma/tourofheroes/core"
	"github.com/totegamma/tourofheroes/x/socket"
)

var tracer = otel.Tracer("agent")

const refreshInterval = 15 * time.Second

type agent struct {
	heroes   core.HeroService
	sessions socket.Manager
	events   *socket.Service
}

// NewAgent creates a new agent
func NewAgent(
	heroes core.HeroService,
	sessions socket.Manager,
	events *socket.Service,
) core.AgentService {
	return &agent{
		heroes,
		sessions,
		events,
	}
}

// Boot starts agent
func (a *agent) Boot() {
	slog.Info("agent start!")

	ticker := time.NewTicker(refreshInterval)
	go func() {
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				ctx, span := tracer.Start(ctx, "Agent.Boot.RefreshMetrics")
				a.refreshMetrics(ctx)
				span.End()
				cancel()
			}
		}
	}()
}
