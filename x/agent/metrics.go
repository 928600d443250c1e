package agent

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "heroes",
			Name:      "resources_count",
			Help:      "resources count",
		},
		[]string{"type"},
	)

	socketConnectionMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "heroes",
			Name:      "socket_connections",
			Help:      "socket connections",
		},
		[]string{"kind"},
	)
)

// Collectors returns the gauges the agent keeps up to date
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		resourceCountMetrics,
		socketConnectionMetrics,
	}
}

func (a *agent) refreshMetrics(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "Agent.RefreshMetrics")
	defer span.End()

	socketConnectionMetrics.WithLabelValues("search").Set(float64(len(a.sessions.Sessions())))
	socketConnectionMetrics.WithLabelValues("event").Set(float64(a.events.ClientCount()))

	count, err := a.heroes.Count(ctx)
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(
			ctx, "failed to count heroes",
			slog.String("error", err.Error()),
		)
		return
	}
	resourceCountMetrics.WithLabelValues("hero").Set(float64(count))
}
