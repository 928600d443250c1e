package hero

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/totegamma/tourofheroes/core"
)

type publisher struct {
	rdb *redis.Client
}

// NewPublisher creates a publisher backed by redis pub/sub.
// a nil client gives a publisher that drops every event
func NewPublisher(rdb *redis.Client) core.HeroPublisher {
	return &publisher{rdb}
}

func (p *publisher) Publish(ctx context.Context, event core.HeroEvent) error {
	ctx, span := tracer.Start(ctx, "Hero.Publisher.Publish")
	defer span.End()

	if p.rdb == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return p.rdb.Publish(ctx, core.HeroEventChannel, string(payload)).Err()
}
