package core

import "time"

const (
	HeroEventChannel = "heroes"
	HeroCountKey     = "hero_count"
)

const (
	HeroEventCreated = "created"
	HeroEventUpdated = "updated"
	HeroEventDeleted = "deleted"
)

const (
	DefaultQuietPeriod = 300 * time.Millisecond
)
