package core

import (
	"time"
)

// Config is the runtime configuration shared by services
type Config struct {
	FQDN        string
	QuietPeriod time.Duration
	Seed        bool
}

// ClassicHeroes is the roster the in-memory api started with
var ClassicHeroes = []Hero{
	{ID: 11, Name: "Mr. Nice"},
	{ID: 12, Name: "Narco"},
	{ID: 13, Name: "Bombasto"},
	{ID: 14, Name: "Celeritas"},
	{ID: 15, Name: "Magneta"},
	{ID: 16, Name: "RubberMan"},
	{ID: 17, Name: "Dynama"},
	{ID: 18, Name: "Dr IQ"},
	{ID: 19, Name: "Magma"},
	{ID: 20, Name: "Tornado"},
}
