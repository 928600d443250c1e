package main

import (
	"os"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"github.com/totegamma/tourofheroes/core"
)

type Config struct {
	Server Server `yaml:"server"`
	Heroes Heroes `yaml:"heroes"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Heroes struct {
	FQDN          string `yaml:"fqdn"`
	QuietPeriodMs int    `yaml:"quietPeriodMs"`
	Seed          *bool  `yaml:"seed"`
}

// DefaultConfig is what the server runs with when no file is present:
// in-memory store, no redis, seeded with the classic roster
func DefaultConfig() Config {
	seed := true
	return Config{
		Server: Server{
			Listen:        ":8000",
			MemcachedAddr: "localhost:11211",
		},
		Heroes: Heroes{
			FQDN:          "localhost",
			QuietPeriodMs: int(core.DefaultQuietPeriod / time.Millisecond),
			Seed:          &seed,
		},
	}
}

// Load loads config from given path. a missing file keeps the defaults
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "failed to open configuration file")
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(c)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration file")
	}

	return nil
}

// Core returns the part of the configuration shared with the services
func (c Config) Core() core.Config {
	quiet := time.Duration(c.Heroes.QuietPeriodMs) * time.Millisecond
	if quiet <= 0 {
		quiet = core.DefaultQuietPeriod
	}

	return core.Config{
		FQDN:        c.Heroes.FQDN,
		QuietPeriod: quiet,
		Seed:        c.Heroes.Seed == nil || *c.Heroes.Seed,
	}
}
