package config

import (
	"net"
	"strconv"

	"github.com/dmitrymomot/servekit/pkg/httpserver"
	"github.com/dmitrymomot/servekit/pkg/logger"
	"github.com/dmitrymomot/servekit/pkg/mongo"
	"github.com/dmitrymomot/servekit/pkg/opensearch"
	"github.com/dmitrymomot/servekit/pkg/pg"
	"github.com/dmitrymomot/servekit/pkg/redis"
)

// Config is the application configuration.
//
// Host, Port and AppName may be overridden by APP_HOST, APP_PORT and APP_NAME.
// HTTP timeouts come from the environment only (HTTP_READ_TIMEOUT, ...).
type Config struct {
	Host        string            `yaml:"host"`
	Port        int               `yaml:"port"`
	AppName     string            `yaml:"app_name"`
	Environment string            `yaml:"environment"`
	RequestID   string            `yaml:"request_id"` // "default" or "uuid"
	Loggers     []logger.Target   `yaml:"loggers"`
	HTTP        httpserver.Config `yaml:"-"`
	Readiness   Readiness         `yaml:"readiness"`
}

// Readiness lists the optional dependencies probed by /readyz.
// PG_CONN_URL, REDIS_URL, MONGODB_URL and OPENSEARCH_ADDRESSES override the
// file values.
type Readiness struct {
	Postgres   pg.Config         `yaml:"postgres"`
	Redis      redis.Config      `yaml:"redis"`
	Mongo      mongo.Config      `yaml:"mongo"`
	OpenSearch opensearch.Config `yaml:"opensearch"`
}

// Addr returns the listen address built from Host and Port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// overrides holds the environment variables that may replace file values.
// Nil means the variable is not set.
type overrides struct {
	Host    *string `env:"APP_HOST"`
	AppName *string `env:"APP_NAME"`
	Port    *int    `env:"APP_PORT"`
}

func (o overrides) apply(cfg *Config) {
	if o.Host != nil {
		cfg.Host = *o.Host
	}
	if o.AppName != nil {
		cfg.AppName = *o.AppName
	}
	if o.Port != nil {
		cfg.Port = *o.Port
	}
}
