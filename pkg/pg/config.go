package pg

import "time"

// Config describes an optional PostgreSQL dependency. An empty URL disables it.
type Config struct {
	URL             string        `yaml:"url" env:"PG_CONN_URL"`                         // URL is the connection string to the database.
	MaxConns        int32         `yaml:"-" env:"PG_MAX_OPEN_CONNS" envDefault:"4"`      // MaxConns is the maximum number of open connections to the database.
	MaxConnIdleTime time.Duration `yaml:"-" env:"PG_MAX_CONN_IDLE_TIME" envDefault:"5m"` // MaxConnIdleTime is the maximum amount of time a connection may be idle to be reused.
	PingTimeout     time.Duration `yaml:"-" env:"PG_PING_TIMEOUT" envDefault:"2s"`       // PingTimeout bounds a single readiness ping.
}

// Enabled reports whether a connection string is configured.
func (c Config) Enabled() bool { return c.URL != "" }
