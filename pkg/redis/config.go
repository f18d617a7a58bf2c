package redis

import "time"

// Config describes an optional Redis dependency. An empty URL disables it.
type Config struct {
	URL         string        `yaml:"url" env:"REDIS_URL"`                       // URL has the form "redis://:password@localhost:6379/0".
	DialTimeout time.Duration `yaml:"-" env:"REDIS_DIAL_TIMEOUT" envDefault:"2s"` // DialTimeout bounds establishing a connection.
	PingTimeout time.Duration `yaml:"-" env:"REDIS_PING_TIMEOUT" envDefault:"2s"` // PingTimeout bounds a single readiness ping.
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool { return c.URL != "" }
