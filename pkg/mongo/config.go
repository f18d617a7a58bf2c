package mongo

import "time"

// Config describes an optional MongoDB dependency. An empty URL disables it.
type Config struct {
	URL            string        `yaml:"url" env:"MONGODB_URL"`                            // URL is the connection string of the deployment.
	ConnectTimeout time.Duration `yaml:"-" env:"MONGODB_CONNECT_TIMEOUT" envDefault:"2s"` // ConnectTimeout bounds establishing a connection.
	MaxPoolSize    uint64        `yaml:"-" env:"MONGODB_MAX_POOL_SIZE" envDefault:"4"`    // MaxPoolSize is the maximum number of connections in the connection pool.
	PingTimeout    time.Duration `yaml:"-" env:"MONGODB_PING_TIMEOUT" envDefault:"2s"`    // PingTimeout bounds a single readiness ping, including server selection.
}

// Enabled reports whether a connection string is configured.
func (c Config) Enabled() bool { return c.URL != "" }
