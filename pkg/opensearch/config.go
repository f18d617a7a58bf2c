package opensearch

import "time"

// Config describes an optional OpenSearch dependency. No addresses disables it.
type Config struct {
	Addresses   []string      `yaml:"addresses" env:"OPENSEARCH_ADDRESSES" envSeparator:","`
	Username    string        `yaml:"username" env:"OPENSEARCH_USERNAME"`
	Password    string        `yaml:"-" env:"OPENSEARCH_PASSWORD"`
	MaxRetries  int           `yaml:"-" env:"OPENSEARCH_MAX_RETRIES" envDefault:"0"`
	PingTimeout time.Duration `yaml:"-" env:"OPENSEARCH_PING_TIMEOUT" envDefault:"2s"`
}

// Enabled reports whether at least one address is configured.
func (c Config) Enabled() bool { return len(c.Addresses) > 0 }
