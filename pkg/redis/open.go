package redis

import (
	"errors"

	"github.com/redis/go-redis/v9"
)

// Open parses cfg.URL and returns a client. The client dials on first use.
func Open(cfg Config) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, ErrEmptyConnectionURL
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	opts.MaxRetries = -1
	return redis.NewClient(opts), nil
}
