package opensearch

import (
	"errors"

	"github.com/opensearch-project/opensearch-go/v2"
)

// Open creates a client for cfg.Addresses. It does not contact the cluster.
func Open(cfg Config) (*opensearch.Client, error) {
	if !cfg.Enabled() {
		return nil, ErrNoAddresses
	}
	client, err := opensearch.NewClient(opensearch.Config{
		Addresses:    cfg.Addresses,
		Username:     cfg.Username,
		Password:     cfg.Password,
		MaxRetries:   cfg.MaxRetries,
		DisableRetry: cfg.MaxRetries == 0,
	})
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}
	return client, nil
}
