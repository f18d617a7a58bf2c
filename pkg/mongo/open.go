package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Open validates cfg and returns a client. The driver connects in the
// background; Open does not wait for a server.
func Open(cfg Config) (*mongo.Client, error) {
	if !cfg.Enabled() {
		return nil, ErrEmptyConnectionURL
	}
	opts := options.Client().ApplyURI(cfg.URL)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.PingTimeout > 0 {
		opts.SetServerSelectionTimeout(cfg.PingTimeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}
	return client, nil
}

// Close disconnects the client, waiting at most until ctx is done.
func Close(ctx context.Context, client *mongo.Client) error {
	return client.Disconnect(ctx)
}
