package opensearch

import "errors"

var (
	// ErrNoAddresses is returned by Open when the dependency is not configured.
	ErrNoAddresses = errors.New("no opensearch addresses configured")

	// ErrConnectionFailed indicates the OpenSearch client could not be created
	// due to invalid configuration. Use errors.Is() to check.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrHealthcheckFailed indicates the cluster is unreachable or unhealthy.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
)
