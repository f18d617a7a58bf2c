// Package opensearch wires an optional OpenSearch cluster into readiness
// probes using opensearch-go.
//
//	client, err := opensearch.Open(cfg.Readiness.OpenSearch)
//	if err != nil {
//		return err
//	}
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, opensearch.Healthcheck(client, time.Second)))
//
// Addresses come from the config file (readiness.opensearch.addresses) or
// OPENSEARCH_ADDRESSES as a comma separated list.
package opensearch
