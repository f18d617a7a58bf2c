// Package redis wires an optional Redis dependency into readiness probes
// using go-redis.
//
//	client, err := redis.Open(cfg.Readiness.Redis)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, redis.Healthcheck(client, time.Second)))
//
// The URL comes from the config file (readiness.redis.url) or REDIS_URL.
package redis
