// Package mongo wires an optional MongoDB dependency into readiness probes
// using the official v2 driver.
//
//	client, err := mongo.Open(cfg.Readiness.Mongo)
//	if err != nil {
//		return err
//	}
//	defer mongo.Close(context.Background(), client)
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, mongo.Healthcheck(client, time.Second)))
//
// The URL comes from the config file (readiness.mongo.url) or MONGODB_URL.
package mongo
