// Package pg wires an optional PostgreSQL dependency into readiness probes
// using the pgx/v5 pool.
//
// Open builds a lazily connecting *pgxpool.Pool from Config and Healthcheck
// turns it into a check for httpserver.HealthCheckHandler:
//
//	pool, err := pg.Open(ctx, cfg.Readiness.Postgres)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, pg.Healthcheck(pool, time.Second)))
//
// The connection string comes from the config file (readiness.postgres.url)
// or PG_CONN_URL.
package pg
