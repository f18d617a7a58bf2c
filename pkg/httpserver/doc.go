// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
// Run binds the listener before serving, so bind failures surface
// synchronously. They are joined with ErrStart and, when the cause is known,
// with ErrAddrInUse or ErrPermission:
//
//	srv := httpserver.New(httpserver.WithAddr(":3000"), httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); errors.Is(err, httpserver.ErrAddrInUse) {
//		log.Error("3000 is already in use")
//	}
//
// Run returns when ctx is cancelled, on SIGINT or SIGTERM, or when Shutdown is
// called. In-flight requests are drained for at most the shutdown timeout.
// Start hooks receive the bound address, stop hooks run after draining.
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" or
// "NOT_READY") probes.
package httpserver
