// Package requestid gives every inbound HTTP request an identity and a
// logger bound to it.
//
// A request ID is a short opaque string that uniquely identifies an incoming
// HTTP request. Every record logged through the request's logger carries it
// under the "reqId" key, so log lines of concurrently served requests can be
// told apart without handler code ever passing the ID around.
//
// # Overview
//
//   - Middleware generates the ID (idgen.Default unless WithGenerator is
//     given), binds a logger to it with logger.Bind, stores both on the
//     request context and echoes the ID in the X-Request-ID response header.
//
//   - FromContext, LoggerFromContext and Logger read the stored values back.
//
//   - LoggerExtractor plugs into logger.WithContextExtractors so loggers that
//     are not request-bound still tag records logged with a request context.
//
// # Usage
//
//	mux := http.NewServeMux()
//	mux.Handle("/hello", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		log := requestid.Logger(r.Context(), slog.Default())
//		log.Info("saying hello", "name", r.URL.Query().Get("name"))
//		// {"msg":"saying hello","name":"ann","reqId":"k2Jd9..."}
//	}))
//
//	http.ListenAndServe(":8080", requestid.Middleware(slog.Default())(mux))
//
// # Error Handling
//
// The package does not return errors. When WithTrustedHeader is set, invalid
// IDs supplied by a client are silently replaced by a generated one.
package requestid
