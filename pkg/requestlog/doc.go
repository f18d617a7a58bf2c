// Package requestlog provides the audit middleware that records the start
// and the end of every HTTP request through the request-bound logger from
// package requestid.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware(log))
//	r.Use(requestlog.Middleware(log))
//
// Produces, for GET /users?page=2:
//
//	{"level":"INFO","msg":"start handling request 7dk2...: GET /users","user-agent":"curl/8.5.0","querystring":{"page":"2"},"reqId":"7dk2..."}
//	{"level":"INFO","msg":"finished handling request 7dk2...","time":0.412,"reqId":"7dk2..."}
package requestlog
