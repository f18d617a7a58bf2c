// Package app assembles the HTTP application: the chi router, the request
// pipeline and the JSON 404 fallback.
//
//	a := app.New(cfg, log, app.WithRoutes(func(r chi.Router, eh handler.ErrorHandler) {
//		r.Get("/users/{id}", handler.Wrap(getUser, eh))
//	}))
//	if err := a.Init(ctx); err != nil {
//		return err
//	}
//	return a.Run(ctx)
package app
