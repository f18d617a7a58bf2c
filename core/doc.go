// Package core holds the error taxonomy shared by the HTTP pipeline.
//
// Errors fall in two classes. Client errors implement ClientFault: they are
// caused by the caller, declare their own status (4xx), response headers and
// body, and are disclosed as-is. Every other error is a server error; its
// details are logged and redacted from the response.
//
// Classification is structural, via errors.As against ClientFault:
//
//	var fault core.ClientFault
//	if errors.As(err, &fault) {
//		// 4xx: fault.StatusCode(), fault.ResponseHeaders(), fault.Payload()
//	}
//
// Create client errors with NewClientError or the per-status helpers:
//
//	return core.UnprocessableEntity("invalid email",
//		core.WithHeader("X-Field", "email"),
//		core.WithPayload(map[string]string{"email": "must contain @"}),
//	)
package core
