// Package idgen produces short random identifiers used to correlate log
// records that belong to the same HTTP request.
//
// Identifiers are 20 characters long and drawn uniformly from a 62-symbol
// alphanumeric alphabet. They are meant to be easy to scan in logs, not to be
// secret: the random source is math/rand/v2 and must not be used for tokens.
//
// # Usage
//
//	id := idgen.Generate("")      // "aZ3k9QwP0x7LmN2bC4dE"
//	jobID := idgen.Generate("job_") // "job_" + 20 symbols
//
// A Generator is a plain func() string so it can be swapped in tests or
// replaced with UUIDs:
//
//	gen := idgen.WithPrefix("req_")
//	gen = idgen.UUID
package idgen
