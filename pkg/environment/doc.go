// Package environment names the deployment environments the application can
// run in (development, staging, production) and normalizes the values read
// from configuration.
//
//	env := environment.Parse(cfg.Environment) // "prod" -> Production
package environment
