// Package config loads the application configuration from a YAML or JSON file
// and overlays environment variables on top of it.
//
// Precedence, lowest first: file values, then APP_HOST, APP_NAME and APP_PORT.
// A variable overrides only when it is set to a non-empty value, so a port of
// 3000 in the file stays 3000 unless APP_PORT is exported. HTTP server
// timeouts are read from HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT,
// HTTP_IDLE_TIMEOUT and HTTP_SHUTDOWN_TIMEOUT with built-in defaults.
//
// A .env file in the working directory is loaded once per process via
// github.com/joho/godotenv; variables already set in the environment win.
//
// # Usage
//
//	if err := config.Init("config/config.yaml"); err != nil {
//		fmt.Fprintln(os.Stderr, "failed to start server:", err)
//		os.Exit(1)
//	}
//	cfg := config.MustGet()
//	fmt.Println(cfg.Addr())
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with errors.Is:
//
//   - ErrReadFile        – the file is missing or unreadable.
//   - ErrParseFile       – the file is not valid YAML or JSON.
//   - ErrParsingConfig   – an environment variable has the wrong type.
//   - ErrInvalidPort     – the final port is out of range.
//   - ErrConfigNotLoaded – Get was called before a successful Init.
package config
