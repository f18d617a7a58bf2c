// Command server runs the HTTP application.
//
// Configuration is read from the file given by -config (default: $APP_CONFIG,
// else config/config.yaml) with APP_HOST, APP_NAME and APP_PORT overriding
// the file values.
//
// # Usage
//
//	go run ./cmd/server -config config/config.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/servekit/app"
	"github.com/dmitrymomot/servekit/pkg/config"
	"github.com/dmitrymomot/servekit/pkg/httpserver"
	"github.com/dmitrymomot/servekit/pkg/logger"
	"github.com/dmitrymomot/servekit/pkg/requestid"
)

const defaultConfigPath = "config/config.yaml"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", configPathFromEnv(), "path to the YAML or JSON config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintln(stderr, "failed to start server: "+err.Error())
		return 1
	}
	cfg := config.MustGet()

	log, err := logger.Init(cfg.Loggers,
		logger.WithEnvironment(cfg.Environment, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	if err != nil {
		fmt.Fprintln(stderr, "failed to start server: "+err.Error())
		return 1
	}
	defer func() { _ = logger.Close() }()

	a := app.New(cfg, log)
	if err := a.Init(ctx); err != nil {
		fmt.Fprintln(stderr, "failed to start server: "+err.Error())
		return 1
	}

	if err := a.Run(ctx); err != nil {
		msg, known := listenFailure(err, cfg.Port)
		if !known {
			panic(err)
		}
		log.Error(msg, logger.Error(err))
		return 1
	}
	return 0
}

func configPathFromEnv() string {
	if p := os.Getenv("APP_CONFIG"); p != "" {
		return p
	}
	return defaultConfigPath
}

// listenFailure turns the listen errors an operator can act on into a message.
func listenFailure(err error, port int) (string, bool) {
	switch {
	case errors.Is(err, httpserver.ErrAddrInUse):
		return fmt.Sprintf("%d is already in use", port), true
	case errors.Is(err, httpserver.ErrPermission):
		return fmt.Sprintf("%d requires elevated privileges", port), true
	default:
		return "", false
	}
}
