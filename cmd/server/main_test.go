package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servekit/pkg/config"
	"github.com/dmitrymomot/servekit/pkg/httpserver"
	"github.com/dmitrymomot/servekit/pkg/logger"
)

func writeConfig(t *testing.T, port int) (cfgPath, logPath string) {
	t.Helper()
	dir := t.TempDir()
	logPath = filepath.Join(dir, "app.log")
	cfgPath = filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf(`host: 127.0.0.1
port: %d
app_name: servekit-test
environment: development
loggers:
  - type: file
    level: debug
    format: json
    path: %s
`, port, logPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))
	return cfgPath, logPath
}

func reset(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_HOST", "APP_NAME", "APP_PORT", "APP_CONFIG"} {
		t.Setenv(k, "")
	}
	config.Reset()
	_ = logger.Close()
	t.Cleanup(func() {
		config.Reset()
		_ = logger.Close()
	})
}

func TestListenFailure(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		msg   string
		known bool
	}{
		{"in use", errors.Join(httpserver.ErrStart, httpserver.ErrAddrInUse), "3000 is already in use", true},
		{"privileged", errors.Join(httpserver.ErrStart, httpserver.ErrPermission), "3000 requires elevated privileges", true},
		{"other", errors.Join(httpserver.ErrStart, errors.New("no such host")), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, known := listenFailure(tt.err, 3000)
			assert.Equal(t, tt.msg, msg)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestConfigPathFromEnv(t *testing.T) {
	t.Setenv("APP_CONFIG", "")
	assert.Equal(t, defaultConfigPath, configPathFromEnv())

	t.Setenv("APP_CONFIG", "/etc/servekit.yaml")
	assert.Equal(t, "/etc/servekit.yaml", configPathFromEnv())
}

func TestRunMissingConfig(t *testing.T) {
	reset(t)
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "failed to start server: ")
}

func TestRunBadFlag(t *testing.T) {
	reset(t)
	var stderr bytes.Buffer

	assert.Equal(t, 2, run(context.Background(), []string{"-unknown"}, &stderr))
}

func TestRunAddrInUse(t *testing.T) {
	reset(t)
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()
	port := taken.Addr().(*net.TCPAddr).Port

	cfgPath, logPath := writeConfig(t, port)
	code := run(context.Background(), []string{"-config", cfgPath}, &bytes.Buffer{})
	assert.Equal(t, 1, code)

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), fmt.Sprintf("%d is already in use", port))
}

func TestRunGracefulShutdown(t *testing.T) {
	reset(t)
	cfgPath, logPath := writeConfig(t, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	code := run(ctx, []string{"-config", cfgPath}, &bytes.Buffer{})
	assert.Equal(t, 0, code)

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "Shutting down")
	assert.Contains(t, string(logs), "Done, have a great day!")
}
