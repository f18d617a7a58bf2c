package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Target types understood by Init.
const (
	TargetConsole = "console"
	TargetFile    = "file"
)

// Target describes one log sink of the process-wide logger.
type Target struct {
	Type   string `yaml:"type" json:"type"`
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Path   string `yaml:"path" json:"path"`
}

var (
	facilityMu sync.Mutex
	facility   *slog.Logger
	closers    []io.Closer
)

// Init builds the process-wide logger from targets and installs it as the
// slog default. It runs once: later calls return the existing logger until
// Close is called. Without targets a single console target is used.
// opts apply to every target before the target's own level and format.
func Init(targets []Target, opts ...Option) (*slog.Logger, error) {
	facilityMu.Lock()
	defer facilityMu.Unlock()

	if facility != nil {
		return facility, nil
	}
	if len(targets) == 0 {
		targets = []Target{{Type: TargetConsole}}
	}

	handlers := make([]slog.Handler, 0, len(targets))
	var opened []io.Closer
	var extractors []ContextExtractor
	for _, t := range targets {
		cfg := newConfig(opts...)
		extractors = cfg.extractors

		out, closer, err := openTarget(t)
		if err != nil {
			closeAll(opened)
			return nil, err
		}
		if closer != nil {
			opened = append(opened, closer)
		}
		cfg.output = out
		if t.Level != "" {
			cfg.level = ParseLevel(t.Level)
		}
		switch Format(strings.ToLower(t.Format)) {
		case FormatText:
			cfg.format = FormatText
		case FormatJSON:
			cfg.format = FormatJSON
		}
		handlers = append(handlers, cfg.baseHandler())
	}

	facility = slog.New(NewLogHandlerDecorator(newFanoutHandler(handlers...), extractors...))
	closers = opened
	SetAsDefault(facility)
	return facility, nil
}

// Default returns the process-wide logger, lazily creating a JSON console
// logger when Init has not been called.
func Default() *slog.Logger {
	facilityMu.Lock()
	defer facilityMu.Unlock()

	if facility == nil {
		facility = New()
	}
	return facility
}

// Close flushes and closes file targets and resets the facility so that a
// subsequent Init builds a fresh logger.
func Close() error {
	facilityMu.Lock()
	defer facilityMu.Unlock()

	err := closeAll(closers)
	closers = nil
	facility = nil
	return err
}

func openTarget(t Target) (io.Writer, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(t.Type)) {
	case "", TargetConsole:
		return os.Stdout, nil, nil
	case TargetFile:
		if t.Path == "" {
			return nil, nil, errors.Join(ErrOpenTarget, errors.New("file target requires a path"))
		}
		if err := os.MkdirAll(filepath.Dir(t.Path), 0o755); err != nil {
			return nil, nil, errors.Join(ErrOpenTarget, err)
		}
		f, err := os.OpenFile(t.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Join(ErrOpenTarget, err)
		}
		w := &syncWriter{f: f}
		return w, w, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTarget, t.Type)
	}
}

func closeAll(cs []io.Closer) error {
	var errs []error
	for _, c := range cs {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// syncWriter serializes writes to a file shared by several handlers and
// syncs it to disk on Close.
type syncWriter struct {
	mu sync.Mutex
	f  *os.File
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Write(p)
}

func (w *syncWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return errors.Join(w.f.Sync(), w.f.Close())
}
