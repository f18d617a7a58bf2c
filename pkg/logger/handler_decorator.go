package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler and injects attributes from context.
// Injected attributes are always written at the top level of the record, even
// under WithGroup, and replace top-level attributes with the same key, so a
// value supplied by the decorator always wins over one passed at the call site.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
	// attrs added before the first group; groups holds everything after.
	attrs  []slog.Attr
	groups []group
}

type group struct {
	name  string
	attrs []slog.Attr
}

// NewLogHandlerDecorator creates a new decorated handler.
// Nil extractors are dropped.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: clean}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle extracts context attributes and delegates to the underlying handler.
// Extraction runs per call so request-scoped values are never stale.
func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.extractors) == 0 && len(h.attrs) == 0 && len(h.groups) == 0 {
		return h.next.Handle(ctx, rec)
	}

	extracted := make([]slog.Attr, 0, len(h.extractors))
	keys := make(map[string]struct{}, len(h.extractors))
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			extracted = append(extracted, attr)
			keys[attr.Key] = struct{}{}
		}
	}

	callSite := make([]slog.Attr, 0, rec.NumAttrs())
	rec.Attrs(func(a slog.Attr) bool {
		callSite = append(callSite, a)
		return true
	})

	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	out.AddAttrs(without(h.attrs, keys)...)
	if len(h.groups) == 0 {
		out.AddAttrs(without(callSite, keys)...)
	} else {
		out.AddAttrs(nest(h.groups, callSite))
	}
	out.AddAttrs(extracted...)

	return h.next.Handle(ctx, out)
}

// WithAttrs creates a new decorated handler with additional static attributes.
// They are kept on the decorator so that injected keys can replace them.
func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	c := h.clone()
	if len(c.groups) == 0 {
		c.attrs = append(c.attrs, attrs...)
	} else {
		last := &c.groups[len(c.groups)-1]
		last.attrs = append(last.attrs, attrs...)
	}
	return c
}

// WithGroup creates a new decorated handler with attribute grouping.
// The group applies to call-site attributes only.
func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.groups = append(c.groups, group{name: name})
	return c
}

func (h *LogHandlerDecorator) clone() *LogHandlerDecorator {
	groups := make([]group, len(h.groups))
	for i, g := range h.groups {
		groups[i] = group{name: g.name, attrs: slices.Clip(g.attrs)}
	}
	return &LogHandlerDecorator{
		next:       h.next,
		extractors: h.extractors,
		attrs:      slices.Clip(h.attrs),
		groups:     groups,
	}
}

// without returns attrs minus those whose key is in keys.
func without(attrs []slog.Attr, keys map[string]struct{}) []slog.Attr {
	if len(keys) == 0 {
		return attrs
	}
	out := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		if _, ok := keys[a.Key]; !ok {
			out = append(out, a)
		}
	}
	return out
}

// nest wraps inner in groups, innermost last.
func nest(groups []group, inner []slog.Attr) slog.Attr {
	var attr slog.Attr
	for i := len(groups) - 1; i >= 0; i-- {
		attrs := append(slices.Clip(groups[i].attrs), inner...)
		attr = slog.Attr{Key: groups[i].name, Value: slog.GroupValue(attrs...)}
		inner = []slog.Attr{attr}
	}
	return attr
}

// Bind returns a logger whose records always carry attrs. Unlike
// (*slog.Logger).With, a call-site attribute with the same key is replaced
// rather than duplicated.
func Bind(l *slog.Logger, attrs ...slog.Attr) *slog.Logger {
	if l == nil {
		l = Default()
	}
	if len(attrs) == 0 {
		return l
	}
	fixed := make([]ContextExtractor, 0, len(attrs))
	for _, a := range attrs {
		fixed = append(fixed, func(context.Context) (slog.Attr, bool) { return a, true })
	}
	return slog.New(NewLogHandlerDecorator(l.Handler(), fixed...))
}
