package logger

import (
	"context"
	"log/slog"
	"strings"
)

const tagKey = "tag" // slog attribute key used for filtering

// filteringHandler wraps a base slog.Handler and drops records whose tag is
// excluded by the configured filter lists.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	var tag string
	var tagged bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			tagged = true
			return false
		}
		return true
	})

	if tagged {
		if _, drop := h.cfg.disabledTags[tag]; drop {
			return nil
		}
		if h.cfg.enabledTags != nil {
			if _, keep := h.cfg.enabledTags[tag]; !keep {
				return nil
			}
		}
	} else if h.cfg.enabledTags != nil {
		// Specific tags requested; untagged records don't qualify.
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.cfg)
}
