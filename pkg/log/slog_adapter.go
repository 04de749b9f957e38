package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger. Classifications and
// charts log at Debug, rejected input at Warn and failed renders at Error.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("source", event.Source.String()),
		slog.String("kind", event.Kind.String()),
	}

	level, msg := slog.LevelDebug, "trace"
	switch {
	case event.Classification != nil:
		c := event.Classification
		attrs = append(attrs,
			slog.String("rule", c.RuleID),
			slog.String("state", c.State.String()),
			slog.Int("group", int(c.Group)),
			slog.Float64("ps", c.PS),
			slog.Float64("dn", c.DN),
			slog.String("category", c.Category.String()),
		)
		if c.Duration > 0 {
			attrs = append(attrs, slog.Duration("duration", c.Duration))
		}
		msg = "classified"
	case event.Chart != nil:
		attrs = append(attrs,
			slog.String("rule", event.Chart.RuleID),
			slog.String("path", event.Chart.Path),
			slog.Int64("bytes", event.Chart.Bytes),
		)
		msg = "chart written"
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Code != "" {
			attrs = append(attrs, slog.String("error_code", string(event.Error.Code)))
		}
		for k, v := range event.Error.Input {
			attrs = append(attrs, slog.String("input_"+k, v))
		}
		// input errors carry a code; anything else is an I/O failure
		level, msg = slog.LevelError, "chart render failed"
		if event.Error.Code != "" {
			level, msg = slog.LevelWarn, "classification rejected"
		}
	}

	a.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
