// Package logger provides structured logging for mapbench.
package logger

import (
	"log/slog"
	"time"
)

// replaceAttr renders durations as human-readable strings.
// slog's JSON handler would otherwise emit raw nanosecond integers.
func replaceAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindDuration {
		return slog.String(a.Key, a.Value.Duration().Round(time.Microsecond).String())
	}
	return a
}
