package logger

import (
	"io"
	"log/slog"
)

// NewWithWriter creates a structured logger that writes to w
// when debug is off every record is discarded
func NewWithWriter(debug bool, w io.Writer) *slog.Logger {
	var handler slog.Handler

	if !debug {
		// level above error so nothing gets through
		handler = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.LevelError + 1,
		})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
