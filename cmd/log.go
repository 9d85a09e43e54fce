package cmd

import (
	"io"
	"log/slog"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// setupLogging enables debug logging to w when verbose is set
func setupLogging(w io.Writer, verbose bool) {
	if !verbose {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
