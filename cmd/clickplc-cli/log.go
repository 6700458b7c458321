package main

import "log/slog"

// debugAdapter bridges slog into the Printf-style logger the grid-x
// handlers expect.
type debugAdapter struct {
	*slog.Logger
}

func (log *debugAdapter) Printf(msg string, args ...any) {
	log.Logger.Debug(msg, args...)
}
