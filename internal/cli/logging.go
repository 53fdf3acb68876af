// Package cli holds the small ambient pieces the schedsim command needs
// beyond the engine itself: a package-level slog logger for diagnostics,
// built the same way cmd/consumption/main.go calls slog.Error/Warn/Info
// directly against the default handler rather than threading a logger
// through every function.
package cli

import (
	"log/slog"
	"os"
)

// Logger is the process-wide diagnostics logger. The timeline stream
// itself is data, not a log, and is always written straight to the
// destination the caller asked for (stdout, or the --json/--html files); Logger is
// reserved for parse warnings and run-level diagnostics, matching the
// teacher's split between fmt.Print for sampled data and slog for
// everything else.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))

// Fatalf logs msg at error level and exits with status 1, the same
// end-of-main shape as the teacher's `slog.Error(err.Error()); os.Exit(1)`.
func Fatalf(msg string, args ...any) {
	Logger.Error(msg, args...)
	os.Exit(1)
}
