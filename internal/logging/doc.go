// Package logging provides structured logging for multicheck.
//
// Logs are JSON lines produced by log/slog. They go to a file when a log
// directory is configured and to stderr otherwise. The interactive TUI swaps
// stderr logging for [NopLogger] so the alternate screen stays clean.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("selection confirmed", "selected", 3)
//
// # Context Propagation
//
// Child loggers carry persistent attributes:
//
//	ctrlLogger := logger.WithComponent("multicheck")
//	ctrlLogger.Debug("selection changed", "reason", "toggle")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"selection changed","component":"multicheck","reason":"toggle"}
//
// # Configuration
//
//	logging:
//	  enabled: true
//	  level: info
//	  dir: ~/.local/state/multicheck
package logging
