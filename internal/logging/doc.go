// Package logging provides structured logging for fui and its demo binary.
//
// The package wraps a zap logger with a few convenience functions. Logging is
// silent by default because the terminal belongs to the running form: output
// only appears once a level is configured, and it is written to a file rather
// than stdout.
//
// # Configuration
//
//	FUI_LOG_LEVEL=debug FUI_LOG_FILE=/tmp/fui.log fui-demo tar
//
// or from code:
//
//	if err := logging.Initialize("debug", "/tmp/fui.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Feeder Diagnostics
//
// Feeders never surface I/O problems to the user. A candidate that cannot be
// inspected is skipped and reported here instead:
//
//	logging.LogSkippedCandidate("feeder.dir", path, err)
package logging
