// Package log provides structured logging for the utility packages and the
// strutil command.
//
// Loggers are immutable once shared: every With* method returns a configured
// copy, so a package can derive a named logger from the process default
// without affecting other users.
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatJSON,
//		Output: os.Stderr,
//		Name:   "strutil",
//	})
//	logger.Info("converted", log.Field("command", "camelize"))
//
// LogError inspects structured errors from core/error and picks the level
// from their severity: low becomes info, medium becomes warn, anything
// higher becomes error.
package log
