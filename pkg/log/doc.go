// Package log provides the logging abstraction used by crcsim components.
//
// Components accept a Logger and never talk to a logging library directly.
// A zerolog adapter is provided for the command line tool and a no-op logger
// is the library default.
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	sim, err := crcsim.New(cfg, crcsim.WithLogger(logger))
//
// Implement the Logger interface to route simulation logs elsewhere:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log
