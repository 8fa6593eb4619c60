// Package log provides the logging abstraction shared by callapi components.
//
// Components accept a Logger and default to a no-op implementation. The CLIs
// wire a zerolog console logger writing to stderr:
//
//	zl := log.NewConsoleLogger(os.Stderr, zerolog.WarnLevel)
//	logger := log.NewZerologAdapter(zl)
//
// Any other logging library can be used by implementing the four methods of
// Logger.
package log
