// Package logger is a thin wrapper around logrus, matching the call
// shapes the rest of the codebase uses (Infof/Warn/Debugf/Errorf).
package logger

import log "github.com/sirupsen/logrus"

// Configure sets the package-wide log level from a string such as
// "debug", "info", "warn", or "error". An unrecognized level falls back
// to Info rather than failing the run over a cosmetic flag.
func Configure(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

// Fields is re-exported so callers don't need to import logrus directly
// for structured logging.
type Fields = log.Fields

func Debug(args ...interface{})                 { log.Debug(args...) }
func Debugf(format string, args ...interface{}) { log.Debugf(format, args...) }
func Info(args ...interface{})                  { log.Info(args...) }
func Infof(format string, args ...interface{})  { log.Infof(format, args...) }
func Warn(args ...interface{})                  { log.Warn(args...) }
func Warnf(format string, args ...interface{})  { log.Warnf(format, args...) }
func Error(args ...interface{})                 { log.Error(args...) }
func Errorf(format string, args ...interface{}) { log.Errorf(format, args...) }

// WithFields returns an entry pre-populated with fields, matching the
// skeema-style log.WithFields(...).Debug(...) chain.
func WithFields(fields Fields) *log.Entry {
	return log.WithFields(fields)
}
