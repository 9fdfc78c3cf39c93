// Package logging provides the logging abstraction used by the dashboard.
// Packages depend on the Logger interface; the logrus-backed adapter is wired
// in by the container and MockLogger is used by tests.
package logging

// Logger defines structured logging for the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program
	Fatal(msg string, fields ...Field)

	// Fatalf logs a fatal-level message with formatting and exits the program
	Fatalf(msg string, args ...interface{})
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Nop returns a logger that discards everything. Used as the default for
// components constructed without a logger.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field)                 {}
func (nopLogger) Info(string, ...Field)                  {}
func (nopLogger) Warn(string, ...Field)                  {}
func (nopLogger) Error(string, ...Field)                 {}
func (n nopLogger) WithError(error) Logger               { return n }
func (n nopLogger) WithField(string, interface{}) Logger { return n }
func (n nopLogger) WithFields(...Field) Logger           { return n }
func (nopLogger) Fatal(string, ...Field)                 {}
func (nopLogger) Fatalf(string, ...interface{})          {}
