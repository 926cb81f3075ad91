package diag

// Logger is the capability every diagnostic backend implements. Each
// method takes an arbitrary argument list; callers must not rely on any
// return value. Implementations decide formatting and destination.
type Logger interface {
	Verbose(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

// NewNoopLogger returns a Logger that discards every call.
func NewNoopLogger() Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Verbose(...any) {}
func (noopLogger) Debug(...any)   {}
func (noopLogger) Info(...any)    {}
func (noopLogger) Warn(...any)    {}
func (noopLogger) Error(...any)   {}
