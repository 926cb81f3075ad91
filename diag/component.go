package diag

import "github.com/kbukum/diagkit/registry"

// DefaultNamespace labels component loggers built without a namespace.
const DefaultNamespace = "component"

// ComponentLoggerOptions configures NewComponentLogger.
type ComponentLoggerOptions struct {
	// Namespace identifies the component in every forwarded line. Empty
	// falls back to DefaultNamespace.
	Namespace string

	// Registry overrides where the logger looks up the installed backend.
	// Defaults to the process-wide registry; CreateComponentLogger binds
	// it to the facade's registry instead.
	Registry registry.Registry
}

// ComponentLogger prepends a fixed namespace to every call and forwards it
// to whatever logger is currently installed. It holds no reference to the
// backend: the lookup happens per call, so output always tracks the live
// logger, including none.
type ComponentLogger struct {
	namespace string
	reg       registry.Registry
}

// NewComponentLogger builds a component logger. Most callers obtain one
// via DiagAPI.CreateComponentLogger instead.
func NewComponentLogger(opts ComponentLoggerOptions) *ComponentLogger {
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	return &ComponentLogger{namespace: opts.Namespace, reg: opts.Registry}
}

// Namespace returns the component label the logger was built with.
func (c *ComponentLogger) Namespace() string {
	return c.namespace
}

// Verbose forwards to the installed logger with the namespace prepended.
func (c *ComponentLogger) Verbose(args ...any) {
	if logger := c.installed(); logger != nil {
		logger.Verbose(c.prefixed(args)...)
	}
}

// Debug forwards to the installed logger with the namespace prepended.
func (c *ComponentLogger) Debug(args ...any) {
	if logger := c.installed(); logger != nil {
		logger.Debug(c.prefixed(args)...)
	}
}

// Info forwards to the installed logger with the namespace prepended.
func (c *ComponentLogger) Info(args ...any) {
	if logger := c.installed(); logger != nil {
		logger.Info(c.prefixed(args)...)
	}
}

// Warn forwards to the installed logger with the namespace prepended.
func (c *ComponentLogger) Warn(args ...any) {
	if logger := c.installed(); logger != nil {
		logger.Warn(c.prefixed(args)...)
	}
}

// Error forwards to the installed logger with the namespace prepended.
func (c *ComponentLogger) Error(args ...any) {
	if logger := c.installed(); logger != nil {
		logger.Error(c.prefixed(args)...)
	}
}

func (c *ComponentLogger) installed() Logger {
	v, ok := c.reg.Get(loggerKey)
	if !ok {
		return nil
	}
	logger, _ := v.(Logger)
	return logger
}

func (c *ComponentLogger) prefixed(args []any) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, c.namespace)
	return append(out, args...)
}
