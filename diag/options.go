package diag

// setLoggerConfig is the normalized form of the options accepted by
// SetLogger.
type setLoggerConfig struct {
	level                   Level
	suppressOverrideMessage bool
}

// SetLoggerOption configures a SetLogger call. A bare Level satisfies the
// interface and sets the filter level, so both forms work:
//
//	api.SetLogger(sink, diag.LevelDebug)
//	api.SetLogger(sink, diag.WithLevel(diag.LevelDebug), diag.WithSuppressOverrideMessage(true))
type SetLoggerOption interface {
	applySetLogger(*setLoggerConfig)
}

func (l Level) applySetLogger(c *setLoggerConfig) {
	c.level = l
}

type setLoggerOptionFunc func(*setLoggerConfig)

func (f setLoggerOptionFunc) applySetLogger(c *setLoggerConfig) {
	f(c)
}

// WithLevel sets the maximum verbosity the installed logger receives.
// Defaults to LevelInfo.
func WithLevel(level Level) SetLoggerOption {
	return setLoggerOptionFunc(func(c *setLoggerConfig) {
		c.level = level
	})
}

// WithSuppressOverrideMessage controls the warning emitted when an already
// installed logger is replaced. Defaults to false (warn).
func WithSuppressOverrideMessage(suppress bool) SetLoggerOption {
	return setLoggerOptionFunc(func(c *setLoggerConfig) {
		c.suppressOverrideMessage = suppress
	})
}
