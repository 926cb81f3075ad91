package diag

import (
	"sync"

	"github.com/kbukum/diagkit/registry"
)

// loggerKey is the registry slot the facade publishes the installed
// logger under.
const loggerKey = "diag"

// DiagAPI is the process-wide diagnostic entry point. Components log
// through it without holding a reference to a concrete backend; the
// hosting application installs one with SetLogger. Every level method
// looks the installed logger up on each call and silently does nothing
// while none is installed.
//
// The zero value is not usable. Obtain the shared facade with Instance or
// build an isolated one with New.
type DiagAPI struct {
	reg   registry.Registry
	owner registry.Token
}

var (
	instance     *DiagAPI
	instanceOnce sync.Once
)

// Instance returns the process-wide facade, creating it on first call. It
// is backed by the default registry and lives for the process lifetime.
func Instance() *DiagAPI {
	instanceOnce.Do(func() {
		instance = New(registry.Default())
	})
	return instance
}

// New builds a facade on top of reg. Callers that need isolation (tests,
// embedded hosts) pass their own registry; everything else should go
// through Instance.
func New(reg registry.Registry) *DiagAPI {
	return &DiagAPI{reg: reg, owner: registry.NewToken()}
}

// SetLogger installs logger as the process-wide diagnostic backend,
// wrapped in a level filter (LevelInfo unless a bare Level or WithLevel
// says otherwise). If a logger is already installed, both the outgoing and
// the incoming logger receive a warning naming the call site, unless
// WithSuppressOverrideMessage(true) is given.
//
// Installing the facade as its own backend would recurse through the
// dispatch forever, so that call is rejected: the error is reported
// through the currently installed logger and SetLogger returns false
// without touching the slot. Every other input succeeds; a nil logger
// installs the no-op logger.
func (d *DiagAPI) SetLogger(logger Logger, opts ...SetLoggerOption) bool {
	if self, ok := logger.(*DiagAPI); ok && self == d {
		d.Error("cannot use diag as the logger for itself; provide a concrete Logger implementation: " + callSite(1))
		return false
	}

	if logger == nil {
		logger = NewNoopLogger()
	}

	cfg := setLoggerConfig{level: LevelInfo}
	for _, opt := range opts {
		opt.applySetLogger(&cfg)
	}

	incoming := NewLevelFilteredLogger(cfg.level, logger)
	if prev := d.installed(); prev != nil && !cfg.suppressOverrideMessage {
		site := callSite(1)
		prev.Warn("current logger will be overwritten from " + site)
		incoming.Warn("current logger will overwrite one already registered from " + site)
	}
	return d.reg.Register(loggerKey, incoming, d.owner, true)
}

// Disable removes the installed logger. It is a no-op when the slot is
// empty or owned by someone else.
func (d *DiagAPI) Disable() {
	d.reg.Unregister(loggerKey, d.owner)
}

// CreateComponentLogger returns a logger that prefixes every call with the
// component namespace before forwarding to the installed logger. The slot
// is untouched.
func (d *DiagAPI) CreateComponentLogger(opts ComponentLoggerOptions) *ComponentLogger {
	if opts.Registry == nil {
		opts.Registry = d.reg
	}
	return NewComponentLogger(opts)
}

// installed returns the currently installed logger, or nil.
func (d *DiagAPI) installed() Logger {
	v, ok := d.reg.Get(loggerKey)
	if !ok {
		return nil
	}
	logger, _ := v.(Logger)
	return logger
}

// Verbose forwards to the installed logger, if any.
func (d *DiagAPI) Verbose(args ...any) {
	if logger := d.installed(); logger != nil {
		logger.Verbose(args...)
	}
}

// Debug forwards to the installed logger, if any.
func (d *DiagAPI) Debug(args ...any) {
	if logger := d.installed(); logger != nil {
		logger.Debug(args...)
	}
}

// Info forwards to the installed logger, if any.
func (d *DiagAPI) Info(args ...any) {
	if logger := d.installed(); logger != nil {
		logger.Info(args...)
	}
}

// Warn forwards to the installed logger, if any.
func (d *DiagAPI) Warn(args ...any) {
	if logger := d.installed(); logger != nil {
		logger.Warn(args...)
	}
}

// Error forwards to the installed logger, if any.
func (d *DiagAPI) Error(args ...any) {
	if logger := d.installed(); logger != nil {
		logger.Error(args...)
	}
}
