package diag

// NewLevelFilteredLogger wraps logger so that only operations at or above
// the given severity forward to it. LevelNone suppresses every operation,
// LevelAll forwards every operation, out-of-range levels are clamped.
func NewLevelFilteredLogger(level Level, logger Logger) Logger {
	return &levelFilteredLogger{level: level.clamp(), logger: logger}
}

type levelFilteredLogger struct {
	level  Level
	logger Logger
}

func (f *levelFilteredLogger) forwards(op Level) bool {
	return op <= f.level
}

func (f *levelFilteredLogger) Verbose(args ...any) {
	if f.forwards(LevelVerbose) {
		f.logger.Verbose(args...)
	}
}

func (f *levelFilteredLogger) Debug(args ...any) {
	if f.forwards(LevelDebug) {
		f.logger.Debug(args...)
	}
}

func (f *levelFilteredLogger) Info(args ...any) {
	if f.forwards(LevelInfo) {
		f.logger.Info(args...)
	}
}

func (f *levelFilteredLogger) Warn(args ...any) {
	if f.forwards(LevelWarn) {
		f.logger.Warn(args...)
	}
}

func (f *levelFilteredLogger) Error(args ...any) {
	if f.forwards(LevelError) {
		f.logger.Error(args...)
	}
}
