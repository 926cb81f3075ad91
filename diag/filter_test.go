package diag

import "testing"

// recordingLogger captures every call for assertions.
type recordingLogger struct {
	calls []recordedCall
}

type recordedCall struct {
	method string
	args   []any
}

func (r *recordingLogger) record(method string, args []any) {
	r.calls = append(r.calls, recordedCall{method: method, args: args})
}

func (r *recordingLogger) Verbose(args ...any) { r.record("verbose", args) }
func (r *recordingLogger) Debug(args ...any)   { r.record("debug", args) }
func (r *recordingLogger) Info(args ...any)    { r.record("info", args) }
func (r *recordingLogger) Warn(args ...any)    { r.record("warn", args) }
func (r *recordingLogger) Error(args ...any)   { r.record("error", args) }

func (r *recordingLogger) count(method string) int {
	n := 0
	for _, c := range r.calls {
		if c.method == method {
			n++
		}
	}
	return n
}

func callAll(l Logger) {
	l.Verbose("v")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")
}

func TestLevelFilteredLogger(t *testing.T) {
	tests := []struct {
		level     Level
		forwarded []string
	}{
		{LevelNone, nil},
		{LevelError, []string{"error"}},
		{LevelWarn, []string{"error", "warn"}},
		{LevelInfo, []string{"error", "warn", "info"}},
		{LevelDebug, []string{"error", "warn", "info", "debug"}},
		{LevelVerbose, []string{"error", "warn", "info", "debug", "verbose"}},
		{LevelAll, []string{"error", "warn", "info", "debug", "verbose"}},
	}
	for _, tc := range tests {
		t.Run(tc.level.String(), func(t *testing.T) {
			rec := &recordingLogger{}
			callAll(NewLevelFilteredLogger(tc.level, rec))

			if len(rec.calls) != len(tc.forwarded) {
				t.Fatalf("expected %d forwarded calls, got %d", len(tc.forwarded), len(rec.calls))
			}
			for _, method := range tc.forwarded {
				if rec.count(method) != 1 {
					t.Errorf("expected exactly one %s call, got %d", method, rec.count(method))
				}
			}
		})
	}
}

func TestLevelFilteredLoggerClamps(t *testing.T) {
	below := &recordingLogger{}
	callAll(NewLevelFilteredLogger(Level(-5), below))
	if len(below.calls) != 0 {
		t.Errorf("level below none should suppress everything, got %d calls", len(below.calls))
	}

	above := &recordingLogger{}
	callAll(NewLevelFilteredLogger(Level(99), above))
	if len(above.calls) != 5 {
		t.Errorf("level above all should forward everything, got %d calls", len(above.calls))
	}
}

func TestLevelFilteredLoggerKeepsArgs(t *testing.T) {
	rec := &recordingLogger{}
	f := NewLevelFilteredLogger(LevelAll, rec)
	f.Error("boom", 42, true)

	if len(rec.calls) != 1 {
		t.Fatalf("expected one call, got %d", len(rec.calls))
	}
	got := rec.calls[0].args
	if len(got) != 3 || got[0] != "boom" || got[1] != 42 || got[2] != true {
		t.Errorf("arguments were not forwarded unchanged: %v", got)
	}
}
