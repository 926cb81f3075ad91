package charmsink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newBufferedSink(buf *bytes.Buffer) *Sink {
	l := log.New(buf)
	l.SetLevel(log.DebugLevel)
	return New(l)
}

func TestNewNilFallsBackToDefault(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("expected non-nil sink")
	}
}

func TestSinkForwardsMessage(t *testing.T) {
	var buf bytes.Buffer
	s := newBufferedSink(&buf)
	s.Info("cache", "warmed", 31)

	out := buf.String()
	if !strings.Contains(out, "cache warmed 31") {
		t.Errorf("expected joined message, got %q", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected INFO level in output, got %q", out)
	}
}

func TestSinkLevelMapping(t *testing.T) {
	tests := []struct {
		name      string
		log       func(*Sink)
		wantLevel string
	}{
		{"verbose maps to debug", func(s *Sink) { s.Verbose("m") }, "DEBU"},
		{"debug", func(s *Sink) { s.Debug("m") }, "DEBU"},
		{"warn", func(s *Sink) { s.Warn("m") }, "WARN"},
		{"error", func(s *Sink) { s.Error("m") }, "ERRO"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.log(newBufferedSink(&buf))
			if !strings.Contains(buf.String(), tc.wantLevel) {
				t.Errorf("expected %s in output, got %q", tc.wantLevel, buf.String())
			}
		})
	}
}
