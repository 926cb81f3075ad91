package charmsink

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Sink forwards diagnostic calls to a charmbracelet/log logger. It
// implements the diag.Logger capability.
type Sink struct {
	logger *log.Logger
}

// New wraps logger. A nil logger falls back to charm's default logger.
// Pass log.WithPrefix(...) output or any other pre-configured logger to
// control formatting; the sink only maps levels.
func New(logger *log.Logger) *Sink {
	if logger == nil {
		logger = log.Default()
	}
	return &Sink{logger: logger}
}

// Verbose logs at charm's debug level.
func (s *Sink) Verbose(args ...any) {
	s.logger.Debug(render(args))
}

// Debug logs at charm's debug level.
func (s *Sink) Debug(args ...any) {
	s.logger.Debug(render(args))
}

// Info logs at charm's info level.
func (s *Sink) Info(args ...any) {
	s.logger.Info(render(args))
}

// Warn logs at charm's warn level.
func (s *Sink) Warn(args ...any) {
	s.logger.Warn(render(args))
}

// Error logs at charm's error level.
func (s *Sink) Error(args ...any) {
	s.logger.Error(render(args))
}

func render(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
