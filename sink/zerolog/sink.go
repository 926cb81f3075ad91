package zerologsink

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Sink writes diagnostic calls through a zerolog logger. It implements
// the diag.Logger capability.
type Sink struct {
	logger zerolog.Logger
}

// New creates a sink from cfg. The underlying zerolog logger is opened at
// trace level so every forwarded call is rendered; the diag facade's level
// filter decides what reaches the sink in the first place.
func New(cfg Config) *Sink {
	cfg.ApplyDefaults()

	output := outputWriter(cfg)

	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == FormatConsole {
		zl = zerolog.New(consoleWriter(output, cfg.NoColor))
	} else {
		zl = zerolog.New(output)
	}
	zl = zl.Level(zerolog.TraceLevel)

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}

	return &Sink{logger: zl}
}

// NewDefault creates a console sink on stderr with timestamps.
func NewDefault() *Sink {
	return New(Config{Timestamp: true})
}

// FromLogger wraps an existing zerolog logger. The caller keeps control of
// the logger's level and output.
func FromLogger(zl zerolog.Logger) *Sink {
	return &Sink{logger: zl}
}

// Verbose logs at zerolog's trace level.
func (s *Sink) Verbose(args ...any) {
	s.logger.Trace().Msg(render(args))
}

// Debug logs at zerolog's debug level.
func (s *Sink) Debug(args ...any) {
	s.logger.Debug().Msg(render(args))
}

// Info logs at zerolog's info level.
func (s *Sink) Info(args ...any) {
	s.logger.Info().Msg(render(args))
}

// Warn logs at zerolog's warn level.
func (s *Sink) Warn(args ...any) {
	s.logger.Warn().Msg(render(args))
}

// Error logs at zerolog's error level.
func (s *Sink) Error(args ...any) {
	s.logger.Error().Msg(render(args))
}

// render joins the argument list into a single space-separated message.
func render(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

func outputWriter(cfg Config) io.Writer {
	if cfg.Writer != nil {
		return cfg.Writer
	}
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

func consoleWriter(output io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
		FormatLevel: func(i interface{}) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			tag := map[string]string{
				"TRACE": "[VRB]",
				"DEBUG": "[DBG]",
				"INFO":  "[INF]",
				"WARN":  "[WRN]",
				"ERROR": "[ERR]",
			}[lvl]
			if tag == "" {
				tag = fmt.Sprintf("[%s]", lvl)
			}
			if !noColor {
				switch lvl {
				case "TRACE":
					tag = "\033[90m" + tag + "\033[0m"
				case "DEBUG":
					tag = "\033[36m" + tag + "\033[0m"
				case "INFO":
					tag = "\033[32m" + tag + "\033[0m"
				case "WARN":
					tag = "\033[33m" + tag + "\033[0m"
				case "ERROR":
					tag = "\033[31m" + tag + "\033[0m"
				}
			}
			return tag
		},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
	}
}
