package diag

import (
	"fmt"
	"strings"
)

// Level decides which logger operations a level-filtered logger forwards.
// Lower values are more severe: LevelNone suppresses everything, LevelAll
// forwards everything.
type Level int

const (
	LevelNone Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelVerbose
	LevelAll
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelVerbose:
		return "verbose"
	case LevelAll:
		return "all"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a level name into a Level. Parsing is
// case-insensitive and accepts the aliases "warning", "trace" (verbose)
// and "off" (none). Unknown names return LevelInfo and an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return LevelNone, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "verbose", "trace":
		return LevelVerbose, nil
	case "all":
		return LevelAll, nil
	default:
		return LevelInfo, fmt.Errorf("unknown diag level %q", s)
	}
}

// clamp bounds a level into the representable range.
func (l Level) clamp() Level {
	if l < LevelNone {
		return LevelNone
	}
	if l > LevelAll {
		return LevelAll
	}
	return l
}
