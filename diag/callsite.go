package diag

import (
	"fmt"
	"runtime"
)

// callSitePlaceholder is reported when no stack information is available.
// The description is purely cosmetic, so capture failures are never fatal.
const callSitePlaceholder = "<failed to capture call site>"

// callSite returns a best-effort description of the caller skip frames
// above this function.
func callSite(skip int) string {
	pc := make([]uintptr, 1)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return callSitePlaceholder
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	switch {
	case frame.Function == "" && frame.File == "":
		return callSitePlaceholder
	case frame.Function == "":
		return fmt.Sprintf("%s:%d", frame.File, frame.Line)
	default:
		return fmt.Sprintf("%s (%s:%d)", frame.Function, frame.File, frame.Line)
	}
}
