// Package diag is the diagnostic logging entry point for diagkit-based
// libraries.
//
// Internal components log through the process-wide facade without
// depending on a concrete backend:
//
//	diag.Instance().Debug("exporter ready")
//
// The hosting application decides where those messages go by installing
// exactly one Logger, optionally filtered by level:
//
//	diag.Instance().SetLogger(zerologsink.NewDefault(), diag.LevelDebug)
//
// Until a logger is installed every call is a silent no-op, so library
// diagnostics can never take down the host application.
//
// Components that want their log lines labelled use a component logger:
//
//	log := diag.Instance().CreateComponentLogger(diag.ComponentLoggerOptions{Namespace: "batch-processor"})
//	log.Warn("queue is full")
package diag
