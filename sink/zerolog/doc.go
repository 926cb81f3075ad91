// Package zerologsink provides a diag.Logger backend built on zerolog.
//
// It renders diagnostic calls as structured JSON or as human-readable
// console lines. Verbose maps to zerolog's trace level. The sink performs
// no level filtering of its own; that is the job of the filter the diag
// facade wraps around every installed logger.
package zerologsink
