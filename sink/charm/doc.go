// Package charmsink adapts a charmbracelet/log logger to the diag.Logger
// capability, for hosts that already render their output with the charm
// stack. Verbose and Debug both map to charm's debug level, which is the
// lowest it offers.
package charmsink
