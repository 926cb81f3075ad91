// Package registry stores process-wide shared values keyed by name.
//
// Each registration carries an owner token; only the holder of the
// matching token may remove the value, and overwriting an occupied key
// requires explicit permission. diagkit keeps its single piece of global
// state (the installed diagnostic logger) in a registry so tests and
// embedded hosts can swap in an isolated instance.
package registry
