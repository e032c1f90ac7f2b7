// Package logging provides leveled logging for the catalog scanner.
//
// The log level is read once from the environment (DEBUG or LOG_LEVEL)
// and defaults to info. Tests and CLI verbosity flags can override it
// with SetLevel.
package logging
