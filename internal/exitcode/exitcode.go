// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, blank text, unknown task).
	UserError = 1

	// ConfigError indicates an invalid config file or environment override.
	ConfigError = 2

	// StorageError indicates the key/value store could not be read or written.
	StorageError = 3

	// TerminalError indicates the interactive view failed at runtime.
	TerminalError = 4
)
