// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates a normal end of session: the exit command,
	// end of input, or an interrupt.
	Success = 0

	// UserError indicates a startup failure: bad flags or an unreadable config file.
	UserError = 1
)
