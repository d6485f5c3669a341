// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, task number out of range).
	UserError = 1

	// ValidationError indicates the store rejected input (empty task text).
	ValidationError = 2

	// ConfigError indicates an unreadable or invalid config.yaml or .env.
	ConfigError = 3
)
