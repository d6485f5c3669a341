// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/prompt"
	"todo/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Mutates returns true if the command changes the task store.
	// Interactive sessions re-render the list after a successful mutation.
	Mutates() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// svc is the session's task store; commands that never touch it
	// must tolerate nil.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

// TextTaking is implemented by commands whose positional arguments are
// one free-text value. The shell passes that value as typed, spacing
// included, in a single argument.
type TextTaking interface {
	TakesText() bool
}

// Confirming is implemented by commands that must ask the user before acting.
// The dispatcher calls SetConfirmer before every Run.
type Confirming interface {
	SetConfirmer(c prompt.Confirmer)
}
