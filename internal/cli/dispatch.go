package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/prompt"
	"todo/internal/service"
)

// ServiceFactory creates the task store for a session.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, log zerolog.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// session is the state shared by every command in one run: a single
// store, its config, and the confirmation source.
type session struct {
	cfg     *config.Config
	svc     service.Service
	log     zerolog.Logger
	confirm prompt.Confirmer
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configDir string
	quiet     bool
	debug     bool
}

// register adds the common flags to fs. Inside a session only --quiet is
// accepted; the config and logger are fixed when the session starts.
func (c *commonFlags) register(fs *flag.FlagSet, inSession bool) {
	fs.BoolVar(&c.quiet, "quiet", false, "")
	if inSession {
		return
	}
	fs.StringVar(&c.configDir, "config", "", "")
	fs.BoolVar(&c.debug, "debug", false, "")
}

// Run parses arguments and dispatches to the appropriate command.
// With no arguments, or "shell", it starts an interactive session on in;
// "tui" starts the full-screen interface.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	input := newLineInput(in)
	defer input.Close()

	if len(args) == 0 {
		return d.runShell(ctx, nil, input, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	switch cmdName {
	case shellCommand:
		return d.runShell(ctx, args[1:], input, out, errOut)
	case tuiCommand:
		return d.runTUI(ctx, args[1:], in, input, out, errOut)
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, nil, cmd, args[1:], nil, input, out, errOut)
}

// dispatchCommand parses flags and runs cmd. A nil sess starts a new
// one-command session against a fresh store. When rest is set, rest(i)
// returns the raw input from args[i] on; text-taking commands get it in
// place of their split positional arguments.
func (d *Dispatcher) dispatchCommand(ctx context.Context, sess *session, cmd commands.Command, args []string, rest func(i int) string, input *lineInput, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var common commonFlags
	common.register(fs, sess != nil)

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if code := parseFlags(fs, args, errOut); code != exitcode.Success {
		return code
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}
	if tc, ok := cmd.(commands.TextTaking); ok && tc.TakesText() && rest != nil && len(positionalArgs) > 0 {
		// flag stops at the first positional argument, so the
		// positionals are always a suffix of args.
		positionalArgs = []string{rest(len(args) - len(positionalArgs))}
	}

	var cfg *config.Config
	if sess == nil {
		var code int
		sess, code = d.newSession(ctx, common, input, errOut)
		if code != exitcode.Success {
			return code
		}
		cfg = sess.cfg
	} else {
		// Per-line --quiet must not leak into later lines.
		lineCfg := *sess.cfg
		lineCfg.Quiet = lineCfg.Quiet || common.quiet
		cfg = &lineCfg
	}

	if c, ok := cmd.(commands.Confirming); ok {
		c.SetConfirmer(sess.confirm)
	}

	sess.log.Debug().Str("cmd", cmd.Name()).Strs("args", positionalArgs).Msg("dispatch")
	code := cmd.Run(ctx, cfg, sess.svc, positionalArgs, out, errOut)
	sess.log.Debug().Str("cmd", cmd.Name()).Int("code", code).Msg("done")
	return code
}

// newSession loads config and creates the store.
func (d *Dispatcher) newSession(ctx context.Context, common commonFlags, input *lineInput, errOut io.Writer) (*session, int) {
	cfg, err := config.Load(common.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, exitcode.ConfigError
	}
	cfg.Quiet = common.quiet
	cfg.Debug = cfg.Debug || common.debug

	log := logging.New(errOut, cfg.Debug)
	log.Debug().
		Str("dir", cfg.Dir).
		Str("date_layout", cfg.DateLayout).
		Str("default_priority", string(cfg.DefaultPriority)).
		Bool("seed", cfg.Seed).
		Msg("config loaded")

	svc, err := d.factory(ctx, cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("store setup failed")
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, exitcode.ConfigError
	}

	read := func() (string, error) { return input.ReadLine(ctx) }
	return &session{
		cfg:     cfg,
		svc:     svc,
		log:     log,
		confirm: prompt.NewLineConfirmer(read, errOut),
	}, exitcode.Success
}

// parseSessionFlags parses the flags of a command that starts a session.
// Such commands take no positional arguments.
func parseSessionFlags(name string, args []string, errOut io.Writer) (commonFlags, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var common commonFlags
	common.register(fs, false)
	if code := parseFlags(fs, args, errOut); code != exitcode.Success {
		return common, code
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return common, exitcode.UserError
	}
	return common, exitcode.Success
}

// parseFlags parses args into fs and reports errors in the CLI's format.
func parseFlags(fs *flag.FlagSet, args []string, errOut io.Writer) int {
	err := fs.Parse(args)
	if err == nil {
		return exitcode.Success
	}

	errStr := err.Error()

	// Check for missing flag value
	if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "flag needs an argument") {
		parts := strings.Split(errStr, ":")
		if len(parts) > 1 {
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", strings.TrimSpace(parts[len(parts)-1]))
			return exitcode.UserError
		}
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
