package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&MarkAllCmd{})
	Register(&UnmarkAllCmd{})
}

// MarkAllCmd implements the markall command.
type MarkAllCmd struct{}

func (c *MarkAllCmd) Name() string      { return "markall" }
func (c *MarkAllCmd) Aliases() []string { return []string{"complete-all"} }
func (c *MarkAllCmd) Synopsis() string  { return "Mark every task completed" }
func (c *MarkAllCmd) Usage() string     { return "markall" }
func (c *MarkAllCmd) Mutates() bool     { return true }

func (c *MarkAllCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MarkAllCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMarkAll(cfg, args, out, errOut, svc.MarkAllComplete)
}

// UnmarkAllCmd implements the unmarkall command.
type UnmarkAllCmd struct{}

func (c *UnmarkAllCmd) Name() string      { return "unmarkall" }
func (c *UnmarkAllCmd) Aliases() []string { return []string{"activate-all"} }
func (c *UnmarkAllCmd) Synopsis() string  { return "Mark every task active" }
func (c *UnmarkAllCmd) Usage() string     { return "unmarkall" }
func (c *UnmarkAllCmd) Mutates() bool     { return true }

func (c *UnmarkAllCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UnmarkAllCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMarkAll(cfg, args, out, errOut, svc.MarkAllIncomplete)
}

// runMarkAll is the shared implementation for markall and unmarkall.
func runMarkAll(cfg *config.Config, args []string, out, errOut io.Writer, mark func()) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	mark()

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
