package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todo list` and `todo list <filter>`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks (filter: all, high, active, completed)" }
func (c *ListCmd) Usage() string     { return "list [filter]" }
func (c *ListCmd) Mutates() bool     { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	filter := service.FilterAll
	if len(args) == 1 {
		// Unknown filters select nothing rather than failing.
		filter = service.Filter(strings.ToLower(strings.TrimSpace(args[0])))
	}

	all := svc.Tasks()
	if !output.FormatTasks(out, all, svc.Filter(filter)) && !cfg.Quiet {
		fmt.Fprintln(out, output.NoMatches)
	}
	return exitcode.Success
}
