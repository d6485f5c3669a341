package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/prompt"
	"todo/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
// Every deletion is gated by the confirmer; -y counts as confirmation.
type RmCmd struct {
	yes     bool
	confirm prompt.Confirmer
}

// SetYes sets the -y flag (for testing).
func (c *RmCmd) SetYes(yes bool) {
	c.yes = yes
}

// SetConfirmer implements Confirming.
func (c *RmCmd) SetConfirmer(confirm prompt.Confirmer) {
	c.confirm = confirm
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete tasks after confirmation" }
func (c *RmCmd) Usage() string     { return "rm [-y] <ref...>" }
func (c *RmCmd) Mutates() bool     { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	tasks, code := lookupRefs(svc, args, errOut)
	if code != exitcode.Success {
		return code
	}

	confirm := c.confirm
	if c.yes {
		confirm = prompt.AlwaysYes
	}
	if confirm == nil {
		fmt.Fprintln(errOut, "error: confirmation unavailable (use -y)")
		return exitcode.UserError
	}

	deleted := 0
	for _, rt := range tasks {
		question := fmt.Sprintf("Are you sure you want to delete task %d (%s)?", rt.num, rt.task.Text)
		if !confirm.Confirm(question) {
			continue
		}
		svc.Delete(rt.task.ID)
		deleted++
	}

	if !cfg.Quiet {
		if deleted == 0 {
			fmt.Fprintln(out, "cancelled")
		} else {
			fmt.Fprintln(out, "ok")
		}
	}
	return exitcode.Success
}
