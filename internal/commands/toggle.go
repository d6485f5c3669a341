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
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done", "undo"} }
func (c *ToggleCmd) Synopsis() string  { return "Flip tasks between active and completed" }
func (c *ToggleCmd) Usage() string     { return "toggle <ref...>" }
func (c *ToggleCmd) Mutates() bool     { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	tasks, code := lookupRefs(svc, args, errOut)
	if code != exitcode.Success {
		return code
	}

	for _, rt := range tasks {
		svc.Toggle(rt.task.ID)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// lookupRefs parses and resolves task references, reporting errors to errOut.
func lookupRefs(svc service.Service, args []string, errOut io.Writer) ([]refTask, int) {
	refs, err := ParseTaskRefs(args)
	if err != nil {
		if err == ErrTaskRefRequired {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return nil, exitcode.UserError
	}

	tasks, err := resolveRefs(svc, refs)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, exitcode.UserError
	}
	return tasks, exitcode.Success
}
