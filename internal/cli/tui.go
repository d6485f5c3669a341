package cli

import (
	"context"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/tui"
)

const tuiCommand = "tui"

// runTUI runs a full-screen session on in and out. The terminal UI reads
// in directly, so input must not have been read from yet.
func (d *Dispatcher) runTUI(ctx context.Context, args []string, in io.Reader, input *lineInput, out, errOut io.Writer) int {
	common, code := parseSessionFlags(tuiCommand, args, errOut)
	if code != exitcode.Success {
		return code
	}

	sess, code := d.newSession(ctx, common, input, errOut)
	if code != exitcode.Success {
		return code
	}

	sess.log.Debug().Msg("starting terminal ui")
	if err := tui.Run(ctx, tui.New(sess.svc, sess.cfg.DefaultPriority), in, out); err != nil {
		sess.log.Error().Stack().Err(err).Msg("terminal ui exited")
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
