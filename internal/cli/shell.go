package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode"

	"todo/internal/exitcode"
	"todo/internal/output"
)

const (
	shellCommand = "shell"
	shellPrompt  = "todo> "
)

// runShell runs an interactive session: one store, one command per line.
// The full list and counters are re-read and printed at start and after
// every successful mutating command.
func (d *Dispatcher) runShell(ctx context.Context, args []string, input *lineInput, out, errOut io.Writer) int {
	common, code := parseSessionFlags(shellCommand, args, errOut)
	if code != exitcode.Success {
		return code
	}

	sess, code := d.newSession(ctx, common, input, errOut)
	if code != exitcode.Success {
		return code
	}

	if !sess.cfg.Quiet {
		render(sess, out)
	}

	for {
		fmt.Fprint(errOut, shellPrompt)
		line, err := input.ReadLine(ctx)
		if err != nil {
			fmt.Fprintln(errOut)
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return exitcode.Success
			}
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}

		l := splitLine(line)
		if len(l.fields) == 0 {
			continue
		}

		name := l.fields[0]
		switch name {
		case "exit", "quit":
			return exitcode.Success
		case shellCommand, tuiCommand:
			fmt.Fprintln(errOut, "error: already in a session")
			continue
		}

		cmd, ok := d.registry.Find(name)
		if !ok {
			fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
			continue
		}

		rest := func(i int) string { return l.rest(i + 1) }
		code := d.dispatchCommand(ctx, sess, cmd, l.fields[1:], rest, input, out, errOut)
		if code == exitcode.Success && cmd.Mutates() && !sess.cfg.Quiet {
			render(sess, out)
		}
	}
}

// render prints every task followed by the counters.
func render(sess *session, out io.Writer) {
	all := sess.svc.Tasks()
	output.FormatTasks(out, all, all)
	output.FormatStats(out, sess.svc.Stats())
}

// shellLine is an input line split on white space. starts holds the byte
// offset of each field in raw.
type shellLine struct {
	raw    string
	fields []string
	starts []int
}

func splitLine(raw string) shellLine {
	l := shellLine{raw: raw}
	start := -1
	for i, r := range raw {
		if !unicode.IsSpace(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			l.fields = append(l.fields, raw[start:i])
			l.starts = append(l.starts, start)
			start = -1
		}
	}
	if start >= 0 {
		l.fields = append(l.fields, raw[start:])
		l.starts = append(l.starts, start)
	}
	return l
}

// rest returns the line from field i to the end, as typed.
func (l shellLine) rest(i int) string {
	return l.raw[l.starts[i]:]
}
