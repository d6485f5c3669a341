package cli

import (
	"bufio"
	"context"
	"io"
	"sync"
)

type lineResult struct {
	line string
	err  error
}

// lineInput serves input lines from a single reader goroutine so a wait
// for input can be abandoned when the context is cancelled. Commands and
// confirmations share it, so lines are consumed in order.
type lineInput struct {
	r         io.Reader
	lines     chan lineResult
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

func newLineInput(r io.Reader) *lineInput {
	return &lineInput{r: r, lines: make(chan lineResult), done: make(chan struct{})}
}

// Close releases the reader goroutine. It exits at its next send, or
// when the reader returns if it is blocked in a read.
func (in *lineInput) Close() {
	in.closeOnce.Do(func() { close(in.done) })
}

func (in *lineInput) send(res lineResult) bool {
	select {
	case in.lines <- res:
		return true
	case <-in.done:
		return false
	}
}

func (in *lineInput) start() {
	go func() {
		defer close(in.lines)
		sc := bufio.NewScanner(in.r)
		for sc.Scan() {
			if !in.send(lineResult{line: sc.Text()}) {
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		in.send(lineResult{err: err})
	}()
}

// ReadLine returns the next line without its terminator.
// Returns io.EOF at end of input and ctx.Err() on cancellation.
func (in *lineInput) ReadLine(ctx context.Context) (string, error) {
	if in.r == nil {
		return "", io.EOF
	}
	in.startOnce.Do(in.start)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-in.done:
		return "", io.EOF
	case res, ok := <-in.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}
