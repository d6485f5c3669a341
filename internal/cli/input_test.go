package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineInput_ReadsInOrder(t *testing.T) {
	in := newLineInput(strings.NewReader("one\ntwo\n"))
	defer in.Close()
	ctx := context.Background()

	line, err := in.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = in.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "two", line)

	_, err = in.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineInput_CancelledRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	in := newLineInput(pr)
	defer in.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLineInput_CloseReleasesReader(t *testing.T) {
	in := newLineInput(strings.NewReader("one\ntwo\nthree\n"))

	line, err := in.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	in.Close()
	in.Close()

	// The reader goroutine closes lines when it returns.
	exited := make(chan struct{})
	go func() {
		for {
			select {
			case _, ok := <-in.lines:
				if !ok {
					close(exited)
					return
				}
			case <-time.After(time.Second):
				return
			}
		}
	}()

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still running after Close")
	}

	_, err = in.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineInput_NilReader(t *testing.T) {
	in := newLineInput(nil)

	_, err := in.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
