package prompt

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
)

// scanLines returns a LineReader over s.
func scanLines(s string) LineReader {
	sc := bufio.NewScanner(strings.NewReader(s))
	return func() (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		return "", io.EOF
	}
}

func TestLineConfirmer_Answers(t *testing.T) {
	cases := map[string]bool{
		"y\n":     true,
		"YES\n":   true,
		" yes \n": true,
		"n\n":     false,
		"\n":      false,
		"maybe\n": false,
		"y":       true,
		"":        false,
	}

	for input, want := range cases {
		var out bytes.Buffer
		c := NewLineConfirmer(scanLines(input), &out)
		if got := c.Confirm("Delete?"); got != want {
			t.Errorf("input %q: expected %v, got %v", input, want, got)
		}
		if !strings.HasPrefix(out.String(), "Delete? [y/N]: ") {
			t.Errorf("input %q: unexpected prompt %q", input, out.String())
		}
	}
}

func TestLineConfirmer_ReadsOneLine(t *testing.T) {
	read := scanLines("y\nlist\n")
	c := NewLineConfirmer(read, &bytes.Buffer{})

	if !c.Confirm("Delete?") {
		t.Fatal("expected confirmation")
	}
	rest, err := read()
	if err != nil || rest != "list" {
		t.Errorf("expected next line to remain unread, got %q, %v", rest, err)
	}
}

func TestAlwaysYes(t *testing.T) {
	if !AlwaysYes.Confirm("anything") {
		t.Error("AlwaysYes should confirm")
	}
}
