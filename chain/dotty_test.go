package chain

import (
	"bytes"
	"strings"
	"testing"
)

func TestDotOutput(t *testing.T) {
	c := &Chain[string]{}
	c.Append("alpha", "omega")
	var buf bytes.Buffer
	c.Dot(&buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("unexpected DOT preamble: %q", out)
	}
	for _, frag := range []string{"alpha", "omega", "\"1\":next -> \"2\";"} {
		if !strings.Contains(out, frag) {
			t.Fatalf("DOT output misses %q:\n%s", frag, out)
		}
	}
}

func TestDotEmptyChain(t *testing.T) {
	var c Chain[int]
	var buf bytes.Buffer
	c.Dot(&buf)
	if !strings.Contains(buf.String(), "strict digraph {") {
		t.Fatalf("unexpected DOT output: %q", buf.String())
	}
}
