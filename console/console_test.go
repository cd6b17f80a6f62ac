package console_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/deixis/chromologger/console"
)

func TestConsole_NoColor(t *testing.T) {
	var out, errOut bytes.Buffer
	c := console.New(&out, &errOut, true)

	c.Inf("hello")
	c.Err("broken")
	c.Exc(fmt.Errorf("worse"))
	c.Exc(nil)

	if expect := "hello\n"; out.String() != expect {
		t.Errorf("expect stdout %q, but got %q", expect, out.String())
	}
	if expect := "broken\nworse\n"; errOut.String() != expect {
		t.Errorf("expect stderr %q, but got %q", expect, errOut.String())
	}
}

func TestConsole_Color(t *testing.T) {
	var out, errOut bytes.Buffer
	c := console.New(&out, &errOut, false)

	c.Inf("hello")
	if !bytes.Contains(out.Bytes(), []byte("\x1b[")) {
		t.Errorf("expect an escape sequence, but got %q", out.String())
	}
	if !bytes.Contains(out.Bytes(), []byte("hello")) {
		t.Errorf("expect text to be printed, but got %q", out.String())
	}
}

func TestDiscard(t *testing.T) {
	p := console.Discard()
	p.Inf("a")
	p.Err("b")
	p.Exc(fmt.Errorf("c"))
}
