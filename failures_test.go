package chromologger_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/deixis/chromologger"
	"github.com/pkg/errors"
)

func TestFailures(t *testing.T) {
	cause := &os.PathError{Op: "open", Path: "/x/app.log", Err: os.ErrPermission}

	table := []struct {
		err     error
		is      func(error) bool
		message string
	}{
		{
			err:     chromologger.WithOpenFailure("/x/app.log", cause),
			is:      chromologger.IsOpenFailure,
			message: "open failure on /x/app.log: open /x/app.log: permission denied",
		},
		{
			err:     chromologger.WithWriteFailure("/x/app.log", nil),
			is:      chromologger.IsWriteFailure,
			message: "write failure on /x/app.log",
		},
		{
			err:     chromologger.WithExtractionFailure(errors.New("no stack")),
			is:      chromologger.IsExtractionFailure,
			message: "extraction failure: no stack",
		},
		{
			err:     chromologger.WithDiagnosticFailure("/d/log.log", cause),
			is:      chromologger.IsDiagnosticFailure,
			message: "diagnostic failure on /d/log.log: open /x/app.log: permission denied",
		},
	}

	for _, test := range table {
		if !test.is(test.err) {
			t.Errorf("expect %T to match its predicate", test.err)
		}
		if !test.is(errors.Wrap(test.err, "outer")) {
			t.Errorf("expect wrapped %T to match its predicate", test.err)
		}
		if !test.is(fmt.Errorf("outer: %w", test.err)) {
			t.Errorf("expect fmt wrapped %T to match its predicate", test.err)
		}
		if test.err.Error() != test.message {
			t.Errorf("expect %q, but got %q", test.message, test.err.Error())
		}
	}

	if chromologger.IsOpenFailure(nil) {
		t.Error("expect nil not to be an OpenFailure")
	}
	if chromologger.IsWriteFailure(chromologger.WithOpenFailure("p", cause)) {
		t.Error("expect an OpenFailure not to be a WriteFailure")
	}
	if !errors.Is(chromologger.WithOpenFailure("p", cause), os.ErrPermission) {
		t.Error("expect failures to unwrap to their cause")
	}
	if errors.Cause(chromologger.WithOpenFailure("p", cause)) != error(cause) {
		t.Error("expect Cause to return the root cause")
	}
}
