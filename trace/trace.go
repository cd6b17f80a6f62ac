// Package trace finds where an error happened.
//
// Go errors don't carry a call stack by default. Errors created with
// github.com/pkg/errors (New, Errorf, Wrap, WithStack) do, and so do the
// errors returned by Capture and FromPanic. Extract walks an error chain and
// returns the innermost frame of the deepest stack it finds, which is the
// frame closest to the fault rather than to the place it was handled.
package trace

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

const (
	// maxDepth bounds how many wrapped errors are visited
	maxDepth = 100
	// stackDepth is the maximum number of program counters recorded
	stackDepth = 64
)

// ErrNilError is returned by Extract when given a nil error
const ErrNilError = sentinel("nil error")

// ErrNoStack is returned by Extract when no error in the chain carries a
// stack trace
const ErrNoStack = sentinel("error carries no stack trace")

type sentinel string

func (s sentinel) Error() string { return string(s) }

// Frame is a single resolved stack frame
type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Extract returns the innermost frame of the deepest stack trace carried by
// err or any of its causes.
//
// Leading frames that belong to the Go runtime are skipped, so a recovered
// runtime panic (e.g. an integer division by zero) points at the faulting
// line.
func Extract(err error) (Frame, error) {
	if err == nil {
		return Frame{}, errors.WithStack(ErrNilError)
	}

	st := deepestStack(err)
	if len(st) == 0 {
		return Frame{}, errors.WithStack(ErrNoStack)
	}
	f, ok := innermost(st)
	if !ok {
		return Frame{}, errors.WithStack(ErrNoStack)
	}
	return f, nil
}

// HasStack returns whether err or one of its causes carries a stack trace
func HasStack(err error) bool {
	return len(deepestStack(err)) > 0
}

// ClassName returns the type name of the root cause of err.
//
// A Panic created from a value that is not an error reports the type of the
// panic value.
func ClassName(err error) string {
	if err == nil {
		return "<nil>"
	}

	root := err
	for i := 0; i < maxDepth; i++ {
		n := next(root)
		if n == nil {
			break
		}
		root = n
	}
	if p, ok := root.(*Panic); ok {
		return fmt.Sprintf("%T", p.Value)
	}
	return fmt.Sprintf("%T", root)
}

// Capture records the caller's stack on err, unless err already carries one
func Capture(err error) error {
	if err == nil || HasStack(err) {
		return err
	}
	return &withStack{error: err, stack: callers(3)}
}

func deepestStack(err error) errors.StackTrace {
	var st errors.StackTrace
	for i := 0; err != nil && i < maxDepth; i++ {
		if t, ok := err.(stackTracer); ok {
			if s := t.StackTrace(); len(s) > 0 {
				st = s
			}
		}
		err = next(err)
	}
	return st
}

// next returns the error wrapped by err, if any
func next(err error) error {
	switch e := err.(type) {
	case interface{ Cause() error }:
		return e.Cause()
	case interface{ Unwrap() error }:
		return e.Unwrap()
	}
	return nil
}

func innermost(st errors.StackTrace) (Frame, bool) {
	pcs := make([]uintptr, len(st))
	for i := range st {
		pcs[i] = uintptr(st[i])
	}

	var first Frame
	var found bool
	frames := runtime.CallersFrames(pcs)
	for {
		fr, more := frames.Next()
		if fr.Function != "" || fr.File != "" {
			f := Frame{Function: fr.Function, File: fr.File, Line: fr.Line}
			if !found {
				first, found = f, true
			}
			if !strings.HasPrefix(fr.Function, "runtime.") {
				return f, true
			}
		}
		if !more {
			break
		}
	}
	return first, found
}

func callers(skip int) []uintptr {
	var pcs [stackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

func toStackTrace(pcs []uintptr) errors.StackTrace {
	st := make(errors.StackTrace, len(pcs))
	for i := range pcs {
		st[i] = errors.Frame(pcs[i])
	}
	return st
}

type withStack struct {
	error
	stack []uintptr
}

func (w *withStack) StackTrace() errors.StackTrace { return toStackTrace(w.stack) }
func (w *withStack) Cause() error                  { return w.error }
func (w *withStack) Unwrap() error                 { return w.error }
