package trace

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Panic is an error built from a recovered panic value. Its stack starts at
// the function that panicked.
type Panic struct {
	Value interface{}

	stack []uintptr
}

// FromPanic converts the value returned by recover into an error. It must be
// called from the deferred function that recovered. A nil value returns nil.
//
//	defer func() {
//		if err := trace.FromPanic(recover()); err != nil {
//			logger.LogException(err)
//		}
//	}()
func FromPanic(v interface{}) error {
	if v == nil {
		return nil
	}
	if p, ok := v.(*Panic); ok {
		return p
	}
	return &Panic{Value: v, stack: panicStack(callers(3))}
}

func (p *Panic) Error() string {
	return fmt.Sprint(p.Value)
}

// StackTrace returns the stack from the panic site outwards
func (p *Panic) StackTrace() errors.StackTrace {
	return toStackTrace(p.stack)
}

// Unwrap returns the panic value when it is an error
func (p *Panic) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}

// panicStack drops the frames above the runtime panic machinery. When pcs
// was not captured during a panic it is returned untouched.
func panicStack(pcs []uintptr) []uintptr {
	for i, pc := range pcs {
		fn := runtime.FuncForPC(pc - 1)
		if fn != nil && fn.Name() == "runtime.gopanic" {
			return pcs[i+1:]
		}
	}
	return pcs
}
