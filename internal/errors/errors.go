// Package errors wraps pkg/errors so infrastructure code keeps a stack at
// every wrap site, and exposes the stdlib matching helpers next to them.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// The wrapping helpers are bound directly to pkg/errors so the recorded
// stack starts at the caller, not inside this package.
var (
	// Wrap annotates err with message and the caller's stack. A nil err stays nil.
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)

// Origin reports "file:line" of the deepest recorded stack frame in err's
// chain, which is where the failure was first wrapped. It returns "" when
// nothing in the chain carries a stack.
func Origin(err error) string {
	var origin string
	for err != nil {
		if tracer, ok := err.(stackTracer); ok {
			if frames := tracer.StackTrace(); len(frames) > 0 {
				origin = fmt.Sprintf("%s:%d", frames[0], frames[0])
			}
		}
		err = stderrors.Unwrap(err)
	}

	return origin
}
