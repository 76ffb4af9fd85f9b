package forth

import (
	"errors"
	"fmt"

	"github.com/jcorbin/goforth/internal/dict"
	"github.com/jcorbin/goforth/internal/stack"
)

// Kinds of evaluation failure, reported through Error.Errno.
const (
	StackOverflow = Errno(iota)
	StackUnderflow
	DivideByZero
	NumeralParseFailure
	DictionaryOverflow
	DictionaryUndefinedAccess
	AccessedUndefinedAtAddr
	UnsupportedOperation
)

var strError = []string{
	"stack overflow",
	"stack underflow",
	"divide by zero",
	"numeral parse failure",
	"dictionary overflow",
	"dictionary undefined access",
	"accessed undefined at address",
	"unsupported operation",
}

// Errno describes the kind of an evaluation failure. An Errno may be used as
// an errors.Is target against any *Error.
type Errno int

func (e Errno) Error() string {
	if int(e) < 0 || int(e) >= len(strError) {
		return fmt.Sprintf("forth errno %d", int(e))
	}
	return strError[e]
}

// Error describes a failed evaluation and the token being evaluated when it
// happened. The VM remains usable after any Error.
type Error struct {
	Errno Errno
	Token string // token being evaluated, empty for direct Push/Pop
	Addr  int    // address for DictionaryUndefinedAccess and AccessedUndefinedAtAddr
	Op    string // feature name for UnsupportedOperation
	Err   error  // underlying cause, e.g. a strconv error
}

func (e *Error) Error() string {
	msg := e.Errno.Error()
	switch e.Errno {
	case AccessedUndefinedAtAddr, DictionaryUndefinedAccess:
		msg += fmt.Sprintf(" @%d", e.Addr)
	case UnsupportedOperation:
		if e.Op != "" {
			msg += ": " + e.Op
		}
	case NumeralParseFailure:
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
	}
	if e.Token != "" {
		msg += fmt.Sprintf(" at %q", e.Token)
	}
	return msg
}

// Is matches an Errno target by kind.
func (e *Error) Is(target error) bool {
	errno, ok := target.(Errno)
	return ok && errno == e.Errno
}

func (e *Error) Unwrap() error { return e.Err }

func (vm *VM) newError(errno Errno) *Error {
	return &Error{Errno: errno, Token: vm.token}
}

func (vm *VM) newAddrError(errno Errno, addr int) *Error {
	err := vm.newError(errno)
	err.Addr = addr
	return err
}

func (vm *VM) unsupported(op string) *Error {
	err := vm.newError(UnsupportedOperation)
	err.Op = op
	return err
}

func (vm *VM) stackError(err error) *Error {
	switch {
	case errors.Is(err, stack.ErrOverflow):
		return vm.newError(StackOverflow)
	case errors.Is(err, stack.ErrUnderflow):
		return vm.newError(StackUnderflow)
	}
	panic(fmt.Sprintf("unexpected stack error: %v", err))
}

func (vm *VM) dictError(err error, addr int) *Error {
	switch {
	case errors.Is(err, dict.ErrOverflow):
		return vm.newError(DictionaryOverflow)
	case errors.Is(err, dict.ErrUndefinedAccess):
		return vm.newAddrError(DictionaryUndefinedAccess, addr)
	}
	panic(fmt.Sprintf("unexpected dictionary error: %v", err))
}

// haltError carries an *Error out of a native operation by panic; exec
// recovers it back into a return value.
type haltError struct{ err *Error }

func (vm *VM) halt(err *Error) {
	vm.logf("halt error: %v", err)
	panic(haltError{err})
}
