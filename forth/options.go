package forth

import (
	"io"

	"github.com/jcorbin/goforth/internal/flushio"
)

// Option configures a VM under New.
type Option interface{ apply(vm *VM) }

var defaults = []Option{
	withOutput(io.Discard),
}

func (vm *VM) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(vm)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

// WithOutput sets where diagnostic words like print and dict write.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee copies diagnostic output to w as well.
func WithTee(w io.Writer) Option { return withTee(w) }

// WithLogf enables trace logging of evaluation.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }

func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}
