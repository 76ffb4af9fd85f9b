package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/jcorbin/goforth/forth"
	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/logio"
)

// shell feeds lines to a VM and reports each result.
type shell struct {
	vm  *forth.VM
	out io.Writer
	log *logio.Logger

	prompt string
	hist   string
}

func (sh shell) interactive() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sh.prompt,
		HistoryFile:     sh.hist,
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if err := sh.eval(line); errors.Is(err, errShutdown) {
			return nil
		} else if err != nil {
			fmt.Fprintf(sh.out, "ERROR: %v\n", err)
		}
	}
}

// batch evaluates every line of in; evaluation errors are logged with their
// location and do not stop the run.
func (sh shell) batch(in *fileinput.Input) error {
	for {
		line, loc, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if err := sh.eval(line); errors.Is(err, errShutdown) {
			return nil
		} else if err != nil {
			sh.log.Errorf("%v: %v", loc, err)
		}
	}
}

var errShutdown = errors.New("shutdown")

func (sh shell) eval(line string) error {
	st, err := sh.vm.Eval(line)
	if err != nil {
		return err
	}
	switch st {
	case forth.Shutdown:
		fmt.Fprintln(sh.out, "OK: Shutting down...")
		return errShutdown
	case forth.Yielding:
		k, _ := sh.vm.Continuation()
		fmt.Fprintf(sh.out, "YIELD: %d tokens pending\n", len(k.Tokens))
	default:
		fmt.Fprintf(sh.out, "OK -> STACK %v\n", sh.vm.Stack())
	}
	return nil
}
