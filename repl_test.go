package main

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/goforth/forth"
	"github.com/jcorbin/goforth/internal/fileinput"
	"github.com/jcorbin/goforth/internal/logio"
)

func testShell(t *testing.T) (shell, *strings.Builder, *strings.Builder) {
	var out, logs strings.Builder
	vm, err := forth.New(16, 64, forth.WithOutput(&out))
	require.NoError(t, err)
	return shell{
		vm:  vm,
		out: &out,
		log: logio.NewLogger(&logs),
	}, &out, &logs
}

func TestShell_batch(t *testing.T) {
	sh, out, logs := testShell(t)

	in := &fileinput.Input{Queue: []io.Reader{
		fileinput.NamedReader("a.fs", strings.NewReader("variable balance\n123 balance ! balance @\n0 5 /\n")),
		fileinput.NamedReader("b.fs", strings.NewReader("7 print yield 1 +\n\nbye\n99\n")),
	}}
	require.NoError(t, sh.batch(in))

	assert.Equal(t, strings.Join([]string{
		"OK -> STACK []",
		"OK -> STACK [123]",
		":: 7",
		"YIELD: 2 tokens pending",
		"OK -> STACK [123 8]",
		"OK: Shutting down...",
		"",
	}, "\n"), out.String())
	assert.Equal(t, `ERROR: a.fs:3: divide by zero at "/"`+"\n", logs.String())
	assert.Equal(t, 1, sh.log.ExitCode())
}

func TestShell_eval(t *testing.T) {
	sh, out, _ := testShell(t)

	require.NoError(t, sh.eval("1 DUP"))
	assert.ErrorIs(t, sh.eval("frob"), forth.NumeralParseFailure)
	assert.ErrorIs(t, sh.eval("BYE"), errShutdown)
	assert.Equal(t, "OK -> STACK [1 1]\nOK: Shutting down...\n", out.String())
}
