package logio

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestLogger(t *testing.T) {
	var out strings.Builder
	log := NewLogger(&out)

	log.Printf("INFO", "stack capacity %v", 32)
	log.Printf("", "OK -> STACK [1 2]")
	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode(), "no errors logged yet")

	log.ErrorIf(errors.New("stack underflow"))
	log.Errorf("line %v: %v", 3, "divide by zero")
	log.Leveledf("TRACE")("exec %q", "+")
	assert.Equal(t, 1, log.ExitCode())

	assert.Equal(t, strings.Join([]string{
		"INFO: stack capacity 32",
		"OK -> STACK [1 2]",
		"ERROR: stack underflow",
		"ERROR: line 3: divide by zero",
		`TRACE: exec "+"`,
		"",
	}, "\n"), out.String())
}

func TestLoggerOutputFailure(t *testing.T) {
	log := NewLogger(failWriter{})
	log.Printf("INFO", "hello")
	assert.Equal(t, 2, log.ExitCode())

	log.SetOutput(io.Discard)
	log.Errorf("still counted")
	assert.Equal(t, 2, log.ExitCode(), "write failure outranks logged errors")
}

func TestWriter(t *testing.T) {
	var lines []string
	lw := &Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}

	fmt.Fprintf(lw, ":: %d\n:: ", 1)
	assert.Equal(t, []string{":: 1"}, lines)
	fmt.Fprintf(lw, "%d\npartial", 2)
	assert.Equal(t, []string{":: 1", ":: 2"}, lines)

	assert.NoError(t, lw.Flush())
	assert.Equal(t, []string{":: 1", ":: 2", "partial"}, lines)
}
