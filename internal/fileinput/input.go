// Package fileinput reads lines sequentially through a queue of named input
// streams, tracking where each line came from.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input reads lines from each reader in Queue in turn, closing any that are
// io.Closers once exhausted.
type Input struct {
	Queue []io.Reader

	cur  io.Reader
	sc   *bufio.Scanner
	loc  Location
	Last Location
}

// ReadLine returns the next line, without its line ending, and where it came
// from. It returns io.EOF once every queued reader is exhausted.
func (in *Input) ReadLine() (string, Location, error) {
	for {
		if in.sc == nil && !in.nextIn() {
			return "", in.Last, io.EOF
		}
		if in.sc.Scan() {
			in.loc.Line++
			in.Last = in.loc
			return in.sc.Text(), in.loc, nil
		}
		err := in.sc.Err()
		in.closeCur()
		if err != nil {
			return "", in.loc, fmt.Errorf("%v: %w", in.loc.Name, err)
		}
	}
}

// Close closes the current and any still queued readers.
func (in *Input) Close() (err error) {
	in.closeCur()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.cur = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.sc = bufio.NewScanner(in.cur)
	in.loc = Location{Name: nameOf(in.cur)}
	return true
}

func (in *Input) closeCur() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.sc = nil, nil
}

// NamedReader gives r a Name for Location reporting.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
