package flushio

import "io"

// WriteFlushers fans writes and flushes out to all non-nil wfs. It returns nil
// when given none, and the sole one when given one.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all fanout
	for _, wf := range wfs {
		if many, ok := wf.(fanout); ok {
			all = append(all, many...)
		} else if wf != nil {
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type fanout []WriteFlusher

func (wfs fanout) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		if n, err = wf.Write(p); err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// Flush flushes every writer, returning the first error.
func (wfs fanout) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
