package forth

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Dump writes a listing of every dictionary slot, one per line, in address
// order.
func (vm *VM) Dump(w io.Writer) {
	dictDumper{vm: vm, out: w}.dump()
}

type dictDumper struct {
	vm  *VM
	out io.Writer

	addrWidth int
}

func (dump dictDumper) dump() {
	ents := dump.vm.dict.Entries()
	fmt.Fprintf(dump.out, "# Dictionary %v/%v\n", len(ents), dump.vm.dict.Cap())
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.vm.stack.Data())

	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(len(ents)))
	}
	var buf bytes.Buffer
	for addr, ent := range ents {
		fmt.Fprintf(&buf, "  @%-*v ", dump.addrWidth, addr)
		if ent.Named {
			buf.WriteString(ent.Key.String())
		} else {
			buf.WriteByte('_')
		}
		fmt.Fprintf(&buf, " %v\n", ent.Value)
		if _, err := buf.WriteTo(dump.out); err != nil {
			dump.vm.logf("dump error: %v", err)
			return
		}
	}
}
