package forth

import "fmt"

// builtins are registered in this order by Reset; their addresses follow it.
var builtins = []struct {
	name string
	fn   Builtin
}{
	{"does>", unsupportedWord("does>")},
	{"create", unsupportedWord("create")},
	{"drop", (*VM).drop},
	{"print", (*VM).print},
	{"!", (*VM).store},
	{"dict", (*VM).dump},
	{"@", (*VM).fetch},
	{"-", (*VM).sub},
	{"+", (*VM).add},
	{"*", (*VM).mul},
	{"/", (*VM).div},
	{"dup", (*VM).dup},
	{":", unsupportedWord("compiling mode")},
	{";", unsupportedWord("compiling mode")},
}

// Binary operators pop the top value as n1 and the next value as n2. Both are
// popped before any validation, so a failed operation still consumes them.

// +  push n1 + n2
func (vm *VM) add() error { n1, n2 := vm.pop(), vm.pop(); vm.push(n1 + n2); return nil }

// -  push n1 - n2
func (vm *VM) sub() error { n1, n2 := vm.pop(), vm.pop(); vm.push(n1 - n2); return nil }

// *  push n1 * n2
func (vm *VM) mul() error { n1, n2 := vm.pop(), vm.pop(); vm.push(n1 * n2); return nil }

// /  push n1 / n2, truncated toward zero; fails if n2 is 0
func (vm *VM) div() error {
	n1, n2 := vm.pop(), vm.pop()
	if n2 == 0 {
		return vm.newError(DivideByZero)
	}
	vm.push(n1 / n2)
	return nil
}

func (vm *VM) dup() error  { n := vm.pop(); vm.push(n); vm.push(n); return nil }
func (vm *VM) drop() error { vm.pop(); return nil }

// print writes the top of stack without consuming it.
func (vm *VM) print() error {
	n := vm.pop()
	vm.emitf(":: %d\n", n)
	vm.push(n)
	return nil
}

// !  pop an address, then a value; store the value in that slot
func (vm *VM) store() error {
	addr, x := vm.pop(), vm.pop()
	if err := vm.dict.Set(int(addr), Data(x)); err != nil {
		return vm.dictError(err, int(addr))
	}
	return nil
}

// @  pop an address; push the data stored there, or, for a named non-data
// slot, the address bound to that name
func (vm *VM) fetch() error {
	addr := vm.pop()
	ent, ok := vm.dict.At(int(addr))
	if !ok {
		return vm.newAddrError(AccessedUndefinedAtAddr, int(addr))
	}
	if d, isData := ent.Value.(Data); isData {
		vm.push(Cell(d))
		return nil
	}
	if ent.Named {
		if a, found := vm.dict.Addr(ent.Key); found {
			vm.push(Cell(a))
			return nil
		}
	}
	return vm.newAddrError(AccessedUndefinedAtAddr, int(addr))
}

func (vm *VM) dump() error {
	vm.Dump(vm.out)
	return nil
}

func unsupportedWord(op string) Builtin {
	return func(vm *VM) error { return vm.unsupported(op) }
}

func (vm *VM) pop() Cell {
	v, err := vm.stack.Pop()
	if err != nil {
		vm.halt(vm.stackError(err))
	}
	return v
}

func (vm *VM) push(v Cell) {
	if err := vm.stack.Push(v); err != nil {
		vm.halt(vm.stackError(err))
	}
}

// emitf writes diagnostic output; write errors are logged, not returned.
func (vm *VM) emitf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(vm.out, format, args...); err != nil {
		vm.logf("output error: %v", err)
	}
}
