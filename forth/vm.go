package forth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcorbin/goforth/internal/dict"
	"github.com/jcorbin/goforth/internal/flushio"
	"github.com/jcorbin/goforth/internal/ident"
	"github.com/jcorbin/goforth/internal/stack"
)

// Status reports how an evaluation ended.
type Status int

// Evaluation statuses.
const (
	Ok Status = iota
	Yielding
	Shutdown
)

func (st Status) String() string {
	switch st {
	case Ok:
		return "ok"
	case Yielding:
		return "yielding"
	case Shutdown:
		return "shutdown"
	}
	return fmt.Sprintf("Status(%d)", int(st))
}

// Mode is the execution mode that resolved words run under.
type Mode int

// Execution modes. Compiling is recognized but not supported: any word
// resolved while compiling fails with UnsupportedOperation.
const (
	Interpreting Mode = iota
	Compiling
)

func (m Mode) String() string {
	switch m {
	case Interpreting:
		return "interpreting"
	case Compiling:
		return "compiling"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// fsm governs how the next token is read.
type fsm int

const (
	fsmExecute fsm = iota
	fsmGetVariable
)

// VM is an evaluation engine. It exclusively owns its stack and dictionary,
// and must not be used from more than one goroutine at a time.
type VM struct {
	stack *stack.Stack[Cell]
	dict  *dict.Dict[ident.ID, Word]
	mode  Mode
	fsm   fsm

	// tokens left behind by yield, run ahead of the next input
	pending []string

	// token being evaluated, for error context
	token string

	out   flushio.WriteFlusher
	logfn func(mess string, args ...interface{})
}

// Entry is a read-only copy of one dictionary slot; its address is its index
// in Dictionary().
type Entry struct {
	Name  string
	Named bool
	Word  Word
}

// Continuation describes evaluation suspended by yield.
type Continuation struct {
	Tokens []string // tokens not yet evaluated
	Mode   Mode
}

// New creates a VM with the given stack and dictionary capacities, and
// registers the built-in words. The dictionary must have room for them.
func New(stackCapacity, dictCapacity int, opts ...Option) (*VM, error) {
	if dictCapacity < len(builtins) {
		return nil, &Error{
			Errno: DictionaryOverflow,
			Err:   fmt.Errorf("capacity %d cannot hold %d built-in words", dictCapacity, len(builtins)),
		}
	}
	vm := &VM{
		stack: stack.New[Cell](stackCapacity),
		dict:  dict.New[ident.ID, Word](dictCapacity),
	}
	vm.apply(opts...)
	vm.Reset()
	return vm, nil
}

// Reset returns the VM to its pristine state: empty stack, only built-in
// words in the dictionary, no pending continuation, interpreting mode.
func (vm *VM) Reset() {
	vm.fsm = fsmExecute
	vm.mode = Interpreting
	vm.pending = nil
	vm.token = ""
	vm.stack.Clear()
	vm.dict.Clear()
	for _, bw := range builtins {
		if _, err := vm.dict.Insert(ident.New(bw.name), bw.fn); err != nil {
			// New checked capacity
			panic(fmt.Sprintf("registering builtin %q: %v", bw.name, err))
		}
	}
	vm.logf("reset")
}

// Eval evaluates one line of whitespace separated tokens. Any continuation left
// by an earlier yield runs first.
//
// The first error aborts the rest of the line; operations that already ran
// keep their effects.
func (vm *VM) Eval(line string) (Status, error) {
	tokens := strings.Fields(line)
	if len(vm.pending) > 0 {
		vm.logf("resume %v pending tokens", len(vm.pending))
		tokens = append(vm.pending, tokens...)
		vm.pending = nil
	}
	return vm.run(tokens)
}

// Resume continues evaluation suspended by yield without any new input.
func (vm *VM) Resume() (Status, error) {
	return vm.Eval("")
}

// Continuation returns the suspended evaluation left by yield, if any.
func (vm *VM) Continuation() (Continuation, bool) {
	if len(vm.pending) == 0 {
		return Continuation{}, false
	}
	return Continuation{
		Tokens: append([]string(nil), vm.pending...),
		Mode:   vm.mode,
	}, true
}

func (vm *VM) run(tokens []string) (_ Status, rerr error) {
	defer func() {
		vm.token = ""
		if err := vm.out.Flush(); err != nil {
			vm.logf("flush error: %v", err)
			if rerr == nil {
				rerr = fmt.Errorf("flushing output: %w", err)
			}
		}
	}()

	for i, token := range tokens {
		vm.token = token

		if vm.fsm == fsmGetVariable {
			vm.fsm = fsmExecute
			if err := vm.variable(token); err != nil {
				return Ok, err
			}
			continue
		}

		switch strings.ToLower(token) {
		case "bye":
			vm.logf("bye, dropping %v tokens", len(tokens)-i-1)
			return Shutdown, nil

		case "yield":
			vm.pending = append([]string(nil), tokens[i+1:]...)
			vm.logf("yield, %v tokens pending", len(vm.pending))
			return Yielding, nil

		case "var", "variable":
			vm.fsm = fsmGetVariable

		default:
			if err := vm.interpret(token); err != nil {
				vm.logf("error: %v", err)
				return Ok, err
			}
		}
	}
	return Ok, nil
}

func (vm *VM) interpret(token string) error {
	word, found := vm.dict.Get(ident.New(token))
	if !found {
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			perr := vm.newError(NumeralParseFailure)
			perr.Err = err
			return perr
		}
		word = Data(n)
	}

	switch vm.mode {
	case Interpreting:
		vm.logf("exec %q %v", token, word)
		return vm.exec(word)
	default:
		return vm.unsupported(vm.mode.String() + " mode")
	}
}

// variable declares name as a handle to a fresh anonymous slot.
func (vm *VM) variable(name string) error {
	addr, err := vm.dict.Append(Data(0))
	if err != nil {
		return vm.dictError(err, addr)
	}
	if _, err := vm.dict.Insert(ident.New(name), Data(addr)); err != nil {
		return vm.dictError(err, addr)
	}
	vm.logf("variable %q -> @%v", name, addr)
	return nil
}

func (vm *VM) exec(word Word) error {
	switch w := word.(type) {
	case Builtin:
		return vm.native(w)
	case Data:
		if err := vm.stack.Push(Cell(w)); err != nil {
			return vm.stackError(err)
		}
		return nil
	case Custom:
		for _, sub := range w {
			if err := vm.exec(sub); err != nil {
				return err
			}
		}
		return nil
	}
	return vm.unsupported(fmt.Sprintf("executing %T", word))
}

func (vm *VM) native(fn Builtin) (err error) {
	defer func() {
		if e := recover(); e != nil {
			he, ok := e.(haltError)
			if !ok {
				panic(e)
			}
			err = he.err
		}
	}()
	return fn(vm)
}

// Push pushes a value onto the stack.
func (vm *VM) Push(v Cell) error {
	if err := vm.stack.Push(v); err != nil {
		return vm.stackError(err)
	}
	return nil
}

// Pop pops a value off the stack.
func (vm *VM) Pop() (Cell, error) {
	v, err := vm.stack.Pop()
	if err != nil {
		return 0, vm.stackError(err)
	}
	return v, nil
}

// Stack returns a copy of the stack, bottom to top.
func (vm *VM) Stack() []Cell {
	return append([]Cell{}, vm.stack.Data()...)
}

// Dictionary returns a copy of the dictionary in address order.
func (vm *VM) Dictionary() []Entry {
	ents := vm.dict.Entries()
	out := make([]Entry, len(ents))
	for i, ent := range ents {
		out[i] = Entry{Named: ent.Named, Word: ent.Value}
		if ent.Named {
			out[i].Name = ent.Key.String()
		}
	}
	return out
}

// Mode returns the current execution mode.
func (vm *VM) Mode() Mode { return vm.mode }

// Lookup returns the word currently bound to name.
func (vm *VM) Lookup(name string) (Word, bool) {
	return vm.dict.Get(ident.New(name))
}

// Addr returns the address of the slot bound to name.
func (vm *VM) Addr(name string) (int, bool) {
	return vm.dict.Addr(ident.New(name))
}

// Define binds name to a Custom word running body in order, replacing any
// earlier definition of name.
func (vm *VM) Define(name string, body ...Word) error {
	for i, w := range body {
		if w == nil {
			return fmt.Errorf("defining %q: nil word at %v", name, i)
		}
	}
	return vm.bind(name, append(Custom(nil), body...))
}

// DefineBuiltin binds name to a native operation, replacing any earlier
// definition of name.
func (vm *VM) DefineBuiltin(name string, fn Builtin) error {
	if fn == nil {
		return fmt.Errorf("defining %q: nil builtin", name)
	}
	return vm.bind(name, fn)
}

func (vm *VM) bind(name string, word Word) error {
	vm.token = name
	defer func() { vm.token = "" }()
	if _, err := vm.dict.Insert(ident.New(name), word); err != nil {
		return vm.dictError(err, 0)
	}
	return nil
}

// Compose resolves each whitespace separated token of source, as it is bound
// now, into a Custom word. Unbound tokens must be numerals.
func (vm *VM) Compose(source string) (Custom, error) {
	defer func() { vm.token = "" }()
	var body Custom
	for _, token := range strings.Fields(source) {
		vm.token = token
		if word, found := vm.dict.Get(ident.New(token)); found {
			body = append(body, word)
			continue
		}
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			perr := vm.newError(NumeralParseFailure)
			perr.Err = err
			return nil, perr
		}
		body = append(body, Data(n))
	}
	return body, nil
}

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}
