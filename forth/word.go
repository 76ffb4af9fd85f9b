package forth

import (
	"strconv"
	"strings"
)

// Cell is the only value type the language manipulates.
type Cell int32

// Word is the unit of dispatch: a Builtin, a Data literal, or a Custom
// sequence of other words.
type Word interface {
	word()
}

// Builtin is a native operation with full access to the VM. It may use the
// VM's stack and dictionary and write diagnostic output.
type Builtin func(vm *VM) error

// Data is a literal that pushes itself when executed.
type Data Cell

// Custom executes its words in order. Words are shared, so redefining a name
// later does not change a Custom built from the earlier definition.
type Custom []Word

func (Builtin) word() {}
func (Data) word()    {}
func (Custom) word()  {}

func (Builtin) String() string { return "builtin" }
func (d Data) String() string  { return strconv.Itoa(int(d)) }

func (c Custom) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, w := range c {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if s, ok := w.(interface{ String() string }); ok {
			sb.WriteString(s.String())
		} else {
			sb.WriteString("nil")
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
