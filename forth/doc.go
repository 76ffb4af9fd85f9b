/*
Package forth implements a small Forth-like evaluation engine.

A VM owns a bounded stack of Cells and a bounded, ordered dictionary of
Words. Eval splits a line on whitespace and evaluates each token in turn:

	bye          stop; Eval returns Shutdown and drops the rest of the line
	yield        suspend; the rest of the line runs ahead of the next Eval
	var NAME     (also variable) bind NAME to the address of a fresh slot
	NAME         execute the word bound to NAME
	NUMERAL      push a base 10 literal

Names are at most 16 runes long and are not case sensitive.

A dictionary slot's address is its position. Rebinding an existing name
removes its old slot and appends a new one, so the addresses of every slot
after the old one shift down by one. After "var a var b" the user slots are
"_ a _ b"; a further "var a" leaves "_ _ b _ a", moving b from @3 to @2.

Variables are a named slot holding the address of an anonymous one; ! and @
store and fetch through that address, so this line leaves 123 on the stack:

	variable balance 123 balance ! balance @

Built-in words: + - * / dup drop print ! @ dict. The words create, does>, :
and ; are recognized but fail with UnsupportedOperation, as does any word run
in Compiling mode.
*/
package forth
