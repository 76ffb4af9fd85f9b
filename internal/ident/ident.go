// Package ident implements the fixed-width symbol names used as dictionary
// keys.
package ident

import (
	"strings"
	"unicode"
)

// Size is the number of runes held by an ID.
const Size = 16

// ID is an immutable, comparable name of exactly Size runes. Shorter names are
// padded with the zero rune; longer names are truncated, so two names that
// share their first Size runes are the same ID.
type ID [Size]rune

// New folds s to lower case and packs it into an ID.
func New(s string) (id ID) {
	i := 0
	for _, r := range s {
		if i == Size {
			break
		}
		id[i] = unicode.ToLower(r)
		i++
	}
	return id
}

func (id ID) String() string {
	var sb strings.Builder
	for _, r := range id {
		if r == 0 {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
