// Package asciiguard locates non-ASCII bytes in a line of Mython source,
// giving the lexer's "non-ASCII input" lexical-error category a concrete
// check. It scans the whole line, string literals included; the lexer
// decides when to consult it.
package asciiguard

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// nonASCII matches any rune outside the 7-bit ASCII range.
var nonASCII = runes.Predicate(func(r rune) bool { return r > 127 })

// remover strips non-ASCII runes; used only to detect whether any exist.
var remover = runes.Remove(nonASCII)

// FirstOffender returns the byte offset of the first non-ASCII rune in
// line, or -1 if line is pure ASCII.
func FirstOffender(line string) int {
	cleaned, _, err := transform.String(remover, line)
	if err == nil && len(cleaned) == len(line) {
		return -1
	}
	for i := 0; i < len(line); i++ {
		if line[i] > 127 {
			return i
		}
	}
	return -1
}
