package gcode

import "strconv"
import "strings"
import "unicode"

// Word is a single command argument: a letter address and the numeric
// literal that followed it, kept as written. A word scanned from a leading
// numeric fragment with no letter has a zero Address.
type Word struct {
	Address rune
	Literal string
}

func (w Word) String() string {
	if w.Address == 0 {
		return w.Literal
	}
	return string(w.Address) + w.Literal
}

// Value parses the numeric literal of the word.
func (w Word) Value() (float64, error) {
	return strconv.ParseFloat(w.Literal, 64)
}

// Words is an ordered list of command arguments.
type Words []Word

func (ws Words) String() string {
	var sb strings.Builder
	for _, w := range ws {
		sb.WriteString(w.String())
	}
	return sb.String()
}

// Number returns the value of the first word matching the given address,
// compared case-insensitively. The second return is false when no word
// matches, or when the matching word's literal does not parse as a number.
// A malformed optional field must read as absent rather than stop motion.
func (ws Words) Number(address rune) (float64, bool) {
	address = unicode.ToUpper(address)
	for _, w := range ws {
		if w.Address == 0 || unicode.ToUpper(w.Address) != address {
			continue
		}
		f, err := w.Value()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// All returns the literals of every word matching the given address, in
// order of appearance.
func (ws Words) All(address rune) []string {
	address = unicode.ToUpper(address)
	var literals []string
	for _, w := range ws {
		if w.Address != 0 && unicode.ToUpper(w.Address) == address {
			literals = append(literals, w.Literal)
		}
	}
	return literals
}
