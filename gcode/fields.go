package gcode

import "strings"
import "unicode"

// Fields splits a cleaned command into its words. It is a single left to
// right pass: a word opens at a letter or at the start of a numeric run
// (digit, '.', or a unary '-'), letters directly in front of a numeric run
// belong to that word, and a letter seen while a numeric run is active
// closes the word and opens the next one. Whitespace and stray punctuation
// close an active run and are otherwise skipped. A numeric run with no
// leading letter still yields a word, with a zero address, so that callers
// filtering on address simply never see it.
func Fields(command string) Words {
	var (
		words   Words
		sb      strings.Builder
		numeric bool
	)

	flush := func() {
		if sb.Len() > 0 {
			words = append(words, newWord(sb.String()))
			sb.Reset()
		}
	}

	for _, c := range command {
		switch {
		case numeric && !unicode.IsDigit(c) && c != '.':
			numeric = false
			flush()
			if unicode.IsLetter(c) {
				sb.WriteRune(c)
			}
		case unicode.IsDigit(c) || c == '.' || c == '-':
			sb.WriteRune(c)
			numeric = true
		case unicode.IsLetter(c):
			sb.WriteRune(c)
		}
	}
	flush()

	return words
}

func newWord(s string) Word {
	r := []rune(s)
	if unicode.IsLetter(r[0]) {
		return Word{Address: r[0], Literal: string(r[1:])}
	}
	return Word{Literal: s}
}
