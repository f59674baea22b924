// Package normalize cleans raw command text before it reaches the
// tokenizer: comment handling, whitespace, decimal precision and feed-rate
// overrides. These are plain text substitutions; nothing here understands
// motion.
package normalize

import "regexp"
import "strconv"
import "strings"

var (
	parenCommentRe = regexp.MustCompile(`\(+[^(]*\)+`)
	semiCommentRe  = regexp.MustCompile(`;.*`)
	commentRe      = regexp.MustCompile(`\([^()]*\)|;[^;].*`)
	decimalRe      = regexp.MustCompile(`\d*\.\d*`)
	whitespaceRe   = regexp.MustCompile(`\s`)
	speedRe        = regexp.MustCompile(`F([0-9.]+)`)
)

// RemoveComment strips parenthesized and semicolon comments and trims the
// surrounding whitespace.
func RemoveComment(command string) string {
	command = parenCommentRe.ReplaceAllString(command, "")
	command = semiCommentRe.ReplaceAllString(command, "")
	return strings.TrimSpace(command)
}

// Comment returns the first comment found in the command, comment
// characters included, or an empty string.
func Comment(command string) string {
	return commentRe.FindString(command)
}

// RemoveAllWhitespace drops every whitespace character.
func RemoveAllWhitespace(command string) string {
	return whitespaceRe.ReplaceAllString(command, "")
}

// TruncateDecimals reformats every decimal literal in the command to the
// given number of fractional digits. Integer literals are left alone.
func TruncateDecimals(digits int, command string) string {
	return decimalRe.ReplaceAllStringFunc(command, func(s string) string {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return s
		}
		return strconv.FormatFloat(f, 'f', digits, 64)
	})
}

// OverrideSpeed rescales every F word to the given percentage of its
// value, so all feed rates stay proportional instead of being pinned to
// one fixed speed.
func OverrideSpeed(command string, percent float64) string {
	return speedRe.ReplaceAllStringFunc(command, func(s string) string {
		f, err := strconv.ParseFloat(s[1:], 64)
		if err != nil {
			return s
		}
		return "F" + strconv.FormatFloat(f/100*percent, 'f', -1, 64)
	})
}
