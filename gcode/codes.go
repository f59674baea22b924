package gcode

import "fmt"
import "regexp"
import "strconv"

var (
	gCodeRe = regexp.MustCompile(`[Gg]0*(\d+)`)
	mCodeRe = regexp.MustCompile(`[Mm]0*(\d+)`)
)

// Codes lists every code number following the given letter in the command,
// left to right. Run-together commands like "G0G1" are not rejected; both
// codes are returned and the caller decides what to make of them.
func Codes(command string, address rune) []int {
	switch address {
	case 'G', 'g':
		return matchCodes(gCodeRe, command)
	case 'M', 'm':
		return matchCodes(mCodeRe, command)
	}
	re, err := regexp.Compile(fmt.Sprintf(`(?i)[%c]0*(\d+)`, address))
	if err != nil {
		return nil
	}
	return matchCodes(re, command)
}

// GCodes lists the G words of a command.
func GCodes(command string) []int {
	return matchCodes(gCodeRe, command)
}

// MCodes lists the M words of a command.
func MCodes(command string) []int {
	return matchCodes(mCodeRe, command)
}

func matchCodes(re *regexp.Regexp, command string) []int {
	var codes []int
	for _, m := range re.FindAllStringSubmatch(command, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		codes = append(codes, n)
	}
	return codes
}
