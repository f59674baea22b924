// Package export renders resolved positions back into linear-move text.
// The motion packages only ever deal in exact doubles; the precision and
// rounding policy of the emitted commands lives here.
package export

import "gcodeprep/vector"

import "strconv"
import "strings"

// FormatFloat renders f with at most the given number of fractional
// digits, trimming trailing zeroes.
func FormatFloat(f float64, precision int) string {
	x := strconv.FormatFloat(f, 'f', precision, 64)

	// Hacky way to remove silly zeroes
	if strings.IndexRune(x, '.') != -1 {
		for x[len(x)-1] == '0' {
			x = x[:len(x)-1]
		}
		if x[len(x)-1] == '.' {
			x = x[:len(x)-1]
		}
	}

	return x
}

// LinearMove renders the G1 command that moves from start to end. In
// absolute mode changed axes are emitted as coordinates; in relative mode
// as displacements. Unchanged axes are left to the controller's modal
// state.
func LinearMove(start, end vector.Vector, absolute bool, precision int) string {
	var sb strings.Builder
	sb.WriteString("G1")

	if absolute {
		if end.X != start.X {
			sb.WriteString("X" + FormatFloat(end.X, precision))
		}
		if end.Y != start.Y {
			sb.WriteString("Y" + FormatFloat(end.Y, precision))
		}
		if end.Z != start.Z {
			sb.WriteString("Z" + FormatFloat(end.Z, precision))
		}
	} else {
		if end.X != start.X {
			sb.WriteString("X" + FormatFloat(end.X-start.X, precision))
		}
		if end.Y != start.Y {
			sb.WriteString("Y" + FormatFloat(end.Y-start.Y, precision))
		}
		if end.Z != start.Z {
			sb.WriteString("Z" + FormatFloat(end.Z-start.Z, precision))
		}
	}

	return sb.String()
}

// LinearMoves renders one G1 per point, each move starting where the
// previous one ended.
func LinearMoves(start vector.Vector, points []vector.Vector, absolute bool, precision int) []string {
	lines := make([]string, 0, len(points))
	prev := start
	for _, p := range points {
		lines = append(lines, LinearMove(prev, p, absolute, precision))
		prev = p
	}
	return lines
}
