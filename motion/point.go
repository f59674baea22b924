package motion

import "gcodeprep/gcode"
import "gcodeprep/vector"

// Coord is an axis value that may be missing from a command. A missing
// axis is not the same thing as zero: it must leave the prior value alone
// in absolute mode and contribute no displacement in relative mode.
type Coord struct {
	Value float64
	Valid bool
}

// Arg looks up an axis word by address. Malformed literals read as missing.
func Arg(words gcode.Words, address rune) Coord {
	f, ok := words.Number(address)
	return Coord{Value: f, Valid: ok}
}

// UpdatePoint resolves the endpoint of a command against the prior
// position, reading the X, Y and Z words independently.
func UpdatePoint(words gcode.Words, prior vector.Vector, absolute bool) vector.Vector {
	return ApplyAxes(prior, Arg(words, 'X'), Arg(words, 'Y'), Arg(words, 'Z'), absolute)
}

// UpdatePointCommand is UpdatePoint for callers holding the raw command
// text rather than pre-split words.
func UpdatePointCommand(command string, prior vector.Vector, absolute bool) vector.Vector {
	return UpdatePoint(gcode.Fields(command), prior, absolute)
}

// ApplyAxes merges the given axis values into the prior position. In
// absolute mode a present value replaces the axis outright; in relative
// mode it is added as displacement. No clamping is done here.
func ApplyAxes(prior vector.Vector, x, y, z Coord, absolute bool) vector.Vector {
	p := prior
	if absolute {
		if x.Valid {
			p.X = x.Value
		}
		if y.Valid {
			p.Y = y.Value
		}
		if z.Valid {
			p.Z = z.Value
		}
	} else {
		if x.Valid {
			p.X += x.Value
		}
		if y.Valid {
			p.Y += y.Value
		}
		if z.Valid {
			p.Z += z.Value
		}
	}
	return p
}
