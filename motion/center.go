package motion

import "gcodeprep/gcode"
import "gcodeprep/vector"

import "errors"
import "fmt"
import "math"

var (
	// ErrArcUnderspecified reports an arc with neither IJK offsets nor a
	// radius word. The command cannot produce a center at all, which is
	// different from an axis simply not moving.
	ErrArcUnderspecified = errors.New("arc has no IJK offsets and no radius")

	// ErrArcRadius reports a radius smaller than half the chord between
	// the two endpoints. No circle of that radius passes through both, and
	// clamping would fabricate a center, so the resolution fails instead.
	ErrArcRadius = errors.New("arc radius smaller than half the chord")
)

// UpdateCenter resolves the center of an arc command. When any of I, J or K
// is present they are treated exactly like X, Y and Z are for endpoints,
// against the current position and under the machine's IJK addressing mode.
// Otherwise the R word is required and the center is derived from the chord.
func UpdateCenter(words gcode.Words, current, next vector.Vector, absoluteIJK, clockwise bool) (vector.Vector, error) {
	i := Arg(words, 'I')
	j := Arg(words, 'J')
	k := Arg(words, 'K')

	if !i.Valid && !j.Valid && !k.Valid {
		r := Arg(words, 'R')
		if !r.Valid {
			return vector.Vector{}, ErrArcUnderspecified
		}
		return CenterFromRadius(current, next, r.Value, absoluteIJK, clockwise)
	}

	return ApplyAxes(current, i, j, k, absoluteIJK), nil
}

// CenterFromRadius derives an arc center from the chord between current and
// next and the requested radius. A negative radius selects the arc longer
// than a half turn between the same two endpoints. The center Z carries the
// current Z; arcs are planar here and helical Z is interpolated separately.
func CenterFromRadius(current, next vector.Vector, radius float64, absoluteIJK, clockwise bool) (vector.Vector, error) {
	dx := next.X - current.X
	dy := next.Y - current.Y

	h2 := 4*radius*radius - dx*dx - dy*dy
	if h2 < 0 {
		return vector.Vector{}, fmt.Errorf("%w: R=%g, chord=%g", ErrArcRadius, radius, math.Hypot(dx, dy))
	}

	h := -math.Sqrt(h2) / math.Hypot(dx, dy)
	if !clockwise {
		h = -h
	}
	if radius < 0 {
		h = -h
	}

	offsetX := 0.5 * (dx - dy*h)
	offsetY := 0.5 * (dy + dx*h)

	if absoluteIJK {
		return vector.Vector{X: offsetX, Y: offsetY, Z: current.Z}, nil
	}
	return vector.Vector{X: current.X + offsetX, Y: current.Y + offsetY, Z: current.Z}, nil
}
