package motion

import "gcodeprep/vector"

import "math"

// Angle returns the angle of the ray from center to point, normalized into
// [0, 2π). Quadrants are resolved explicitly so the zero-dx cases land on
// π/2 and 3π/2 rather than dividing by zero.
func Angle(center, point vector.Vector) float64 {
	dx := point.X - center.X
	dy := point.Y - center.Y

	if dx == 0 {
		if dy > 0 {
			return math.Pi / 2
		}
		return math.Pi * 3 / 2
	}

	switch {
	case dx > 0 && dy >= 0:
		return math.Atan(dy / dx)
	case dx < 0 && dy >= 0:
		return math.Pi - math.Abs(math.Atan(dy/dx))
	case dx < 0 && dy < 0:
		return math.Pi + math.Abs(math.Atan(dy/dx))
	default: // dx > 0, dy < 0
		return math.Pi*2 - math.Abs(math.Atan(dy/dx))
	}
}

// Sweep returns the strictly positive angular distance traveled from
// startAngle to endAngle in the given direction. Equal angles mean a full
// circle, and an end angle of exactly zero is the wrap onto the positive X
// axis and reads as 2π.
func Sweep(startAngle, endAngle float64, clockwise bool) float64 {
	if startAngle == endAngle {
		return math.Pi * 2
	}

	if endAngle == 0 {
		endAngle = math.Pi * 2
	}

	switch {
	case !clockwise && endAngle < startAngle:
		return (math.Pi*2 - startAngle) + endAngle
	case clockwise && endAngle > startAngle:
		return (math.Pi*2 - endAngle) + startAngle
	default:
		return math.Abs(endAngle - startAngle)
	}
}
