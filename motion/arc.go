package motion

import "gcodeprep/vector"

import "math"

// Arc describes a circular move between two points. A zero Radius means
// "derive it from the center and the endpoints".
type Arc struct {
	Start, End, Center vector.Vector
	Clockwise          bool
	Radius             float64
}

// Expand approximates the arc with a sequence of positions, excluding
// Start and ending exactly on End. When minArcLength is positive and the
// arc is shorter than it, nil is returned: the arc is too short to be
// worth expanding and the caller keeps the original command. When
// segmentLength is positive the point count is ceil(arcLength /
// segmentLength); with only a minArcLength policy an implicit segment
// length of arcLength/minArcLength is used; with neither, 20 points.
func (a Arc) Expand(minArcLength, segmentLength float64) []vector.Vector {
	radius := a.Radius

	// Calculate radius if necessary.
	if radius == 0 {
		radius = math.Sqrt(math.Pow(a.Start.X-a.Center.X, 2) + math.Pow(a.End.Y-a.Center.Y, 2))
	}

	startAngle := Angle(a.Center, a.Start)
	endAngle := Angle(a.Center, a.End)
	sweep := Sweep(startAngle, endAngle, a.Clockwise)

	arcLength := sweep * radius

	if minArcLength > 0 && arcLength < minArcLength {
		return nil
	}

	numPoints := 20

	if segmentLength <= 0 && minArcLength > 0 {
		segmentLength = arcLength / minArcLength
	}
	if segmentLength > 0 {
		numPoints = int(math.Ceil(arcLength / segmentLength))
	}

	return a.Segments(startAngle, sweep, numPoints)
}

// Segments generates numPoints positions along the arc: numPoints-1
// intermediate points stepped by sweep/numPoints from startAngle, plus End
// itself as the final element. Intermediate Z values are interpolated
// linearly for helical moves; End is appended verbatim so rounding error
// never reaches the endpoint.
func (a Arc) Segments(startAngle, sweep float64, numPoints int) []vector.Vector {
	if numPoints < 1 {
		return []vector.Vector{a.End}
	}

	radius := a.Radius
	if radius == 0 {
		radius = math.Sqrt(math.Pow(a.Start.X-a.Center.X, 2) + math.Pow(a.Start.Y-a.Center.Y, 2))
	}

	segments := make([]vector.Vector, 0, numPoints)
	z := a.Start.Z
	zIncrement := (a.End.Z - a.Start.Z) / float64(numPoints)

	for i := 1; i < numPoints; i++ {
		var angle float64
		if a.Clockwise {
			angle = startAngle - sweep*float64(i)/float64(numPoints)
		} else {
			angle = startAngle + sweep*float64(i)/float64(numPoints)
		}
		if angle >= math.Pi*2 {
			angle -= math.Pi * 2
		}

		z += zIncrement
		segments = append(segments, vector.Vector{
			X: math.Cos(angle)*radius + a.Center.X,
			Y: math.Sin(angle)*radius + a.Center.Y,
			Z: z,
		})
	}

	return append(segments, a.End)
}
