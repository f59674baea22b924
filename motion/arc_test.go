package motion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcodeprep/motion"
	"gcodeprep/vector"
)

func TestAngleQuadrants(t *testing.T) {
	center := vector.Vector{}
	cases := []struct {
		point vector.Vector
		angle float64
	}{
		{vector.Vector{X: 1}, 0},
		{vector.Vector{X: 1, Y: 1}, math.Pi / 4},
		{vector.Vector{Y: 1}, math.Pi / 2},
		{vector.Vector{X: -1, Y: 1}, 3 * math.Pi / 4},
		{vector.Vector{X: -1}, math.Pi},
		{vector.Vector{X: -1, Y: -1}, 5 * math.Pi / 4},
		{vector.Vector{Y: -1}, 3 * math.Pi / 2},
		{vector.Vector{X: 1, Y: -1}, 7 * math.Pi / 4},
	}

	for _, c := range cases {
		got := motion.Angle(center, c.point)
		assert.InDelta(t, c.angle, got, 1e-9, "point %v", c.point)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 2*math.Pi)
	}
}

func TestSweep(t *testing.T) {
	cases := []struct {
		start, end float64
		clockwise  bool
		sweep      float64
	}{
		{0, math.Pi, false, math.Pi},
		{0, math.Pi, true, math.Pi},
		{math.Pi / 2, math.Pi / 4, true, math.Pi / 4},
		// Counter-clockwise through the positive X axis.
		{3 * math.Pi / 2, math.Pi / 2, false, math.Pi},
		// Clockwise through the positive X axis.
		{math.Pi / 2, 3 * math.Pi / 2, true, math.Pi},
		// An end angle of zero reads as a wrap to 2π.
		{math.Pi, 0, false, math.Pi},
	}

	for _, c := range cases {
		got := motion.Sweep(c.start, c.end, c.clockwise)
		assert.InDelta(t, c.sweep, got, 1e-9, "start=%v end=%v cw=%v", c.start, c.end, c.clockwise)
		assert.Greater(t, got, 0.0)
	}
}

func TestSweepFullCircle(t *testing.T) {
	assert.Equal(t, 2*math.Pi, motion.Sweep(1.2345, 1.2345, true))
	assert.Equal(t, 2*math.Pi, motion.Sweep(1.2345, 1.2345, false))
	assert.Equal(t, 2*math.Pi, motion.Sweep(0, 0, true))
}

func TestExpandSemicircle(t *testing.T) {
	arc := motion.Arc{
		Start:  vector.Vector{X: 10},
		End:    vector.Vector{X: -10},
		Center: vector.Vector{},
	}

	// Arc length is 10π; a segment length of 8 gives ceil(10π/8) = 4
	// points: three intermediates plus the endpoint.
	points := arc.Expand(0, 8)
	require.Len(t, points, 4)

	for _, p := range points[:3] {
		assert.InDelta(t, 10, p.Diff(arc.Center).Norm(), 1e-6, "point %v", p)
	}

	// The endpoint is emitted verbatim, not recomputed.
	assert.Equal(t, arc.End, points[3])

	assert.InDelta(t, 10*math.Cos(math.Pi/4), points[0].X, 1e-9)
	assert.InDelta(t, 10*math.Sin(math.Pi/4), points[0].Y, 1e-9)
	assert.InDelta(t, 0, points[1].X, 1e-9)
	assert.InDelta(t, 10, points[1].Y, 1e-9)
}

func TestExpandBelowThreshold(t *testing.T) {
	arc := motion.Arc{
		Start:  vector.Vector{X: 1},
		End:    vector.Vector{X: math.Cos(0.01), Y: math.Sin(0.01)},
		Center: vector.Vector{},
		Radius: 1,
	}

	assert.Nil(t, arc.Expand(1000, 0))
}

func TestExpandDefaultPointCount(t *testing.T) {
	arc := motion.Arc{
		Start:  vector.Vector{X: 10},
		End:    vector.Vector{X: -10},
		Center: vector.Vector{},
		Radius: 10,
	}

	points := arc.Expand(0, 0)
	assert.Len(t, points, 20)
	assert.Equal(t, arc.End, points[len(points)-1])
}

func TestExpandHelical(t *testing.T) {
	arc := motion.Arc{
		Start:  vector.Vector{X: 10},
		End:    vector.Vector{X: -10, Z: 4},
		Center: vector.Vector{},
		Radius: 10,
	}

	points := arc.Expand(0, 8)
	require.Len(t, points, 4)

	// Z climbs linearly with angular progress.
	assert.InDelta(t, 1, points[0].Z, 1e-9)
	assert.InDelta(t, 2, points[1].Z, 1e-9)
	assert.InDelta(t, 3, points[2].Z, 1e-9)
	assert.Equal(t, 4.0, points[3].Z)
}

func TestExpandClockwise(t *testing.T) {
	arc := motion.Arc{
		Start:     vector.Vector{X: 10},
		End:       vector.Vector{X: -10},
		Center:    vector.Vector{},
		Clockwise: true,
		Radius:    10,
	}

	points := arc.Expand(0, 8)
	require.Len(t, points, 4)

	// Clockwise from angle 0 dives below the X axis.
	assert.Less(t, points[0].Y, 0.0)
	assert.Equal(t, arc.End, points[3])
}

func TestSegmentsExactEndpoint(t *testing.T) {
	arc := motion.Arc{
		Start:  vector.Vector{X: 3.3333333333},
		End:    vector.Vector{X: -3.3333333333, Y: 1e-12},
		Center: vector.Vector{},
		Radius: 0,
	}

	points := arc.Segments(0, math.Pi, 7)
	assert.Equal(t, arc.End, points[len(points)-1])
}
