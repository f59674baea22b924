package motion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcodeprep/gcode"
	"gcodeprep/motion"
	"gcodeprep/vector"
)

func TestUpdatePointNoAxes(t *testing.T) {
	prior := vector.Vector{X: 1.25, Y: -2.5, Z: 0.125}
	words := gcode.Fields("G1 F500")

	assert.Equal(t, prior, motion.UpdatePoint(words, prior, true))
	assert.Equal(t, prior, motion.UpdatePoint(words, prior, false))
}

func TestUpdatePointAbsolutePartial(t *testing.T) {
	prior := vector.Vector{X: 1.1, Y: 2.0000000003, Z: -7.77}
	got := motion.UpdatePointCommand("G1X10.5", prior, true)

	assert.Equal(t, 10.5, got.X)

	// Unspecified axes keep their prior value bit for bit.
	assert.Equal(t, prior.Y, got.Y)
	assert.Equal(t, prior.Z, got.Z)
}

func TestUpdatePointRelative(t *testing.T) {
	prior := vector.Vector{X: 1, Y: 2, Z: 3}
	got := motion.UpdatePointCommand("X1.5Y-0.5", prior, false)

	assert.InDelta(t, 2.5, got.X, 1e-12)
	assert.InDelta(t, 1.5, got.Y, 1e-12)
	assert.Equal(t, prior.Z, got.Z)
}

func TestUpdatePointRoundTrip(t *testing.T) {
	prior := vector.Vector{X: 3.25, Y: -8.5, Z: 0.1}
	next := motion.UpdatePointCommand("X10.5Y-3.2Z4", prior, true)

	// Feeding the displacement back in relative mode lands on the same
	// final position.
	d := next.Diff(prior)
	again := motion.ApplyAxes(prior,
		motion.Coord{Value: d.X, Valid: true},
		motion.Coord{Value: d.Y, Valid: true},
		motion.Coord{Value: d.Z, Valid: true},
		false)

	assert.InDelta(t, next.X, again.X, 1e-9)
	assert.InDelta(t, next.Y, again.Y, 1e-9)
	assert.InDelta(t, next.Z, again.Z, 1e-9)
}

func TestUpdatePointMalformedAxis(t *testing.T) {
	prior := vector.Vector{X: 5}
	words := gcode.Fields("X.Y2")
	require.NotEmpty(t, words)

	got := motion.UpdatePoint(words, prior, true)
	assert.Equal(t, 5.0, got.X)
	assert.Equal(t, 2.0, got.Y)
}
