package gcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gcodeprep/gcode"
)

func TestGCodes(t *testing.T) {
	cases := []struct {
		command string
		codes   []int
	}{
		{"G0G1", []int{0, 1}},
		{"G01", []int{1}},
		{"g2 X5 I2.5", []int{2}},
		{"G90 G21 G0 X0", []int{90, 21, 0}},
		{"M3 S1000", nil},
		{"", nil},
	}

	for _, c := range cases {
		assert.Equal(t, c.codes, gcode.GCodes(c.command), "command %q", c.command)
	}
}

func TestMCodes(t *testing.T) {
	assert.Equal(t, []int{3, 9}, gcode.MCodes("M3 S1000 M09"))
	assert.Nil(t, gcode.MCodes("G1 X5"))
}

func TestCodes(t *testing.T) {
	assert.Equal(t, []int{0, 1}, gcode.Codes("G0G1", 'G'))
	assert.Equal(t, []int{6}, gcode.Codes("t06", 'T'))
	assert.Nil(t, gcode.Codes("G1", 'M'))
}
