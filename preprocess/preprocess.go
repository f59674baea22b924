// Package preprocess runs commands through the motion pipeline one line at
// a time: normalize, tokenize, track addressing modes and position, and
// expand circular moves into linear ones for controllers that only take
// those. The processor holds nothing but the machine context a caller
// would otherwise thread through every call.
package preprocess

import "gcodeprep/export"
import "gcodeprep/gcode"
import "gcodeprep/motion"
import "gcodeprep/normalize"
import "gcodeprep/vector"

import "bufio"
import "errors"
import "fmt"
import "io"
import "math"
import "strconv"

// Settings control how commands are rewritten.
type Settings struct {
	// Precision is the number of fractional digits for generated moves.
	Precision int

	// MinArcLength is the arc length below which an arc is not expanded
	// and the original command is passed through.
	MinArcLength float64

	// SegmentLength is the maximum length of a generated line segment.
	SegmentLength float64

	// TruncateDigits, when positive, reformats decimals on passthrough
	// lines to that many fractional digits.
	TruncateDigits int

	// FeedOverride, when positive, rescales every F word to this percent
	// of its value.
	FeedOverride float64
}

// Processor feeds lines through the pipeline while tracking the machine
// context: current position, G90/G91 and G90.1/G91.1 addressing, and the
// modal motion mode.
type Processor struct {
	settings Settings

	pos         vector.Vector
	absolute    bool
	absoluteIJK bool
	mode        int
	line        int
}

func New(settings Settings) *Processor {
	if settings.Precision <= 0 {
		settings.Precision = 4
	}
	return &Processor{
		settings: settings,
		absolute: true,
	}
}

// Position returns the resolved position after the last processed line.
func (p *Processor) Position() vector.Vector {
	return p.pos
}

// SetPosition seeds the machine position, for callers resuming mid-program.
func (p *Processor) SetPosition(pos vector.Vector) {
	p.pos = pos
}

// Line processes a single raw line and returns the commands to send in its
// place. A comment-only line yields no output. Arc resolution failures are
// returned together with the original command passed through unexpanded;
// the caller decides whether to keep going.
func (p *Processor) Line(raw string) ([]string, error) {
	p.line++

	cleaned := normalize.RemoveComment(raw)
	if cleaned == "" {
		return nil, nil
	}
	if p.settings.FeedOverride > 0 {
		cleaned = normalize.OverrideSpeed(cleaned, p.settings.FeedOverride)
	}

	words := gcode.Fields(cleaned)
	p.updateModes(words)

	if (p.mode == 2 || p.mode == 3) && hasMotionWords(words) {
		return p.expandArc(cleaned, words)
	}

	p.pos = motion.UpdatePoint(words, p.pos, p.absolute)

	out := cleaned
	if p.settings.TruncateDigits > 0 {
		out = normalize.TruncateDecimals(p.settings.TruncateDigits, out)
	}
	return []string{out}, nil
}

// Program processes everything from r. Lines whose arcs cannot be resolved
// are kept unexpanded; the errors are joined and returned after the whole
// program has been read.
func (p *Processor) Program(r io.Reader) ([]string, error) {
	var (
		out  []string
		errs []error
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines, err := p.Line(scanner.Text())
		if err != nil {
			errs = append(errs, err)
		}
		out = append(out, lines...)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}

	return out, errors.Join(errs...)
}

// updateModes tracks the modal state a command changes. The G words are
// matched as floats so that G90.1 is not mistaken for G90.
func (p *Processor) updateModes(words gcode.Words) {
	for _, lit := range words.All('G') {
		g, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			continue
		}
		switch g {
		case 0, 1, 2, 3:
			p.mode = int(g)
		case 90:
			p.absolute = true
		case 91:
			p.absolute = false
		case 90.1:
			p.absoluteIJK = true
		case 91.1:
			p.absoluteIJK = false
		}
	}
}

func (p *Processor) expandArc(cleaned string, words gcode.Words) ([]string, error) {
	clockwise := p.mode == 2
	start := p.pos
	next := motion.UpdatePoint(words, start, p.absolute)

	center, err := motion.UpdateCenter(words, start, next, p.absoluteIJK, clockwise)
	if err != nil {
		p.pos = next
		return []string{cleaned}, fmt.Errorf("line %d: %w", p.line, err)
	}

	radius := center.Diff(start).Norm()
	if r, ok := words.Number('R'); ok && !hasOffsetWords(words) {
		radius = math.Abs(r)
	}

	arc := motion.Arc{
		Start:     start,
		End:       next,
		Center:    center,
		Clockwise: clockwise,
		Radius:    radius,
	}

	points := arc.Expand(p.settings.MinArcLength, p.settings.SegmentLength)
	p.pos = next
	if points == nil {
		// Below the expansion threshold: the controller gets the arc as is.
		return []string{cleaned}, nil
	}

	lines := export.LinearMoves(start, points, p.absolute, p.settings.Precision)
	if f, ok := words.Number('F'); ok && len(lines) > 0 {
		lines[0] += "F" + export.FormatFloat(f, p.settings.Precision)
	}
	return lines, nil
}

func hasMotionWords(words gcode.Words) bool {
	for _, address := range []rune{'X', 'Y', 'Z', 'I', 'J', 'K', 'R'} {
		if _, ok := words.Number(address); ok {
			return true
		}
	}
	return false
}

func hasOffsetWords(words gcode.Words) bool {
	for _, address := range []rune{'I', 'J', 'K'} {
		if _, ok := words.Number(address); ok {
			return true
		}
	}
	return false
}
