package streaming

import "gcodeprep/gcode"

import "bufio"
import "errors"
import "fmt"
import "io"
import "log/slog"
import "strings"

// Result is a single response line from the controller, classified.
type Result struct {
	level   string
	message string
}

func readResult(reader *bufio.Reader) Result {
	c, err := reader.ReadBytes('\n')
	if err != nil {
		return Result{"io-error", err.Error()}
	}
	b := strings.TrimRight(string(c), "\r\n")
	switch {
	case b == "ok":
		return Result{"ok", ""}
	case strings.HasPrefix(strings.ToLower(b), "error"):
		return Result{"error", strings.TrimLeft(b[5:], ": ")}
	case strings.HasPrefix(strings.ToLower(b), "alarm"):
		return Result{"alarm", strings.TrimLeft(b[5:], ": ")}
	default:
		return Result{"info", b}
	}
}

// GrblStreamer drives a Grbl controller over any byte transport. Grbl has
// a 127 byte receive buffer; lines are streamed ahead until the buffer
// would overflow, then acknowledgements are drained before sending more.
type GrblStreamer struct {
	Log *slog.Logger

	port   io.ReadWriteCloser
	reader *bufio.Reader
	writer *bufio.Writer
}

const grblBuffer = 127

func (s *GrblStreamer) logger() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

// connect wraps the transport and waits for the Grbl banner.
func (s *GrblStreamer) connect(port io.ReadWriteCloser) error {
	s.port = port
	s.reader = bufio.NewReader(port)
	s.writer = bufio.NewWriter(port)

	for {
		c, err := s.reader.ReadBytes('\n')
		m := strings.TrimRight(string(c), "\r\n")
		if strings.HasPrefix(m, "Grbl ") && strings.Contains(m, "['$' for help]") {
			s.logger().Info("controller initialized", "banner", m)
			return nil
		}
		if err != nil {
			port.Close()
			return errors.New("unable to detect initialized Grbl")
		}
	}
}

// Check scans lines for words Grbl cannot execute, so a stream does not
// die halfway through a cut.
func (s *GrblStreamer) Check(lines []string) error {
	for i, line := range lines {
		for _, g := range gcode.GCodes(line) {
			if g == 41 || g == 42 {
				return fmt.Errorf("line %d: cutter compensation not supported by Grbl", i+1)
			}
		}
		for _, m := range gcode.MCodes(line) {
			if m == 7 {
				return fmt.Errorf("line %d: mist coolant not supported by Grbl", i+1)
			}
		}
	}
	return nil
}

// Send streams lines, reporting each acknowledged line index on progress.
// The progress channel is closed when the stream ends, successfully or not.
func (s *GrblStreamer) Send(lines []string, progress chan int) error {
	defer close(progress)

	var (
		inflight int
		okCnt    int
		pending  []string
	)

	handle := func(res Result) error {
		switch res.level {
		case "io-error":
			return fmt.Errorf("read from controller: %s", res.message)
		case "error":
			return fmt.Errorf("error from controller: %s", res.message)
		case "alarm":
			return fmt.Errorf("alarm from controller: %s", res.message)
		case "info":
			s.logger().Info("controller message", "message", res.message)
			return nil
		default:
			x := pending[0]
			pending = pending[1:]
			inflight -= len(x)
			progress <- okCnt
			okCnt++
			return nil
		}
	}

	for _, line := range lines {
		x := line + "\n"
		inflight += len(x)
		pending = append(pending, x)

		for inflight > grblBuffer {
			if err := handle(readResult(s.reader)); err != nil {
				return err
			}
		}

		if _, err := s.writer.WriteString(x); err != nil {
			return fmt.Errorf("send to controller: %w", err)
		}
		if err := s.writer.Flush(); err != nil {
			return fmt.Errorf("flush to controller: %w", err)
		}
	}

	for okCnt < len(lines) {
		if err := handle(readResult(s.reader)); err != nil {
			return err
		}
	}

	return nil
}

// Pause issues the realtime feed hold.
func (s *GrblStreamer) Pause() {
	_, _ = s.port.Write([]byte("!"))
}

// Resume releases a feed hold.
func (s *GrblStreamer) Resume() {
	_, _ = s.port.Write([]byte("~"))
}

// Stop issues a soft reset and closes the transport.
func (s *GrblStreamer) Stop() {
	_, _ = s.port.Write([]byte("\x18\n"))
	s.port.Close()
}
