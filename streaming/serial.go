package streaming

import "github.com/joushou/goserial"

// ConnectSerial opens the serial device a controller hangs off of and
// performs the handshake. Grbl speaks 115200 baud by default.
func (s *GrblStreamer) ConnectSerial(device string, baud int) error {
	if baud <= 0 {
		baud = 115200
	}

	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return err
	}

	return s.connect(port)
}
