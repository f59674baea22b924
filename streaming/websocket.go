package streaming

import "github.com/gorilla/websocket"

import "io"

// ConnectWebsocket dials a controller exposed over a websocket serial
// bridge (ESP3D and friends) and performs the handshake.
func (s *GrblStreamer) ConnectWebsocket(url string) error {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return err
	}

	return s.connect(&wsPort{conn: conn})
}

// wsPort adapts a websocket connection to the byte stream the streamer
// reads and writes. Incoming messages are consumed as a contiguous stream;
// each write goes out as one message.
type wsPort struct {
	conn *websocket.Conn
	r    io.Reader
}

func (w *wsPort) Read(p []byte) (int, error) {
	for {
		if w.r == nil {
			_, r, err := w.conn.NextReader()
			if err != nil {
				return 0, err
			}
			w.r = r
		}
		n, err := w.r.Read(p)
		if err == io.EOF {
			w.r = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

func (w *wsPort) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *wsPort) Close() error {
	return w.conn.Close()
}
