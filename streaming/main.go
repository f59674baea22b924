// Package streaming sends preprocessed command lines to a motion
// controller, pacing them against the controller's acknowledgements.
package streaming

// Streamer is a connected controller accepting one command line at a time.
type Streamer interface {
	Check(lines []string) error
	Send(lines []string, progress chan int) error
	Pause()
	Resume()
	Stop()
}
