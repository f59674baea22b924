//go:build !windows

package main

import "os"
import "os/signal"
import "syscall"

// registerSignals maps process signals onto stream control events:
// interrupt aborts the stream, SIGTSTP requests a feed hold.
func registerSignals(s chan string) {
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt)
	signal.Notify(sigchan, syscall.SIGTSTP)
	go func() {
		for sig := range sigchan {
			switch sig {
			case os.Interrupt:
				s <- "interrupt"
			case syscall.SIGTSTP:
				s <- "stop"
			}
		}
	}()
}
