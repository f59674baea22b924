package main

import "gcodeprep/preprocess"
import "gcodeprep/streaming"

import "errors"
import "log/slog"
import "os"
import "time"

import "github.com/cheggaaa/pb"
import "github.com/spf13/cobra"

func streamCmd() *cobra.Command {
	var (
		device string
		baud   int
		wsURL  string
	)

	cmd := &cobra.Command{
		Use:   "stream <file>",
		Short: "Preprocess a program and stream it to a Grbl controller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("device") {
				cfg.Device = device
			}
			if cmd.Flags().Changed("baud") {
				cfg.Baud = baud
			}
			if cmd.Flags().Changed("url") {
				cfg.WebsocketURL = wsURL
			}
			if cfg.Device == "" && cfg.WebsocketURL == "" {
				return errors.New("no device or websocket url provided")
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			p := preprocess.New(cfg.Settings())
			lines, err := p.Program(f)
			if err != nil {
				slog.Warn("some arcs were not expanded", "error", err)
			}

			s := &streaming.GrblStreamer{Log: slog.Default()}
			if err := s.Check(lines); err != nil {
				return err
			}

			if cfg.WebsocketURL != "" {
				err = s.ConnectWebsocket(cfg.WebsocketURL)
			} else {
				err = s.ConnectSerial(cfg.Device, cfg.Baud)
			}
			if err != nil {
				return err
			}

			sigs := make(chan string, 1)
			registerSignals(sigs)
			go func() {
				for sig := range sigs {
					switch sig {
					case "interrupt":
						slog.Info("stopping stream")
						s.Stop()
						os.Exit(7)
					case "stop":
						slog.Info("feed hold")
						s.Pause()
					}
				}
			}()

			start := time.Now()
			pBar := pb.StartNew(len(lines))
			pBar.Format("[=> ]")

			progress := make(chan int)
			done := make(chan error, 1)
			go func() {
				done <- s.Send(lines, progress)
			}()
			for range progress {
				pBar.Increment()
			}
			pBar.Finish()

			if err := <-done; err != nil {
				s.Stop()
				return err
			}

			slog.Info("stream finished", "lines", len(lines), "elapsed", time.Since(start).String())
			return nil
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "Serial device of the controller")
	cmd.Flags().IntVar(&baud, "baud", 115200, "Serial baud rate")
	cmd.Flags().StringVar(&wsURL, "url", "", "Websocket url of the controller bridge")
	return cmd
}
