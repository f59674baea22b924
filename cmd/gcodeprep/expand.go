package main

import "gcodeprep/preprocess"

import "fmt"
import "io"
import "log/slog"
import "os"
import "strings"

import "github.com/spf13/cobra"

func expandCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Expand arcs in a program and write the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			p := preprocess.New(cfg.Settings())
			lines, err := p.Program(in)
			if err != nil {
				// Failed lines are passed through unexpanded; report and
				// keep the output usable.
				slog.Warn("some arcs were not expanded", "error", err)
			}

			text := strings.Join(lines, "\n") + "\n"
			if output == "" || output == "-" {
				fmt.Print(text)
				return nil
			}
			return os.WriteFile(output, []byte(text), 0644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
