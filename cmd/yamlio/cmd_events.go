// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yamlio/yamlio"
)

func newEventsCmd() *cobra.Command {
	var encodingName string
	var showMarks bool

	cmd := &cobra.Command{
		Use:   "events [file]",
		Short: "Print the parsing events of a YAML stream, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := parseEncoding(encodingName)
			if err != nil {
				return err
			}
			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			p := yamlio.NewReaderParser(in, enc)
			defer p.Close()

			out := cmd.OutOrStdout()
			events := p.Events()
			for {
				event, err := events.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return fmt.Errorf("parse events: %w", err)
				}
				line := event.String()
				if showMarks {
					line += " (" + formatMarks(event) + ")"
				}
				fmt.Fprintln(out, line)
			}
		},
	}

	cmd.Flags().StringVarP(&encodingName, "encoding", "e", "any", "stream encoding (any, utf8, utf16le, utf16be)")
	cmd.Flags().BoolVar(&showMarks, "marks", false, "append the position of each event")

	return cmd
}

// formatMarks renders the position range of an event with 1-based lines
// and 0-based columns, collapsing ranges that stay on one position or
// one line.
func formatMarks(event *yamlio.Event) string {
	start, end := event.Start, event.End
	startLine, endLine := start.Line+1, end.Line+1
	switch {
	case startLine == endLine && start.Column == end.Column:
		return fmt.Sprintf("%d:%d", startLine, start.Column)
	case startLine == endLine:
		return fmt.Sprintf("%d:%d-%d", startLine, start.Column, end.Column)
	default:
		return fmt.Sprintf("%d:%d-%d:%d", startLine, start.Column, endLine, end.Column)
	}
}
