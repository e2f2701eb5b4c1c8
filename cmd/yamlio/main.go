// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary inspects YAML streams with the yamlio parser: the events
// subcommand prints the raw parsing events, the load subcommand
// composes documents and prints each root as JSON.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamlio/yamlio"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "yamlio",
		Short: "A streaming YAML parser",
	}

	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newLoadCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseEncoding maps the --encoding flag to a stream encoding.
func parseEncoding(name string) (yamlio.Encoding, error) {
	switch name {
	case "", "any":
		return yamlio.EncodingAny, nil
	case "utf8":
		return yamlio.EncodingUTF8, nil
	case "utf16le":
		return yamlio.EncodingUTF16LE, nil
	case "utf16be":
		return yamlio.EncodingUTF16BE, nil
	}
	return yamlio.EncodingAny, fmt.Errorf("unknown encoding: %s", name)
}

// openInput returns the named file, or stdin when no argument is given.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}
