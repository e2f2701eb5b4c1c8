// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yamlio/yamlio"
)

func newLoadCmd() *cobra.Command {
	var encodingName string

	cmd := &cobra.Command{
		Use:   "load [file]",
		Short: "Compose documents and print each root as JSON, one per line",
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
			docs := p.Documents()
			var buf bytes.Buffer
			for {
				doc, err := docs.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return fmt.Errorf("load documents: %w", err)
				}
				buf.Reset()
				if err := appendJSON(&buf, doc.Root); err != nil {
					return err
				}
				buf.WriteByte('\n')
				if _, err := out.Write(buf.Bytes()); err != nil {
					return err
				}
			}
		},
	}

	cmd.Flags().StringVarP(&encodingName, "encoding", "e", "any", "stream encoding (any, utf8, utf16le, utf16be)")

	return cmd
}

// appendJSON renders a node tree as JSON. Scalars render as JSON
// strings and mapping pairs keep their input order, unlike a detour
// through a Go map.
func appendJSON(buf *bytes.Buffer, n *yamlio.Node) error {
	switch n.Kind {
	case yamlio.ScalarNode:
		b, err := json.Marshal(n.Value)
		if err != nil {
			return err
		}
		buf.Write(b)
	case yamlio.SequenceNode:
		buf.WriteByte('[')
		for i, child := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, child); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yamlio.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key := n.Content[i]
			if key.Kind != yamlio.ScalarNode {
				return errors.New("cannot render a non-scalar mapping key as JSON")
			}
			b, err := json.Marshal(key.Value)
			if err != nil {
				return err
			}
			buf.Write(b)
			buf.WriteByte(':')
			if err := appendJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
