// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Document Stream demonstrates composing document trees and
// walking their nodes, including a shared node behind an alias.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/yamlio/yamlio"
)

func main() {
	fmt.Println("Example 2: Document Stream")

	multiDoc := `---
defaults: &base
  retries: "3"
service: *base
---
- one
- two
`

	p := yamlio.NewByteParser([]byte(multiDoc), yamlio.EncodingAny)
	defer p.Close()

	docs := p.Documents()
	docNum := 1
	for {
		doc, err := docs.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		fmt.Printf("Document %d (anchors: %d):\n", docNum, len(doc.Anchors))
		walk(doc.Root, 1)
		docNum++
	}
}

// walk prints a node tree with one indented line per node.
func walk(n *yamlio.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case yamlio.ScalarNode:
		fmt.Printf("%sscalar %q\n", indent, n.Value)
	case yamlio.SequenceNode:
		fmt.Printf("%ssequence (%d items)\n", indent, len(n.Content))
		for _, child := range n.Content {
			walk(child, depth+1)
		}
	case yamlio.MappingNode:
		fmt.Printf("%smapping (%d pairs)\n", indent, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			fmt.Printf("%s  %q:\n", indent, n.Content[i].Value)
			walk(n.Content[i+1], depth+2)
		}
	}
}
