// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Event Stream demonstrates pulling parsing events one at a
// time from a byte-backed parser.

package main

import (
	"fmt"
	"io"

	"github.com/yamlio/yamlio"
)

func main() {
	fmt.Println("Example 1: Event Stream")

	input := `---
name: app1
tags: [stable, fast]
`

	p := yamlio.NewByteParser([]byte(input), yamlio.EncodingAny)
	defer p.Close()

	events := p.Events()
	for {
		event, err := events.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}
		fmt.Println(event)
	}
}
