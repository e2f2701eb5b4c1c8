// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Example: Reader Input demonstrates parsing from an io.Reader. The
// input here is UTF-16LE with a byte order mark; the parser detects the
// encoding from the stream and reads on demand.

package main

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/yamlio/yamlio"
)

func main() {
	fmt.Println("Example 3: Reader Input")

	p := yamlio.NewReaderParser(bytes.NewReader(utf16le("greeting: hello\n")), yamlio.EncodingAny)
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
		if event.Kind == yamlio.StreamStart && event.Encoding == yamlio.EncodingUTF16LE {
			fmt.Println("detected UTF-16LE input")
		}
		fmt.Println(event)
	}
}

// utf16le encodes text as UTF-16LE with a leading byte order mark.
func utf16le(text string) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0xff, 0xfe})
	for _, unit := range utf16.Encode([]rune(text)) {
		buf.WriteByte(byte(unit))
		buf.WriteByte(byte(unit >> 8))
	}
	return buf.Bytes()
}
