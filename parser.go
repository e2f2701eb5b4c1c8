// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the Parser API for reading YAML input.
//
// Primary functions:
// - NewByteParser: Parse a YAML stream held in memory
// - NewReaderParser: Parse a YAML stream pulled from an io.Reader

package yamlio

import (
	"io"

	"github.com/yamlio/yamlio/internal/libyaml"
)

// Parser is the surface shared by the input-specific parsers. At most
// one event or document stream can be attached to a parser; both views
// pull from the same underlying engine, one event at a time.
//
// A Parser is not safe for concurrent use.
type Parser interface {
	// Events returns the stream of parsing events.
	Events() *EventStream

	// Documents returns the stream of composed documents.
	Documents() *DocumentStream

	// Close releases the engine state held by the parser. It is safe to
	// call Close more than once. Pulling from a stream after Close
	// panics.
	Close() error

	parseOne(event *libyaml.Event) bool
	buildError() *Error
}

// baseParser owns the engine handle and the retained failure shared by
// both input adapters.
type baseParser struct {
	parser    libyaml.Parser
	err       error
	destroyed bool
	claimed   bool
}

// parseOne advances the engine by one event. It reports false on
// failure, leaving the failure for buildError. After the stream end the
// engine leaves the event slot empty and parseOne keeps reporting true.
func (p *baseParser) parseOne(event *libyaml.Event) bool {
	if p.destroyed {
		panic("must not parse after the parser is closed")
	}
	if err := p.parser.Parse(event); err != nil {
		if err == io.EOF {
			return true
		}
		p.err = err
		return false
	}
	return true
}

// buildError converts the retained engine failure into the public form.
// It is only meaningful after parseOne reported false.
func (p *baseParser) buildError() *Error {
	if p.err == nil {
		return nil
	}
	return convertError(p.err)
}

// claim marks the parser as consumed by a stream.
func (p *baseParser) claim() {
	if p.claimed {
		panic("must attach at most one stream to a parser")
	}
	p.claimed = true
}

func (p *baseParser) Close() error {
	if !p.destroyed {
		p.parser.Delete()
		p.destroyed = true
	}
	return nil
}

// ByteParser parses a YAML stream held in a byte slice. The slice is
// read in place and must not be modified while the parser is in use.
type ByteParser struct {
	baseParser
}

// NewByteParser creates a parser reading the YAML stream in data. The
// encoding is detected from the stream unless enc forces one.
func NewByteParser(data []byte, enc Encoding) *ByteParser {
	p := &ByteParser{}
	p.parser = libyaml.NewParser()
	if enc != EncodingAny {
		p.parser.SetEncoding(enc)
	}
	p.parser.SetInputString(data)
	return p
}

// Events returns the stream of parsing events.
func (p *ByteParser) Events() *EventStream {
	p.claim()
	return &EventStream{parser: p}
}

// Documents returns the stream of composed documents.
func (p *ByteParser) Documents() *DocumentStream {
	p.claim()
	return &DocumentStream{composer: composer{parser: p}}
}

// ReaderParser parses a YAML stream pulled from an io.Reader.
type ReaderParser struct {
	baseParser
	reader io.Reader
	ioErr  error
}

// NewReaderParser creates a parser pulling the YAML stream from r. The
// encoding is detected from the stream unless enc forces one. Input is
// read on demand, one buffer refill per engine request.
func NewReaderParser(r io.Reader, enc Encoding) *ReaderParser {
	p := &ReaderParser{reader: r}
	p.parser = libyaml.NewParser()
	if enc != EncodingAny {
		p.parser.SetEncoding(enc)
	}
	p.parser.SetInputReader(readerBridge{p})
	return p
}

// Events returns the stream of parsing events.
func (p *ReaderParser) Events() *EventStream {
	p.claim()
	return &EventStream{parser: p}
}

// Documents returns the stream of composed documents.
func (p *ReaderParser) Documents() *DocumentStream {
	p.claim()
	return &DocumentStream{composer: composer{parser: p}}
}

// buildError attaches the captured read failure to the public error and
// clears the capture slot, so a failure is reported through IO at most
// once.
func (p *ReaderParser) buildError() *Error {
	err := p.baseParser.buildError()
	if err != nil && p.ioErr != nil {
		err.IO = p.ioErr
		p.ioErr = nil
	}
	return err
}

// readerBridge forwards engine read requests to the adapter's reader
// and captures the last failure. Each request performs exactly one Read
// call.
type readerBridge struct {
	p *ReaderParser
}

func (b readerBridge) Read(buf []byte) (int, error) {
	n, err := b.p.reader.Read(buf)
	if err != nil && err != io.EOF {
		b.p.ioErr = err
	}
	return n, err
}
