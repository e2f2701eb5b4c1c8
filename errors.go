// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the public error surface. Every failure reported by
// a parser or one of its streams is an *Error carrying the kind of the
// failing stage, the engine's description of the problem, and the
// position details the engine attributes to it.

package yamlio

import (
	"fmt"
	"strings"

	"github.com/yamlio/yamlio/internal/libyaml"
)

// ErrorKind classifies a parse failure by the stage that produced it.
// See internal/libyaml.ErrorType.
type ErrorKind = libyaml.ErrorType

// Re-export ErrorKind constants
const (
	// NoError is the zero ErrorKind and never appears on a returned Error.
	NoError = libyaml.NO_ERROR

	MemoryError   = libyaml.MEMORY_ERROR   // Cannot allocate or reallocate a block of memory.
	ReaderError   = libyaml.READER_ERROR   // Cannot read or decode the input stream.
	ScannerError  = libyaml.SCANNER_ERROR  // Cannot scan the input stream.
	ParserError   = libyaml.PARSER_ERROR   // Cannot parse the input stream.
	ComposerError = libyaml.COMPOSER_ERROR // Cannot compose a YAML document.
)

// ErrorContext holds the position details of a parse failure.
type ErrorContext struct {
	// Offset is the byte offset of the problem in the input stream.
	Offset int

	// Mark is the position of the problem.
	Mark Mark

	// Context and ContextMark describe the surrounding construct the
	// engine was working on when it failed, when it reports one
	// ("while parsing a block mapping", ...).
	Context     string
	ContextMark Mark
}

// Error is the error type returned by parsers and their streams.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Problem describes the failure.
	Problem string

	// Context holds the position of the failure in the input, when the
	// engine attributes it to one.
	Context *ErrorContext

	// IO holds the reader failure behind a ReaderError, when the input
	// adapter captured one. It is nil for decoding failures such as
	// invalid UTF-8 in the input bytes.
	IO error
}

func (e *Error) Error() string {
	var builder strings.Builder
	builder.WriteString("yaml: ")
	if e.Kind == ReaderError {
		if e.Context != nil {
			fmt.Fprintf(&builder, "offset %d: ", e.Context.Offset)
		}
		builder.WriteString(e.Problem)
		return builder.String()
	}
	if c := e.Context; c != nil {
		if len(c.Context) > 0 {
			fmt.Fprintf(&builder, "%s at %s: ", c.Context, c.ContextMark)
		}
		if len(c.Context) == 0 || c.ContextMark != c.Mark {
			fmt.Fprintf(&builder, "%s: ", c.Mark)
		}
	}
	builder.WriteString(e.Problem)
	return builder.String()
}

// Unwrap exposes the captured reader failure to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.IO
}

// convertError translates a typed engine failure into the public form.
func convertError(err error) *Error {
	switch e := err.(type) {
	case libyaml.ScannerError:
		return &Error{
			Kind:    ScannerError,
			Problem: e.Message,
			Context: &ErrorContext{
				Offset:      e.Mark.Index,
				Mark:        e.Mark,
				Context:     e.ContextMessage,
				ContextMark: e.ContextMark,
			},
		}
	case libyaml.ParserError:
		return &Error{
			Kind:    ParserError,
			Problem: e.Message,
			Context: &ErrorContext{
				Offset:      e.Mark.Index,
				Mark:        e.Mark,
				Context:     e.ContextMessage,
				ContextMark: e.ContextMark,
			},
		}
	case libyaml.ReaderError:
		return &Error{
			Kind:    ReaderError,
			Problem: e.Err.Error(),
			Context: &ErrorContext{Offset: e.Offset},
		}
	}
	return &Error{Kind: ParserError, Problem: err.Error()}
}
