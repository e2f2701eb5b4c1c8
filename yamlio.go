// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yamlio implements streaming YAML parsing for the Go language.
//
// Source code and other details for the project are available at GitHub:
//
//	https://github.com/yamlio/yamlio
//
// A parser binds to its input once, at construction, and is drained
// through exactly one of two pull streams: the event stream yields the
// parsing events one at a time, while the document stream composes
// whole document trees. Both report exhaustion with io.EOF.
//
// Usage:
//
//	p := yamlio.NewByteParser(data, yamlio.EncodingAny)
//	defer p.Close()
//	events := p.Events()
//	for {
//		event, err := events.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		fmt.Println(event)
//	}
//
// This file contains:
// - Package documentation
// - Type and constant re-exports from internal/libyaml
package yamlio

import (
	"github.com/yamlio/yamlio/internal/libyaml"
)

//-----------------------------------------------------------------------------
// Type and constant re-exports
//-----------------------------------------------------------------------------

// Stream position and encoding types
type (
	// Mark holds the position of a stream construct: byte index, line,
	// and column. See internal/libyaml.Mark.
	Mark = libyaml.Mark

	// Encoding represents the character encoding of a YAML stream.
	Encoding = libyaml.Encoding
)

// Encoding constants for YAML stream encoding
const (
	// EncodingAny lets the parser choose the encoding.
	EncodingAny = libyaml.ANY_ENCODING

	// EncodingUTF8 is the default UTF-8 encoding.
	EncodingUTF8 = libyaml.UTF8_ENCODING

	// EncodingUTF16LE is UTF-16-LE encoding with BOM.
	EncodingUTF16LE = libyaml.UTF16LE_ENCODING

	// EncodingUTF16BE is UTF-16-BE encoding with BOM.
	EncodingUTF16BE = libyaml.UTF16BE_ENCODING
)

// Event style types for the three styled event kinds
type (
	// ScalarStyle represents the presentation style of a scalar event.
	ScalarStyle = libyaml.ScalarStyle

	// SequenceStyle represents the presentation style of a sequence
	// event.
	SequenceStyle = libyaml.SequenceStyle

	// MappingStyle represents the presentation style of a mapping
	// event.
	MappingStyle = libyaml.MappingStyle
)

// Scalar style constants
const (
	ScalarStyleAny          = libyaml.ANY_SCALAR_STYLE
	ScalarStylePlain        = libyaml.PLAIN_SCALAR_STYLE
	ScalarStyleSingleQuoted = libyaml.SINGLE_QUOTED_SCALAR_STYLE
	ScalarStyleDoubleQuoted = libyaml.DOUBLE_QUOTED_SCALAR_STYLE
	ScalarStyleLiteral      = libyaml.LITERAL_SCALAR_STYLE
	ScalarStyleFolded       = libyaml.FOLDED_SCALAR_STYLE
)

// Sequence style constants
const (
	SequenceStyleAny   = libyaml.ANY_SEQUENCE_STYLE
	SequenceStyleBlock = libyaml.BLOCK_SEQUENCE_STYLE
	SequenceStyleFlow  = libyaml.FLOW_SEQUENCE_STYLE
)

// Mapping style constants
const (
	MappingStyleAny   = libyaml.ANY_MAPPING_STYLE
	MappingStyleBlock = libyaml.BLOCK_MAPPING_STYLE
	MappingStyleFlow  = libyaml.FLOW_MAPPING_STYLE
)
