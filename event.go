// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the owned event representation handed out by event
// streams. Engine events live in a transient slot that is reused by the
// next parse, so every payload is deep copied here before the slot is
// released.

package yamlio

import (
	"fmt"
	"strings"

	"github.com/yamlio/yamlio/internal/libyaml"
)

// EventKind identifies the kind of a parsing event.
type EventKind int8

// The zero EventKind does not name an event.
const (
	StreamStart EventKind = 1 + iota // A STREAM-START event.
	StreamEnd                        // A STREAM-END event.
	DocumentStart                    // A DOCUMENT-START event.
	DocumentEnd                      // A DOCUMENT-END event.
	Alias                            // An ALIAS event.
	Scalar                           // A SCALAR event.
	SequenceStart                    // A SEQUENCE-START event.
	SequenceEnd                      // A SEQUENCE-END event.
	MappingStart                     // A MAPPING-START event.
	MappingEnd                       // A MAPPING-END event.
)

var eventKindStrings = []string{
	StreamStart:   "stream start",
	StreamEnd:     "stream end",
	DocumentStart: "document start",
	DocumentEnd:   "document end",
	Alias:         "alias",
	Scalar:        "scalar",
	SequenceStart: "sequence start",
	SequenceEnd:   "sequence end",
	MappingStart:  "mapping start",
	MappingEnd:    "mapping end",
}

func (k EventKind) String() string {
	if k <= 0 || int(k) >= len(eventKindStrings) {
		return fmt.Sprintf("unknown event %d", k)
	}
	return eventKindStrings[k]
}

// VersionDirective holds a %YAML directive.
type VersionDirective struct {
	Major int
	Minor int
}

// TagDirective holds a %TAG directive.
type TagDirective struct {
	Handle string
	Prefix string
}

// Event holds one parsing event with all payloads owned by the caller.
type Event struct {
	// Kind defines the kind of the event.
	Kind EventKind

	// Start and End delimit the event in the parsed input.
	Start, End Mark

	// Encoding holds the detected stream encoding (for StreamStart).
	Encoding Encoding

	// Version holds the %YAML directive of the document, if any
	// (for DocumentStart).
	Version *VersionDirective

	// TagDirectives holds the %TAG directives of the document
	// (for DocumentStart).
	TagDirectives []TagDirective

	// Anchor holds the anchor name (for Scalar, SequenceStart, and
	// MappingStart) or the referenced anchor (for Alias).
	Anchor string

	// Tag holds the tag after handle expansion (for Scalar,
	// SequenceStart, and MappingStart).
	Tag string

	// Value holds the scalar value (for Scalar).
	Value string

	// Implicit reports whether the document markers were omitted
	// (for DocumentStart and DocumentEnd) or the tag is optional for the
	// plain style (for Scalar, SequenceStart, and MappingStart).
	Implicit bool

	// QuotedImplicit reports whether the tag is optional for any
	// non-plain style (for Scalar).
	QuotedImplicit bool

	// style holds the event style before it is narrowed down to a
	// scalar, sequence, or mapping style.
	style libyaml.Style
}

func (e *Event) ScalarStyle() ScalarStyle     { return ScalarStyle(e.style) }
func (e *Event) SequenceStyle() SequenceStyle { return SequenceStyle(e.style) }
func (e *Event) MappingStyle() MappingStyle   { return MappingStyle(e.style) }

// newEvent deep copies the engine's transient event slot into an owned
// Event. The slot may be reused or deleted afterwards.
func newEvent(raw *libyaml.Event) *Event {
	e := &Event{
		Start: raw.StartMark,
		End:   raw.EndMark,
	}
	switch raw.Type {
	case libyaml.STREAM_START_EVENT:
		e.Kind = StreamStart
		e.Encoding = raw.GetEncoding()
	case libyaml.STREAM_END_EVENT:
		e.Kind = StreamEnd
	case libyaml.DOCUMENT_START_EVENT:
		e.Kind = DocumentStart
		e.Implicit = raw.Implicit
		if vd := raw.GetVersionDirective(); vd != nil {
			e.Version = &VersionDirective{
				Major: vd.Major(),
				Minor: vd.Minor(),
			}
		}
		if tds := raw.GetTagDirectives(); len(tds) > 0 {
			e.TagDirectives = make([]TagDirective, len(tds))
			for i, td := range tds {
				e.TagDirectives[i] = TagDirective{
					Handle: td.GetHandle(),
					Prefix: td.GetPrefix(),
				}
			}
		}
	case libyaml.DOCUMENT_END_EVENT:
		e.Kind = DocumentEnd
		e.Implicit = raw.Implicit
	case libyaml.ALIAS_EVENT:
		e.Kind = Alias
		e.Anchor = string(raw.Anchor)
	case libyaml.SCALAR_EVENT:
		e.Kind = Scalar
		e.Anchor = string(raw.Anchor)
		e.Tag = string(raw.Tag)
		e.Value = string(raw.Value)
		e.Implicit = raw.Implicit
		e.QuotedImplicit = raw.GetQuotedImplicit()
		e.style = raw.Style
	case libyaml.SEQUENCE_START_EVENT:
		e.Kind = SequenceStart
		e.Anchor = string(raw.Anchor)
		e.Tag = string(raw.Tag)
		e.Implicit = raw.Implicit
		e.style = raw.Style
	case libyaml.SEQUENCE_END_EVENT:
		e.Kind = SequenceEnd
	case libyaml.MAPPING_START_EVENT:
		e.Kind = MappingStart
		e.Anchor = string(raw.Anchor)
		e.Tag = string(raw.Tag)
		e.Implicit = raw.Implicit
		e.style = raw.Style
	case libyaml.MAPPING_END_EVENT:
		e.Kind = MappingEnd
	}
	return e
}

// String formats the event as a human-readable string for debugging and
// testing purposes.
func (e *Event) String() string {
	var b strings.Builder
	switch e.Kind {
	case StreamStart:
		b.WriteString("+STR")
	case StreamEnd:
		b.WriteString("-STR")
	case DocumentStart:
		b.WriteString("+DOC")
		if !e.Implicit {
			b.WriteString(" ---")
		}
	case DocumentEnd:
		b.WriteString("-DOC")
		if !e.Implicit {
			b.WriteString(" ...")
		}
	case Alias:
		b.WriteString("=ALI *")
		b.WriteString(e.Anchor)
	case Scalar:
		b.WriteString("=VAL")
		if len(e.Anchor) > 0 {
			b.WriteString(" &")
			b.WriteString(e.Anchor)
		}
		if len(e.Tag) > 0 {
			b.WriteString(" <")
			b.WriteString(e.Tag)
			b.WriteString(">")
		}
		switch e.ScalarStyle() {
		case ScalarStylePlain:
			b.WriteString(" :")
		case ScalarStyleLiteral:
			b.WriteString(" |")
		case ScalarStyleFolded:
			b.WriteString(" >")
		case ScalarStyleSingleQuoted:
			b.WriteString(" '")
		case ScalarStyleDoubleQuoted:
			b.WriteString(` "`)
		}
		// Escape special characters for consistent event output.
		val := strings.NewReplacer(
			`\`, `\\`,
			"\n", `\n`,
			"\t", `\t`,
		).Replace(e.Value)
		b.WriteString(val)
	case SequenceStart:
		b.WriteString("+SEQ")
		if len(e.Anchor) > 0 {
			b.WriteString(" &")
			b.WriteString(e.Anchor)
		}
		if len(e.Tag) > 0 {
			b.WriteString(" <")
			b.WriteString(e.Tag)
			b.WriteString(">")
		}
		if e.SequenceStyle() == SequenceStyleFlow {
			b.WriteString(" []")
		}
	case SequenceEnd:
		b.WriteString("-SEQ")
	case MappingStart:
		b.WriteString("+MAP")
		if len(e.Anchor) > 0 {
			b.WriteString(" &")
			b.WriteString(e.Anchor)
		}
		if len(e.Tag) > 0 {
			b.WriteString(" <")
			b.WriteString(e.Tag)
			b.WriteString(">")
		}
		if e.MappingStyle() == MappingStyleFlow {
			b.WriteString(" {}")
		}
	case MappingEnd:
		b.WriteString("-MAP")
	}
	return b.String()
}
