// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseAllEvents collects every event up to and including STREAM-END.
func parseAllEvents(t *testing.T, input string) []Event {
	t.Helper()

	parser := NewParser()
	parser.SetInputString([]byte(input))

	var events []Event
	for {
		var event Event
		require.NoError(t, parser.Parse(&event))
		events = append(events, event)
		if event.Type == STREAM_END_EVENT {
			return events
		}
	}
}

func parseEventTypes(t *testing.T, input string) []EventType {
	t.Helper()

	var types []EventType
	for _, event := range parseAllEvents(t, input) {
		types = append(types, event.Type)
	}
	return types
}

func TestParseEventSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []EventType
	}{
		{
			name:  "scalar document",
			input: "a\n",
			want: []EventType{
				STREAM_START_EVENT,
				DOCUMENT_START_EVENT,
				SCALAR_EVENT,
				DOCUMENT_END_EVENT,
				STREAM_END_EVENT,
			},
		},
		{
			name:  "block mapping",
			input: "a: b\n",
			want: []EventType{
				STREAM_START_EVENT,
				DOCUMENT_START_EVENT,
				MAPPING_START_EVENT,
				SCALAR_EVENT,
				SCALAR_EVENT,
				MAPPING_END_EVENT,
				DOCUMENT_END_EVENT,
				STREAM_END_EVENT,
			},
		},
		{
			name:  "flow sequence",
			input: "[1, 2]\n",
			want: []EventType{
				STREAM_START_EVENT,
				DOCUMENT_START_EVENT,
				SEQUENCE_START_EVENT,
				SCALAR_EVENT,
				SCALAR_EVENT,
				SEQUENCE_END_EVENT,
				DOCUMENT_END_EVENT,
				STREAM_END_EVENT,
			},
		},
		{
			name:  "multiple documents",
			input: "---\na\n---\nb\n",
			want: []EventType{
				STREAM_START_EVENT,
				DOCUMENT_START_EVENT,
				SCALAR_EVENT,
				DOCUMENT_END_EVENT,
				DOCUMENT_START_EVENT,
				SCALAR_EVENT,
				DOCUMENT_END_EVENT,
				STREAM_END_EVENT,
			},
		},
		{
			name:  "anchor and alias",
			input: "- &x 1\n- *x\n",
			want: []EventType{
				STREAM_START_EVENT,
				DOCUMENT_START_EVENT,
				SEQUENCE_START_EVENT,
				SCALAR_EVENT,
				ALIAS_EVENT,
				SEQUENCE_END_EVENT,
				DOCUMENT_END_EVENT,
				STREAM_END_EVENT,
			},
		},
		{
			name:  "empty stream",
			input: "",
			want: []EventType{
				STREAM_START_EVENT,
				STREAM_END_EVENT,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseEventTypes(t, tt.input))
		})
	}
}

func TestParseScalarDetail(t *testing.T) {
	var scalar *Event
	for _, event := range parseAllEvents(t, "&a !!str hello\n") {
		if event.Type == SCALAR_EVENT {
			scalar = &event
			break
		}
	}
	require.NotNil(t, scalar, "no scalar event parsed")

	assert.Equal(t, "a", string(scalar.Anchor))
	assert.Equal(t, STR_TAG, string(scalar.Tag))
	assert.Equal(t, "hello", string(scalar.Value))
	assert.Equal(t, PLAIN_SCALAR_STYLE, scalar.ScalarStyle())
	assert.False(t, scalar.Implicit, "an explicit tag leaves nothing implicit")
}

func TestParseCollectionStyles(t *testing.T) {
	var styles []SequenceStyle
	for _, event := range parseAllEvents(t, "- [1]\n- - 2\n") {
		if event.Type == SEQUENCE_START_EVENT {
			styles = append(styles, event.SequenceStyle())
		}
	}
	require.Len(t, styles, 3)
	assert.Equal(t, BLOCK_SEQUENCE_STYLE, styles[0])
	assert.Equal(t, FLOW_SEQUENCE_STYLE, styles[1])
	assert.Equal(t, BLOCK_SEQUENCE_STYLE, styles[2])
}

func TestParseVersionDirective(t *testing.T) {
	var docStart *Event
	for _, event := range parseAllEvents(t, "%YAML 1.1\n---\na\n") {
		if event.Type == DOCUMENT_START_EVENT {
			docStart = &event
			break
		}
	}
	require.NotNil(t, docStart, "no document start event parsed")

	vd := docStart.GetVersionDirective()
	require.NotNil(t, vd)
	assert.Equal(t, 1, vd.Major())
	assert.Equal(t, 1, vd.Minor())
	assert.False(t, docStart.Implicit, "an explicit --- marker is not implicit")
}

func TestParseIncompatibleVersionDirective(t *testing.T) {
	// Like libyaml, the parser accepts %YAML 1.1 and nothing else.
	for _, version := range []string{"1.2", "2.0", "0.9"} {
		t.Run(version, func(t *testing.T) {
			parser := NewParser()
			parser.SetInputString([]byte("%YAML " + version + "\n---\na\n"))

			var event Event
			var err error
			for err == nil && event.Type != STREAM_END_EVENT {
				err = parser.Parse(&event)
			}

			var pe ParserError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "found incompatible YAML document", pe.Message)
		})
	}
}

func TestParseTagDirectives(t *testing.T) {
	var docStart *Event
	for _, event := range parseAllEvents(t, "%TAG !e! tag:example.com,2000:app/\n---\n!e!foo bar\n") {
		if event.Type == DOCUMENT_START_EVENT {
			docStart = &event
			break
		}
	}
	require.NotNil(t, docStart, "no document start event parsed")

	tds := docStart.GetTagDirectives()
	require.Len(t, tds, 1)
	assert.Equal(t, "!e!", tds[0].GetHandle())
	assert.Equal(t, "tag:example.com,2000:app/", tds[0].GetPrefix())
}

func TestParseTagHandleExpansion(t *testing.T) {
	var scalar *Event
	for _, event := range parseAllEvents(t, "%TAG !e! tag:example.com,2000:app/\n---\n!e!foo bar\n") {
		if event.Type == SCALAR_EVENT {
			scalar = &event
			break
		}
	}
	require.NotNil(t, scalar, "no scalar event parsed")
	assert.Equal(t, "tag:example.com,2000:app/foo", string(scalar.Tag))
}

func TestParseUndefinedTagHandle(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("!e!foo bar\n"))

	var event Event
	var err error
	for err == nil && event.Type != STREAM_END_EVENT {
		err = parser.Parse(&event)
	}

	var pe ParserError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "while parsing a node", pe.ContextMessage)
	assert.Equal(t, "found undefined tag handle", pe.Message)
}

func TestParseErrorIsCached(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("[a\n"))

	var event Event
	var err error
	for err == nil {
		err = parser.Parse(&event)
	}
	require.Error(t, err)

	again := parser.Parse(&event)
	assert.Equal(t, err, again, "a failed parser should keep returning the same error")
	assert.Equal(t, NO_EVENT, event.Type, "the event slot should stay erased after a failure")
}

func TestParseAfterStreamEnd(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("x\n"))

	var event Event
	for event.Type != STREAM_END_EVENT {
		require.NoError(t, parser.Parse(&event))
	}

	err := parser.Parse(&event)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, NO_EVENT, event.Type)

	err = parser.Parse(&event)
	assert.ErrorIs(t, err, io.EOF, "exhaustion should hold on repeat calls")
}

func TestParseStreamEncoding(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte{0xFF, 0xFE, 'a', 0x00, '\n', 0x00})

	var event Event
	require.NoError(t, parser.Parse(&event))
	require.Equal(t, STREAM_START_EVENT, event.Type)
	assert.Equal(t, UTF16LE_ENCODING, event.GetEncoding())
}
