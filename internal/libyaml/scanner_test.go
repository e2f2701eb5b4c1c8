// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for the scanner stage.
// Verifies input stream to token stream transformation, scalar styles,
// and error caching.

package libyaml

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanAllTokens collects every token up to and including STREAM-END.
func scanAllTokens(t *testing.T, input string) []Token {
	t.Helper()

	parser := NewParser()
	parser.SetInputString([]byte(input))

	var tokens []Token
	for {
		var token Token
		require.NoError(t, parser.Scan(&token))
		tokens = append(tokens, token)
		if token.Type == STREAM_END_TOKEN {
			return tokens
		}
	}
}

func scanTokenTypes(t *testing.T, input string) []TokenType {
	t.Helper()

	var types []TokenType
	for _, token := range scanAllTokens(t, input) {
		types = append(types, token.Type)
	}
	return types
}

func TestScanTokenSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{
			name:  "plain scalar",
			input: "hello\n",
			want: []TokenType{
				STREAM_START_TOKEN,
				SCALAR_TOKEN,
				STREAM_END_TOKEN,
			},
		},
		{
			name:  "block mapping",
			input: "key: value\n",
			want: []TokenType{
				STREAM_START_TOKEN,
				BLOCK_MAPPING_START_TOKEN,
				KEY_TOKEN,
				SCALAR_TOKEN,
				VALUE_TOKEN,
				SCALAR_TOKEN,
				BLOCK_END_TOKEN,
				STREAM_END_TOKEN,
			},
		},
		{
			name:  "block sequence",
			input: "- a\n- b\n",
			want: []TokenType{
				STREAM_START_TOKEN,
				BLOCK_SEQUENCE_START_TOKEN,
				BLOCK_ENTRY_TOKEN,
				SCALAR_TOKEN,
				BLOCK_ENTRY_TOKEN,
				SCALAR_TOKEN,
				BLOCK_END_TOKEN,
				STREAM_END_TOKEN,
			},
		},
		{
			name:  "flow sequence",
			input: "[1, 2]\n",
			want: []TokenType{
				STREAM_START_TOKEN,
				FLOW_SEQUENCE_START_TOKEN,
				SCALAR_TOKEN,
				FLOW_ENTRY_TOKEN,
				SCALAR_TOKEN,
				FLOW_SEQUENCE_END_TOKEN,
				STREAM_END_TOKEN,
			},
		},
		{
			name:  "flow mapping",
			input: "{a: 1}\n",
			want: []TokenType{
				STREAM_START_TOKEN,
				FLOW_MAPPING_START_TOKEN,
				KEY_TOKEN,
				SCALAR_TOKEN,
				VALUE_TOKEN,
				SCALAR_TOKEN,
				FLOW_MAPPING_END_TOKEN,
				STREAM_END_TOKEN,
			},
		},
		{
			name:  "document markers",
			input: "---\na\n...\n",
			want: []TokenType{
				STREAM_START_TOKEN,
				DOCUMENT_START_TOKEN,
				SCALAR_TOKEN,
				DOCUMENT_END_TOKEN,
				STREAM_END_TOKEN,
			},
		},
		{
			name:  "version directive",
			input: "%YAML 1.1\n---\na\n",
			want: []TokenType{
				STREAM_START_TOKEN,
				VERSION_DIRECTIVE_TOKEN,
				DOCUMENT_START_TOKEN,
				SCALAR_TOKEN,
				STREAM_END_TOKEN,
			},
		},
		{
			name:  "tag directive",
			input: "%TAG !e! tag:example.com,2000:app/\n---\n!e!foo bar\n",
			want: []TokenType{
				STREAM_START_TOKEN,
				TAG_DIRECTIVE_TOKEN,
				DOCUMENT_START_TOKEN,
				TAG_TOKEN,
				SCALAR_TOKEN,
				STREAM_END_TOKEN,
			},
		},
		{
			name:  "anchor and alias",
			input: "- &a x\n- *a\n",
			want: []TokenType{
				STREAM_START_TOKEN,
				BLOCK_SEQUENCE_START_TOKEN,
				BLOCK_ENTRY_TOKEN,
				ANCHOR_TOKEN,
				SCALAR_TOKEN,
				BLOCK_ENTRY_TOKEN,
				ALIAS_TOKEN,
				BLOCK_END_TOKEN,
				STREAM_END_TOKEN,
			},
		},
		{
			name:  "empty stream",
			input: "",
			want: []TokenType{
				STREAM_START_TOKEN,
				STREAM_END_TOKEN,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanTokenTypes(t, tt.input))
		})
	}
}

func TestScanScalarStyles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		style ScalarStyle
		value string
	}{
		{"plain", "hello\n", PLAIN_SCALAR_STYLE, "hello"},
		{"single quoted", "'hello'\n", SINGLE_QUOTED_SCALAR_STYLE, "hello"},
		{"double quoted", "\"hello\"\n", DOUBLE_QUOTED_SCALAR_STYLE, "hello"},
		{"literal", "|\n  hello\n", LITERAL_SCALAR_STYLE, "hello\n"},
		{"folded", ">\n  hello\n", FOLDED_SCALAR_STYLE, "hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var scalar *Token
			for _, token := range scanAllTokens(t, tt.input) {
				if token.Type == SCALAR_TOKEN {
					scalar = &token
					break
				}
			}
			require.NotNil(t, scalar, "no scalar token scanned")
			assert.Equal(t, tt.style, scalar.Style)
			assert.Equal(t, tt.value, string(scalar.Value))
		})
	}
}

func TestScanAnchorNames(t *testing.T) {
	var names []string
	for _, token := range scanAllTokens(t, "- &first x\n- *first\n") {
		if token.Type == ANCHOR_TOKEN || token.Type == ALIAS_TOKEN {
			names = append(names, string(token.Value))
		}
	}
	assert.Equal(t, []string{"first", "first"}, names)
}

func TestScanUnterminatedQuotedScalar(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("'abc"))

	var token Token
	var err error
	for err == nil && token.Type != STREAM_END_TOKEN {
		err = parser.Scan(&token)
	}

	var se ScannerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "while scanning a quoted scalar", se.ContextMessage)
	assert.Equal(t, "found unexpected end of stream", se.Message)
}

func TestScanErrorIsCached(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("'abc"))

	var token Token
	var err error
	for err == nil {
		err = parser.Scan(&token)
	}
	require.Error(t, err)

	again := parser.Scan(&token)
	assert.Equal(t, err, again, "a failed scanner should keep returning the same error")
	assert.Equal(t, NO_TOKEN, token.Type, "the token slot should stay erased after a failure")
}

func TestScanAfterStreamEnd(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("x\n"))

	var token Token
	for token.Type != STREAM_END_TOKEN {
		require.NoError(t, parser.Scan(&token))
	}

	err := parser.Scan(&token)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, NO_TOKEN, token.Type)
}

func TestScanDirectiveError(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("%YAML bogus\n---\na\n"))

	var token Token
	var err error
	for err == nil && token.Type != STREAM_END_TOKEN {
		err = parser.Scan(&token)
	}

	var se ScannerError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Error(), "did not find expected version number")
}
