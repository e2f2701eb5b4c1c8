// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for error types.
// Verifies error formatting, unwrapping, and error matching.

package libyaml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkedYAMLErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  MarkedYAMLError
		want string
	}{
		{
			name: "mark only",
			err: MarkedYAMLError{
				Mark:    Mark{Index: 20, Line: 3, Column: 4},
				Message: "did not find expected key",
			},
			want: "yaml: line 3, column 5: did not find expected key",
		},
		{
			name: "mark without column",
			err: MarkedYAMLError{
				Mark:    Mark{Line: 2},
				Message: "found unexpected end of stream",
			},
			want: "yaml: line 2: found unexpected end of stream",
		},
		{
			name: "context and mark",
			err: MarkedYAMLError{
				ContextMark:    Mark{Line: 1},
				ContextMessage: "while parsing a block mapping",
				Mark:           Mark{Line: 3, Column: 4},
				Message:        "did not find expected key",
			},
			want: "yaml: while parsing a block mapping at line 1: line 3, column 5: did not find expected key",
		},
		{
			name: "context mark equals problem mark",
			err: MarkedYAMLError{
				ContextMark:    Mark{Line: 2},
				ContextMessage: "while scanning a quoted scalar",
				Mark:           Mark{Line: 2},
				Message:        "found unexpected end of stream",
			},
			want: "yaml: while scanning a quoted scalar at line 2: found unexpected end of stream",
		},
		{
			name: "no position",
			err: MarkedYAMLError{
				Message: "something broke",
			},
			want: "yaml: <unknown position>: something broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestParserErrorFormat(t *testing.T) {
	err := ParserError{
		ContextMark:    Mark{Line: 1},
		ContextMessage: "while parsing a node",
		Mark:           Mark{Line: 1, Column: 2},
		Message:        "found undefined tag handle",
	}
	assert.EqualError(t, err, "yaml: while parsing a node at line 1: line 1, column 3: found undefined tag handle")
}

func TestScannerErrorFormat(t *testing.T) {
	err := ScannerError{
		Mark:    Mark{Line: 4, Column: 0},
		Message: "found character that cannot start any token",
	}
	assert.EqualError(t, err, "yaml: line 4: found character that cannot start any token")
}

func TestReaderErrorFormat(t *testing.T) {
	inner := errors.New("invalid leading UTF-8 octet")
	err := ReaderError{Offset: 42, Value: -1, Err: inner}

	assert.EqualError(t, err, "yaml: offset 42: invalid leading UTF-8 octet")
	assert.Equal(t, inner, err.Unwrap())
	assert.ErrorIs(t, err, inner)
}

func TestErrorTypeMatching(t *testing.T) {
	var err error = ScannerError{Mark: Mark{Line: 1}, Message: "test"}

	var se ScannerError
	assert.ErrorAs(t, err, &se)

	var pe ParserError
	assert.False(t, errors.As(err, &pe), "a scanner error is not a parser error")
}

func TestMarkString(t *testing.T) {
	tests := []struct {
		mark Mark
		want string
	}{
		{Mark{}, "<unknown position>"},
		{Mark{Line: 1}, "line 1"},
		{Mark{Line: 3, Column: 4}, "line 3, column 5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mark.String())
	}
}
