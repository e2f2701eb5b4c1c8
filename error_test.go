package yamlio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamlio/yamlio"
)

// firstError drains the event stream of in until it fails.
func firstError(t *testing.T, in []byte) *yamlio.Error {
	t.Helper()

	p := yamlio.NewByteParser(in, yamlio.EncodingAny)
	defer p.Close()

	events := p.Events()
	var err error
	for err == nil {
		_, err = events.Next()
	}

	var yerr *yamlio.Error
	require.ErrorAs(t, err, &yerr, "expected a parse failure, got %v", err)
	return yerr
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		kind yamlio.ErrorKind
	}{
		{"invalid utf8", []byte{0xFF, 0xFF}, yamlio.ReaderError},
		{"control character", []byte{'a', 0x01}, yamlio.ReaderError},
		{"unterminated quote", []byte("'abc"), yamlio.ScannerError},
		{"bad directive", []byte("%YAML bogus\n---\na\n"), yamlio.ScannerError},
		{"undefined tag handle", []byte("---\n!e!foo bar\n"), yamlio.ParserError},
		{"unclosed flow sequence", []byte("[a\n"), yamlio.ParserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yerr := firstError(t, tt.in)
			assert.Equal(t, tt.kind, yerr.Kind)
		})
	}
}

func TestScannerErrorDetail(t *testing.T) {
	yerr := firstError(t, []byte("'abc"))

	assert.Equal(t, yamlio.ScannerError, yerr.Kind)
	assert.Equal(t, "found unexpected end of stream", yerr.Problem)

	require.NotNil(t, yerr.Context)
	assert.Equal(t, 4, yerr.Context.Offset)
	assert.Equal(t, "while scanning a quoted scalar", yerr.Context.Context)
	assert.Equal(t, yamlio.Mark{Index: 0, Line: 1, Column: 0}, yerr.Context.ContextMark)
	assert.Equal(t, yamlio.Mark{Index: 4, Line: 1, Column: 4}, yerr.Context.Mark)

	assert.EqualError(t, yerr,
		"yaml: while scanning a quoted scalar at line 1: line 1, column 5: found unexpected end of stream")
}

func TestParserErrorDetail(t *testing.T) {
	yerr := firstError(t, []byte("---\n!e!foo bar\n"))

	assert.Equal(t, yamlio.ParserError, yerr.Kind)
	assert.Equal(t, "found undefined tag handle", yerr.Problem)
	assert.EqualError(t, yerr, "yaml: while parsing a node at line 1: found undefined tag handle")
}

func TestReaderErrorDetail(t *testing.T) {
	yerr := firstError(t, []byte{'a', 0x01})

	assert.Equal(t, yamlio.ReaderError, yerr.Kind)
	assert.Equal(t, "control characters are not allowed", yerr.Problem)
	require.NotNil(t, yerr.Context)
	assert.Equal(t, 1, yerr.Context.Offset)
	assert.EqualError(t, yerr, "yaml: offset 1: control characters are not allowed")

	assert.Nil(t, yerr.IO, "a decoding failure does not wrap a read failure")
	assert.Nil(t, yerr.Unwrap())
}
