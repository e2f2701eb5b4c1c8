// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserSetReaderError(t *testing.T) {
	parser := NewParser()

	err := parser.setReaderError("test problem", 10, 0x1234)

	var re ReaderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 10, re.Offset)
	assert.Equal(t, 0x1234, re.Value)
	assert.EqualError(t, err, "yaml: offset 10: test problem")
}

func TestParserDetermineEncodingUTF8(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("\xEF\xBB\xBFtest"))

	require.NoError(t, parser.determineEncoding())
	assert.Equal(t, UTF8_ENCODING, parser.encoding)
	assert.Equal(t, 3, parser.raw_buffer_pos, "BOM should be skipped")
}

func TestParserDetermineEncodingUTF16LE(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("\xFF\xFEtest"))

	require.NoError(t, parser.determineEncoding())
	assert.Equal(t, UTF16LE_ENCODING, parser.encoding)
	assert.Equal(t, 2, parser.raw_buffer_pos, "BOM should be skipped")
}

func TestParserDetermineEncodingUTF16BE(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("\xFE\xFFtest"))

	require.NoError(t, parser.determineEncoding())
	assert.Equal(t, UTF16BE_ENCODING, parser.encoding)
	assert.Equal(t, 2, parser.raw_buffer_pos, "BOM should be skipped")
}

func TestParserDetermineEncodingDefault(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("test: value"))

	require.NoError(t, parser.determineEncoding())
	assert.Equal(t, UTF8_ENCODING, parser.encoding)
	assert.Equal(t, 0, parser.raw_buffer_pos, "no BOM to skip")
}

func TestParserUpdateRawBuffer(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("test data"))

	require.NoError(t, parser.updateRawBuffer())
	assert.NotEmpty(t, parser.raw_buffer)
}

func TestParserUpdateRawBufferEOF(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte(""))

	require.NoError(t, parser.updateRawBuffer())
	assert.True(t, parser.eof)

	require.NoError(t, parser.updateRawBuffer(), "repeat call at EOF should stay clean")
}

var errRead = errors.New("read error")

type errorReader struct{}

func (r *errorReader) Read(p []byte) (n int, err error) {
	return 0, errRead
}

func TestParserUpdateRawBufferReadError(t *testing.T) {
	parser := NewParser()
	parser.SetInputReader(&errorReader{})

	err := parser.updateRawBuffer()

	var re ReaderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, -1, re.Value)
	assert.ErrorIs(t, err, errRead, "the read failure should stay reachable through Unwrap")
}

func TestParserUpdateBufferUTF8SingleByte(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("abc"))

	require.NoError(t, parser.updateBuffer(3))
	assert.GreaterOrEqual(t, parser.unread, 3)
	assert.Equal(t, byte('a'), parser.buffer[0])
	assert.Equal(t, byte('b'), parser.buffer[1])
	assert.Equal(t, byte('c'), parser.buffer[2])
}

func TestParserUpdateBufferUTF8MultiByte(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("a\xC2\xA9b"))

	require.NoError(t, parser.updateBuffer(3))
	assert.GreaterOrEqual(t, parser.unread, 3)
}

func TestParserUpdateBufferInvalidLeadingOctet(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte{0xFF, 0x00})

	err := parser.updateBuffer(1)

	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid leading UTF-8 octet")
}

func TestParserUpdateBufferIncompleteUTF8AtEOF(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte{0xC2})

	err := parser.updateBuffer(1)

	require.Error(t, err)
	assert.ErrorContains(t, err, "incomplete UTF-8 octet sequence")
}

func TestParserUpdateBufferControlCharacterError(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte{0x01})

	err := parser.updateBuffer(1)

	var re ReaderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, 0x01, re.Value)
	assert.ErrorContains(t, err, "control characters are not allowed")
}

func TestParserUpdateBufferAllowedControlCharacters(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte{0x09, 0x0A, 0x0D})

	require.NoError(t, parser.updateBuffer(3), "tab, LF, and CR are allowed")
}

func TestParserUpdateBufferPanicWithoutReadHandler(t *testing.T) {
	parser := NewParser()

	assert.PanicsWithValue(t, "read handler must be set", func() {
		_ = parser.updateBuffer(1)
	})
}

func TestParserUpdateBufferUTF16LE(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte{0xFF, 0xFE, 0x61, 0x00})

	require.NoError(t, parser.updateBuffer(1))
	assert.Equal(t, UTF16LE_ENCODING, parser.encoding)
	assert.Equal(t, byte('a'), parser.buffer[0], "UTF-16LE 'a' should transcode to UTF-8")
}

func TestParserUpdateBufferUTF16BE(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte{0xFE, 0xFF, 0x00, 0x61})

	require.NoError(t, parser.updateBuffer(1))
	assert.Equal(t, UTF16BE_ENCODING, parser.encoding)
	assert.Equal(t, byte('a'), parser.buffer[0], "UTF-16BE 'a' should transcode to UTF-8")
}

func TestParserUpdateBufferSurrogatePairUTF16(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte{
		0xFF, 0xFE,
		0x3D, 0xD8, 0x4A, 0xDC,
	})

	require.NoError(t, parser.updateBuffer(1))
	assert.GreaterOrEqual(t, parser.unread, 1, "surrogate pair should decode to one character")
}

func TestParserUpdateBufferInvalidSurrogatePair(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte{
		0xFF, 0xFE,
		0x3D, 0xD8, 0x00, 0x00,
	})

	err := parser.updateBuffer(1)

	require.Error(t, err)
	assert.ErrorContains(t, err, "expected low surrogate area")
}

func TestParserUpdateBufferUnexpectedLowSurrogate(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte{
		0xFF, 0xFE,
		0x00, 0xDC, 0x00, 0x00,
	})

	err := parser.updateBuffer(1)

	require.Error(t, err)
	assert.ErrorContains(t, err, "unexpected low surrogate area")
}

func TestParserUpdateBufferNULPaddingAtEOF(t *testing.T) {
	parser := NewParser()
	parser.SetInputString([]byte("a"))

	require.NoError(t, parser.updateBuffer(4))
	assert.Equal(t, 2, parser.unread, "one character plus the NUL sentinel")
	assert.Equal(t, byte('a'), parser.buffer[0])
	assert.Equal(t, byte(0), parser.buffer[1])
	assert.Len(t, parser.buffer, 4, "the buffer should be padded to the requested length")
}

func TestYamlStringReadHandler(t *testing.T) {
	parser := NewParser()
	input := []byte("test data")
	parser.input = input
	parser.input_pos = 0

	buffer := make([]byte, 10)
	n, err := yamlStringReadHandler(&parser, buffer)

	require.NoError(t, err)
	assert.Equal(t, len(input), n)
	assert.Equal(t, input, buffer[:n])
}

func TestYamlStringReadHandlerEOF(t *testing.T) {
	parser := NewParser()
	input := []byte("test")
	parser.input = input
	parser.input_pos = len(input)

	buffer := make([]byte, 10)
	n, err := yamlStringReadHandler(&parser, buffer)

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, n)
}

func TestYamlReaderReadHandler(t *testing.T) {
	parser := NewParser()
	parser.input_reader = strings.NewReader("test data")

	buffer := make([]byte, 10)
	n, err := yamlReaderReadHandler(&parser, buffer)

	require.NoError(t, err)
	assert.Positive(t, n)
}
