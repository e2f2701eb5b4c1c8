package yamlio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamlio/yamlio"
)

func TestParserClose(t *testing.T) {
	p := yamlio.NewByteParser([]byte("a\n"), yamlio.EncodingAny)
	events := p.Events()

	assert.NoError(t, p.Close())
	assert.NoError(t, p.Close(), "closing twice should be safe")

	assert.PanicsWithValue(t, "must not parse after the parser is closed", func() {
		_, _ = events.Next()
	})
}

func TestParserSingleStream(t *testing.T) {
	t.Run("events then documents", func(t *testing.T) {
		p := yamlio.NewByteParser([]byte("a\n"), yamlio.EncodingAny)
		defer p.Close()
		p.Events()

		assert.PanicsWithValue(t, "must attach at most one stream to a parser", func() {
			p.Documents()
		})
	})

	t.Run("events twice", func(t *testing.T) {
		p := yamlio.NewByteParser([]byte("a\n"), yamlio.EncodingAny)
		defer p.Close()
		p.Events()

		assert.PanicsWithValue(t, "must attach at most one stream to a parser", func() {
			p.Events()
		})
	})

	t.Run("documents then events", func(t *testing.T) {
		p := yamlio.NewReaderParser(strings.NewReader("a\n"), yamlio.EncodingAny)
		defer p.Close()
		p.Documents()

		assert.PanicsWithValue(t, "must attach at most one stream to a parser", func() {
			p.Events()
		})
	})
}

var errBroken = errors.New("broken pipe")

// failingReader yields its data and then fails every further read.
type failingReader struct {
	data []byte
	pos  int
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, errBroken
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func TestReaderParserReadFailure(t *testing.T) {
	p := yamlio.NewReaderParser(&failingReader{data: []byte("key: value\nnext: ")}, yamlio.EncodingAny)
	defer p.Close()

	events := p.Events()
	var err error
	for err == nil {
		_, err = events.Next()
	}

	var yerr *yamlio.Error
	require.ErrorAs(t, err, &yerr)
	assert.Equal(t, yamlio.ReaderError, yerr.Kind)
	assert.Equal(t, "broken pipe", yerr.Problem)
	assert.ErrorIs(t, err, errBroken, "the read failure should be reachable through Unwrap")

	_, again := events.Next()
	require.ErrorAs(t, again, &yerr)
	assert.Equal(t, yamlio.ReaderError, yerr.Kind)
	assert.NotErrorIs(t, again, errBroken, "the captured read failure is reported once")
}

func TestReaderParserForcedEncoding(t *testing.T) {
	// UTF-16LE without a BOM only parses when the encoding is forced.
	in := []byte{'a', 0x00, '\n', 0x00}
	p := yamlio.NewReaderParser(bytes.NewReader(in), yamlio.EncodingUTF16LE)
	defer p.Close()

	var values []string
	for _, event := range collectEvents(t, p) {
		if event.Kind == yamlio.Scalar {
			values = append(values, event.Value)
		}
	}
	assert.Equal(t, []string{"a"}, values)
}

func TestByteParserForcedEncoding(t *testing.T) {
	in := []byte{0x00, 'a', 0x00, '\n'}
	p := yamlio.NewByteParser(in, yamlio.EncodingUTF16BE)
	defer p.Close()

	var values []string
	for _, event := range collectEvents(t, p) {
		if event.Kind == yamlio.Scalar {
			values = append(values, event.Value)
		}
	}
	assert.Equal(t, []string{"a"}, values)
}
