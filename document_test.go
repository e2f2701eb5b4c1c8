package yamlio_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamlio/yamlio"
)

// loadOne composes the single document of in, requiring the stream to
// hold exactly one.
func loadOne(t *testing.T, in string) *yamlio.Document {
	t.Helper()

	p := yamlio.NewByteParser([]byte(in), yamlio.EncodingAny)
	defer p.Close()

	docs := p.Documents()
	doc, err := docs.Next()
	require.NoError(t, err)
	_, err = docs.Next()
	require.ErrorIs(t, err, io.EOF, "expected a single document")
	return doc
}

func TestDocumentStreamFlowSequence(t *testing.T) {
	doc := loadOne(t, "[1, 2, 3]\n")

	root := doc.Root
	require.NotNil(t, root)
	assert.Equal(t, yamlio.SequenceNode, root.Kind)
	assert.Equal(t, yamlio.FlowStyle, root.Style)
	assert.Equal(t, 1, root.Line)
	assert.Equal(t, 1, root.Column)

	require.Len(t, root.Content, 3)
	for i, want := range []string{"1", "2", "3"} {
		child := root.Content[i]
		assert.Equal(t, yamlio.ScalarNode, child.Kind)
		assert.Equal(t, want, child.Value)
		assert.Empty(t, child.Tag, "no schema resolution on plain scalars")
	}
	assert.Equal(t, 2, root.Content[0].Column)
	assert.Equal(t, 5, root.Content[1].Column)
	assert.Equal(t, 8, root.Content[2].Column)

	assert.True(t, doc.Implicit, "no --- marker in the input")
	assert.NotNil(t, doc.Anchors)
	assert.Empty(t, doc.Anchors)
}

func TestDocumentStreamFlowMapping(t *testing.T) {
	doc := loadOne(t, "{\"a\": 1, \"b\": 2}\n")

	root := doc.Root
	require.NotNil(t, root)
	assert.Equal(t, yamlio.MappingNode, root.Kind)
	assert.Equal(t, yamlio.FlowStyle, root.Style)

	require.Len(t, root.Content, 4)
	assert.Equal(t, "a", root.Content[0].Value)
	assert.Equal(t, "1", root.Content[1].Value)
	assert.Equal(t, "b", root.Content[2].Value)
	assert.Equal(t, "2", root.Content[3].Value)
	assert.Equal(t, yamlio.DoubleQuotedStyle, root.Content[0].Style)
	assert.Equal(t, yamlio.DoubleQuotedStyle, root.Content[2].Style)
}

func TestDocumentStreamMappingOrder(t *testing.T) {
	doc := loadOne(t, "one: 1\ntwo: 2\nthree: 3\n")

	root := doc.Root
	require.Len(t, root.Content, 6)

	var keys []string
	for i := 0; i < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	assert.Equal(t, []string{"one", "two", "three"}, keys, "mapping pairs should keep input order")
}

func TestDocumentStreamScalarStyles(t *testing.T) {
	doc := loadOne(t, "- plain\n- 'single'\n- \"double\"\n- |\n  lit\n- >\n  fold\n")

	require.Len(t, doc.Root.Content, 5)
	styles := make([]yamlio.Style, 5)
	for i, child := range doc.Root.Content {
		styles[i] = child.Style
	}
	assert.Equal(t, []yamlio.Style{
		0,
		yamlio.SingleQuotedStyle,
		yamlio.DoubleQuotedStyle,
		yamlio.LiteralStyle,
		yamlio.FoldedStyle,
	}, styles)
	assert.Equal(t, "lit\n", doc.Root.Content[3].Value)
	assert.Equal(t, "fold\n", doc.Root.Content[4].Value)
}

func TestDocumentStreamNodeMetadata(t *testing.T) {
	doc := loadOne(t, "key: value\n")

	root := doc.Root
	assert.Equal(t, yamlio.MappingNode, root.Kind)
	assert.Equal(t, 1, root.Line)
	assert.Equal(t, 1, root.Column)

	require.Len(t, root.Content, 2)
	key, value := root.Content[0], root.Content[1]
	assert.Equal(t, 1, key.Line)
	assert.Equal(t, 1, key.Column)
	assert.Equal(t, 1, value.Line)
	assert.Equal(t, 6, value.Column)
}

func TestDocumentStreamTags(t *testing.T) {
	doc := loadOne(t, "%TAG !e! tag:example.com,2000:app/\n---\n!e!foo bar\n")

	root := doc.Root
	assert.Equal(t, "tag:example.com,2000:app/foo", root.Tag)
	assert.Equal(t, yamlio.TaggedStyle, root.Style)

	require.Len(t, doc.TagDirectives, 1)
	assert.Equal(t, "!e!", doc.TagDirectives[0].Handle)
	assert.Equal(t, "tag:example.com,2000:app/", doc.TagDirectives[0].Prefix)
	assert.False(t, doc.Implicit)
}

func TestDocumentStreamVersionDirective(t *testing.T) {
	doc := loadOne(t, "%YAML 1.1\n---\na\n")

	require.NotNil(t, doc.Version)
	assert.Equal(t, 1, doc.Version.Major)
	assert.Equal(t, 1, doc.Version.Minor)
}

func TestDocumentStreamMultipleDocuments(t *testing.T) {
	p := yamlio.NewByteParser([]byte("a\n---\nb\n---\nc\n"), yamlio.EncodingAny)
	defer p.Close()

	docs := p.Documents()
	var values []string
	var implicit []bool
	for {
		doc, err := docs.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		values = append(values, doc.Root.Value)
		implicit = append(implicit, doc.Implicit)
	}
	assert.Equal(t, []string{"a", "b", "c"}, values)
	assert.Equal(t, []bool{true, false, false}, implicit)

	_, err := docs.Next()
	assert.ErrorIs(t, err, io.EOF, "exhaustion should hold on repeat calls")
}

func TestDocumentStreamAliasSharing(t *testing.T) {
	doc := loadOne(t, "defaults: &base\n  x: 1\nservice: *base\n")

	root := doc.Root
	require.Len(t, root.Content, 4)

	shared := root.Content[1]
	assert.Same(t, shared, root.Content[3], "an alias should reference the anchored node itself")
	assert.Equal(t, "base", shared.Anchor)
	assert.Same(t, shared, doc.Anchors["base"])
}

func TestDocumentStreamUndefinedAnchor(t *testing.T) {
	p := yamlio.NewByteParser([]byte("a: *nope\n"), yamlio.EncodingAny)
	defer p.Close()

	docs := p.Documents()
	_, err := docs.Next()

	var yerr *yamlio.Error
	require.ErrorAs(t, err, &yerr)
	assert.Equal(t, yamlio.ComposerError, yerr.Kind)
	assert.Equal(t, "unknown anchor 'nope' referenced", yerr.Problem)
	assert.EqualError(t, err, "yaml: line 1, column 4: unknown anchor 'nope' referenced")

	_, again := docs.Next()
	assert.Same(t, yerr, again, "a composition failure should latch")
	_, andAgain := docs.Next()
	assert.Same(t, yerr, andAgain)
}

func TestDocumentStreamAnchorRedefinition(t *testing.T) {
	doc := loadOne(t, "- &a 1\n- &a 2\n- *a\n")

	root := doc.Root
	require.Len(t, root.Content, 3)
	assert.Equal(t, "2", root.Content[2].Value, "the last definition of an anchor wins")
	assert.Same(t, root.Content[1], root.Content[2])
	assert.Same(t, root.Content[1], doc.Anchors["a"])
}

func TestDocumentStreamAnchorsResetPerDocument(t *testing.T) {
	p := yamlio.NewByteParser([]byte("&a 1\n---\n*a\n"), yamlio.EncodingAny)
	defer p.Close()

	docs := p.Documents()
	doc, err := docs.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", doc.Root.Value)
	assert.Same(t, doc.Root, doc.Anchors["a"])

	_, err = docs.Next()
	var yerr *yamlio.Error
	require.ErrorAs(t, err, &yerr)
	assert.Equal(t, yamlio.ComposerError, yerr.Kind)
	assert.Equal(t, "unknown anchor 'a' referenced", yerr.Problem)
}

func TestDocumentStreamAnchorRedefinitionAcrossDocuments(t *testing.T) {
	p := yamlio.NewByteParser([]byte("&a 1\n---\n&a 2\n"), yamlio.EncodingAny)
	defer p.Close()

	docs := p.Documents()
	first, err := docs.Next()
	require.NoError(t, err)
	second, err := docs.Next()
	require.NoError(t, err)

	assert.Equal(t, "1", first.Anchors["a"].Value)
	assert.Equal(t, "2", second.Anchors["a"].Value)
}

func TestDocumentStreamCycleFails(t *testing.T) {
	p := yamlio.NewByteParser([]byte("&a [*a]\n"), yamlio.EncodingAny)
	defer p.Close()

	docs := p.Documents()
	_, err := docs.Next()

	var yerr *yamlio.Error
	require.ErrorAs(t, err, &yerr)
	assert.Equal(t, yamlio.ComposerError, yerr.Kind)
	assert.Equal(t, "unknown anchor 'a' referenced", yerr.Problem,
		"an anchor is not defined until its node is complete")
}

func TestDocumentStreamEngineErrorNotLatched(t *testing.T) {
	p := yamlio.NewByteParser([]byte("a: 'b\n"), yamlio.EncodingAny)
	defer p.Close()

	docs := p.Documents()
	_, err := docs.Next()

	var yerr *yamlio.Error
	require.ErrorAs(t, err, &yerr)
	assert.Equal(t, yamlio.ScannerError, yerr.Kind)

	_, again := docs.Next()
	assert.Equal(t, err, again, "the engine failure should be reported again")
}

func TestDocumentStreamEmptyInput(t *testing.T) {
	p := yamlio.NewByteParser(nil, yamlio.EncodingAny)
	defer p.Close()

	docs := p.Documents()
	_, err := docs.Next()
	assert.ErrorIs(t, err, io.EOF)
	_, err = docs.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDocumentStreamEmptyDocument(t *testing.T) {
	doc := loadOne(t, "---\n")

	require.NotNil(t, doc.Root)
	assert.Equal(t, yamlio.ScalarNode, doc.Root.Kind)
	assert.Empty(t, doc.Root.Value)
	assert.False(t, doc.Implicit)
}

func TestDocumentStreamNestedContent(t *testing.T) {
	doc := loadOne(t, "servers:\n  - host: a\n    port: 1\n  - host: b\n    port: 2\n")

	root := doc.Root
	require.Len(t, root.Content, 2)
	assert.Equal(t, "servers", root.Content[0].Value)

	servers := root.Content[1]
	assert.Equal(t, yamlio.SequenceNode, servers.Kind)
	require.Len(t, servers.Content, 2)

	first := servers.Content[0]
	assert.Equal(t, yamlio.MappingNode, first.Kind)
	require.Len(t, first.Content, 4)
	assert.Equal(t, "host", first.Content[0].Value)
	assert.Equal(t, "a", first.Content[1].Value)
	assert.Equal(t, "port", first.Content[2].Value)
	assert.Equal(t, "1", first.Content[3].Value)

	assert.Equal(t, 2, first.Line, "the first server starts on the second line")
	assert.Equal(t, 4, servers.Content[1].Content[0].Line)
}
