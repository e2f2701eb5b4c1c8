package yamlio_test

import (
	"errors"
	"io"
	"testing"

	"github.com/yamlio/yamlio"
)

var fuzzSeeds = [][]byte{
	[]byte(""),
	[]byte("a: b\n"),
	[]byte("- 1\n- 2\n"),
	[]byte("[1, {a: 'b'}, \"c\"]\n"),
	[]byte("%YAML 1.1\n---\na\n...\n"),
	[]byte("%TAG !e! tag:example.com,2000:app/\n---\n!e!foo bar\n"),
	[]byte("defaults: &base\n  x: 1\nservice: *base\n"),
	[]byte("&a [*a]\n"),
	[]byte("---\na\n---\nb\n"),
	[]byte("|\n  literal\n"),
	[]byte{0xFF, 0xFE, 'a', 0x00, '\n', 0x00},
	[]byte{0xFE, 0xFF, 0x00, 'a', 0x00, '\n'},
	[]byte{0xC2},
}

func FuzzEventStream(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in []byte) {
		p := yamlio.NewByteParser(in, yamlio.EncodingAny)
		defer p.Close()

		events := p.Events()
		for {
			event, err := events.Next()
			if err != nil {
				return
			}
			if event == nil {
				t.Fatalf("nil event without an error for input %q", in)
			}
		}
	})
}

func FuzzDocumentStream(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in []byte) {
		p := yamlio.NewByteParser(in, yamlio.EncodingAny)
		defer p.Close()

		docs := p.Documents()
		for {
			doc, err := docs.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				return
			}
			checkNodeShape(t, doc.Root, in, make(map[*yamlio.Node]bool))
		}
	})
}

// checkNodeShape verifies the structural invariants of a composed tree.
// Aliased nodes are shared, so every node is checked once.
func checkNodeShape(t *testing.T, n *yamlio.Node, in []byte, seen map[*yamlio.Node]bool) {
	if n == nil {
		t.Fatalf("nil node in composed document for input %q", in)
	}
	if seen[n] {
		return
	}
	seen[n] = true
	switch n.Kind {
	case yamlio.ScalarNode:
		if n.Content != nil {
			t.Fatalf("scalar node with children for input %q", in)
		}
	case yamlio.MappingNode:
		if len(n.Content)%2 != 0 {
			t.Fatalf("mapping node with odd content length %d for input %q", len(n.Content), in)
		}
		fallthrough
	case yamlio.SequenceNode:
		for _, child := range n.Content {
			checkNodeShape(t, child, in, seen)
		}
	default:
		t.Fatalf("node with unnamed kind %d for input %q", n.Kind, in)
	}
}
