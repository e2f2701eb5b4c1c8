// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the composer that builds document trees from
// engine events. It runs a recursive descent over one document at a
// time with a single event of lookahead.

package yamlio

import (
	"fmt"

	"github.com/yamlio/yamlio/internal/libyaml"
)

// Document is one composed document of a YAML stream.
type Document struct {
	// Root is the top node of the document.
	Root *Node

	// Version holds the %YAML directive of the document, if any.
	Version *VersionDirective

	// TagDirectives holds the %TAG directives of the document.
	TagDirectives []TagDirective

	// Anchors maps each anchor defined in the document to the node it
	// names. When an anchor is redefined, the last definition wins.
	Anchors map[string]*Node

	// Implicit reports whether the document start marker was omitted.
	Implicit bool

	// Start and End delimit the document in the parsed input.
	Start, End Mark
}

// composer builds document trees from the events of a parser, holding
// one event of lookahead in a transient slot.
type composer struct {
	parser  Parser
	event   libyaml.Event
	anchors map[string]*Node
}

// peek fills the lookahead slot if it is empty and returns the event
// type in it. After the stream end the slot stays empty and peek keeps
// returning NO_EVENT.
func (c *composer) peek() (libyaml.EventType, error) {
	if c.event.Type == libyaml.NO_EVENT {
		if !c.parser.parseOne(&c.event) {
			return libyaml.NO_EVENT, c.parser.buildError()
		}
	}
	return c.event.Type, nil
}

// expect consumes the lookahead event, which must be of the given type.
func (c *composer) expect(t libyaml.EventType) error {
	if c.event.Type == libyaml.NO_EVENT {
		if _, err := c.peek(); err != nil {
			return err
		}
	}
	if c.event.Type != t {
		return c.composeError(fmt.Sprintf("expected %s event but got %s", t, c.event.Type))
	}
	c.event.Delete()
	return nil
}

// composeError builds a composer-kind failure at the lookahead event.
// Lines are reported 1-based like scanner failures.
func (c *composer) composeError(problem string) *Error {
	mark := c.event.StartMark
	mark.Line++
	return &Error{
		Kind:    ComposerError,
		Problem: problem,
		Context: &ErrorContext{
			Offset: mark.Index,
			Mark:   mark,
		},
	}
}

// document composes one document, from its start event through its end
// event. The anchor table is fresh for every document.
func (c *composer) document() (*Document, error) {
	if _, err := c.peek(); err != nil {
		return nil, err
	}
	c.anchors = make(map[string]*Node)
	doc := &Document{
		Implicit: c.event.Implicit,
		Start:    c.event.StartMark,
	}
	if vd := c.event.GetVersionDirective(); vd != nil {
		doc.Version = &VersionDirective{
			Major: vd.Major(),
			Minor: vd.Minor(),
		}
	}
	if tds := c.event.GetTagDirectives(); len(tds) > 0 {
		doc.TagDirectives = make([]TagDirective, len(tds))
		for i, td := range tds {
			doc.TagDirectives[i] = TagDirective{
				Handle: td.GetHandle(),
				Prefix: td.GetPrefix(),
			}
		}
	}
	if err := c.expect(libyaml.DOCUMENT_START_EVENT); err != nil {
		return nil, err
	}
	root, err := c.parse()
	if err != nil {
		return nil, err
	}
	doc.Root = root
	if _, err := c.peek(); err != nil {
		return nil, err
	}
	doc.End = c.event.EndMark
	if err := c.expect(libyaml.DOCUMENT_END_EVENT); err != nil {
		return nil, err
	}
	doc.Anchors = c.anchors
	return doc, nil
}

// parse composes the node at the lookahead event.
func (c *composer) parse() (*Node, error) {
	kind, err := c.peek()
	if err != nil {
		return nil, err
	}
	switch kind {
	case libyaml.SCALAR_EVENT:
		return c.scalar()
	case libyaml.ALIAS_EVENT:
		return c.alias()
	case libyaml.MAPPING_START_EVENT:
		return c.mapping()
	case libyaml.SEQUENCE_START_EVENT:
		return c.sequence()
	default:
		panic("internal error: attempted to compose unknown event (please report): " + kind.String())
	}
}

// anchor records a completed node under its anchor, right before the
// node is handed to its parent. A later sibling can reference it; a
// descendant of the node itself cannot, so cyclic trees never form.
func (c *composer) anchor(n *Node, anchor string) {
	if anchor != "" {
		n.Anchor = anchor
		c.anchors[anchor] = n
	}
}

func (c *composer) scalar() (*Node, error) {
	n := &Node{
		Kind:   ScalarNode,
		Tag:    string(c.event.Tag),
		Value:  string(c.event.Value),
		Line:   c.event.StartMark.Line + 1,
		Column: c.event.StartMark.Column + 1,
	}
	parsedStyle := c.event.ScalarStyle()
	switch {
	case parsedStyle&libyaml.DOUBLE_QUOTED_SCALAR_STYLE != 0:
		n.Style = DoubleQuotedStyle
	case parsedStyle&libyaml.SINGLE_QUOTED_SCALAR_STYLE != 0:
		n.Style = SingleQuotedStyle
	case parsedStyle&libyaml.LITERAL_SCALAR_STYLE != 0:
		n.Style = LiteralStyle
	case parsedStyle&libyaml.FOLDED_SCALAR_STYLE != 0:
		n.Style = FoldedStyle
	}
	if n.Tag != "" && n.Tag != "!" {
		n.Style |= TaggedStyle
	}
	anchor := string(c.event.Anchor)
	if err := c.expect(libyaml.SCALAR_EVENT); err != nil {
		return nil, err
	}
	c.anchor(n, anchor)
	return n, nil
}

func (c *composer) alias() (*Node, error) {
	name := string(c.event.Anchor)
	n := c.anchors[name]
	if n == nil {
		return nil, c.composeError(fmt.Sprintf("unknown anchor '%s' referenced", name))
	}
	if err := c.expect(libyaml.ALIAS_EVENT); err != nil {
		return nil, err
	}
	return n, nil
}

func (c *composer) sequence() (*Node, error) {
	n := &Node{
		Kind:   SequenceNode,
		Tag:    string(c.event.Tag),
		Line:   c.event.StartMark.Line + 1,
		Column: c.event.StartMark.Column + 1,
	}
	if c.event.SequenceStyle()&libyaml.FLOW_SEQUENCE_STYLE != 0 {
		n.Style |= FlowStyle
	}
	if n.Tag != "" && n.Tag != "!" {
		n.Style |= TaggedStyle
	}
	anchor := string(c.event.Anchor)
	if err := c.expect(libyaml.SEQUENCE_START_EVENT); err != nil {
		return nil, err
	}
	for {
		kind, err := c.peek()
		if err != nil {
			return nil, err
		}
		if kind == libyaml.SEQUENCE_END_EVENT {
			break
		}
		child, err := c.parse()
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, child)
	}
	if err := c.expect(libyaml.SEQUENCE_END_EVENT); err != nil {
		return nil, err
	}
	c.anchor(n, anchor)
	return n, nil
}

func (c *composer) mapping() (*Node, error) {
	n := &Node{
		Kind:   MappingNode,
		Tag:    string(c.event.Tag),
		Line:   c.event.StartMark.Line + 1,
		Column: c.event.StartMark.Column + 1,
	}
	if c.event.MappingStyle()&libyaml.FLOW_MAPPING_STYLE != 0 {
		n.Style |= FlowStyle
	}
	if n.Tag != "" && n.Tag != "!" {
		n.Style |= TaggedStyle
	}
	anchor := string(c.event.Anchor)
	if err := c.expect(libyaml.MAPPING_START_EVENT); err != nil {
		return nil, err
	}
	for {
		kind, err := c.peek()
		if err != nil {
			return nil, err
		}
		if kind == libyaml.MAPPING_END_EVENT {
			break
		}
		key, err := c.parse()
		if err != nil {
			return nil, err
		}
		value, err := c.parse()
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, key, value)
	}
	if err := c.expect(libyaml.MAPPING_END_EVENT); err != nil {
		return nil, err
	}
	c.anchor(n, anchor)
	return n, nil
}
