package yamlio

import "github.com/yamlio/yamlio/internal/libyaml"

//-----------------------------------------------------------------------------
// Node types for composed document trees
//-----------------------------------------------------------------------------

// Kind identifies the type of a YAML node.
type Kind uint32

const (
	ScalarNode Kind = 1 << iota
	SequenceNode
	MappingNode
)

// Style controls the presentation of a YAML node.
type Style uint32

const (
	TaggedStyle Style = 1 << iota
	DoubleQuotedStyle
	SingleQuotedStyle
	LiteralStyle
	FoldedStyle
	FlowStyle
)

// Node represents a YAML node in a composed document tree.
//
// Mapping nodes keep their key/value pairs as consecutive Content
// entries, in input order. Aliases never appear in the tree: each alias
// is resolved while the document is composed, and the anchored node
// itself is shared by every position that references it.
type Node struct {
	// Kind defines whether the node is a scalar, a sequence, or a mapping.
	Kind Kind

	// Style describes how the node was written in the input.
	Style Style

	// Tag holds the tag attached to the node in the input, if any. Tag
	// handles are expanded through the %TAG directives in effect, but no
	// schema resolution is applied, so an untagged plain scalar has an
	// empty Tag.
	Tag string

	// Value holds the unquoted scalar value.
	Value string

	// Anchor holds the anchor name for this node, if any.
	Anchor string

	// Content holds the children of sequence and mapping nodes.
	Content []*Node

	// Line and Column hold the position of the node in the parsed input.
	// The first line and column of the input are both 1.
	Line   int
	Column int
}

// Well-known YAML tag names, as they appear in Node.Tag and Event.Tag
// after tag handle expansion.
const (
	TagNull      = libyaml.NULL_TAG
	TagBool      = libyaml.BOOL_TAG
	TagStr       = libyaml.STR_TAG
	TagInt       = libyaml.INT_TAG
	TagFloat     = libyaml.FLOAT_TAG
	TagTimestamp = libyaml.TIMESTAMP_TAG
	TagSeq       = libyaml.SEQ_TAG
	TagMap       = libyaml.MAP_TAG
	TagBinary    = libyaml.BINARY_TAG
	TagMerge     = libyaml.MERGE_TAG
)
