// Package html implements an in-memory document model for HTML-like markup:
// a tree of sections and elements that can be built programmatically or
// reconstructed from parsed markup, then queried, mutated and serialized.
package html

import "errors"

// Shared errors for positional operations on properties, elements and
// sections. Search operations never fail - absence is reported through the
// NPos sentinel instead.
var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Formatting selects the whitespace policy used when rendering a node or a
// property list to text.
type Formatting int

const (
	FormattingNone    Formatting = iota // no inserted whitespace
	FormattingPretty                    // newline + depth-proportional indent
	FormattingNewline                   // newline separated, no indentation
)

func (f Formatting) String() string {
	switch f {
	case FormattingPretty:
		return "pretty"
	case FormattingNewline:
		return "newline"
	default:
		return "none"
	}
}

// ParseFormatting resolves a formatting mode name as used in configuration
// and on the command line.
func ParseFormatting(name string) (Formatting, error) {
	switch name {
	case "none":
		return FormattingNone, nil
	case "pretty":
		return FormattingPretty, nil
	case "newline":
		return FormattingNewline, nil
	}
	return FormattingNone, errors.New("unknown formatting mode: " + name)
}

// indentUnit is the fixed indentation unit used by pretty formatting. Not
// caller-configurable.
const indentUnit = "\t"

// Type classifies a tag for rendering purposes.
type Type int

const (
	// TypeContainer tags always emit an open/close wrapper pair, even when
	// empty.
	TypeContainer Type = iota
	// TypeVoid tags never emit children or a closing wrapper.
	TypeVoid
	// TypeNoFormat marks a pseudo-tag whose payload is emitted verbatim,
	// immune to any whitespace injection.
	TypeNoFormat
)

func (t Type) String() string {
	switch t {
	case TypeVoid:
		return "void"
	case TypeNoFormat:
		return "noformat"
	default:
		return "container"
	}
}

// FindParameters is a bit combination selecting which fields participate in
// a match and whether matching is exact or partial (substring).
type FindParameters uint

const (
	SearchTag FindParameters = 1 << iota
	SearchData
	SearchProperties
	Exact
)

// FindDefault is the parameter set used by tag/data driven searches.
const FindDefault = SearchTag | SearchData | Exact

// FindPropertyDefault is the parameter set used by property driven searches.
const FindPropertyDefault = SearchProperties | Exact

// Has reports whether all bits of p are set in f.
func (f FindParameters) Has(p FindParameters) bool {
	return f&p == p
}

// Index spaces for section children are deliberately distinct types: a
// position in the combined child list is not interchangeable with a position
// in a type-filtered subsequence, and mixing them up should not compile.

// ChildIndex is a position within the full ordered child sequence of a
// section, elements and subsections interleaved.
type ChildIndex int

// ElementIndex is a position within the elements-only subsequence of a
// section's children.
type ElementIndex int

// SectionIndex is a position within the sections-only subsequence of a
// section's children.
type SectionIndex int

// NPos is the not-found sentinel returned by search operations. It is a
// value, not an error: absence is data.
const NPos ChildIndex = -1

// PropertyIndex is a position within a property list. NPropertyPos is its
// not-found sentinel.
type PropertyIndex int

const NPropertyPos PropertyIndex = -1

// Node is a single member of a section's child list: either an *Element leaf
// or a nested *Section. The set is closed; tree algorithms switch
// exhaustively over the two cases.
type Node interface {
	// Render serializes the node under the given formatting mode, starting
	// at the given indentation depth.
	Render(f Formatting, indent int) string
	// CloneNode returns an independent deep copy of the node.
	CloneNode() Node
	// EqualNode reports deep structural equality.
	EqualNode(other Node) bool

	node() // marker, keeps the variant closed
}
