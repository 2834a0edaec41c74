// Package css implements an ordered value model for CSS stylesheet
// fragments: declarations, rulesets and stylesheets that can be built
// programmatically or parsed from text, then mutated and serialized.
package css

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrNotFound   = errors.New("not found")
)

// Formatting selects the whitespace policy used when rendering declarations
// and rulesets to text.
type Formatting int

const (
	FormattingNone    Formatting = iota // declarations concatenated
	FormattingPretty                    // one declaration per line, indented
	FormattingNewline                   // one declaration per line, no indent
)

const indentUnit = "\t"

// NPos is the not-found sentinel returned by search operations.
const NPos = -1

// Property is a single CSS declaration.
type Property struct {
	Key   string
	Value string
}

// Equal reports whether two declarations have the same key and value.
func (p Property) Equal(other Property) bool {
	return p.Key == other.Key && p.Value == other.Value
}

// String renders the declaration in `key: value;` form.
func (p Property) String() string {
	return p.Key + ": " + p.Value + ";"
}

// Properties is an ordered declaration list. Duplicate keys are allowed and
// order is significant.
type Properties struct {
	items []Property
}

// NewProperties builds a list from the given declarations in order.
func NewProperties(items ...Property) Properties {
	p := Properties{}
	if len(items) > 0 {
		p.items = make([]Property, len(items))
		copy(p.items, items)
	}
	return p
}

// Size returns the number of declarations.
func (p *Properties) Size() int { return len(p.items) }

// Empty reports whether the list holds no declarations.
func (p *Properties) Empty() bool { return len(p.items) == 0 }

// Clear removes all declarations.
func (p *Properties) Clear() { p.items = nil }

// At returns the declaration at the given position.
func (p *Properties) At(i int) (Property, error) {
	if i < 0 || i >= len(p.items) {
		return Property{}, fmt.Errorf("property %d of %d: %w", i, len(p.items), ErrOutOfRange)
	}
	return p.items[i], nil
}

// PushFront prepends a declaration.
func (p *Properties) PushFront(prop Property) {
	p.items = append([]Property{prop}, p.items...)
}

// PushBack appends a declaration.
func (p *Properties) PushBack(prop Property) {
	p.items = append(p.items, prop)
}

// Insert places a declaration at the given position. Inserting at Size()
// appends.
func (p *Properties) Insert(i int, prop Property) error {
	if i < 0 || i > len(p.items) {
		return fmt.Errorf("insert at %d of %d: %w", i, len(p.items), ErrOutOfRange)
	}
	p.items = append(p.items, Property{})
	copy(p.items[i+1:], p.items[i:])
	p.items[i] = prop
	return nil
}

// Erase removes the declaration at the given position.
func (p *Properties) Erase(i int) error {
	if i < 0 || i >= len(p.items) {
		return fmt.Errorf("erase at %d of %d: %w", i, len(p.items), ErrOutOfRange)
	}
	p.items = append(p.items[:i], p.items[i+1:]...)
	return nil
}

// Swap exchanges the declarations at two positions.
func (p *Properties) Swap(i, j int) error {
	if i < 0 || i >= len(p.items) || j < 0 || j >= len(p.items) {
		return fmt.Errorf("swap %d and %d of %d: %w", i, j, len(p.items), ErrOutOfRange)
	}
	p.items[i], p.items[j] = p.items[j], p.items[i]
	return nil
}

// Find returns the position of the first declaration at or after start that
// is equal to needle, or NPos.
func (p *Properties) Find(needle Property, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(p.items); i++ {
		if p.items[i].Equal(needle) {
			return i
		}
	}
	return NPos
}

// FindKey returns the position of the first declaration with the given key
// at or after start, or NPos.
func (p *Properties) FindKey(key string, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(p.items); i++ {
		if p.items[i].Key == key {
			return i
		}
	}
	return NPos
}

// Get returns the value of the first declaration with the given key.
func (p *Properties) Get(key string) (string, bool) {
	if i := p.FindKey(key, 0); i != NPos {
		return p.items[i].Value, true
	}
	return "", false
}

// List returns an independent copy of the declarations in order.
func (p *Properties) List() []Property {
	if len(p.items) == 0 {
		return nil
	}
	out := make([]Property, len(p.items))
	copy(out, p.items)
	return out
}

// Clone returns an independent deep copy of the list.
func (p *Properties) Clone() Properties {
	return NewProperties(p.items...)
}

// Equal reports whether two lists hold the same declarations in order.
func (p *Properties) Equal(other Properties) bool {
	if len(p.items) != len(other.items) {
		return false
	}
	for i := range p.items {
		if !p.items[i].Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// Render serializes the declaration list under the given mode.
func (p *Properties) Render(f Formatting, indent int) string {
	var sb strings.Builder
	for i, prop := range p.items {
		if f != FormattingNone && i > 0 {
			sb.WriteByte('\n')
		}
		if f == FormattingPretty {
			for t := 0; t < indent; t++ {
				sb.WriteString(indentUnit)
			}
		}
		sb.WriteString(prop.String())
	}
	return sb.String()
}

// Element is a single ruleset: a selector with its declarations.
type Element struct {
	selector   string
	properties Properties
}

// NewElement builds a ruleset.
func NewElement(selector string, properties Properties) Element {
	return Element{selector: selector, properties: properties.Clone()}
}

// Selector returns the selector text.
func (e *Element) Selector() string { return e.selector }

// Properties returns an independent copy of the declarations.
func (e *Element) Properties() Properties { return e.properties.Clone() }

// SetSelector replaces the selector.
func (e *Element) SetSelector(selector string) { e.selector = selector }

// SetProperties replaces the declarations.
func (e *Element) SetProperties(properties Properties) {
	e.properties = properties.Clone()
}

// PushProperty appends a declaration.
func (e *Element) PushProperty(p Property) {
	e.properties.PushBack(p)
}

// Get returns the value of the first declaration with the given key.
func (e *Element) Get(key string) (string, bool) {
	return e.properties.Get(key)
}

// Equal reports deep structural equality.
func (e *Element) Equal(other Element) bool {
	return e.selector == other.selector && e.properties.Equal(other.properties)
}

// Clone returns an independent deep copy.
func (e *Element) Clone() Element {
	return Element{selector: e.selector, properties: e.properties.Clone()}
}

// Render serializes the ruleset. None keeps everything on one line; Pretty
// and Newline put each declaration on its own line, Pretty indenting one
// level deeper than the braces.
func (e *Element) Render(f Formatting, indent int) string {
	var sb strings.Builder
	e.render(&sb, f, indent)
	return sb.String()
}

func (e *Element) render(sb *strings.Builder, f Formatting, indent int) {
	if f == FormattingPretty {
		for t := 0; t < indent; t++ {
			sb.WriteString(indentUnit)
		}
	}
	sb.WriteString(e.selector)
	sb.WriteString(" {")
	if f == FormattingNone {
		for _, prop := range e.properties.items {
			sb.WriteString(prop.String())
		}
		sb.WriteByte('}')
		return
	}
	for _, prop := range e.properties.items {
		sb.WriteByte('\n')
		if f == FormattingPretty {
			for t := 0; t <= indent; t++ {
				sb.WriteString(indentUnit)
			}
		}
		sb.WriteString(prop.String())
	}
	sb.WriteByte('\n')
	if f == FormattingPretty {
		for t := 0; t < indent; t++ {
			sb.WriteString(indentUnit)
		}
	}
	sb.WriteByte('}')
}

// Stylesheet is an ordered list of rulesets. Warnings collects constructs
// the parser skipped.
type Stylesheet struct {
	elements []Element

	Warnings []string
}

// NewStylesheet builds a stylesheet from the given rulesets in order.
func NewStylesheet(elements ...Element) *Stylesheet {
	s := &Stylesheet{}
	for _, e := range elements {
		s.elements = append(s.elements, e.Clone())
	}
	return s
}

// Size returns the number of rulesets.
func (s *Stylesheet) Size() int { return len(s.elements) }

// Empty reports whether the stylesheet holds no rulesets.
func (s *Stylesheet) Empty() bool { return len(s.elements) == 0 }

// Clear removes all rulesets.
func (s *Stylesheet) Clear() { s.elements = nil }

// At returns the ruleset at the given position. The returned ruleset is
// live: mutating it mutates the stylesheet.
func (s *Stylesheet) At(i int) (*Element, error) {
	if i < 0 || i >= len(s.elements) {
		return nil, fmt.Errorf("element %d of %d: %w", i, len(s.elements), ErrOutOfRange)
	}
	return &s.elements[i], nil
}

// PushFront prepends a deep copy of the ruleset.
func (s *Stylesheet) PushFront(e Element) {
	s.elements = append([]Element{e.Clone()}, s.elements...)
}

// PushBack appends a deep copy of the ruleset.
func (s *Stylesheet) PushBack(e Element) {
	s.elements = append(s.elements, e.Clone())
}

// Insert places a deep copy of the ruleset at the given position.
func (s *Stylesheet) Insert(i int, e Element) error {
	if i < 0 || i > len(s.elements) {
		return fmt.Errorf("insert at %d of %d: %w", i, len(s.elements), ErrOutOfRange)
	}
	s.elements = append(s.elements, Element{})
	copy(s.elements[i+1:], s.elements[i:])
	s.elements[i] = e.Clone()
	return nil
}

// EraseAt removes the ruleset at the given position.
func (s *Stylesheet) EraseAt(i int) error {
	if i < 0 || i >= len(s.elements) {
		return fmt.Errorf("erase at %d of %d: %w", i, len(s.elements), ErrOutOfRange)
	}
	s.elements = append(s.elements[:i], s.elements[i+1:]...)
	return nil
}

// Erase removes the first ruleset structurally equal to e.
func (s *Stylesheet) Erase(e Element) error {
	for i := range s.elements {
		if s.elements[i].Equal(e) {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("erase: %w", ErrNotFound)
}

// Swap exchanges the rulesets at two positions.
func (s *Stylesheet) Swap(i, j int) error {
	if i < 0 || i >= len(s.elements) || j < 0 || j >= len(s.elements) {
		return fmt.Errorf("swap %d and %d of %d: %w", i, j, len(s.elements), ErrOutOfRange)
	}
	s.elements[i], s.elements[j] = s.elements[j], s.elements[i]
	return nil
}

// FindSelector returns the position of the first ruleset with the given
// selector at or after start, or NPos.
func (s *Stylesheet) FindSelector(selector string, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(s.elements); i++ {
		if s.elements[i].selector == selector {
			return i
		}
	}
	return NPos
}

// Elements returns an independent snapshot of the rulesets in order.
func (s *Stylesheet) Elements() []Element {
	var out []Element
	for i := range s.elements {
		out = append(out, s.elements[i].Clone())
	}
	return out
}

// Render serializes the whole stylesheet. Rulesets are concatenated under
// None and separated by newlines otherwise.
func (s *Stylesheet) Render(f Formatting, indent int) string {
	var sb strings.Builder
	for i := range s.elements {
		if f != FormattingNone && i > 0 {
			sb.WriteByte('\n')
		}
		s.elements[i].render(&sb, f, indent)
	}
	return sb.String()
}
