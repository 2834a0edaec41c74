package html

import (
	"fmt"
	"strings"
)

// Section is an interior node: a tag with attributes and an ordered list of
// child nodes, elements and subsections interleaved.
type Section struct {
	tag        string
	typ        Type
	properties Properties
	children   []Node
}

// NewSection builds a section from a symbolic tag identifier.
func NewSection(tag Tag, properties Properties) *Section {
	name, typ := Resolve(tag)
	return &Section{
		tag:        name,
		typ:        typ,
		properties: properties.Clone(),
	}
}

// NewSectionNamed builds a section from a raw tag spelling.
func NewSectionNamed(name string, properties Properties) *Section {
	return &Section{
		tag:        name,
		typ:        TypeOfName(name),
		properties: properties.Clone(),
	}
}

// Tag returns the raw tag spelling. An empty spelling marks a transparent
// wrapper that renders only its children.
func (s *Section) Tag() string { return s.tag }

// Type returns the rendering classification.
func (s *Section) Type() Type { return s.typ }

// Properties returns an independent copy of the attribute list.
func (s *Section) Properties() Properties { return s.properties.Clone() }

// SetTag replaces the tag by symbolic identifier.
func (s *Section) SetTag(tag Tag) {
	s.tag, s.typ = Resolve(tag)
}

// SetTagName replaces the tag by raw spelling.
func (s *Section) SetTagName(name string) {
	s.tag = name
	s.typ = TypeOfName(name)
}

// SetProperties replaces the attribute list.
func (s *Section) SetProperties(properties Properties) {
	s.properties = properties.Clone()
}

// PushProperty appends an attribute.
func (s *Section) PushProperty(p Property) {
	s.properties.PushBack(p)
}

// Size returns the number of children, elements and subsections combined.
func (s *Section) Size() int {
	return len(s.children)
}

// Empty reports whether the section has no children.
func (s *Section) Empty() bool {
	return len(s.children) == 0
}

// Clear removes all children.
func (s *Section) Clear() {
	s.children = nil
}

// PushFront prepends a deep copy of the node to the child list.
func (s *Section) PushFront(n Node) {
	s.children = append([]Node{n.CloneNode()}, s.children...)
}

// PushBack appends a deep copy of the node to the child list.
func (s *Section) PushBack(n Node) {
	s.children = append(s.children, n.CloneNode())
}

// Insert places a deep copy of the node at the given combined position,
// shifting the rest right. Inserting at Size() appends.
func (s *Section) Insert(i ChildIndex, n Node) error {
	if i < 0 || int(i) > len(s.children) {
		return fmt.Errorf("insert at %d of %d: %w", i, len(s.children), ErrOutOfRange)
	}
	s.children = append(s.children, nil)
	copy(s.children[i+1:], s.children[i:])
	s.children[i] = n.CloneNode()
	return nil
}

// EraseAt removes the child at the given combined position.
func (s *Section) EraseAt(i ChildIndex) error {
	if i < 0 || int(i) >= len(s.children) {
		return fmt.Errorf("erase at %d of %d: %w", i, len(s.children), ErrOutOfRange)
	}
	s.children = append(s.children[:i], s.children[i+1:]...)
	return nil
}

// Erase removes the first child structurally equal to the given node.
func (s *Section) Erase(n Node) error {
	for i, child := range s.children {
		if child.EqualNode(n) {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("erase: %w", ErrNotFound)
}

// Child returns the child at the given combined position. The returned node
// is live: mutating it mutates the tree.
func (s *Section) Child(i ChildIndex) (Node, error) {
	if i < 0 || int(i) >= len(s.children) {
		return nil, fmt.Errorf("child %d of %d: %w", i, len(s.children), ErrOutOfRange)
	}
	return s.children[i], nil
}

// At returns the element at the given position of the elements-only
// subsequence. The returned element is live.
func (s *Section) At(i ElementIndex) (*Element, error) {
	if i >= 0 {
		n := ElementIndex(0)
		for _, child := range s.children {
			if e, ok := child.(*Element); ok {
				if n == i {
					return e, nil
				}
				n++
			}
		}
	}
	return nil, fmt.Errorf("element %d: %w", i, ErrOutOfRange)
}

// AtSection returns the subsection at the given position of the
// sections-only subsequence. The returned section is live.
func (s *Section) AtSection(i SectionIndex) (*Section, error) {
	if i >= 0 {
		n := SectionIndex(0)
		for _, child := range s.children {
			if sub, ok := child.(*Section); ok {
				if n == i {
					return sub, nil
				}
				n++
			}
		}
	}
	return nil, fmt.Errorf("section %d: %w", i, ErrOutOfRange)
}

// Front returns the first element child.
func (s *Section) Front() (*Element, error) {
	return s.At(0)
}

// Back returns the last element child.
func (s *Section) Back() (*Element, error) {
	var last *Element
	for _, child := range s.children {
		if e, ok := child.(*Element); ok {
			last = e
		}
	}
	if last == nil {
		return nil, fmt.Errorf("no elements: %w", ErrOutOfRange)
	}
	return last, nil
}

// FrontSection returns the first subsection child.
func (s *Section) FrontSection() (*Section, error) {
	return s.AtSection(0)
}

// BackSection returns the last subsection child.
func (s *Section) BackSection() (*Section, error) {
	var last *Section
	for _, child := range s.children {
		if sub, ok := child.(*Section); ok {
			last = sub
		}
	}
	if last == nil {
		return nil, fmt.Errorf("no sections: %w", ErrOutOfRange)
	}
	return last, nil
}

// Elements returns a fresh independent snapshot of the elements-only
// subsequence. Recomputed from the current children on every call; mutating
// the snapshot never touches the tree.
func (s *Section) Elements() []Element {
	var out []Element
	for _, child := range s.children {
		if e, ok := child.(*Element); ok {
			out = append(out, *e.Clone())
		}
	}
	return out
}

// Sections returns a fresh independent snapshot of the sections-only
// subsequence.
func (s *Section) Sections() []Section {
	var out []Section
	for _, child := range s.children {
		if sub, ok := child.(*Section); ok {
			out = append(out, *sub.Clone())
		}
	}
	return out
}

// Swap exchanges the children at two combined positions.
func (s *Section) Swap(i, j ChildIndex) error {
	if i < 0 || int(i) >= len(s.children) || j < 0 || int(j) >= len(s.children) {
		return fmt.Errorf("swap %d and %d of %d: %w", i, j, len(s.children), ErrOutOfRange)
	}
	s.children[i], s.children[j] = s.children[j], s.children[i]
	return nil
}

// SwapValues exchanges the first children structurally equal to a and b.
// When either is absent the tree is left untouched.
func (s *Section) SwapValues(a, b Node) {
	i, j := NPos, NPos
	for k, child := range s.children {
		if i == NPos && child.EqualNode(a) {
			i = ChildIndex(k)
		}
		if j == NPos && child.EqualNode(b) {
			j = ChildIndex(k)
		}
	}
	if i == NPos || j == NPos {
		return
	}
	s.children[i], s.children[j] = s.children[j], s.children[i]
}

// Find scans the combined child list forward from start for the first child
// matching the needle and returns its combined position, or NPos. It never
// wraps around and never fails; unrecognized needles simply do not match.
//
// The needle may be an *Element or *Section (field-wise comparison under the
// selected parameters), a raw string (matched against tag spelling and text
// payload), a Tag (matched against the tag spelling), a Property or a
// Properties list (matched against child attributes). Passing zero params
// selects FindDefault, or FindPropertyDefault for property needles; property
// needles always match on attributes regardless of other bits.
func (s *Section) Find(needle any, start ChildIndex, params FindParameters) ChildIndex {
	if start < 0 {
		start = 0
	}
	match := s.matcher(needle, params)
	if match == nil {
		return NPos
	}
	for i := int(start); i < len(s.children); i++ {
		if match(s.children[i]) {
			return ChildIndex(i)
		}
	}
	return NPos
}

func (s *Section) matcher(needle any, params FindParameters) func(Node) bool {
	switch n := needle.(type) {
	case *Element:
		if params == 0 {
			params = FindDefault
		}
		return func(child Node) bool {
			e, ok := child.(*Element)
			if !ok {
				return false
			}
			return matchFields(params, e.tag, n.tag, e.data, n.data, &e.properties, &n.properties)
		}
	case *Section:
		if params == 0 {
			params = FindDefault
		}
		return func(child Node) bool {
			sub, ok := child.(*Section)
			if !ok {
				return false
			}
			return matchFields(params, sub.tag, n.tag, "", "", &sub.properties, &n.properties)
		}
	case string:
		if params == 0 {
			params = FindDefault
		}
		return func(child Node) bool {
			tag, data := nodeFields(child)
			if params.Has(SearchTag) && matchText(tag, n, params.Has(Exact)) {
				return true
			}
			if params.Has(SearchData) && matchText(data, n, params.Has(Exact)) {
				return true
			}
			return false
		}
	case Tag:
		name, _ := Resolve(n)
		if params == 0 {
			params = FindDefault
		}
		return func(child Node) bool {
			tag, _ := nodeFields(child)
			return params.Has(SearchTag) && matchText(tag, name, params.Has(Exact))
		}
	case Property:
		return s.matcher(NewProperties(n), params)
	case Properties:
		if params == 0 {
			params = FindPropertyDefault
		}
		return func(child Node) bool {
			props := nodeProperties(child)
			return props.contains(n, params.Has(Exact))
		}
	}
	return nil
}

// matchFields applies the selected criteria conjunctively. An empty
// criterion set matches nothing.
func matchFields(params FindParameters, tag, wantTag, data, wantData string, props, wantProps *Properties) bool {
	matched := false
	if params.Has(SearchTag) {
		if !matchText(tag, wantTag, params.Has(Exact)) {
			return false
		}
		matched = true
	}
	if params.Has(SearchData) {
		if !matchText(data, wantData, params.Has(Exact)) {
			return false
		}
		matched = true
	}
	if params.Has(SearchProperties) {
		if !props.contains(*wantProps, params.Has(Exact)) {
			return false
		}
		matched = true
	}
	return matched
}

func matchText(have, want string, exact bool) bool {
	if exact {
		return have == want
	}
	return strings.Contains(have, want)
}

func nodeFields(n Node) (tag, data string) {
	switch v := n.(type) {
	case *Element:
		return v.tag, v.data
	case *Section:
		return v.tag, ""
	}
	return "", ""
}

func nodeProperties(n Node) *Properties {
	switch v := n.(type) {
	case *Element:
		return &v.properties
	case *Section:
		return &v.properties
	}
	return &Properties{}
}

// Equal reports deep structural equality with another section.
func (s *Section) Equal(other *Section) bool {
	if other == nil {
		return false
	}
	if s.tag != other.tag || s.typ != other.typ || !s.properties.Equal(other.properties) {
		return false
	}
	if len(s.children) != len(other.children) {
		return false
	}
	for i := range s.children {
		if !s.children[i].EqualNode(other.children[i]) {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy of the whole subtree.
func (s *Section) Clone() *Section {
	out := &Section{
		tag:        s.tag,
		typ:        s.typ,
		properties: s.properties.Clone(),
	}
	if len(s.children) > 0 {
		out.children = make([]Node, len(s.children))
		for i, child := range s.children {
			out.children[i] = child.CloneNode()
		}
	}
	return out
}

// Render serializes the whole subtree. A section with an empty tag spelling
// is a transparent wrapper: it renders only its children and does not add an
// indentation level.
func (s *Section) Render(f Formatting, indent int) string {
	var sb strings.Builder
	s.render(&sb, f, indent)
	return sb.String()
}

func (s *Section) render(sb *strings.Builder, f Formatting, indent int) {
	childIndent := indent
	if s.tag != "" {
		writeBreak(sb, f, indent)
		sb.WriteByte('<')
		sb.WriteString(s.tag)
		s.properties.render(sb)
		sb.WriteByte('>')
		childIndent = indent + 1
	}
	for _, child := range s.children {
		switch c := child.(type) {
		case *Element:
			c.render(sb, f, childIndent)
		case *Section:
			c.render(sb, f, childIndent)
		}
	}
	if s.tag != "" {
		if len(s.children) > 0 {
			writeBreak(sb, f, indent)
		}
		sb.WriteString("</")
		sb.WriteString(s.tag)
		sb.WriteByte('>')
	}
}

// CloneNode implements Node.
func (s *Section) CloneNode() Node { return s.Clone() }

// EqualNode implements Node.
func (s *Section) EqualNode(other Node) bool {
	o, ok := other.(*Section)
	if !ok {
		return false
	}
	return s.Equal(o)
}

func (s *Section) node() {}
