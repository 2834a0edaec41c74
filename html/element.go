package html

import "strings"

// Element is a leaf node: a tag with attributes and a text payload, no
// children.
type Element struct {
	tag        string
	typ        Type
	properties Properties
	data       string
}

// NewElement builds an element from a symbolic tag identifier. The raw
// spelling and classification come from the catalog.
func NewElement(tag Tag, properties Properties, data string) *Element {
	name, typ := Resolve(tag)
	return &Element{
		tag:        name,
		typ:        typ,
		properties: properties.Clone(),
		data:       data,
	}
}

// NewElementNamed builds an element from a raw tag spelling. Known spellings
// pick up their catalog classification; unknown ones keep the spelling
// verbatim and classify as containers.
func NewElementNamed(name string, properties Properties, data string) *Element {
	return &Element{
		tag:        name,
		typ:        TypeOfName(name),
		properties: properties.Clone(),
		data:       data,
	}
}

// NewElementWithType builds an element with an explicit classification,
// bypassing the catalog. Used when reconstructing trees from parsed tokens
// that carry their own classification.
func NewElementWithType(name string, properties Properties, data string, typ Type) *Element {
	return &Element{
		tag:        name,
		typ:        typ,
		properties: properties.Clone(),
		data:       data,
	}
}

// Text builds a bare text element: no tag, payload emitted verbatim.
func Text(data string) *Element {
	return &Element{typ: TypeNoFormat, data: data}
}

// Tag returns the raw tag spelling.
func (e *Element) Tag() string { return e.tag }

// Type returns the rendering classification.
func (e *Element) Type() Type { return e.typ }

// Data returns the text payload.
func (e *Element) Data() string { return e.data }

// Properties returns an independent copy of the attribute list.
func (e *Element) Properties() Properties { return e.properties.Clone() }

// SetTag replaces the tag by symbolic identifier, updating the
// classification from the catalog.
func (e *Element) SetTag(tag Tag) {
	e.tag, e.typ = Resolve(tag)
}

// SetTagName replaces the tag by raw spelling.
func (e *Element) SetTagName(name string) {
	e.tag = name
	e.typ = TypeOfName(name)
}

// SetProperties replaces the attribute list.
func (e *Element) SetProperties(properties Properties) {
	e.properties = properties.Clone()
}

// SetData replaces the text payload.
func (e *Element) SetData(data string) {
	e.data = data
}

// Set replaces tag, attributes and payload in one step.
func (e *Element) Set(tag Tag, properties Properties, data string) {
	e.SetTag(tag)
	e.properties = properties.Clone()
	e.data = data
}

// PushProperty appends an attribute.
func (e *Element) PushProperty(p Property) {
	e.properties.PushBack(p)
}

// EraseProperty removes the attribute at the given position.
func (e *Element) EraseProperty(i PropertyIndex) error {
	return e.properties.Erase(i)
}

// FindProperty returns the position of the first attribute equal to needle,
// or NPropertyPos.
func (e *Element) FindProperty(needle Property) PropertyIndex {
	return e.properties.Find(needle, 0)
}

// Equal reports deep structural equality with another element.
func (e *Element) Equal(other *Element) bool {
	if other == nil {
		return false
	}
	return e.tag == other.tag &&
		e.typ == other.typ &&
		e.data == other.data &&
		e.properties.Equal(other.properties)
}

// Clone returns an independent deep copy.
func (e *Element) Clone() *Element {
	return &Element{
		tag:        e.tag,
		typ:        e.typ,
		properties: e.properties.Clone(),
		data:       e.data,
	}
}

// Render serializes the element. Containers emit an open/close wrapper pair
// around the payload even when empty; void tags emit only the opening tag
// and ignore the payload; NoFormat emits the payload verbatim with no
// whitespace injection regardless of mode.
func (e *Element) Render(f Formatting, indent int) string {
	var sb strings.Builder
	e.render(&sb, f, indent)
	return sb.String()
}

func (e *Element) render(sb *strings.Builder, f Formatting, indent int) {
	if e.typ == TypeNoFormat {
		sb.WriteString(e.data)
		return
	}
	writeBreak(sb, f, indent)
	sb.WriteByte('<')
	sb.WriteString(e.tag)
	e.properties.render(sb)
	sb.WriteByte('>')
	if e.typ == TypeVoid {
		return
	}
	sb.WriteString(e.data)
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteByte('>')
}

// writeBreak injects the whitespace that precedes an opening or closing tag:
// nothing in None mode, a bare newline in Newline mode, a newline plus depth
// indentation in Pretty mode. Nothing is injected at the very start of the
// output.
func writeBreak(sb *strings.Builder, f Formatting, indent int) {
	if f == FormattingNone || sb.Len() == 0 {
		return
	}
	sb.WriteByte('\n')
	if f == FormattingPretty {
		for i := 0; i < indent; i++ {
			sb.WriteString(indentUnit)
		}
	}
}

// CloneNode implements Node.
func (e *Element) CloneNode() Node { return e.Clone() }

// EqualNode implements Node.
func (e *Element) EqualNode(other Node) bool {
	o, ok := other.(*Element)
	if !ok {
		return false
	}
	return e.Equal(o)
}

func (e *Element) node() {}
