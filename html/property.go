package html

import (
	"fmt"
	"strings"
)

// Property is a single key/value attribute pair.
type Property struct {
	Key   string
	Value string
}

// Equal reports whether two properties have the same key and value.
func (p Property) Equal(other Property) bool {
	return p.Key == other.Key && p.Value == other.Value
}

// render writes the attribute in ` key="value"` form, leading space included
// so attribute runs concatenate directly after a tag name.
func (p Property) render(sb *strings.Builder) {
	sb.WriteByte(' ')
	sb.WriteString(p.Key)
	sb.WriteString(`="`)
	sb.WriteString(p.Value)
	sb.WriteByte('"')
}

// String renders the property as a single attribute without surrounding
// context.
func (p Property) String() string {
	var sb strings.Builder
	p.render(&sb)
	return strings.TrimPrefix(sb.String(), " ")
}

// Properties is an ordered attribute list. Duplicate keys are allowed and
// order is significant; the list renders in insertion order.
type Properties struct {
	items []Property
}

// NewProperties builds a list from the given pairs in order.
func NewProperties(items ...Property) Properties {
	p := Properties{}
	if len(items) > 0 {
		p.items = make([]Property, len(items))
		copy(p.items, items)
	}
	return p
}

// Size returns the number of properties in the list.
func (p Properties) Size() int {
	return len(p.items)
}

// Empty reports whether the list holds no properties.
func (p *Properties) Empty() bool {
	return len(p.items) == 0
}

// Clear removes all properties.
func (p *Properties) Clear() {
	p.items = nil
}

// At returns the property at the given position.
func (p *Properties) At(i PropertyIndex) (Property, error) {
	if i < 0 || int(i) >= len(p.items) {
		return Property{}, fmt.Errorf("property %d of %d: %w", i, len(p.items), ErrOutOfRange)
	}
	return p.items[i], nil
}

// Front returns the first property.
func (p *Properties) Front() (Property, error) {
	return p.At(0)
}

// Back returns the last property.
func (p *Properties) Back() (Property, error) {
	return p.At(PropertyIndex(len(p.items) - 1))
}

// PushFront prepends a property.
func (p *Properties) PushFront(prop Property) {
	p.items = append([]Property{prop}, p.items...)
}

// PushBack appends a property.
func (p *Properties) PushBack(prop Property) {
	p.items = append(p.items, prop)
}

// Insert places a property at the given position, shifting the rest right.
// Inserting at Size() appends.
func (p *Properties) Insert(i PropertyIndex, prop Property) error {
	if i < 0 || int(i) > len(p.items) {
		return fmt.Errorf("insert at %d of %d: %w", i, len(p.items), ErrOutOfRange)
	}
	p.items = append(p.items, Property{})
	copy(p.items[i+1:], p.items[i:])
	p.items[i] = prop
	return nil
}

// Set replaces the property at the given position.
func (p *Properties) Set(i PropertyIndex, prop Property) error {
	if i < 0 || int(i) >= len(p.items) {
		return fmt.Errorf("set at %d of %d: %w", i, len(p.items), ErrOutOfRange)
	}
	p.items[i] = prop
	return nil
}

// Erase removes the property at the given position.
func (p *Properties) Erase(i PropertyIndex) error {
	if i < 0 || int(i) >= len(p.items) {
		return fmt.Errorf("erase at %d of %d: %w", i, len(p.items), ErrOutOfRange)
	}
	p.items = append(p.items[:i], p.items[i+1:]...)
	return nil
}

// Swap exchanges the properties at two positions.
func (p *Properties) Swap(i, j PropertyIndex) error {
	if i < 0 || int(i) >= len(p.items) || j < 0 || int(j) >= len(p.items) {
		return fmt.Errorf("swap %d and %d of %d: %w", i, j, len(p.items), ErrOutOfRange)
	}
	p.items[i], p.items[j] = p.items[j], p.items[i]
	return nil
}

// SwapValues exchanges the first occurrences of two properties. When either
// is absent the list is left untouched.
func (p *Properties) SwapValues(a, b Property) {
	i := p.Find(a, 0)
	j := p.Find(b, 0)
	if i == NPropertyPos || j == NPropertyPos {
		return
	}
	p.items[i], p.items[j] = p.items[j], p.items[i]
}

// Find returns the position of the first property at or after start that is
// equal to needle, or NPropertyPos.
func (p *Properties) Find(needle Property, start PropertyIndex) PropertyIndex {
	if start < 0 {
		start = 0
	}
	for i := int(start); i < len(p.items); i++ {
		if p.items[i].Equal(needle) {
			return PropertyIndex(i)
		}
	}
	return NPropertyPos
}

// FindKey returns the position of the first property at or after start whose
// key matches, or NPropertyPos.
func (p *Properties) FindKey(key string, start PropertyIndex) PropertyIndex {
	if start < 0 {
		start = 0
	}
	for i := int(start); i < len(p.items); i++ {
		if p.items[i].Key == key {
			return PropertyIndex(i)
		}
	}
	return NPropertyPos
}

// Get returns the value of the first property with the given key. The second
// result reports presence; an empty value is distinguishable from absence.
func (p *Properties) Get(key string) (string, bool) {
	if i := p.FindKey(key, 0); i != NPropertyPos {
		return p.items[i].Value, true
	}
	return "", false
}

// List returns an independent copy of the properties in order.
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

// Equal reports whether two lists hold the same properties in the same
// order.
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

// contains reports whether every property of sub occurs in p. Exact demands
// key and value equality; partial accepts substring containment on both.
func (p *Properties) contains(sub Properties, exact bool) bool {
	for _, want := range sub.items {
		found := false
		for _, have := range p.items {
			if exact {
				if have.Equal(want) {
					found = true
					break
				}
			} else if strings.Contains(have.Key, want.Key) && strings.Contains(have.Value, want.Value) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// render writes the full attribute run, one leading space per attribute.
func (p *Properties) render(sb *strings.Builder) {
	for _, prop := range p.items {
		prop.render(sb)
	}
}

// String renders the attribute run as it appears inside an opening tag.
func (p *Properties) String() string {
	var sb strings.Builder
	p.render(&sb)
	return sb.String()
}
