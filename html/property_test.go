package html

import (
	"errors"
	"testing"
)

func TestPropertiesMutation(t *testing.T) {
	t.Run("push and insert keep order", func(t *testing.T) {
		p := NewProperties(Property{Key: "b", Value: "2"})
		p.PushFront(Property{Key: "a", Value: "1"})
		p.PushBack(Property{Key: "d", Value: "4"})
		if err := p.Insert(2, Property{Key: "c", Value: "3"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
		want := []string{"a", "b", "c", "d"}
		got := p.List()
		if len(got) != len(want) {
			t.Fatalf("expected %d properties, got %d", len(want), len(got))
		}
		for i, k := range want {
			if got[i].Key != k {
				t.Fatalf("position %d: expected key %q, got %q", i, k, got[i].Key)
			}
		}
	})

	t.Run("positional operations reject bad indices", func(t *testing.T) {
		p := NewProperties(Property{Key: "a", Value: "1"})
		for _, err := range []error{
			p.Erase(1),
			p.Erase(-1),
			p.Set(5, Property{}),
			p.Insert(3, Property{}),
			p.Swap(0, 1),
		} {
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got %v", err)
			}
		}
		if _, err := p.At(1); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("At out of range: expected ErrOutOfRange, got %v", err)
		}
	})

	t.Run("duplicates are allowed", func(t *testing.T) {
		p := NewProperties()
		p.PushBack(Property{Key: "class", Value: "x"})
		p.PushBack(Property{Key: "class", Value: "x"})
		if p.Size() != 2 {
			t.Fatalf("expected 2 properties, got %d", p.Size())
		}
	})
}

func TestPropertiesFind(t *testing.T) {
	p := NewProperties(
		Property{Key: "id", Value: "top"},
		Property{Key: "class", Value: "wide"},
		Property{Key: "class", Value: "dark"},
	)

	if i := p.Find(Property{Key: "class", Value: "wide"}, 0); i != 1 {
		t.Fatalf("Find = %d, want 1", i)
	}
	if i := p.Find(Property{Key: "class", Value: "wide"}, 2); i != NPropertyPos {
		t.Fatalf("Find after start should miss, got %d", i)
	}
	if i := p.FindKey("class", 2); i != 2 {
		t.Fatalf("FindKey from 2 = %d, want 2", i)
	}
	if i := p.FindKey("missing", 0); i != NPropertyPos {
		t.Fatalf("FindKey(missing) = %d, want NPropertyPos", i)
	}
	if v, ok := p.Get("id"); !ok || v != "top" {
		t.Fatalf("Get(id) = (%q, %v)", v, ok)
	}
}

func TestPropertiesSwapValues(t *testing.T) {
	a := Property{Key: "a", Value: "1"}
	b := Property{Key: "b", Value: "2"}
	p := NewProperties(a, b)

	p.SwapValues(a, b)
	if first, _ := p.Front(); !first.Equal(b) {
		t.Fatalf("after swap expected %v first, got %v", b, first)
	}

	// Missing participant leaves the list untouched.
	before := p.Clone()
	p.SwapValues(a, Property{Key: "missing", Value: ""})
	if !p.Equal(before) {
		t.Fatal("SwapValues with missing participant must be a no-op")
	}
}

func TestPropertiesRender(t *testing.T) {
	p := NewProperties(
		Property{Key: "id", Value: "main"},
		Property{Key: "class", Value: "wide"},
	)
	if got := p.String(); got != ` id="main" class="wide"` {
		t.Fatalf("unexpected attribute run: %q", got)
	}
	empty := NewProperties()
	if got := empty.String(); got != "" {
		t.Fatalf("empty list should render nothing, got %q", got)
	}
}

func TestPropertiesCloneIndependence(t *testing.T) {
	p := NewProperties(Property{Key: "a", Value: "1"})
	c := p.Clone()
	c.PushBack(Property{Key: "b", Value: "2"})
	if err := c.Set(0, Property{Key: "a", Value: "changed"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if p.Size() != 1 {
		t.Fatalf("original grew with clone: %d", p.Size())
	}
	if v, _ := p.Get("a"); v != "1" {
		t.Fatalf("original mutated through clone: %q", v)
	}
}
