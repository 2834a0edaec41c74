package html

import "testing"

func TestElementRender(t *testing.T) {
	t.Run("container emits wrapper pair even when empty", func(t *testing.T) {
		e := NewElement(TagP, NewProperties(), "")
		if got := e.Render(FormattingNone, 0); got != "<p></p>" {
			t.Fatalf("empty container: %q", got)
		}
		e.SetData("hello")
		if got := e.Render(FormattingNone, 0); got != "<p>hello</p>" {
			t.Fatalf("container with payload: %q", got)
		}
	})

	t.Run("void emits no payload and no closing tag", func(t *testing.T) {
		e := NewElement(TagBr, NewProperties(), "ignored")
		if got := e.Render(FormattingNone, 0); got != "<br>" {
			t.Fatalf("void: %q", got)
		}
		if got := e.Render(FormattingPretty, 3); got != "<br>" {
			t.Fatalf("void at depth should still start clean: %q", got)
		}
	})

	t.Run("noformat emits payload verbatim", func(t *testing.T) {
		e := Text("  raw\ttext\n")
		for _, f := range []Formatting{FormattingNone, FormattingPretty, FormattingNewline} {
			if got := e.Render(f, 5); got != "  raw\ttext\n" {
				t.Fatalf("noformat under %v: %q", f, got)
			}
		}
	})

	t.Run("attributes render in order", func(t *testing.T) {
		e := NewElementNamed("a", NewProperties(
			Property{Key: "href", Value: "/x"},
			Property{Key: "class", Value: "link"},
		), "go")
		if got := e.Render(FormattingNone, 0); got != `<a href="/x" class="link">go</a>` {
			t.Fatalf("attributes: %q", got)
		}
	})

	t.Run("unknown tag keeps its spelling", func(t *testing.T) {
		e := NewElementNamed("custom-widget", NewProperties(), "x")
		if got := e.Render(FormattingNone, 0); got != "<custom-widget>x</custom-widget>" {
			t.Fatalf("unknown tag: %q", got)
		}
		if e.Type() != TypeContainer {
			t.Fatalf("unknown tag should classify as container, got %v", e.Type())
		}
	})
}

func TestElementEqualAndClone(t *testing.T) {
	a := NewElement(TagP, NewProperties(Property{Key: "class", Value: "x"}), "text")
	b := NewElement(TagP, NewProperties(Property{Key: "class", Value: "x"}), "text")
	if !a.Equal(b) {
		t.Fatal("structurally identical elements must be equal")
	}

	c := a.Clone()
	if !a.Equal(c) {
		t.Fatal("clone must equal the original")
	}
	c.SetData("changed")
	c.PushProperty(Property{Key: "id", Value: "y"})
	if a.Data() != "text" || a.Properties().Size() != 1 {
		t.Fatal("mutating the clone must not touch the original")
	}

	b.SetTag(TagDiv)
	if a.Equal(b) {
		t.Fatal("different tags must not compare equal")
	}
}

func TestElementSetTag(t *testing.T) {
	e := NewElement(TagP, NewProperties(), "x")
	e.SetTag(TagBr)
	if e.Tag() != "br" || e.Type() != TypeVoid {
		t.Fatalf("SetTag(TagBr) = (%q, %v)", e.Tag(), e.Type())
	}
	e.SetTagName("P")
	if e.Tag() != "P" || e.Type() != TypeContainer {
		t.Fatalf("SetTagName must keep the spelling verbatim: (%q, %v)", e.Tag(), e.Type())
	}
}
