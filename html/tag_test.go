package html

import "testing"

func TestResolveName(t *testing.T) {
	t.Run("known names resolve case-insensitively", func(t *testing.T) {
		for _, name := range []string{"div", "DIV", "Div"} {
			if tag := ResolveName(name); tag != TagDiv {
				t.Fatalf("ResolveName(%q) = %v, want TagDiv", name, tag)
			}
		}
	})

	t.Run("aliases share one raw spelling", func(t *testing.T) {
		for _, tc := range []struct {
			a, b Tag
			name string
		}{
			{TagAnchor, TagA, "a"},
			{TagBold, TagB, "b"},
			{TagItalic, TagI, "i"},
			{TagParagraph, TagP, "p"},
			{TagImage, TagImg, "img"},
		} {
			na, _ := Resolve(tc.a)
			nb, _ := Resolve(tc.b)
			if na != tc.name || nb != tc.name {
				t.Fatalf("aliases for %q resolved to %q and %q", tc.name, na, nb)
			}
		}
	})

	t.Run("reverse mapping is deterministic", func(t *testing.T) {
		if tag := ResolveName("b"); tag != TagBold {
			t.Fatalf("ResolveName(b) = %v, want TagBold", tag)
		}
		if tag := ResolveName("a"); tag != TagAnchor {
			t.Fatalf("ResolveName(a) = %v, want TagAnchor", tag)
		}
	})

	t.Run("unknown spelling resolves to TagUnknown", func(t *testing.T) {
		if tag := ResolveName("nosuchtag"); tag != TagUnknown {
			t.Fatalf("ResolveName(nosuchtag) = %v, want TagUnknown", tag)
		}
	})
}

func TestResolveClassification(t *testing.T) {
	for _, tc := range []struct {
		tag  Tag
		name string
		typ  Type
	}{
		{TagEmpty, "", TypeContainer},
		{TagEmptyNoFormat, "", TypeNoFormat},
		{TagBr, "br", TypeVoid},
		{TagHr, "hr", TypeVoid},
		{TagImg, "img", TypeVoid},
		{TagInput, "input", TypeVoid},
		{TagDiv, "div", TypeContainer},
		{TagSpan, "span", TypeContainer},
	} {
		name, typ := Resolve(tc.tag)
		if name != tc.name || typ != tc.typ {
			t.Fatalf("Resolve(%v) = (%q, %v), want (%q, %v)", tc.tag, name, typ, tc.name, tc.typ)
		}
	}

	if typ := TypeOfName("unknown-tag"); typ != TypeContainer {
		t.Fatalf("unknown spelling should classify as container, got %v", typ)
	}
}

func TestIsContainer(t *testing.T) {
	for _, name := range []string{"div", "DIV", "section", "table", "ul", "body"} {
		if !IsContainer(name) {
			t.Fatalf("%q should be a structural container", name)
		}
	}
	// Inline tags keep a wrapper pair on render but are not structural
	// containers for tree reconstruction.
	for _, name := range []string{"p", "span", "b", "i", "br", "nosuchtag"} {
		if IsContainer(name) {
			t.Fatalf("%q should not be a structural container", name)
		}
	}
	if !IsContainerTag(TagDiv) || IsContainerTag(TagP) {
		t.Fatal("IsContainerTag should agree with IsContainer")
	}
}
