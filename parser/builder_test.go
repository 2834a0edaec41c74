package parser

import (
	"testing"

	"hdoc/html"
)

func tk(tag string, depth int, data string) Token {
	return Token{
		TagName:    tag,
		Properties: html.NewProperties(),
		Data:       data,
		Type:       html.TypeOfName(tag),
		Depth:      depth,
	}
}

func TestBuildTreeStructuralContainers(t *testing.T) {
	root := BuildTree([]Token{
		tk("div", 0, ""),
		tk("p", 1, "hello"),
		tk("ul", 1, ""),
		tk("li", 2, "x"),
		tk("p", 0, "after"),
	})

	if root.Tag() != "" {
		t.Fatalf("root must be a transparent wrapper, got %q", root.Tag())
	}
	if root.Size() != 2 {
		t.Fatalf("root should hold div and trailing p, got %d children", root.Size())
	}

	div, err := root.FrontSection()
	if err != nil {
		t.Fatalf("div section: %v", err)
	}
	if div.Tag() != "div" || div.Size() != 2 {
		t.Fatalf("div = %q with %d children", div.Tag(), div.Size())
	}
	p, err := div.Front()
	if err != nil || p.Data() != "hello" {
		t.Fatalf("p under div = %v (%v)", p, err)
	}
	ul, err := div.FrontSection()
	if err != nil || ul.Tag() != "ul" {
		t.Fatalf("ul under div = %v (%v)", ul, err)
	}
	li, err := ul.Front()
	if err != nil || li.Data() != "x" {
		t.Fatalf("li under ul = %v (%v)", li, err)
	}

	after, err := root.Back()
	if err != nil || after.Data() != "after" {
		t.Fatalf("trailing p = %v (%v)", after, err)
	}
}

func TestBuildTreeImplicitContainerHeuristic(t *testing.T) {
	t.Run("deeper token with empty payloads becomes a section", func(t *testing.T) {
		root := BuildTree([]Token{
			tk("b", 0, ""),
			tk("i", 1, ""),
		})
		// b was already placed as a leaf when i arrived, so i cannot nest
		// under it; the heuristic still recognizes i as an implicit
		// container and it becomes a section at the root.
		if root.Size() != 2 {
			t.Fatalf("expected 2 children, got %d", root.Size())
		}
		if _, err := root.Front(); err != nil {
			t.Fatalf("first child should be the b element: %v", err)
		}
		sect, err := root.FrontSection()
		if err != nil {
			t.Fatalf("second child should be a section: %v", err)
		}
		if sect.Tag() != "i" {
			t.Fatalf("section tag = %q, want i", sect.Tag())
		}
	})

	t.Run("payload on either side keeps a leaf", func(t *testing.T) {
		for _, tc := range []struct {
			name   string
			tokens []Token
		}{
			{"current has data", []Token{tk("b", 0, ""), tk("i", 1, "y")}},
			{"previous has data", []Token{tk("b", 0, "x"), tk("i", 1, "")}},
			{"both have data", []Token{tk("b", 0, "x"), tk("i", 1, "y")}},
		} {
			t.Run(tc.name, func(t *testing.T) {
				root := BuildTree(tc.tokens)
				if len(root.Sections()) != 0 {
					t.Fatalf("no section expected for %s", tc.name)
				}
				if len(root.Elements()) != 2 {
					t.Fatalf("expected 2 leaf elements, got %d", len(root.Elements()))
				}
			})
		}
	})

	t.Run("same depth never fires", func(t *testing.T) {
		root := BuildTree([]Token{
			tk("b", 0, ""),
			tk("i", 0, ""),
		})
		if len(root.Sections()) != 0 {
			t.Fatal("siblings at one depth must stay leaves")
		}
	})

	t.Run("first token never fires", func(t *testing.T) {
		root := BuildTree([]Token{tk("i", 1, "")})
		if len(root.Sections()) != 0 {
			t.Fatal("a lone first token must stay a leaf")
		}
	})

	t.Run("implicit section nests following tokens", func(t *testing.T) {
		root := BuildTree([]Token{
			tk("div", 0, ""),
			tk("b", 1, ""),
			tk("i", 2, "deep"),
		})
		div, err := root.FrontSection()
		if err != nil {
			t.Fatalf("div: %v", err)
		}
		b, err := div.FrontSection()
		if err != nil {
			t.Fatalf("b should be an implicit section: %v", err)
		}
		i, err := b.Front()
		if err != nil || i.Data() != "deep" {
			t.Fatalf("i under b = %v (%v)", i, err)
		}
	})
}

func TestBuildTreeDepthDrop(t *testing.T) {
	// After a deep subtree, a shallow token must pop back to its level.
	root := BuildTree([]Token{
		tk("div", 0, ""),
		tk("table", 1, ""),
		tk("tr", 2, ""),
		tk("td", 3, "cell"),
		tk("p", 1, "back"),
	})
	div, _ := root.FrontSection()
	if div.Size() != 2 {
		t.Fatalf("div should hold table and p, got %d", div.Size())
	}
	p, err := div.Back()
	if err != nil || p.Data() != "back" {
		t.Fatalf("p after table = %v (%v)", p, err)
	}
}

func TestBuildTreeEmptyInput(t *testing.T) {
	root := BuildTree(nil)
	if !root.Empty() || root.Tag() != "" {
		t.Fatalf("empty input should give an empty wrapper, got %d children", root.Size())
	}
}

func TestBuildTreeKeepsTokenTypes(t *testing.T) {
	root := BuildTree([]Token{
		{Data: "raw text", Type: html.TypeNoFormat, Properties: html.NewProperties()},
	})
	e, err := root.Front()
	if err != nil {
		t.Fatalf("front: %v", err)
	}
	if e.Type() != html.TypeNoFormat {
		t.Fatalf("type = %v, want NoFormat", e.Type())
	}
	if got := root.Render(html.FormattingPretty, 0); got != "raw text" {
		t.Fatalf("render = %q", got)
	}
}
