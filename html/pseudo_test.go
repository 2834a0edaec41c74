package html

import (
	"strings"
	"testing"
)

func TestGeneratePseudocode(t *testing.T) {
	root := NewSection(TagHtml, NewProperties())
	body := NewSection(TagBody, NewProperties(Property{Key: "class", Value: "page"}))
	body.PushBack(NewElement(TagP, NewProperties(), "hello"))
	body.PushBack(Text("raw"))
	root.PushBack(body)

	t.Run("bare builder calls", func(t *testing.T) {
		got := GeneratePseudocode(root, GeneratorOptions{})
		for _, want := range []string{
			`htmlSec := html.NewSectionNamed("html", html.NewProperties())`,
			`body := html.NewSectionNamed("body", html.NewProperties(html.Property{Key: "class", Value: "page"}))`,
			`body.PushBack(html.NewElementNamed("p", html.NewProperties(), "hello"))`,
			`body.PushBack(html.Text("raw"))`,
			`htmlSec.PushBack(body)`,
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("missing line %q in:\n%s", want, got)
			}
		}
		if strings.Contains(got, "package main") {
			t.Fatal("bare output must not carry a main wrapper")
		}
	})

	t.Run("main wrapper", func(t *testing.T) {
		got := GeneratePseudocode(root, GeneratorOptions{IncludeMain: true})
		for _, want := range []string{
			"package main",
			"func main() {",
			"fmt.Println(htmlSec.Render(html.FormattingPretty, 0))",
		} {
			if !strings.Contains(got, want) {
				t.Fatalf("missing %q in:\n%s", want, got)
			}
		}
	})

	t.Run("repeated tags get numbered variables", func(t *testing.T) {
		outer := NewSection(TagDiv, NewProperties())
		outer.PushBack(NewSection(TagDiv, NewProperties()))
		got := GeneratePseudocode(outer, GeneratorOptions{})
		if !strings.Contains(got, "div :=") || !strings.Contains(got, "div2 :=") {
			t.Fatalf("expected numbered variables:\n%s", got)
		}
	})

	t.Run("transparent root falls back to a name", func(t *testing.T) {
		root := NewSection(TagEmpty, NewProperties())
		root.PushBack(NewElement(TagP, NewProperties(), "x"))
		got := GeneratePseudocode(root, GeneratorOptions{})
		if !strings.Contains(got, `root := html.NewSectionNamed("", html.NewProperties())`) {
			t.Fatalf("expected a root variable:\n%s", got)
		}
	})
}
