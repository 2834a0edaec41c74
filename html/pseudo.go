package html

import (
	"fmt"
	"strings"
)

// GeneratorOptions controls pseudocode output.
type GeneratorOptions struct {
	// IncludeMain wraps the generated builder calls in a complete main
	// package that renders the document to standard output.
	IncludeMain bool
	// Package overrides the package name used with IncludeMain. Defaults to
	// "main".
	Package string
}

// GeneratePseudocode walks the tree and emits builder-call source text that
// reconstructs it. The output is an alternate serialization of the same
// tree: feeding the calls back through the package yields a structurally
// equal document.
func GeneratePseudocode(root *Section, opts GeneratorOptions) string {
	g := &pseudoGen{names: map[string]int{}}
	rootVar := g.section(root)

	var sb strings.Builder
	if opts.IncludeMain {
		pkg := opts.Package
		if pkg == "" {
			pkg = "main"
		}
		sb.WriteString("package " + pkg + "\n\n")
		sb.WriteString("import (\n\t\"fmt\"\n\n\t\"hdoc/html\"\n)\n\n")
		sb.WriteString("func main() {\n")
		for _, line := range g.lines {
			sb.WriteString("\t")
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteString("\tfmt.Println(" + rootVar + ".Render(html.FormattingPretty, 0))\n")
		sb.WriteString("}\n")
		return sb.String()
	}
	for _, line := range g.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

type pseudoGen struct {
	lines []string
	names map[string]int
}

// reservedNames are identifiers the generated source cannot use as
// variables: Go keywords, predeclared names and the packages the output
// imports.
var reservedNames = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true, "html": true, "fmt": true, "main": true,
}

// varName derives a fresh identifier from a tag spelling, numbering repeats.
func (g *pseudoGen) varName(tag string) string {
	base := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, strings.ToLower(tag))
	if base == "" || base[0] >= '0' && base[0] <= '9' {
		base = "node" + base
	}
	if reservedNames[base] {
		base += "Sec"
	}
	g.names[base]++
	if n := g.names[base]; n > 1 {
		return fmt.Sprintf("%s%d", base, n)
	}
	return base
}

func (g *pseudoGen) section(s *Section) string {
	name := g.varName(firstNonEmpty(s.Tag(), "root"))
	g.lines = append(g.lines, fmt.Sprintf("%s := html.NewSectionNamed(%q, %s)",
		name, s.Tag(), propsExpr(s.properties)))
	for _, child := range s.children {
		switch c := child.(type) {
		case *Element:
			g.lines = append(g.lines, fmt.Sprintf("%s.PushBack(%s)", name, elementExpr(c)))
		case *Section:
			childName := g.section(c)
			g.lines = append(g.lines, fmt.Sprintf("%s.PushBack(%s)", name, childName))
		}
	}
	return name
}

func elementExpr(e *Element) string {
	if e.Tag() == "" && e.Type() == TypeNoFormat {
		return fmt.Sprintf("html.Text(%q)", e.Data())
	}
	return fmt.Sprintf("html.NewElementNamed(%q, %s, %q)", e.Tag(), propsExpr(e.properties), e.Data())
}

func propsExpr(p Properties) string {
	if p.Empty() {
		return "html.NewProperties()"
	}
	parts := make([]string, 0, p.Size())
	for _, prop := range p.List() {
		parts = append(parts, fmt.Sprintf("html.Property{Key: %q, Value: %q}", prop.Key, prop.Value))
	}
	return "html.NewProperties(" + strings.Join(parts, ", ") + ")"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
