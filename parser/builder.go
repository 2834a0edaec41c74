package parser

import "hdoc/html"

// BuildTree folds the flat token stream into a section tree rooted at a
// transparent wrapper section.
//
// A stack of open sections tracks the current position; each token first
// pops the stack back to its own depth. Structural container tags always
// open a new subsection. For the rest, nesting intent cannot be read off a
// single token, so a heuristic decides: a token one level deeper than its
// predecessor, with both payloads empty, is treated as an implicit container
// and becomes a subsection; everything else becomes a leaf element under the
// innermost open section.
func BuildTree(tokens []Token) *html.Section {
	root := html.NewSection(html.TagEmpty, html.NewProperties())
	stack := []*html.Section{root}

	for i, tk := range tokens {
		for len(stack) > tk.Depth+1 {
			stack = stack[:len(stack)-1]
		}
		current := stack[len(stack)-1]

		openSection := html.IsContainer(tk.TagName)
		if !openSection && i > 0 {
			openSection = tk.Depth > tokens[i-1].Depth && tk.Data == "" && tokens[i-1].Data == ""
		}

		if openSection {
			current.PushBack(html.NewSectionNamed(tk.TagName, tk.Properties))
			sub, err := current.BackSection()
			if err != nil {
				// Unreachable: the subsection was just appended.
				continue
			}
			stack = append(stack, sub)
		} else {
			current.PushBack(html.NewElementWithType(tk.TagName, tk.Properties, tk.Data, tk.Type))
		}
	}

	return root
}
