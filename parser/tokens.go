// Package parser reconstructs document trees from HTML-like markup text.
// Tokenization is delegated to golang.org/x/net/html; the flat token stream
// with nesting depths is then folded into a section tree.
package parser

import (
	"fmt"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"

	"hdoc/html"
)

// Token is a single flat markup token: a tag occurrence with its attributes,
// accumulated text payload and the nesting depth at which it appeared.
type Token struct {
	TagName    string
	Properties html.Properties
	Data       string
	Type       html.Type
	Depth      int
}

// String renders the token for debug dumps.
func (t Token) String() string {
	return fmt.Sprintf("%*s<%s> type=%s data=%q", t.Depth*2, "", t.TagName, t.Type, t.Data)
}

// ParseError reports a tokenizer failure. Malformed markup never produces
// one: the tokenizer recovers from bad input, so a ParseError means the
// input could not be read at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Tokenize walks the markup and produces the flat ordered token stream.
// Text attaches to the innermost open tag; top-level bare text becomes its
// own pass-through token. Stray closing tags are ignored.
func Tokenize(r io.Reader, trimText bool) ([]Token, error) {
	tz := xhtml.NewTokenizer(r)

	var tokens []Token
	var open []int // indices into tokens of currently open tags

	for {
		tt := tz.Next()
		switch tt {
		case xhtml.ErrorToken:
			if tz.Err() == io.EOF {
				return tokens, nil
			}
			return nil, &ParseError{Err: tz.Err()}

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, hasAttr := tz.TagName()
			props := html.NewProperties()
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = tz.TagAttr()
				props.PushBack(html.Property{Key: string(key), Value: string(val)})
			}
			typ := html.TypeOfName(string(name))
			tokens = append(tokens, Token{
				TagName:    string(name),
				Properties: props,
				Type:       typ,
				Depth:      len(open),
			})
			// Void tags never open a scope.
			if tt == xhtml.StartTagToken && typ != html.TypeVoid {
				open = append(open, len(tokens)-1)
			}

		case xhtml.EndTagToken:
			name, _ := tz.TagName()
			// Pop the innermost open tag with this name; ignore stray
			// closers.
			for i := len(open) - 1; i >= 0; i-- {
				if tokens[open[i]].TagName == string(name) {
					open = open[:i]
					break
				}
			}

		case xhtml.TextToken:
			text := string(tz.Text())
			if trimText {
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
			}
			if len(open) > 0 {
				tokens[open[len(open)-1]].Data += text
				continue
			}
			if strings.TrimSpace(text) == "" {
				// Inter-tag whitespace at the top level carries no content.
				continue
			}
			tokens = append(tokens, Token{
				Data:  text,
				Type:  html.TypeNoFormat,
				Depth: len(open),
			})

		case xhtml.CommentToken, xhtml.DoctypeToken:
			// Carried neither by the token stream nor by the tree.
		}
	}
}
