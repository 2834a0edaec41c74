package parser_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"hdoc/html"
	"hdoc/parser"
)

func TestParseRoundTrip(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller()))

	for _, tc := range []struct {
		name  string
		input string
	}{
		{"flat", `<p>a</p><p>b</p>`},
		{"nested", `<div><p>a</p><ul><li>x</li><li>y</li></ul></div>`},
		{"attributes", `<div id="main"><a href="/x">go</a></div>`},
		{"inline tree", `<div><b><i>deep</i></b></div>`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			root, err := parser.Parse(strings.NewReader(tc.input), parser.Options{TrimText: true}, log)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := root.Render(html.FormattingNone, 0); got != tc.input {
				t.Fatalf("round trip:\n got %q\nwant %q", got, tc.input)
			}
		})
	}
}

func TestParseMalformedNeverFails(t *testing.T) {
	for _, input := range []string{
		``,
		`</div>`,
		`<div><p>unclosed`,
		`<<<>>>`,
		`plain text only`,
	} {
		root, err := parser.Parse(strings.NewReader(input), parser.Options{TrimText: true}, nil)
		if err != nil {
			t.Fatalf("Parse(%q) must not fail: %v", input, err)
		}
		if root == nil {
			t.Fatalf("Parse(%q) returned no tree", input)
		}
	}
}

func TestParseForcedEncoding(t *testing.T) {
	t.Run("windows-1252 payload decodes", func(t *testing.T) {
		input := "<p>caf\xe9</p>"
		root, err := parser.Parse(strings.NewReader(input),
			parser.Options{ForceEncoding: "windows-1252", TrimText: true}, nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		e, err := root.Front()
		if err != nil {
			t.Fatalf("front: %v", err)
		}
		if e.Data() != "café" {
			t.Fatalf("payload = %q, want café", e.Data())
		}
	})

	t.Run("unknown charset is ignored", func(t *testing.T) {
		root, err := parser.Parse(strings.NewReader(`<p>x</p>`),
			parser.Options{ForceEncoding: "no-such-charset", TrimText: true}, zap.NewNop())
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if e, _ := root.Front(); e == nil || e.Data() != "x" {
			t.Fatalf("tree = %v", root.Render(html.FormattingNone, 0))
		}
	})
}

func TestParseDetectedEncoding(t *testing.T) {
	// UTF-8 input passes charset detection untouched.
	root, err := parser.Parse(strings.NewReader(`<p>привет</p>`), parser.Options{TrimText: true}, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	e, err := root.Front()
	if err != nil || e.Data() != "привет" {
		t.Fatalf("payload = %v (%v)", e, err)
	}
}

func TestParsePreservesAmbiguityHeuristic(t *testing.T) {
	// Empty inline tags one level apart trigger implicit-container
	// treatment: the inner tag becomes a section, not a leaf.
	root, err := parser.Parse(strings.NewReader(`<b><i></i></b>`), parser.Options{TrimText: true}, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Size() != 2 {
		t.Fatalf("expected 2 children, got %d", root.Size())
	}
	sect, err := root.FrontSection()
	if err != nil || sect.Tag() != "i" {
		t.Fatalf("i should be a section: %v (%v)", sect, err)
	}
}
