package parser

import (
	"io"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/ianaindex"

	"hdoc/html"
)

// Options controls parsing.
type Options struct {
	// ForceEncoding names an IANA character set the input must be decoded
	// with, bypassing detection. Unknown names are logged and ignored.
	ForceEncoding string
	// TrimText drops whitespace-only text and trims the rest, so markup
	// indentation does not end up in payloads.
	TrimText bool
}

// Parse reads markup and reconstructs its document tree. Malformed markup
// is never rejected: the tokenizer recovers and the tree is built
// best-effort. The returned root is a transparent wrapper section.
func Parse(r io.Reader, opts Options, log *zap.Logger) (*html.Section, error) {
	tokens, err := ParseTokens(r, opts, log)
	if err != nil {
		return nil, err
	}
	return BuildTree(tokens), nil
}

// ParseTokens reads markup and produces the flat token stream Parse builds
// the tree from. Useful when the intermediate tokens are wanted, for debug
// dumps.
func ParseTokens(r io.Reader, opts Options, log *zap.Logger) ([]Token, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("parser")

	if opts.ForceEncoding != "" {
		enc, err := ianaindex.IANA.Encoding(opts.ForceEncoding)
		if err != nil || enc == nil {
			log.Warn("Unknown character set specification. Ignoring...",
				zap.String("charset", opts.ForceEncoding), zap.Error(err))
		} else {
			n, _ := ianaindex.IANA.Name(enc)
			log.Debug("Forcing input character set", zap.String("charset", n))
			r = enc.NewDecoder().Reader(r)
		}
	} else {
		cr, err := charset.NewReader(r, "text/html")
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		r = cr
	}

	tokens, err := Tokenize(r, opts.TrimText)
	if err != nil {
		return nil, err
	}
	log.Debug("Tokenized input", zap.Int("tokens", len(tokens)))
	return tokens, nil
}
