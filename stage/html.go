package stage

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/coregx/normtext/lang"
)

// StripHtml removes markup and emits the document's text. Entities in
// ordinary text are decoded once; the content of <pre> and <code> elements
// is emitted raw, byte for byte, so code samples survive entity-exact; the
// content of <script> and <style> is dropped. Tags and their attribute
// values are discarded whole and never normalized. Recovery over malformed
// input is the HTML5 tokenization algorithm: a '<' that does not open a tag
// is text, an unterminated tag consumes to end of input.
//
// The stage is a block-level state machine and therefore runs on the
// sequential path only.
var StripHtml Stage = register(stripHTML{})

type stripHTML struct{}

func (stripHTML) Name() string { return "strip_html" }

func (stripHTML) NeedsApply(s string, _ *lang.Policy) bool {
	return strings.ContainsAny(s, "<&")
}

func (st stripHTML) Apply(s string, pol *lang.Policy) string {
	if !st.NeedsApply(s, pol) {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))
	var rawDepth, skipDepth int

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF, or a read failure that cannot happen on a string
			// reader; either way the text gathered so far is the result.
			out := b.String()
			if out == s {
				return s
			}
			return out
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			if rawDepth > 0 {
				b.Write(z.Raw()) // verbatim, entities untouched
			} else {
				b.Write(z.Text()) // entities decoded
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Script, atom.Style:
				skipDepth++
			case atom.Pre, atom.Code:
				rawDepth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Script, atom.Style:
				if skipDepth > 0 {
					skipDepth--
				}
			case atom.Pre, atom.Code:
				if rawDepth > 0 {
					rawDepth--
				}
			}
		}
		// Self-closing tags, comments and doctypes are dropped.
	}
}
