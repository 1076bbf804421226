package stage

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/coregx/normtext/lang"
)

// UnifyWidth maps characters with width variants to their canonical form:
// fullwidth Latin and punctuation narrow, halfwidth katakana and Hangul
// widen. Language-independent; the mapping is Unicode's width folding.
var UnifyWidth Stage = register(unifyWidth{})

type unifyWidth struct{}

func (unifyWidth) Name() string { return "unify_width" }

func (unifyWidth) NeedsApply(s string, _ *lang.Policy) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return width.LookupRune(r).Folded() != 0
	})
}

func (st unifyWidth) Apply(s string, pol *lang.Policy) string {
	return applyStreaming(st, s, pol)
}

func (unifyWidth) Transducer(src Source, _ *lang.Policy) Source {
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		if f := width.LookupRune(r).Folded(); f != 0 {
			return append(out, f)
		}
		return append(out, r)
	})
}
