package stage

import (
	"github.com/coregx/normtext/lang"
	"github.com/coregx/normtext/prefilter"
)

// NormalizePunctuation rewrites typographic punctuation to its ASCII form:
// smart quotes, dashes, ellipsis, primes, guillemets. Width variants are not
// in the table; those belong to UnifyWidth.
var NormalizePunctuation Stage = register(normalizePunctuation{})

var punctTable = map[rune]string{
	// single quotes
	'‘': "'", '’': "'", '‚': "'", '‛': "'", '‹': "'", '›': "'", '′': "'",
	// double quotes
	'“': `"`, '”': `"`, '„': `"`, '‟': `"`, '«': `"`, '»': `"`, '″': `"`,
	// dashes
	'‐': "-", '‑': "-", '‒': "-", '–': "-", '—': "-", '―': "-", '−': "-",
	// ellipsis
	'…': "...",
}

var punctKeys = prefilter.FromKeys(punctTable)

type normalizePunctuation struct{}

func (normalizePunctuation) Name() string { return "normalize_punctuation" }

func (normalizePunctuation) NeedsApply(s string, _ *lang.Policy) bool {
	return punctKeys.ContainsAny(s)
}

func (st normalizePunctuation) Apply(s string, pol *lang.Policy) string {
	return applyStreaming(st, s, pol)
}

func (normalizePunctuation) Transducer(src Source, _ *lang.Policy) Source {
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		if repl, ok := punctTable[r]; ok {
			return append(out, []rune(repl)...)
		}
		return append(out, r)
	})
}
