package stage

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/normtext/lang"
)

// The whitespace family. ASCII variants touch only the six ASCII whitespace
// bytes; Unicode variants use the full White_Space property, and the Unicode
// collapse variant additionally rewrites every whitespace rune to a plain
// space.
//
//   - CollapseWhitespace / CollapseWhitespaceUnicode: runs of two or more
//     whitespace characters become one space. The ASCII variant leaves a
//     lone tab or newline as-is; the Unicode variant rewrites it to a space.
//   - TrimWhitespace / TrimWhitespaceUnicode: strip leading and trailing
//     whitespace.
//   - NormalizeWhitespaceFull: trim, collapse, and map all Unicode
//     whitespace to plain spaces in one pass.
var (
	CollapseWhitespace        Stage = register(collapseWS{name: "collapse_whitespace"})
	CollapseWhitespaceUnicode Stage = register(collapseWS{name: "collapse_whitespace_unicode", unicode: true})
	TrimWhitespace            Stage = register(trimWS{name: "trim_whitespace"})
	TrimWhitespaceUnicode     Stage = register(trimWS{name: "trim_whitespace_unicode", unicode: true})
	NormalizeWhitespaceFull   Stage = register(normalizeWSFull{})
)

const asciiSpace = " \t\n\v\f\r"

func isASCIIWS(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\v' || r == '\f' || r == '\r'
}

type collapseWS struct {
	name    string
	unicode bool
}

func (st collapseWS) Name() string { return st.name }

func (st collapseWS) isWS(r rune) bool {
	if st.unicode {
		return unicode.IsSpace(r)
	}
	return isASCIIWS(r)
}

func (st collapseWS) NeedsApply(s string, _ *lang.Policy) bool {
	prevWS := false
	for _, r := range s {
		ws := st.isWS(r)
		if ws && (prevWS || r != ' ' && st.unicode) {
			return true
		}
		prevWS = ws
	}
	return false
}

func (st collapseWS) Apply(s string, pol *lang.Policy) string {
	return applyStreaming(st, s, pol)
}

func (st collapseWS) Transducer(src Source, _ *lang.Policy) Source {
	inRun := false
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		if !st.isWS(r) {
			inRun = false
			return append(out, r)
		}
		if inRun {
			return out // run already emitted its single space
		}
		inRun = true
		if hasNext && st.isWS(next) {
			return append(out, ' ') // run of two or more collapses
		}
		if st.unicode {
			return append(out, ' ') // lone whitespace still maps to space
		}
		return append(out, r) // lone ASCII whitespace is untouched
	})
}

type trimWS struct {
	name    string
	unicode bool
}

func (st trimWS) Name() string { return st.name }

func (st trimWS) isWS(r rune) bool {
	if st.unicode {
		return unicode.IsSpace(r)
	}
	return isASCIIWS(r)
}

func (st trimWS) NeedsApply(s string, _ *lang.Policy) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return st.isWS(first) || st.isWS(last)
}

func (st trimWS) Apply(s string, pol *lang.Policy) string {
	if !st.NeedsApply(s, pol) {
		return s
	}
	if st.unicode {
		return strings.TrimSpace(s)
	}
	return strings.Trim(s, asciiSpace)
}

func (st trimWS) Transducer(src Source, _ *lang.Policy) Source {
	started := false
	var held []rune
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		if st.isWS(r) {
			if started {
				held = append(held, r) // emitted only if text follows
			}
			return out
		}
		started = true
		out = append(out, held...)
		held = held[:0]
		return append(out, r)
	})
}

type normalizeWSFull struct{}

func (normalizeWSFull) Name() string { return "normalize_whitespace_full" }

func (normalizeWSFull) NeedsApply(s string, _ *lang.Policy) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return true
	}
	prevWS := false
	for _, r := range s {
		ws := unicode.IsSpace(r)
		if ws && (prevWS || r != ' ') {
			return true
		}
		prevWS = ws
	}
	return false
}

func (st normalizeWSFull) Apply(s string, pol *lang.Policy) string {
	return applyStreaming(st, s, pol)
}

func (normalizeWSFull) Transducer(src Source, _ *lang.Policy) Source {
	started := false
	pending := false
	return newTransducer(src, func(r, next rune, hasNext bool, out []rune) []rune {
		if unicode.IsSpace(r) {
			if started {
				pending = true // becomes one space if text follows
			}
			return out
		}
		if pending {
			out = append(out, ' ')
			pending = false
		}
		started = true
		return append(out, r)
	})
}
