// Package segment implements the word-boundary sub-engines consulted by the
// SegmentWords stage.
//
// Three engines cover the spaceless scripts:
//
//   - Unigram CJK: a space between every two adjacent ideographs (Chinese).
//   - Script transition: a space where Latin text meets a spaceless script
//     (Japanese, Korean, Thai, Lao, Khmer, Myanmar).
//   - Indic virama: a zero-width space after a virama that closes a
//     syllable, with per-language conjunct exceptions (Hindi, Bengali,
//     Tamil).
//
// Every engine is a pure boundary predicate over an adjacent rune pair, so
// the SegmentWords stage can run it in a single streaming pass with one rune
// of lookahead.
package segment

import (
	"unicode"

	"github.com/coregx/normtext/lang"
)

// ZWSP is the zero-width space inserted at Indic syllable boundaries.
const ZWSP = '\u200B'

// Boundary decides whether a separator must be inserted between the
// adjacent runes r and next, and which separator. sep is meaningful only
// when insert is true.
type Boundary func(r, next rune) (sep rune, insert bool)

// For returns the boundary engine for a language policy, or nil when the
// language needs no segmentation.
func For(p *lang.Policy) Boundary {
	switch {
	case !p.NeedsSegmentation:
		return nil
	case p.UnigramCJK:
		return UnigramCJK
	case p.Virama != 0:
		return Virama(p)
	default:
		return ScriptTransition
	}
}

// ideographic matches the CJK Unified Ideographs block and Extension A,
// the characters the unigram engine splits between.
var ideographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
	},
}

// IsIdeograph reports whether r is a CJK unified ideograph.
func IsIdeograph(r rune) bool { return unicode.Is(ideographic, r) }

// UnigramCJK inserts a space between every two adjacent ideographs. ASCII
// spans and combining sequences are never split: the boundary requires an
// ideograph on both sides.
func UnigramCJK(r, next rune) (rune, bool) {
	if IsIdeograph(r) && IsIdeograph(next) {
		return ' ', true
	}
	return 0, false
}

// Virama returns the engine inserting a zero-width space after p's virama
// when the following rune is a consonant of the same script, except before
// the language's conjunct-forming consonants.
func Virama(p *lang.Policy) Boundary {
	virama, consonants, exceptions := p.Virama, p.Consonants, p.ConjunctExceptions
	return func(r, next rune) (rune, bool) {
		if r != virama || !unicode.Is(consonants, next) {
			return 0, false
		}
		if exceptions.Contains(next) {
			return 0, false
		}
		return ZWSP, true
	}
}

// script classes for the transition detector. Latin is the anchor class;
// a boundary is emitted exactly where Latin meets a spaceless script.
type scriptClass uint8

const (
	classOther scriptClass = iota
	classLatin
	classSpaceless // Han, kana, Hangul, SEAsian scripts
)

var spacelessScripts = []*unicode.RangeTable{
	unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul,
	unicode.Thai, unicode.Lao, unicode.Khmer, unicode.Myanmar,
}

func classOf(r rune) scriptClass {
	switch {
	case unicode.Is(unicode.Latin, r):
		return classLatin
	case unicode.IsOneOf(spacelessScripts, r):
		return classSpaceless
	default:
		return classOther
	}
}

// ScriptTransition inserts a space where a Latin letter and a spaceless
// script meet in either direction. Transitions through characters of other
// classes (spaces, digits, punctuation, combining marks) never produce a
// boundary, which also keeps the engine idempotent: an inserted space
// separates the pair it was inserted between.
func ScriptTransition(r, next rune) (rune, bool) {
	a, b := classOf(r), classOf(next)
	if (a == classLatin && b == classSpaceless) || (a == classSpaceless && b == classLatin) {
		return ' ', true
	}
	return 0, false
}
