// Package stage provides the catalog of normalization stages and the fused
// adapter protocol they stream through.
//
// A stage is the unit of pipeline composition. Its contract has three parts:
//
//   - NeedsApply is a conservative predicate: whenever it reports false,
//     Apply must be a no-op returning the input string value itself.
//   - Apply is the full transformation. It is idempotent, and returns the
//     input value (same backing bytes) whenever nothing changed.
//   - A stage that is expressible as a pure per-character transducer with at
//     most one rune of lookahead additionally implements Streaming; the
//     pipeline fuses runs of Streaming stages into a single pass.
//
// Stages hold no per-call state: every stage value is immutable and safe to
// share across goroutines for the life of a pipeline. Per-call streaming
// state lives in the Source values created by Transducer.
package stage

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/coregx/normtext/lang"
)

// Stage is one normalization step. Implementations are stateless values.
type Stage interface {
	// Name returns the stage's registry name, as used in declarative
	// pipeline configuration.
	Name() string

	// NeedsApply reports whether Apply could change s. It must never
	// report false for an input Apply would change.
	NeedsApply(s string, pol *lang.Policy) bool

	// Apply returns the transformed string. When nothing changes, the
	// returned string is s itself.
	Apply(s string, pol *lang.Policy) string
}

// Streaming is implemented by stages expressible as a per-rune transducer
// over a character stream with at most one rune of lookahead. The pipeline
// discovers the capability by type assertion at build time.
type Streaming interface {
	Stage

	// Transducer wraps src with this stage's transformation. The returned
	// Source is a per-call value; it may carry mutable streaming state.
	Transducer(src Source, pol *lang.Policy) Source
}

// Source is a peekable stream of runes. Peek returns what the next call to
// Next will return, without consuming it; this is the one-rune lookahead
// stages such as segmentation and Greek lowercasing rely on.
type Source interface {
	Next() (rune, bool)
	Peek() (rune, bool)
}

// NewSource returns a Source reading the runes of s.
func NewSource(s string) Source { return &stringSource{s: s} }

type stringSource struct {
	s string
	i int
}

func (src *stringSource) Next() (rune, bool) {
	if src.i >= len(src.s) {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(src.s[src.i:])
	src.i += n
	return r, true
}

func (src *stringSource) Peek() (rune, bool) {
	if src.i >= len(src.s) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(src.s[src.i:])
	return r, true
}

// emitFn maps one input rune to zero or more output runes, appending to out.
// next and hasNext expose the one-rune lookahead. An emitFn may close over
// per-call state (whitespace stages track run position this way).
type emitFn func(r, next rune, hasNext bool, out []rune) []rune

// transducer adapts an emitFn into a Source, buffering pending output runes
// and providing downstream lookahead by pulling one rune ahead on Peek.
type transducer struct {
	src   Source
	fn    emitFn
	out   []rune
	oi    int
	pk    rune
	pkOK  bool
	pkSet bool
}

func newTransducer(src Source, fn emitFn) Source {
	return &transducer{src: src, fn: fn}
}

func (t *transducer) Next() (rune, bool) {
	if t.pkSet {
		t.pkSet = false
		return t.pk, t.pkOK
	}
	return t.pull()
}

func (t *transducer) Peek() (rune, bool) {
	if !t.pkSet {
		t.pk, t.pkOK = t.pull()
		t.pkSet = true
	}
	return t.pk, t.pkOK
}

func (t *transducer) pull() (rune, bool) {
	for {
		if t.oi < len(t.out) {
			r := t.out[t.oi]
			t.oi++
			return r, true
		}
		r, ok := t.src.Next()
		if !ok {
			return 0, false
		}
		next, hasNext := t.src.Peek()
		t.out = t.fn(r, next, hasNext, t.out[:0])
		t.oi = 0
	}
}

// Collect drains src into a string. hint is the input length in bytes; the
// output buffer is sized to 1.2x hint and grows on demand.
func Collect(src Source, hint int) string {
	var b strings.Builder
	b.Grow(hint + hint/5)
	for {
		r, ok := src.Next()
		if !ok {
			return b.String()
		}
		b.WriteRune(r)
	}
}

// applyStreaming is the shared Apply path for Streaming stages: short-circuit
// on NeedsApply, run the stage's own transducer, and hand back the input
// value when the collected output turns out byte-identical.
func applyStreaming(st Streaming, s string, pol *lang.Policy) string {
	if !st.NeedsApply(s, pol) {
		return s
	}
	out := Collect(st.Transducer(NewSource(s), pol), len(s))
	if out == s {
		return s
	}
	return out
}

// The stage registry, keyed by the names accepted in declarative pipeline
// configuration.
var registry = map[string]Stage{}

func register(st Stage) Stage {
	registry[st.Name()] = st
	return st
}

// ByName resolves a registry name to its stage.
func ByName(name string) (Stage, bool) {
	st, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return st, ok
}

// Names returns every registered stage name, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// All returns every registered stage, sorted by name.
func All() []Stage {
	out := make([]Stage, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}
