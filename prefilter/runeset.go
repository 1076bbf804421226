// Package prefilter provides fast containment scans used by needs-apply
// predicates.
//
// A normalization stage must decide, before transforming anything, whether an
// input can possibly be changed by it. For table-driven stages that question
// reduces to "does the input contain any of these N codepoints?". Scanning
// with a per-rune map lookup costs a decode plus a hash per rune; for the
// multi-byte tables that dominate this library (transliteration keys,
// typographic punctuation, format controls) a multi-pattern automaton over
// the raw UTF-8 bytes answers the same question in a single pass.
//
// The package builds an Aho-Corasick automaton from the UTF-8 encodings of
// the member runes. UTF-8 is self-synchronizing, so the encoding of one
// scalar value never occurs inside the encoding of another; a byte-level hit
// on valid input is therefore always a true rune-level hit.
//
// Example:
//
//	set := prefilter.NewRuneSet('ä', 'ö', 'ü')
//	set.ContainsAny("Grüße") // true, single scan
//	set.Contains('ö')        // true, map lookup
package prefilter

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// RuneSet is an immutable set of codepoints supporting both per-rune
// membership tests and whole-string containment scans.
//
// A RuneSet is built once and is safe for concurrent use.
type RuneSet struct {
	members map[rune]struct{}
	// ac accelerates ContainsAny. nil when the set is empty or the
	// automaton could not be built; ContainsAny then falls back to a
	// linear decode-and-lookup scan.
	ac *ahocorasick.Automaton
}

// NewRuneSet builds a set from the given runes. Duplicates are allowed.
func NewRuneSet(runes ...rune) *RuneSet {
	s := &RuneSet{members: make(map[rune]struct{}, len(runes))}
	for _, r := range runes {
		s.members[r] = struct{}{}
	}
	s.ac = buildAutomaton(s.members)
	return s
}

// FromKeys builds a set from the keys of a stage table.
func FromKeys[V any](m map[rune]V) *RuneSet {
	s := &RuneSet{members: make(map[rune]struct{}, len(m))}
	for r := range m {
		s.members[r] = struct{}{}
	}
	s.ac = buildAutomaton(s.members)
	return s
}

// Union returns a set containing the members of s and t. Either may be nil.
func Union(s, t *RuneSet) *RuneSet {
	members := make(map[rune]struct{}, s.Len()+t.Len())
	if s != nil {
		for r := range s.members {
			members[r] = struct{}{}
		}
	}
	if t != nil {
		for r := range t.members {
			members[r] = struct{}{}
		}
	}
	out := &RuneSet{members: members}
	out.ac = buildAutomaton(members)
	return out
}

// Without returns a copy of s with every member of t removed.
func (s *RuneSet) Without(t *RuneSet) *RuneSet {
	members := make(map[rune]struct{}, s.Len())
	for r := range s.members {
		if t == nil || !t.Contains(r) {
			members[r] = struct{}{}
		}
	}
	out := &RuneSet{members: members}
	out.ac = buildAutomaton(members)
	return out
}

func buildAutomaton(members map[rune]struct{}) *ahocorasick.Automaton {
	if len(members) == 0 {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	var buf [utf8.UTFMax]byte
	for r := range members {
		n := utf8.EncodeRune(buf[:], r)
		pat := make([]byte, n)
		copy(pat, buf[:n])
		builder.AddPattern(pat)
	}
	auto, err := builder.Build()
	if err != nil {
		// Fall back to the linear scan; correctness is unaffected.
		return nil
	}
	return auto
}

// Contains reports whether r is a member of the set. A nil set is empty.
func (s *RuneSet) Contains(r rune) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[r]
	return ok
}

// ContainsAny reports whether str contains at least one member of the set.
func (s *RuneSet) ContainsAny(str string) bool {
	if s == nil || len(s.members) == 0 {
		return false
	}
	if s.ac != nil {
		return s.ac.IsMatch([]byte(str))
	}
	return strings.ContainsFunc(str, s.Contains)
}

// Len returns the number of members. A nil set has length zero.
func (s *RuneSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Empty reports whether the set has no members.
func (s *RuneSet) Empty() bool { return s.Len() == 0 }

// Runes returns the members in unspecified order.
func (s *RuneSet) Runes() []rune {
	if s == nil {
		return nil
	}
	out := make([]rune, 0, len(s.members))
	for r := range s.members {
		out = append(out, r)
	}
	return out
}
