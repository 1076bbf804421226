// Package pipeline implements the normalization executor.
//
// A pipeline is an ordered list of stages bound to a language policy. At
// build time the executor analyzes the stage list and selects an execution
// plan:
//
//   - Every maximal run of two or more Streaming stages becomes a fused
//     block: one streaming pass through the chained per-rune transducers,
//     with a needs-apply pre-scan that lets untouched buffers through
//     without allocating.
//   - Every other stage runs sequentially: skipped outright when its
//     needs-apply predicate is false, otherwise one Apply allocation.
//
// Both paths observe the same stage contract, so they are interchangeable;
// NormalizeNoFusion forces the sequential plan for debugging and
// benchmarking. Stage order is strictly the caller's: the executor never
// reorders stages.
//
// Zero-copy: whenever no stage transforms the current buffer, the value
// returned by Normalize is the input string itself, backing bytes included.
//
// A built Pipeline is immutable and safe for unbounded concurrent use.
package pipeline

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/normtext/lang"
	"github.com/coregx/normtext/stage"
)

// Strategy identifies the execution plan selected at build time.
type Strategy int

const (
	// Sequential applies stages one by one. Selected when fewer than two
	// adjacent stages support fusion.
	Sequential Strategy = iota

	// Fused runs the whole pipeline as one streaming pass. Selected when
	// every stage supports fusion and there are at least two.
	Fused

	// Mixed interleaves fused blocks with sequential steps. Selected when
	// the plan holds at least one fused block and at least one sequential
	// step.
	Mixed
)

func (s Strategy) String() string {
	switch s {
	case Fused:
		return "fused"
	case Mixed:
		return "mixed"
	default:
		return "sequential"
	}
}

// step is one unit of the execution plan.
type step interface {
	run(s string, pol *lang.Policy) string
}

// applyStep runs one stage on the sequential path.
type applyStep struct {
	st stage.Stage
}

func (a applyStep) run(s string, pol *lang.Policy) string {
	if !a.st.NeedsApply(s, pol) {
		return s
	}
	return a.st.Apply(s, pol)
}

// fusedBlock streams a run of Streaming stages in a single pass.
type fusedBlock struct {
	stages []stage.Streaming
}

func (f fusedBlock) run(s string, pol *lang.Policy) string {
	apply := false
	for _, st := range f.stages {
		if st.NeedsApply(s, pol) {
			apply = true
			break
		}
	}
	if !apply {
		return s
	}
	src := stage.NewSource(s)
	for _, st := range f.stages {
		src = st.Transducer(src, pol)
	}
	out := stage.Collect(src, len(s))
	if out == s {
		return s
	}
	return out
}

// Pipeline is a built normalization pipeline. Build once, use from any
// number of goroutines.
type Pipeline struct {
	tag      lang.Tag
	pol      *lang.Policy
	stages   []stage.Stage
	plan     []step
	strategy Strategy
}

// New builds a pipeline for the given language and stage order.
//
// Configuration conflicts surface here, not at normalization time: a
// Transliterate stage paired with a language whose transliteration table is
// empty returns an error wrapping ErrInvalidConfiguration. Stages whose
// tables are empty but which can degrade to a provable no-op
// (RemoveDiacritics, SegmentWords) are accepted; they keep the zero-copy
// guarantee instead.
func New(tag lang.Tag, stages ...stage.Stage) (*Pipeline, error) {
	pol := lang.Lookup(tag)

	hasTranslit, hasStrip := false, false
	for _, st := range stages {
		if st == nil {
			return nil, &ConfigError{Reason: "nil stage"}
		}
		switch st.Name() {
		case "transliterate":
			hasTranslit = true
		case "remove_diacritics":
			hasStrip = true
		}
	}
	if hasTranslit && pol.TranslitKeys().Empty() {
		return nil, &ConfigError{Stage: "transliterate", Lang: tag,
			Reason: "language has no transliteration table"}
	}
	// Transliteration owns overlapping codepoints: hand every stage the
	// policy view with transliterated codepoints removed from the strip
	// tables.
	if hasTranslit && hasStrip {
		pol = pol.WithoutTransliterated()
	}

	p := &Pipeline{
		tag:    tag,
		pol:    pol,
		stages: append([]stage.Stage(nil), stages...),
	}
	p.plan, p.strategy = buildPlan(p.stages)
	return p, nil
}

// buildPlan splits the stage list into fused blocks and sequential steps.
func buildPlan(stages []stage.Stage) ([]step, Strategy) {
	var plan []step
	var pending []stage.Streaming
	blocks, singles := 0, 0

	flush := func() {
		switch {
		case len(pending) >= 2:
			plan = append(plan, fusedBlock{stages: pending})
			blocks++
		case len(pending) == 1:
			plan = append(plan, applyStep{st: pending[0]})
			singles++
		}
		pending = nil
	}

	for _, st := range stages {
		if streaming, ok := st.(stage.Streaming); ok {
			pending = append(pending, streaming)
			continue
		}
		flush()
		plan = append(plan, applyStep{st: st})
		singles++
	}
	flush()

	switch {
	case blocks == 1 && singles == 0:
		return plan, Fused
	case blocks >= 1:
		return plan, Mixed
	default:
		return plan, Sequential
	}
}

// Language returns the pipeline's language tag.
func (p *Pipeline) Language() lang.Tag { return p.tag }

// Strategy returns the execution plan selected at build time.
func (p *Pipeline) Strategy() Strategy { return p.strategy }

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	out := make([]string, len(p.stages))
	for i, st := range p.stages {
		out[i] = st.Name()
	}
	return out
}

// Normalize runs the pipeline over input. Invalid UTF-8 is rejected with
// ErrInvalidInput; for valid input normalization is infallible. When no
// stage transforms, the returned string is input itself.
func (p *Pipeline) Normalize(input string) (string, error) {
	if !utf8.ValidString(input) {
		return "", fmt.Errorf("normalize: %w", ErrInvalidInput)
	}
	s := input
	for _, st := range p.plan {
		s = st.run(s, p.pol)
	}
	return s, nil
}

// NormalizeNoFusion runs every stage on the sequential path, ignoring the
// fused plan. Output is byte-identical to Normalize.
func (p *Pipeline) NormalizeNoFusion(input string) (string, error) {
	if !utf8.ValidString(input) {
		return "", fmt.Errorf("normalize: %w", ErrInvalidInput)
	}
	s := input
	for _, st := range p.stages {
		if !st.NeedsApply(s, p.pol) {
			continue
		}
		s = st.Apply(s, p.pol)
	}
	return s, nil
}
