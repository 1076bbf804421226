// Package normtext provides a linguistically principled text normalization
// engine for multilingual NLP pipelines.
//
// normtext turns a declarative, ordered list of normalization stages into a
// compiled pipeline:
//   - Zero-copy: input that is already normalized is returned as-is, same
//     backing bytes, no allocation.
//   - Fusion: adjacent character-level stages compose into a single
//     streaming pass instead of materializing intermediates.
//   - Language policies: every stage consults an immutable per-language
//     record (Turkish dotless ı, German ß and umlaut conventions, the
//     Spanish ñ guarantee, Indic virama segmentation, and so on).
//
// Basic usage:
//
//	p, err := normtext.New(lang.DEU, stage.CaseFold, stage.Transliterate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := p.Normalize("Grüße aus München")
//	// out == "gruesse aus muenchen"
//
// Declarative usage:
//
//	p, err := normtext.FromYAML([]byte(`
//	language: tur
//	stages: [nfc, lowercase, normalize_whitespace_full]
//	`))
//
// A built pipeline is immutable and safe for unbounded concurrent use.
// Normalization is pure and synchronous: no goroutines, no locks, no global
// state.
//
// Recommended stage order for search indexing is NFC first, then markup
// stripping, then width and punctuation, then case, transliteration and
// diacritics, then whitespace and segmentation last; the engine runs
// whatever order it is given and never reorders.
package normtext

import (
	"github.com/coregx/normtext/lang"
	"github.com/coregx/normtext/pipeline"
	"github.com/coregx/normtext/stage"
)

// Pipeline is a compiled normalization pipeline.
//
// Safe for concurrent use from multiple goroutines.
type Pipeline struct {
	engine *pipeline.Pipeline
}

// New builds a pipeline for a language and an ordered stage list.
//
// Configuration conflicts (a table-driven stage paired with a language
// lacking its table) surface here as errors wrapping
// pipeline.ErrInvalidConfiguration.
//
// Example:
//
//	p, err := normtext.New(lang.FRA, stage.CaseFold, stage.RemoveDiacritics)
func New(tag lang.Tag, stages ...stage.Stage) (*Pipeline, error) {
	engine, err := pipeline.New(tag, stages...)
	if err != nil {
		return nil, err
	}
	return &Pipeline{engine: engine}, nil
}

// MustNew builds a pipeline and panics on configuration errors.
//
// Useful for pipelines known to be valid at compile time:
//
//	var searchNorm = normtext.MustNew(lang.ENG, stage.NFC, stage.CaseFold)
func MustNew(tag lang.Tag, stages ...stage.Stage) *Pipeline {
	p, err := New(tag, stages...)
	if err != nil {
		panic("normtext: New(" + tag.String() + "): " + err.Error())
	}
	return p
}

// FromYAML builds a pipeline from its declarative YAML form:
//
//	language: deu
//	stages: [nfc, casefold, transliterate]
func FromYAML(data []byte) (*Pipeline, error) {
	cfg, err := pipeline.ParseConfig(data)
	if err != nil {
		return nil, err
	}
	engine, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Pipeline{engine: engine}, nil
}

// Normalize runs the pipeline. Inputs that no stage changes come back
// untouched, backing bytes included. The only error is
// pipeline.ErrInvalidInput for non-UTF-8 input.
func (p *Pipeline) Normalize(input string) (string, error) {
	return p.engine.Normalize(input)
}

// NormalizeNoFusion runs the pipeline with fusion disabled, applying each
// stage sequentially. Output is byte-identical to Normalize; intended for
// benchmarking and debugging the fused path.
func (p *Pipeline) NormalizeNoFusion(input string) (string, error) {
	return p.engine.NormalizeNoFusion(input)
}

// Language returns the pipeline's language tag.
func (p *Pipeline) Language() lang.Tag { return p.engine.Language() }

// Strategy returns the execution plan the builder selected.
func (p *Pipeline) Strategy() pipeline.Strategy { return p.engine.Strategy() }

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string { return p.engine.Stages() }
