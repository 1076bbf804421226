package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/coregx/normtext/lang"
	"github.com/coregx/normtext/stage"
)

// Config is the declarative form of a pipeline, decodable from YAML:
//
//	language: deu
//	stages: [nfc, casefold, transliterate]
//
// Stage names are the registry names of package stage; the language is an
// ISO-639-3 style tag. Unknown languages fall back to Unicode defaults
// unless Strict is set.
type Config struct {
	// Language is the ISO-639-3 style tag selecting the policy record.
	Language string `yaml:"language"`

	// Stages lists the stage names in execution order.
	Stages []string `yaml:"stages"`

	// Strict rejects unknown language tags instead of falling back to
	// Unicode defaults.
	Strict bool `yaml:"strict,omitempty"`
}

// ParseConfig decodes a YAML pipeline configuration.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if len(c.Stages) == 0 {
		return Config{}, &ConfigError{Reason: "config lists no stages"}
	}
	return c, nil
}

// Build resolves the config into a pipeline.
func (c Config) Build() (*Pipeline, error) {
	tag, known := lang.Parse(c.Language)
	if !known && c.Strict {
		return nil, &ConfigError{Lang: tag,
			Reason: fmt.Sprintf("unknown language tag %q", c.Language)}
	}
	stages := make([]stage.Stage, 0, len(c.Stages))
	for _, name := range c.Stages {
		st, ok := stage.ByName(name)
		if !ok {
			return nil, &ConfigError{Stage: name, Lang: tag,
				Reason: "unknown stage name"}
		}
		stages = append(stages, st)
	}
	return New(tag, stages...)
}
