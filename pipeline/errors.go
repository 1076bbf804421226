package pipeline

import (
	"errors"
	"fmt"

	"github.com/coregx/normtext/lang"
)

// Pipeline errors.
var (
	// ErrInvalidInput indicates the input string is not valid UTF-8.
	ErrInvalidInput = errors.New("input is not valid UTF-8")

	// ErrInvalidConfiguration indicates a conflict detected at build time:
	// an unknown stage or language name in a declarative config, or an
	// opt-in stage paired with a language lacking its required table.
	ErrInvalidConfiguration = errors.New("invalid pipeline configuration")
)

// ConfigError wraps ErrInvalidConfiguration with the offending stage and
// language.
type ConfigError struct {
	Stage  string
	Lang   lang.Tag
	Reason string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("pipeline: stage %q with language %s: %s", e.Stage, e.Lang, e.Reason)
	}
	return fmt.Sprintf("pipeline: %s", e.Reason)
}

// Unwrap returns ErrInvalidConfiguration so callers can match with
// errors.Is.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }
