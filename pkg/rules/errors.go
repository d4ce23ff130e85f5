package rules

import (
	"errors"
	"fmt"
)

// ErrNoConfiguration is returned when the engine is asked to evaluate
// before any rule configuration has been loaded.
var ErrNoConfiguration = errors.New("no rule configuration loaded")

// ConfigurationError reports a rule document that is missing, unparseable,
// or fails schema validation. It is raised at load time, never during
// evaluation.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rule configuration invalid: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("rule configuration invalid: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
