package simulate

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-optics/optics/tmm"
)

// ErrConfiguration is wrapped by every ConfigurationError. It is the same
// value as tmm.ErrConfiguration, so one errors.Is check covers both.
var ErrConfiguration = tmm.ErrConfiguration

// ConfigurationError reports a rejected configuration field.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("simulate: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func configError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// fromStack converts a tmm stack error into a ConfigurationError.
func fromStack(err error) error {
	var te *tmm.ConfigurationError
	if errors.As(err, &te) {
		return &ConfigurationError{Field: te.Field, Reason: te.Reason}
	}
	return err
}
