package spider

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is matched by every *ConfigurationError.
	ErrInvalidConfiguration = errors.New("spider: invalid configuration")

	// ErrProviderInconsistency is matched by every *ProviderInconsistencyError.
	ErrProviderInconsistency = errors.New("spider: inconsistent data source")
)

// ConfigurationError is returned when the configuration, or the counts
// reported by the data source, would make the chart geometry undefined.
type ConfigurationError struct {
	Field  string // name of the offending parameter
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("spider: invalid configuration: %s %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrInvalidConfiguration }

// ProviderInconsistencyError is returned when the row count reported
// by the data source changes during one render pass.
type ProviderInconsistencyError struct {
	Want, Got int
}

func (e *ProviderInconsistencyError) Error() string {
	return fmt.Sprintf("spider: row count changed during render pass (from %d to %d)", e.Want, e.Got)
}

func (e *ProviderInconsistencyError) Unwrap() error { return ErrProviderInconsistency }
