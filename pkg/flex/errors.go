package flex

import "fmt"

// ConfigError reports an unrecognized enum value handed to a container
// setter. Configuration is rejected when set, never silently defaulted.
type ConfigError struct {
	Field string
	Value fmt.Stringer
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("flex: invalid %s value %q", e.Field, e.Value.String())
}

func configErr(field string, value fmt.Stringer) error {
	return &ConfigError{Field: field, Value: value}
}
