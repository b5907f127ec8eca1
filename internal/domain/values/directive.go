package values

import "strings"

// DirectiveType is the validated processing-direction token
// (e.g. "to", "summary", "defect").
// The only construction paths are validation against a PatternRegistry
// or explicit acceptance of upstream-validated data.
type DirectiveType struct {
	value string
}

// NewDirectiveType validates the token against the registry and wraps it.
func NewDirectiveType(value string, registry PatternRegistry) (DirectiveType, error) {
	value = strings.TrimSpace(value)
	if !registry.Matches(value) {
		return DirectiveType{}, &InvalidDirectiveError{
			Value:      value,
			Pattern:    registry.Source(),
			ValidTypes: registry.Alternatives(),
		}
	}
	return DirectiveType{value: value}, nil
}

// NewPreValidatedDirectiveType accepts a token already validated upstream,
// carried inside a parsed-parameters record. It still rejects emptiness.
func NewPreValidatedDirectiveType(value string) (DirectiveType, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DirectiveType{}, &InvalidDirectiveError{Value: value, Reason: "directive cannot be empty"}
	}
	return DirectiveType{value: value}, nil
}

// MustNewDirectiveType creates a DirectiveType or panics (for tests/constants)
func MustNewDirectiveType(value string, registry PatternRegistry) DirectiveType {
	d, err := NewDirectiveType(value, registry)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the string representation
func (d DirectiveType) String() string {
	return d.value
}

// IsEmpty returns true if this is the zero value
func (d DirectiveType) IsEmpty() bool {
	return d.value == ""
}

// Equals checks equality by wrapped value only.
func (d DirectiveType) Equals(other DirectiveType) bool {
	return d.value == other.value
}

// MarshalJSON implements json.Marshaler
func (d DirectiveType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.value + `"`), nil
}
