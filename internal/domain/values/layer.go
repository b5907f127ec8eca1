package values

import "strings"

// LayerType is the validated hierarchical target token
// (e.g. "project", "issue", "task").
type LayerType struct {
	value string
}

// NewLayerType validates the token against the registry and wraps it.
func NewLayerType(value string, registry PatternRegistry) (LayerType, error) {
	value = strings.TrimSpace(value)
	if !registry.Matches(value) {
		return LayerType{}, &InvalidLayerError{
			Value:      value,
			Pattern:    registry.Source(),
			ValidTypes: registry.Alternatives(),
		}
	}
	return LayerType{value: value}, nil
}

// NewPreValidatedLayerType accepts a token already validated upstream.
func NewPreValidatedLayerType(value string) (LayerType, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return LayerType{}, &InvalidLayerError{Value: value, Reason: "layer cannot be empty"}
	}
	return LayerType{value: value}, nil
}

// MustNewLayerType creates a LayerType or panics (for tests/constants)
func MustNewLayerType(value string, registry PatternRegistry) LayerType {
	l, err := NewLayerType(value, registry)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the string representation
func (l LayerType) String() string {
	return l.value
}

// IsEmpty returns true if this is the zero value
func (l LayerType) IsEmpty() bool {
	return l.value == ""
}

// Equals checks equality by wrapped value only.
func (l LayerType) Equals(other LayerType) bool {
	return l.value == other.value
}

// MarshalJSON implements json.Marshaler
func (l LayerType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.value + `"`), nil
}
