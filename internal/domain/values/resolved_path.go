package values

import (
	"path/filepath"
	"strings"
)

// PathMetadata records where a resolved path came from.
type PathMetadata struct {
	BaseDir   string `json:"base_dir" yaml:"base_dir"`
	Directive string `json:"directive" yaml:"directive"`
	Layer     string `json:"layer" yaml:"layer"`
	FileName  string `json:"file_name" yaml:"file_name"`
}

// ResolvedPath is an absolute, validated file-system path together with
// the metadata it was composed from.
type ResolvedPath struct {
	value string
	meta  PathMetadata
}

// NewResolvedPath creates a ResolvedPath. The value must be a non-empty
// absolute path; anything else is rejected at construction.
func NewResolvedPath(value string, meta PathMetadata) (ResolvedPath, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ResolvedPath{}, &InvalidPathError{Value: value, Reason: "path cannot be empty"}
	}
	if !filepath.IsAbs(trimmed) {
		return ResolvedPath{}, &InvalidPathError{Value: value, Reason: "path must be absolute"}
	}
	return ResolvedPath{value: filepath.Clean(trimmed), meta: meta}, nil
}

// MustNewResolvedPath creates a ResolvedPath or panics (for tests)
func MustNewResolvedPath(value string, meta PathMetadata) ResolvedPath {
	p, err := NewResolvedPath(value, meta)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the absolute path string.
func (p ResolvedPath) Value() string {
	return p.value
}

// String returns the string representation
func (p ResolvedPath) String() string {
	return p.value
}

// Metadata returns the composition metadata.
func (p ResolvedPath) Metadata() PathMetadata {
	return p.meta
}

// IsEmpty returns true if this is the zero value
func (p ResolvedPath) IsEmpty() bool {
	return p.value == ""
}

// Equals checks equality by path value only.
func (p ResolvedPath) Equals(other ResolvedPath) bool {
	return p.value == other.value
}

// MarshalJSON implements json.Marshaler
func (p ResolvedPath) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.value + `"`), nil
}
