package values

import (
	"fmt"
	"regexp"
	"strings"
)

// alternationPattern recognizes sources of the form ^(a|b|c)$ whose
// alternatives can be enumerated as a literal allow-list.
var alternationPattern = regexp.MustCompile(`^\^\(([^()|]+(?:\|[^()|]+)*)\)\$$`)

// PatternRegistry wraps a matching rule sourced from configuration.
// A source like ^(to|summary)$ becomes an enumerable literal set; any
// other source compiles to a plain regular-expression matcher.
type PatternRegistry struct {
	source   string
	matcher  *regexp.Regexp
	literals []string
}

// NewPatternRegistry creates a PatternRegistry from a pattern source.
// An empty or unparsable source is an error, never a match-everything rule.
func NewPatternRegistry(source string) (PatternRegistry, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return PatternRegistry{}, &InvalidPatternError{Source: source, Reason: "pattern cannot be empty"}
	}

	if m := alternationPattern.FindStringSubmatch(source); m != nil {
		parts := strings.Split(m[1], "|")
		literals := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				return PatternRegistry{}, &InvalidPatternError{Source: source, Reason: "empty alternative"}
			}
			literals = append(literals, p)
		}
		return PatternRegistry{source: source, literals: literals}, nil
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return PatternRegistry{}, &InvalidPatternError{Source: source, Reason: fmt.Sprintf("invalid regular expression: %v", err)}
	}
	return PatternRegistry{source: source, matcher: re}, nil
}

// MustNewPatternRegistry creates a PatternRegistry or panics (for tests/constants)
func MustNewPatternRegistry(source string) PatternRegistry {
	pr, err := NewPatternRegistry(source)
	if err != nil {
		panic(err)
	}
	return pr
}

// Matches reports whether the value belongs to the pattern.
func (p PatternRegistry) Matches(value string) bool {
	if p.literals != nil {
		for _, lit := range p.literals {
			if lit == value {
				return true
			}
		}
		return false
	}
	if p.matcher == nil {
		return false
	}
	return p.matcher.MatchString(value)
}

// Alternatives returns the literal allow-list, or nil when the pattern
// is a non-enumerable regular expression.
func (p PatternRegistry) Alternatives() []string {
	if p.literals == nil {
		return nil
	}
	out := make([]string, len(p.literals))
	copy(out, p.literals)
	return out
}

// IsEnumerable reports whether the pattern carries a literal allow-list.
func (p PatternRegistry) IsEnumerable() bool {
	return p.literals != nil
}

// Source returns the original pattern source string.
func (p PatternRegistry) Source() string {
	return p.source
}

// IsEmpty returns true if this is the zero value
func (p PatternRegistry) IsEmpty() bool {
	return p.source == ""
}
