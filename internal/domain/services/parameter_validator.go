package services

import (
	"github.com/breakdown-dev/breakdown/internal/config"
	"github.com/breakdown-dev/breakdown/internal/domain/values"
)

// expectedParameterCount is the arity of the two-parameter form.
const expectedParameterCount = 2

// PatternPair is the directive/layer registry pair for one profile.
type PatternPair struct {
	Directive values.PatternRegistry
	Layer     values.PatternRegistry
}

// ValidatedParams is the outcome of a successful validation: both value
// objects plus the redundant raw-token view some consumers still expect.
type ValidatedParams struct {
	Directive values.DirectiveType
	Layer     values.LayerType
	tokens    [expectedParameterCount]string
}

// Tokens returns the validated raw tokens in input order.
func (p *ValidatedParams) Tokens() []string {
	return []string{p.tokens[0], p.tokens[1]}
}

// ParameterValidator validates (directive, layer) token pairs against
// pattern registries extracted from configuration. Extracted pairs are
// cached per profile so repeated validation does not re-parse patterns.
// The validator holds no error state; identical inputs give identical
// results.
type ParameterValidator struct {
	cache map[string]PatternPair
}

// NewParameterValidator creates an empty validator.
func NewParameterValidator() *ParameterValidator {
	return &ParameterValidator{cache: make(map[string]PatternPair)}
}

// Validate checks the token pair against the profile's patterns.
// The directive is checked before the layer; the first failing check
// determines the returned error.
func (v *ParameterValidator) Validate(params []string, cfg *config.AppConfig, profile string) (*ValidatedParams, error) {
	if len(params) != expectedParameterCount {
		return nil, &InvalidParameterCountError{Received: len(params), Expected: expectedParameterCount}
	}

	patterns, err := v.PatternsFor(cfg, profile)
	if err != nil {
		return nil, err
	}

	directive, err := values.NewDirectiveType(params[0], patterns.Directive)
	if err != nil {
		return nil, err
	}

	layer, err := values.NewLayerType(params[1], patterns.Layer)
	if err != nil {
		return nil, err
	}

	return &ValidatedParams{
		Directive: directive,
		Layer:     layer,
		tokens:    [expectedParameterCount]string{directive.String(), layer.String()},
	}, nil
}

// PatternsFor resolves the registry pair for a profile, from the cache
// when possible, otherwise by extracting and compiling the configured
// pattern sources.
func (v *ParameterValidator) PatternsFor(cfg *config.AppConfig, profile string) (PatternPair, error) {
	if profile == "" {
		profile = config.DefaultProfile
	}

	if pair, ok := v.cache[profile]; ok {
		return pair, nil
	}

	if cfg == nil {
		return PatternPair{}, &ConfigurationNotFoundError{Profile: profile}
	}

	directiveSource := cfg.Params.Two.DirectiveType.Pattern
	if directiveSource == "" {
		return PatternPair{}, &PatternNotDefinedError{Profile: profile, Key: "params.two.directive_type.pattern"}
	}
	layerSource := cfg.Params.Two.LayerType.Pattern
	if layerSource == "" {
		return PatternPair{}, &PatternNotDefinedError{Profile: profile, Key: "params.two.layer_type.pattern"}
	}

	directive, err := values.NewPatternRegistry(directiveSource)
	if err != nil {
		return PatternPair{}, err
	}
	layer, err := values.NewPatternRegistry(layerSource)
	if err != nil {
		return PatternPair{}, err
	}

	pair := PatternPair{Directive: directive, Layer: layer}
	v.cache[profile] = pair
	return pair, nil
}

// ClearCache drops all cached pattern pairs.
func (v *ParameterValidator) ClearCache() {
	v.cache = make(map[string]PatternPair)
}
