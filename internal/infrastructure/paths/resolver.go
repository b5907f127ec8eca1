package paths

import (
	"github.com/breakdown-dev/breakdown/internal/domain/values"
)

// Default base directories, used when neither a per-call override nor a
// profile configuration value is present.
const (
	DefaultPromptBaseDir = "./breakdown/prompts/"
	DefaultSchemaBaseDir = "./breakdown/schema/"
	DefaultOutputBaseDir = "./output/"
)

// ResolveParams carries the validated values and per-call options a
// resolver needs.
type ResolveParams struct {
	Directive values.DirectiveType
	Layer     values.LayerType

	// Tokens optionally repeats the raw pair; when present it must agree
	// with the parsed fields.
	Tokens []string

	// FromFile is the input file path, used for fromLayer inference.
	FromFile string
	// FromLayer explicitly overrides the inferred source layer.
	FromLayer string
	// Adaptation is the optional prompt variant suffix.
	Adaptation string
	// Destination is the requested output name; empty or "-" means
	// auto-generate.
	Destination string
	// BaseDirOverride replaces the configured base directory for this call.
	BaseDirOverride string
	// WorkDir overrides the process working directory (for tests).
	WorkDir string
}

// validate checks presence and raw/parsed agreement.
func (p *ResolveParams) validate() error {
	if p.Directive.IsEmpty() {
		return &InvalidParameterCombinationError{Reason: "directive is missing"}
	}
	if p.Layer.IsEmpty() {
		return &InvalidParameterCombinationError{Reason: "layer is missing"}
	}
	switch len(p.Tokens) {
	case 0:
	case 2:
		if p.Tokens[0] != p.Directive.String() {
			return &InvalidParameterCombinationError{
				Reason: "raw directive " + p.Tokens[0] + " disagrees with parsed directive " + p.Directive.String(),
			}
		}
		if p.Tokens[1] != p.Layer.String() {
			return &InvalidParameterCombinationError{
				Reason: "raw layer " + p.Tokens[1] + " disagrees with parsed layer " + p.Layer.String(),
			}
		}
	default:
		return &InvalidParameterCombinationError{Reason: "raw token pair must have exactly two entries"}
	}
	return nil
}

// pickBaseDir applies the override > configured > default order.
func pickBaseDir(override, configured, fallback string) string {
	if override != "" {
		return override
	}
	if configured != "" {
		return configured
	}
	return fallback
}
