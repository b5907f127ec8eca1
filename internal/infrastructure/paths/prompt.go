package paths

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/breakdown-dev/breakdown/internal/config"
	"github.com/breakdown-dev/breakdown/internal/domain/values"
)

// ResolverOption configures a path resolver.
type ResolverOption func(*resolverOptions)

type resolverOptions struct {
	fallbacks []string
	custom    *CustomRule
}

// WithFallbackDirs sets ordered fallback base directories.
func WithFallbackDirs(dirs ...string) ResolverOption {
	return func(o *resolverOptions) { o.fallbacks = append(o.fallbacks, dirs...) }
}

// WithPredicate attaches a custom validation predicate.
func WithPredicate(rule *CustomRule) ResolverOption {
	return func(o *resolverOptions) { o.custom = rule }
}

// PromptPathResolver composes and validates the prompt template path:
// {baseDir}/{directive}/{layer}/f_{fromLayer}[_{adaptation}].md
type PromptPathResolver struct {
	cfg  *config.AppConfig
	opts resolverOptions
}

// NewPromptPathResolver creates a resolver over the given configuration.
// A nil configuration falls back to the built-in base directory.
func NewPromptPathResolver(cfg *config.AppConfig, opts ...ResolverOption) *PromptPathResolver {
	r := &PromptPathResolver{cfg: cfg}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Resolve produces the concrete prompt template path.
func (r *PromptPathResolver) Resolve(params ResolveParams) (values.ResolvedPath, error) {
	if err := params.validate(); err != nil {
		return values.ResolvedPath{}, err
	}

	configured := ""
	if r.cfg != nil {
		configured = r.cfg.AppPrompt.BaseDir
	}
	baseDir := pickBaseDir(params.BaseDirOverride, configured, DefaultPromptBaseDir)

	fromLayer := params.FromLayer
	if fromLayer == "" {
		if params.FromFile != "" {
			fromLayer = InferFromLayer(params.FromFile, params.Layer)
		} else {
			fromLayer = params.Layer.String()
		}
	}

	fileName := "f_" + fromLayer
	if params.Adaptation != "" {
		fileName += "_" + params.Adaptation
	}
	fileName += ".md"

	return resolveTemplateFile(baseDir, fileName, params, r.opts)
}

// resolveTemplateFile is the shared prompt/schema mechanics: base dir
// reachability, workspace-anchored composition, existence validation
// with the fallback chain.
func resolveTemplateFile(baseDir, fileName string, params ResolveParams, opts resolverOptions) (values.ResolvedPath, error) {
	policyOpts := []PolicyOption{
		WithRules(
			ValidationRule{Check: RuleMustExist},
			ValidationRule{Check: RuleMustBeFile},
			ValidationRule{Check: RuleMustBeReadable, Optional: true},
		),
	}
	if params.WorkDir != "" {
		policyOpts = append(policyOpts, WithWorkDir(params.WorkDir))
	}
	if len(opts.fallbacks) > 0 {
		policyOpts = append(policyOpts, WithFallbacks(opts.fallbacks...))
	}
	if opts.custom != nil {
		policyOpts = append(policyOpts, WithCustomRule(opts.custom))
	}

	policy, err := NewPolicy(StrategyWorkspace, baseDir, policyOpts...)
	if err != nil {
		return values.ResolvedPath{}, err
	}

	if _, err := os.Stat(policy.BaseDir()); err != nil {
		return values.ResolvedPath{}, &BaseDirectoryNotFoundError{BaseDir: policy.BaseDir(), Cause: err}
	}

	logical := filepath.Join(params.Directive.String(), params.Layer.String(), fileName)
	resolved, err := policy.ResolveWithFallbacks(logical)
	if err != nil {
		var nvf *NoValidFallbackError
		if errors.As(err, &nvf) {
			return values.ResolvedPath{}, &TemplateNotFoundError{Attempted: nvf.Attempted}
		}
		return values.ResolvedPath{}, err
	}

	return values.NewResolvedPath(resolved, values.PathMetadata{
		BaseDir:   policy.BaseDir(),
		Directive: params.Directive.String(),
		Layer:     params.Layer.String(),
		FileName:  fileName,
	})
}
