package paths

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/breakdown-dev/breakdown/internal/config"
	"github.com/breakdown-dev/breakdown/internal/domain/values"
	"github.com/google/uuid"
)

// dangerousNameChars are replaced with _ in destination file names.
const dangerousNameChars = `<>:"|?*`

// stdinPlaceholder marks "no destination given" on the command line.
const stdinPlaceholder = "-"

// OutputPathResolver composes the output file path under
// {baseDir}/{directive}/{layer}/. A supplied destination name is used
// verbatim (sanitized, .md appended when extension-less); otherwise a
// collision-free name is generated.
type OutputPathResolver struct {
	cfg  *config.AppConfig
	opts resolverOptions
	now  func() time.Time
}

// NewOutputPathResolver creates a resolver over the given configuration.
func NewOutputPathResolver(cfg *config.AppConfig, opts ...ResolverOption) *OutputPathResolver {
	r := &OutputPathResolver{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Resolve produces the concrete output file path. The file itself is not
// required to exist; the base directory is.
func (r *OutputPathResolver) Resolve(params ResolveParams) (values.ResolvedPath, error) {
	if err := params.validate(); err != nil {
		return values.ResolvedPath{}, err
	}

	configured := ""
	if r.cfg != nil {
		configured = r.cfg.Output.BaseDir
	}
	baseDir := pickBaseDir(params.BaseDirOverride, configured, DefaultOutputBaseDir)

	policyOpts := []PolicyOption{}
	if params.WorkDir != "" {
		policyOpts = append(policyOpts, WithWorkDir(params.WorkDir))
	}
	if r.opts.custom != nil {
		policyOpts = append(policyOpts, WithCustomRule(r.opts.custom))
	}

	policy, err := NewPolicy(StrategyWorkspace, baseDir, policyOpts...)
	if err != nil {
		return values.ResolvedPath{}, err
	}

	if _, err := os.Stat(policy.BaseDir()); err != nil {
		return values.ResolvedPath{}, &BaseDirectoryNotFoundError{BaseDir: policy.BaseDir(), Cause: err}
	}

	fileName := r.destinationFileName(params.Destination)
	logical := filepath.Join(params.Directive.String(), params.Layer.String(), fileName)

	resolved, err := policy.Resolve(logical)
	if err != nil {
		return values.ResolvedPath{}, err
	}
	if err := policy.Validate(resolved); err != nil {
		return values.ResolvedPath{}, err
	}

	return values.NewResolvedPath(resolved, values.PathMetadata{
		BaseDir:   policy.BaseDir(),
		Directive: params.Directive.String(),
		Layer:     params.Layer.String(),
		FileName:  fileName,
	})
}

// destinationFileName sanitizes a supplied name or generates one.
func (r *OutputPathResolver) destinationFileName(destination string) string {
	destination = strings.TrimSpace(destination)
	if destination == "" || destination == stdinPlaceholder {
		return r.generateFileName()
	}

	name := sanitizeFileName(destination)
	if filepath.Ext(name) == "" {
		name += ".md"
	}
	return name
}

// generateFileName builds {YYYYMMDD}_{8-hex}.md with a crypto-sourced
// random suffix, so repeated auto-generation never collides.
func (r *OutputPathResolver) generateFileName() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return r.now().Format("20060102") + "_" + suffix + ".md"
}

// sanitizeFileName replaces characters that are unsafe in file names.
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(dangerousNameChars, r) {
			return '_'
		}
		return r
	}, name)
}
