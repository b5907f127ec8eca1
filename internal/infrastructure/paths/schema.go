package paths

import (
	"github.com/breakdown-dev/breakdown/internal/config"
	"github.com/breakdown-dev/breakdown/internal/domain/values"
)

// schemaFileName is fixed regardless of adaptation.
const schemaFileName = "base.schema.md"

// SchemaPathResolver composes and validates the schema file path:
// {baseDir}/{directive}/{layer}/base.schema.md
type SchemaPathResolver struct {
	cfg  *config.AppConfig
	opts resolverOptions
}

// NewSchemaPathResolver creates a resolver over the given configuration.
func NewSchemaPathResolver(cfg *config.AppConfig, opts ...ResolverOption) *SchemaPathResolver {
	r := &SchemaPathResolver{cfg: cfg}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// Resolve produces the concrete schema file path.
func (r *SchemaPathResolver) Resolve(params ResolveParams) (values.ResolvedPath, error) {
	if err := params.validate(); err != nil {
		return values.ResolvedPath{}, err
	}

	configured := ""
	if r.cfg != nil {
		configured = r.cfg.AppSchema.BaseDir
	}
	baseDir := pickBaseDir(params.BaseDirOverride, configured, DefaultSchemaBaseDir)

	return resolveTemplateFile(baseDir, schemaFileName, params, r.opts)
}
