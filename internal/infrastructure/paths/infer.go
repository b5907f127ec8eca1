package paths

import (
	"path/filepath"
	"strings"

	"github.com/breakdown-dev/breakdown/internal/domain/values"
)

// layerKeywordGroup maps a source layer to the file-name keywords that
// identify it.
type layerKeywordGroup struct {
	layer    string
	keywords []string
}

// layerKeywordGroups is tried in order; the first group with a matching
// keyword wins.
var layerKeywordGroups = []layerKeywordGroup{
	{layer: "project", keywords: []string{"project", "pj", "prj"}},
	{layer: "issue", keywords: []string{"issue", "story"}},
	{layer: "task", keywords: []string{"task", "todo", "chore", "style", "fix", "error", "bug"}},
}

// InferFromLayer derives the source layer from an input file name.
// A file named issue_summary.md maps to "issue"; when no keyword
// matches, the target layer is the default.
func InferFromLayer(inputPath string, fallback values.LayerType) string {
	name := strings.ToLower(filepath.Base(inputPath))
	for _, group := range layerKeywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(name, keyword) {
				return group.layer
			}
		}
	}
	return fallback.String()
}
