package preflight

import (
	"path/filepath"

	"github.com/715209/belabot/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every settings check for the document at path (the
// canonical file when path is empty).
func RunAll(path string) []Result {
	resolved := config.ResolvePath(path)
	dir := filepath.Dir(resolved)
	if abs, err := filepath.Abs(resolved); err == nil {
		dir = filepath.Dir(abs)
	}

	return []Result{
		CheckSettingsDirectory("Settings directory", dir),
		CheckSettingsDocument(resolved),
	}
}
