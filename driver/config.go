package driver

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// ProjectConfig is the decoded form of a project's `trillconfig.jsonc` —
// the settings a CLI or LSP front end would otherwise have to repeat as
// flags on every invocation. Fields mirror the CLI's semantic contract
// from the language reference that is meaningful to bake into a project-level file
// rather than pass per-run: target triple, optimization level, and
// whether the Clang importer and standard library run at all.
type ProjectConfig struct {
	TargetTriple         string            `json:"targetTriple,omitempty"`
	OptimizationLevel    int               `json:"optimizationLevel"`
	EnableClangImporter  bool              `json:"enableClangImporter"`
	EnableStdlib         bool              `json:"enableStdlib"`
	Defines              map[string]string `json:"defines,omitempty"`
	MaxDiagnostics       int               `json:"maxDiagnostics"`
}

// DefaultProjectConfig returns the configuration an invocation uses when
// no `trillconfig.jsonc` is present.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		OptimizationLevel: 0,
		EnableStdlib:      true,
		MaxDiagnostics:    0, // unlimited, matching diag.NewCollectorUnlimited
	}
}

// LoadProjectConfig reads and decodes the JSONC project file at path.
// Comments and trailing commas are stripped via jsonc.ToJSON before
// handing the result to encoding/json — the same preprocessing
// clangimport applies to its own wire format, so a project's config file
// and a Clang AST dump tolerate the same JSONC dialect.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	cfg := DefaultProjectConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("driver: reading project config %q: %w", path, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(raw), &cfg); err != nil {
		return cfg, fmt.Errorf("driver: decoding project config %q: %w", path, err)
	}
	return cfg, nil
}
