// Package manifest writes the generated project's npm dependency manifest.
package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/siteforge-dev/siteforge/internal/catalog"
)

// Seed is a renderer's contribution to package.json: framework base
// dependencies and scripts. Feature dependencies are merged on top.
type Seed struct {
	Scripts         map[string]string
	Dependencies    []catalog.PackageRef
	DevDependencies []catalog.PackageRef
}

// packageJSON mirrors the file layout. encoding/json sorts map keys, which
// gives byte-identical manifests for identical inputs.
type packageJSON struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private"`
	Version         string            `json:"version"`
	Type            string            `json:"type,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Build renders package.json for the project. When a feature declares a
// package the framework seed already pins, the seed's version wins: the
// framework knows its own compatibility range best.
func Build(projectName string, seed Seed, featureDeps []catalog.PackageRef) (string, error) {
	deps := make(map[string]string, len(seed.Dependencies)+len(featureDeps))
	for _, d := range featureDeps {
		deps[d.Name] = d.Version
	}
	for _, d := range seed.Dependencies {
		deps[d.Name] = d.Version
	}
	devDeps := make(map[string]string, len(seed.DevDependencies))
	for _, d := range seed.DevDependencies {
		devDeps[d.Name] = d.Version
	}

	pkg := packageJSON{
		Name:            projectName,
		Private:         true,
		Version:         "0.1.0",
		Type:            "module",
		Scripts:         seed.Scripts,
		Dependencies:    deps,
		DevDependencies: devDeps,
	}
	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal package.json: %w", err)
	}
	return string(data) + "\n", nil
}
