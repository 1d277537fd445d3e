package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "siteforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
project:
  name: bella-vista
  framework: react
  typescript: true
business:
  name: Bella Vista
  industry: restaurant
  phone: "+1 555 010 2030"
features:
  - contact-form
  - gallery
output:
  directory: ./out
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bella-vista", cfg.Project.Name)
	assert.Equal(t, FrameworkReact, cfg.Project.Framework)
	assert.True(t, cfg.Project.TypeScript)
	assert.Equal(t, "restaurant", cfg.Business.Industry)
	assert.Equal(t, []string{"contact-form", "gallery"}, cfg.Features)
	assert.Equal(t, "./out", cfg.Output.Directory)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
business:
  name: Corner Bakery
  industry: small-business
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "corner-bakery", cfg.Project.Name)
	assert.Equal(t, FrameworkReact, cfg.Project.Framework)
	assert.Equal(t, "blue", cfg.Project.ColorScheme)
	assert.Equal(t, 10*time.Second, cfg.Content.AITimeout)
	assert.Equal(t, "./corner-bakery", cfg.Output.Directory)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("SITEFORGE_TEST_OUT", "./env-dir")
	path := writeConfig(t, `
project:
  framework: vue
business:
  industry: salon
output:
  directory: ${SITEFORGE_TEST_OUT}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./env-dir", cfg.Output.Directory)
}

func TestValidateRejectsUnknownFramework(t *testing.T) {
	cfg := &Config{Project: ProjectConfig{Framework: "flash"}, Business: BusinessConfig{Industry: "restaurant"}, Output: OutputConfig{Directory: "x"}}
	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "flash")
}

func TestValidateRejectsUnknownIndustry(t *testing.T) {
	cfg := &Config{Project: ProjectConfig{Framework: FrameworkReact}, Business: BusinessConfig{Industry: "space-mining"}, Output: OutputConfig{Directory: "x"}}
	err := Validate(cfg)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestValidateRejectsDuplicateFeatures(t *testing.T) {
	cfg := &Config{
		Project:  ProjectConfig{Framework: FrameworkReact},
		Business: BusinessConfig{Industry: "restaurant"},
		Features: []string{"gallery", "gallery"},
		Output:   OutputConfig{Directory: "x"},
	}
	require.ErrorIs(t, Validate(cfg), ErrConfiguration)
}

func TestEventsSubjectDefault(t *testing.T) {
	cfg := &Config{Events: &EventsConfig{NATSURL: "nats://localhost:4222"}}
	require.NoError(t, ApplyDefaults(cfg))
	assert.Equal(t, "siteforge.generation", cfg.Events.Subject)
}

func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "siteforge.yaml")
	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}

func TestInitProducesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "siteforge.yaml")
	require.NoError(t, Init(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FrameworkReact, cfg.Project.Framework)
	assert.Equal(t, "restaurant", cfg.Business.Industry)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "bella-vista", slugify("Bella  Vista"))
	assert.Equal(t, "cafe-24-7", slugify("Cafe 24/7!"))
}
