package project

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
)

func TestNewContext(t *testing.T) {
	cfg := &config.Config{
		Project:  config.ProjectConfig{Name: "bella-vista", Framework: config.FrameworkVue, TypeScript: true, ColorScheme: "green"},
		Business: config.BusinessConfig{Name: "Bella Vista", Industry: "restaurant"},
		Features: []string{"gallery", "contact-form"},
		Output:   config.OutputConfig{Directory: "./out"},
	}
	ctx := NewContext(cfg)
	assert.Equal(t, "bella-vista", ctx.ProjectName)
	assert.Equal(t, config.FrameworkVue, ctx.Framework)
	assert.True(t, ctx.TypeScript)
	assert.True(t, ctx.SelectedFeatures.Has(catalog.FeatureID("gallery")))
	assert.True(t, ctx.SelectedFeatures.Has(catalog.FeatureID("contact-form")))
	assert.False(t, ctx.SelectedFeatures.Has(catalog.FeatureID("auth")))
	assert.Equal(t, "./out", ctx.OutputRoot)
}

func TestRoutePath(t *testing.T) {
	assert.Equal(t, "/", RoutePath("home"))
	assert.Equal(t, "/contact", RoutePath("contact"))
	assert.Equal(t, "/menu", RoutePath("menu"))
}
