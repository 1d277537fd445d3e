package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New(
		FeatureSpec{ID: "gallery"},
		FeatureSpec{ID: "gallery"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate feature id")
}

func TestNewRejectsEmptyID(t *testing.T) {
	_, err := New(FeatureSpec{})
	require.Error(t, err)
}

func TestLookupKnownFeature(t *testing.T) {
	c := Default()
	spec := c.Lookup("contact-form")
	require.True(t, spec.IsSome())
	assert.Equal(t, []PageID{"contact"}, spec.Unwrap().Pages)
	assert.Equal(t, FunctionalityContact, spec.Unwrap().Functionality)
}

func TestLookupUnknownFeatureIsNone(t *testing.T) {
	c := Default()
	assert.True(t, c.Lookup("flux-capacitor").IsNone())
}

func TestDefaultCatalogAuthDeclaresAllPages(t *testing.T) {
	spec := Default().Lookup("auth")
	require.True(t, spec.IsSome())
	assert.ElementsMatch(t, []PageID{"login", "register", "profile"}, spec.Unwrap().Pages)
}

func TestDefaultCatalogShopDeclaresAllPages(t *testing.T) {
	spec := Default().Lookup("shop")
	require.True(t, spec.IsSome())
	assert.ElementsMatch(t, []PageID{"shop", "cart", "checkout"}, spec.Unwrap().Pages)
}

func TestIDsSortedAndComplete(t *testing.T) {
	c := Default()
	ids := c.IDs()
	assert.Len(t, ids, c.Len())
	for i := 1; i < len(ids); i++ {
		assert.Less(t, string(ids[i-1]), string(ids[i]))
	}
}

func TestPackageRefString(t *testing.T) {
	assert.Equal(t, "leaflet@^1.9.4", PackageRef{Name: "leaflet", Version: "^1.9.4"}.String())
}

func TestDependencyVersionsPinned(t *testing.T) {
	c := Default()
	for _, id := range c.IDs() {
		spec := c.Lookup(id).Unwrap()
		for _, dep := range spec.Dependencies {
			assert.NotEmpty(t, dep.Version, "feature %s dependency %s lacks a version", id, dep.Name)
		}
	}
}
