// Package catalog defines the static feature registry: the mapping from a
// selectable feature id to the pages, components, npm dependencies and style
// bundles it requires. The catalog is pure data with no I/O; it is always
// passed in explicitly so tests can substitute their own.
package catalog

import (
	"fmt"
	"sort"

	"github.com/siteforge-dev/siteforge/internal/foundation"
)

// FeatureID names a selectable capability ("gallery", "auth", ...).
type FeatureID string

// PageID names a logical page independent of framework ("home", "contact").
type PageID string

// ComponentID names a reusable UI component ("ContactForm").
type ComponentID string

// StyleBundleID names a CSS bundle shipped with one or more features.
type StyleBundleID string

// Functionality tags a feature with a behavioral group. Some tags imply a
// fixed multi-page set that must expand atomically (see the resolver).
type Functionality string

const (
	FunctionalityStatic   Functionality = "static"
	FunctionalityContact  Functionality = "contact"
	FunctionalityAuth     Functionality = "auth"
	FunctionalityBooking  Functionality = "booking"
	FunctionalityCommerce Functionality = "commerce"
)

// PackageRef is a pinned npm dependency declared by a feature.
type PackageRef struct {
	Name    string
	Version string
}

// String renders name@version for logs and reports.
func (p PackageRef) String() string { return p.Name + "@" + p.Version }

// FeatureSpec declares everything a feature contributes to the generated
// project. Specs are immutable; the catalog hands out copies.
type FeatureSpec struct {
	ID            FeatureID
	Pages         []PageID
	Components    []ComponentID
	Dependencies  []PackageRef
	StyleBundles  []StyleBundleID
	Functionality Functionality
}

// Catalog maps feature ids to specs. Keys are unique; construction fails on
// duplicates rather than silently last-writer-winning.
type Catalog struct {
	specs map[FeatureID]FeatureSpec
}

// New builds a catalog from the given specs.
func New(specs ...FeatureSpec) (*Catalog, error) {
	c := &Catalog{specs: make(map[FeatureID]FeatureSpec, len(specs))}
	for _, s := range specs {
		if s.ID == "" {
			return nil, fmt.Errorf("feature spec with empty id")
		}
		if _, exists := c.specs[s.ID]; exists {
			return nil, fmt.Errorf("duplicate feature id %q", s.ID)
		}
		c.specs[s.ID] = s
	}
	return c, nil
}

// Lookup returns the spec for id, or None for unknown ids. Unknown features
// are never fatal; the resolver records a warning and moves on.
func (c *Catalog) Lookup(id FeatureID) foundation.Option[FeatureSpec] {
	s, ok := c.specs[id]
	if !ok {
		return foundation.None[FeatureSpec]()
	}
	return foundation.Some(s)
}

// IDs returns every registered feature id in sorted order.
func (c *Catalog) IDs() []FeatureID {
	ids := make([]FeatureID, 0, len(c.specs))
	for id := range c.specs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of registered features.
func (c *Catalog) Len() int { return len(c.specs) }
