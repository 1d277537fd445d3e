// Package resolve expands a feature selection into the deduplicated,
// order-stable set of pages, components, dependencies and style bundles the
// generated project must contain.
package resolve

import (
	"sort"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/util/sets"
)

// CorePages returns the mandatory page set present in every generated
// project, regardless of feature selection.
func CorePages() []catalog.PageID {
	return []catalog.PageID{"home", "about", "services"}
}

// impliedPages maps functionality tags to the full page set the tag demands.
// A feature carrying one of these tags expands to every listed page
// atomically, even if its spec declares only a subset.
var impliedPages = map[catalog.Functionality][]catalog.PageID{
	catalog.FunctionalityAuth:     {"login", "register", "profile"},
	catalog.FunctionalityCommerce: {"shop", "cart", "checkout"},
}

// ResolvedPageSet is the frozen output of resolution. Resolution is
// additive-only: once produced, no feature can retroactively remove a page.
type ResolvedPageSet struct {
	Pages        *sets.Ordered[catalog.PageID]
	Components   *sets.Ordered[catalog.ComponentID]
	Dependencies sets.Set[catalog.PackageRef]
	StyleBundles sets.Set[catalog.StyleBundleID]

	// Owners records which feature first claimed each page. When two features
	// declare the same page id, the first-processed feature's component and
	// style association wins ("first feature wins"). Core pages have no owner.
	Owners map[catalog.PageID]catalog.FeatureID

	// Implemented lists selected features found in the catalog, in selection
	// order. Unknown lists selected ids missing from the catalog; they are
	// no-ops that the orchestrator reports as warnings.
	Implemented []catalog.FeatureID
	Unknown     []catalog.FeatureID
}

// DependencyList returns the dependency union sorted by package name, the
// order used when writing the manifest.
func (r *ResolvedPageSet) DependencyList() []catalog.PackageRef {
	deps := make([]catalog.PackageRef, 0, len(r.Dependencies))
	for d := range r.Dependencies {
		deps = append(deps, d)
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })
	return deps
}

// StyleBundleList returns the style bundle union in sorted order.
func (r *ResolvedPageSet) StyleBundleList() []catalog.StyleBundleID {
	bundles := make([]catalog.StyleBundleID, 0, len(r.StyleBundles))
	for b := range r.StyleBundles {
		bundles = append(bundles, b)
	}
	sort.Slice(bundles, func(i, j int) bool { return bundles[i] < bundles[j] })
	return bundles
}

// Resolve expands core pages plus the selected features against the catalog.
// selected is processed in declaration order, which fixes both the navigation
// order of pages/components and the "first feature wins" tie-break. The set
// parts (dependencies, style bundles) are unions and therefore independent of
// processing order.
func Resolve(cat *catalog.Catalog, core []catalog.PageID, selected []catalog.FeatureID) *ResolvedPageSet {
	out := &ResolvedPageSet{
		Pages:        sets.NewOrdered(core...),
		Components:   sets.NewOrdered[catalog.ComponentID](),
		Dependencies: sets.New[catalog.PackageRef](),
		StyleBundles: sets.New[catalog.StyleBundleID](),
		Owners:       make(map[catalog.PageID]catalog.FeatureID),
	}

	for _, id := range selected {
		spec := cat.Lookup(id)
		if spec.IsNone() {
			out.Unknown = append(out.Unknown, id)
			continue
		}
		s := spec.Unwrap()
		out.Implemented = append(out.Implemented, id)

		for _, p := range expandPages(s) {
			if out.Pages.Add(p) {
				out.Owners[p] = id
			}
		}
		for _, c := range s.Components {
			out.Components.Add(c)
		}
		for _, d := range s.Dependencies {
			out.Dependencies.Add(d)
		}
		for _, b := range s.StyleBundles {
			out.StyleBundles.Add(b)
		}
	}
	return out
}

// expandPages returns the feature's declared pages plus any pages its
// functionality tag implies. Partial expansion of an implied set is a defect,
// so implied pages are appended even when the spec omits them.
func expandPages(s catalog.FeatureSpec) []catalog.PageID {
	pages := make([]catalog.PageID, 0, len(s.Pages))
	pages = append(pages, s.Pages...)
	implied, ok := impliedPages[s.Functionality]
	if !ok {
		return pages
	}
	declared := sets.New(pages...)
	for _, p := range implied {
		if !declared.Has(p) {
			pages = append(pages, p)
		}
	}
	return pages
}
