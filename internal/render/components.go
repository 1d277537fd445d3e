package render

import (
	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/project"
)

// pagePlacements maps a page to the components its owning feature embeds on
// it. A page only shows up in a resolved set when its owner was selected, so
// these placements never reference a component missing from the set.
var pagePlacements = map[catalog.PageID][]catalog.ComponentID{
	"contact":  {"ContactForm"},
	"gallery":  {"GalleryGrid", "Lightbox"},
	"login":    {"AuthForm"},
	"register": {"AuthForm"},
	"booking":  {"BookingForm"},
	"reviews":  {"ReviewCard", "ReviewForm"},
	"menu":     {"MenuSection"},
	"blog":     {"PostCard"},
	"shop":     {"ProductCard"},
	"cart":     {"CartSummary"},
	"checkout": {"CartSummary"},
}

// crossPlacements adds components contributed to a page by a feature other
// than the page's owner, gated on that feature being selected.
var crossPlacements = []struct {
	page      catalog.PageID
	feature   catalog.FeatureID
	component catalog.ComponentID
}{
	{"home", "testimonials", "TestimonialCarousel"},
	{"contact", "location-map", "MapEmbed"},
}

// PlacedComponents returns the feature components embedded on a page, in a
// fixed order. Pageless features (newsletter, social links) are placed in the
// shared footer instead; see FooterComponents.
func PlacedComponents(page catalog.PageID, pctx *project.Context) []catalog.ComponentID {
	var out []catalog.ComponentID
	out = append(out, pagePlacements[page]...)
	for _, cp := range crossPlacements {
		if cp.page == page && pctx.SelectedFeatures.Has(cp.feature) {
			out = append(out, cp.component)
		}
	}
	return out
}

// FooterComponents returns the components rendered in the shared footer for
// the selected pageless features.
func FooterComponents(pctx *project.Context) []catalog.ComponentID {
	var out []catalog.ComponentID
	if pctx.SelectedFeatures.Has("newsletter") {
		out = append(out, "NewsletterSignup")
	}
	if pctx.SelectedFeatures.Has("social-links") {
		out = append(out, "SocialBar")
	}
	return out
}

// KnownPages lists every page id the built-in renderers carry a bespoke
// template for. Pages outside this set take the generic fallback.
func KnownPages() map[catalog.PageID]struct{} {
	pages := []catalog.PageID{
		"home", "about", "services",
		"contact", "gallery", "login", "register", "profile",
		"booking", "reviews", "menu", "blog",
		"shop", "cart", "checkout",
	}
	known := make(map[catalog.PageID]struct{}, len(pages))
	for _, p := range pages {
		known[p] = struct{}{}
	}
	return known
}
