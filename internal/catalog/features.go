package catalog

// Default returns the built-in feature catalog. Versions are pinned so two
// runs of the same configuration emit identical dependency manifests.
func Default() *Catalog {
	c, err := New(
		FeatureSpec{
			ID:            "contact-form",
			Pages:         []PageID{"contact"},
			Components:    []ComponentID{"ContactForm"},
			Dependencies:  []PackageRef{{Name: "@emailjs/browser", Version: "^4.4.1"}},
			StyleBundles:  []StyleBundleID{"forms"},
			Functionality: FunctionalityContact,
		},
		FeatureSpec{
			ID:            "gallery",
			Pages:         []PageID{"gallery"},
			Components:    []ComponentID{"GalleryGrid", "Lightbox"},
			Dependencies:  []PackageRef{{Name: "photoswipe", Version: "^5.4.4"}},
			StyleBundles:  []StyleBundleID{"gallery"},
			Functionality: FunctionalityStatic,
		},
		FeatureSpec{
			ID:            "auth",
			Pages:         []PageID{"login", "register", "profile"},
			Components:    []ComponentID{"AuthForm"},
			Dependencies:  []PackageRef{{Name: "firebase", Version: "^10.14.1"}},
			StyleBundles:  []StyleBundleID{"forms", "auth"},
			Functionality: FunctionalityAuth,
		},
		FeatureSpec{
			ID:            "booking",
			Pages:         []PageID{"booking"},
			Components:    []ComponentID{"BookingForm"},
			Dependencies:  []PackageRef{{Name: "flatpickr", Version: "^4.6.13"}},
			StyleBundles:  []StyleBundleID{"forms"},
			Functionality: FunctionalityBooking,
		},
		FeatureSpec{
			ID:            "reviews",
			Pages:         []PageID{"reviews"},
			Components:    []ComponentID{"ReviewCard", "ReviewForm"},
			StyleBundles:  []StyleBundleID{"reviews"},
			Functionality: FunctionalityStatic,
		},
		FeatureSpec{
			ID:            "menu-showcase",
			Pages:         []PageID{"menu"},
			Components:    []ComponentID{"MenuSection"},
			StyleBundles:  []StyleBundleID{"menu"},
			Functionality: FunctionalityStatic,
		},
		FeatureSpec{
			ID:            "blog",
			Pages:         []PageID{"blog"},
			Components:    []ComponentID{"PostCard"},
			StyleBundles:  []StyleBundleID{"blog"},
			Functionality: FunctionalityStatic,
		},
		FeatureSpec{
			ID:            "shop",
			Pages:         []PageID{"shop", "cart", "checkout"},
			Components:    []ComponentID{"ProductCard", "CartSummary"},
			Dependencies:  []PackageRef{{Name: "@stripe/stripe-js", Version: "^4.10.0"}},
			StyleBundles:  []StyleBundleID{"commerce"},
			Functionality: FunctionalityCommerce,
		},
		FeatureSpec{
			ID:            "newsletter",
			Components:    []ComponentID{"NewsletterSignup"},
			Dependencies:  []PackageRef{{Name: "@emailjs/browser", Version: "^4.4.1"}},
			StyleBundles:  []StyleBundleID{"forms"},
			Functionality: FunctionalityStatic,
		},
		FeatureSpec{
			ID:            "testimonials",
			Components:    []ComponentID{"TestimonialCarousel"},
			StyleBundles:  []StyleBundleID{"reviews"},
			Functionality: FunctionalityStatic,
		},
		FeatureSpec{
			ID:            "social-links",
			Components:    []ComponentID{"SocialBar"},
			Functionality: FunctionalityStatic,
		},
		FeatureSpec{
			ID:            "location-map",
			Components:    []ComponentID{"MapEmbed"},
			Dependencies:  []PackageRef{{Name: "leaflet", Version: "^1.9.4"}},
			Functionality: FunctionalityStatic,
		},
	)
	if err != nil {
		// The built-in catalog is a compile-time constant in all but syntax;
		// a duplicate id here is a programming error.
		panic(err)
	}
	return c
}
