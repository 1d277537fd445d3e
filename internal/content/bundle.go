// Package content resolves the per-page structured copy a renderer consumes.
// Bundles are framework-independent; renderers own all syntax.
package content

import (
	"fmt"

	"github.com/siteforge-dev/siteforge/internal/catalog"
)

// SectionKind discriminates the SectionContent union.
type SectionKind string

const (
	KindHero         SectionKind = "hero"
	KindList         SectionKind = "list"
	KindTestimonials SectionKind = "testimonialSet"
	KindContactInfo  SectionKind = "contactInfo"
	KindFreeText     SectionKind = "freeText"
)

// Hero is a page's lead banner.
type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	CTALabel string `yaml:"cta_label,omitempty"`
	CTARoute string `yaml:"cta_route,omitempty"`
}

// ListItem is one entry of a List section.
type ListItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Price       string `yaml:"price,omitempty"`
}

// List is a titled collection (services, menu items, packages).
type List struct {
	Title string     `yaml:"title"`
	Items []ListItem `yaml:"items"`
}

// Quote is a single testimonial.
type Quote struct {
	Author string `yaml:"author"`
	Text   string `yaml:"text"`
}

// TestimonialSet is a titled group of quotes.
type TestimonialSet struct {
	Title  string  `yaml:"title"`
	Quotes []Quote `yaml:"quotes"`
}

// ContactInfo carries the business contact block.
type ContactInfo struct {
	Phone   string `yaml:"phone,omitempty"`
	Email   string `yaml:"email,omitempty"`
	Address string `yaml:"address,omitempty"`
	Hours   string `yaml:"hours,omitempty"`
}

// FreeText is a titled markdown body. Renderers convert the markdown to HTML.
type FreeText struct {
	Title    string `yaml:"title,omitempty"`
	Markdown string `yaml:"markdown"`
}

// SectionContent is a tagged union; exactly one variant is non-nil and Kind
// names it.
type SectionContent struct {
	Kind         SectionKind
	Hero         *Hero
	List         *List
	Testimonials *TestimonialSet
	Contact      *ContactInfo
	Text         *FreeText
}

// Section pairs a stable key with its content.
type Section struct {
	Key     string
	Content SectionContent
}

// Bundle is the resolved content for one page. Sections keep resolution
// order; renderers must emit them in this order, each exactly once. Bundles
// are read-only after creation.
type Bundle struct {
	PageID   catalog.PageID
	Sections []Section
}

// Keys returns the section keys in order.
func (b *Bundle) Keys() []string {
	keys := make([]string, len(b.Sections))
	for i, s := range b.Sections {
		keys[i] = s.Key
	}
	return keys
}

// Validate checks the structural contract renderers rely on: at least one
// section, every section keyed, keys unique, and each content union carrying
// exactly one variant named by Kind. Embedded assets are checked at load
// time; collaborator-returned bundles must pass the same rules before the
// chain accepts them, otherwise a malformed section would silently render to
// nothing.
func (b *Bundle) Validate() error {
	if b == nil || len(b.Sections) == 0 {
		return fmt.Errorf("bundle has no sections")
	}
	seen := make(map[string]bool, len(b.Sections))
	for i, s := range b.Sections {
		if s.Key == "" {
			return fmt.Errorf("section %d has no key", i)
		}
		if seen[s.Key] {
			return fmt.Errorf("duplicate section key %q", s.Key)
		}
		seen[s.Key] = true
		if err := s.Content.validate(); err != nil {
			return fmt.Errorf("section %q: %w", s.Key, err)
		}
	}
	return nil
}

func (c SectionContent) validate() error {
	var set []SectionKind
	for _, v := range []struct {
		kind    SectionKind
		present bool
	}{
		{KindHero, c.Hero != nil},
		{KindList, c.List != nil},
		{KindTestimonials, c.Testimonials != nil},
		{KindContactInfo, c.Contact != nil},
		{KindFreeText, c.Text != nil},
	} {
		if v.present {
			set = append(set, v.kind)
		}
	}
	if len(set) != 1 {
		return fmt.Errorf("exactly one content variant required, got %d", len(set))
	}
	if c.Kind != set[0] {
		return fmt.Errorf("kind %q does not name the %q variant", c.Kind, set[0])
	}
	return nil
}

// Section returns the section with the given key, if present.
func (b *Bundle) Section(key string) (Section, bool) {
	for _, s := range b.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}
