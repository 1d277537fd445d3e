package content

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
	"github.com/siteforge-dev/siteforge/internal/foundation"
	"github.com/siteforge-dev/siteforge/internal/project"
)

//go:embed industries/*.yaml
var industryAssets embed.FS

// sectionDoc is the YAML shape of one section. Exactly one variant key must
// be set; the loader rejects ambiguous entries.
type sectionDoc struct {
	Key          string          `yaml:"key"`
	Hero         *Hero           `yaml:"hero,omitempty"`
	List         *List           `yaml:"list,omitempty"`
	Testimonials *TestimonialSet `yaml:"testimonials,omitempty"`
	Contact      *ContactInfo    `yaml:"contact,omitempty"`
	Text         *FreeText       `yaml:"text,omitempty"`
}

type industryDoc struct {
	Pages map[string][]sectionDoc `yaml:"pages"`
}

// IndustryProvider serves hard-coded per-industry default bundles loaded from
// embedded YAML assets. The copy lives in data files, not code, so wording
// changes never touch engine logic.
type IndustryProvider struct {
	docs map[string]industryDoc
}

// NewIndustryProvider parses every embedded industry asset. Malformed assets
// are a packaging defect and fail construction.
func NewIndustryProvider() (*IndustryProvider, error) {
	p := &IndustryProvider{docs: make(map[string]industryDoc)}
	entries, err := fs.Glob(industryAssets, "industries/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob industry assets: %w", err)
	}
	for _, name := range entries {
		data, err := industryAssets.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read industry asset %s: %w", name, err)
		}
		var doc industryDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse industry asset %s: %w", name, err)
		}
		key := strings.TrimSuffix(path.Base(name), ".yaml")
		if err := validateDoc(key, doc); err != nil {
			return nil, err
		}
		p.docs[key] = doc
	}
	return p, nil
}

func validateDoc(industry string, doc industryDoc) error {
	for page, sections := range doc.Pages {
		for i, s := range sections {
			if s.Key == "" {
				return fmt.Errorf("industry %s page %s: section %d has no key", industry, page, i)
			}
			if variantCount(s) != 1 {
				return fmt.Errorf("industry %s page %s section %s: exactly one content variant required", industry, page, s.Key)
			}
		}
	}
	return nil
}

func variantCount(s sectionDoc) int {
	n := 0
	if s.Hero != nil {
		n++
	}
	if s.List != nil {
		n++
	}
	if s.Testimonials != nil {
		n++
	}
	if s.Contact != nil {
		n++
	}
	if s.Text != nil {
		n++
	}
	return n
}

// Industries returns the loaded industry keys in sorted order.
func (p *IndustryProvider) Industries() []string {
	keys := make([]string, 0, len(p.docs))
	for k := range p.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *IndustryProvider) Name() string { return "industry-defaults" }

// Resolve returns the industry's default bundle for the page, with business
// metadata substituted into the copy. Pages the industry has no defaults for
// are Unavailable and fall through to the placeholder.
func (p *IndustryProvider) Resolve(_ context.Context, page catalog.PageID, pctx *project.Context) foundation.Result[*Bundle, error] {
	doc, ok := p.docs[pctx.Industry]
	if !ok {
		return foundation.Err[*Bundle](fmt.Errorf("%w: no defaults for industry %q", ErrUnavailable, pctx.Industry))
	}
	sections, ok := doc.Pages[string(page)]
	if !ok {
		return foundation.Err[*Bundle](fmt.Errorf("%w: industry %q has no defaults for page %q", ErrUnavailable, pctx.Industry, page))
	}
	bundle := &Bundle{PageID: page, Sections: make([]Section, 0, len(sections))}
	for _, s := range sections {
		bundle.Sections = append(bundle.Sections, personalize(toSection(s), pctx.Business))
	}
	return foundation.Ok[*Bundle, error](bundle)
}

func toSection(d sectionDoc) Section {
	s := Section{Key: d.Key}
	switch {
	case d.Hero != nil:
		s.Content = SectionContent{Kind: KindHero, Hero: d.Hero}
	case d.List != nil:
		s.Content = SectionContent{Kind: KindList, List: d.List}
	case d.Testimonials != nil:
		s.Content = SectionContent{Kind: KindTestimonials, Testimonials: d.Testimonials}
	case d.Contact != nil:
		s.Content = SectionContent{Kind: KindContactInfo, Contact: d.Contact}
	case d.Text != nil:
		s.Content = SectionContent{Kind: KindFreeText, Text: d.Text}
	}
	return s
}

// personalize substitutes {{business}} and {{tagline}} markers in the asset
// copy and overlays contact details from the business metadata. Copies are
// taken so the cached asset data stays pristine across runs.
func personalize(s Section, biz config.BusinessConfig) Section {
	sub := func(text string) string {
		text = strings.ReplaceAll(text, "{{business}}", biz.Name)
		return strings.ReplaceAll(text, "{{tagline}}", biz.Tagline)
	}
	switch s.Content.Kind {
	case KindHero:
		h := *s.Content.Hero
		h.Title = sub(h.Title)
		h.Subtitle = sub(h.Subtitle)
		s.Content.Hero = &h
	case KindList:
		l := *s.Content.List
		l.Title = sub(l.Title)
		items := make([]ListItem, len(l.Items))
		for i, it := range l.Items {
			it.Description = sub(it.Description)
			items[i] = it
		}
		l.Items = items
		s.Content.List = &l
	case KindTestimonials:
		ts := *s.Content.Testimonials
		ts.Title = sub(ts.Title)
		quotes := make([]Quote, len(ts.Quotes))
		for i, q := range ts.Quotes {
			q.Text = sub(q.Text)
			quotes[i] = q
		}
		ts.Quotes = quotes
		s.Content.Testimonials = &ts
	case KindContactInfo:
		c := *s.Content.Contact
		if biz.Phone != "" {
			c.Phone = biz.Phone
		}
		if biz.Email != "" {
			c.Email = biz.Email
		}
		if biz.Address != "" {
			c.Address = biz.Address
		}
		s.Content.Contact = &c
	case KindFreeText:
		t := *s.Content.Text
		t.Title = sub(t.Title)
		t.Markdown = sub(t.Markdown)
		s.Content.Text = &t
	}
	return s
}
