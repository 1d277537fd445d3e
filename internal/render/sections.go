package render

import (
	"fmt"
	"strings"

	"github.com/siteforge-dev/siteforge/internal/content"
)

// MarkupOptions captures the small dialect differences between framework
// templates. Everything else about section markup is shared, which is what
// guarantees renderer parity: every framework runs the same walker.
type MarkupOptions struct {
	// ClassAttr is the attribute used for CSS classes ("class", "className").
	ClassAttr string
	// Indent prefixes every markup line, matching the host template's depth.
	Indent string
}

// SectionHTML renders one section to markup. Each section is wrapped in a
// <section> tag carrying a stable data-section key, so tests (and humans)
// can verify that every bundle section appears exactly once and in order.
func SectionHTML(sec content.Section, opts MarkupOptions) string {
	var b strings.Builder
	w := func(format string, args ...any) {
		b.WriteString(opts.Indent)
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\n")
	}
	cls := opts.ClassAttr
	if cls == "" {
		cls = "class"
	}

	c := sec.Content
	switch c.Kind {
	case content.KindHero:
		w(`<section %s="hero" data-section=%q>`, cls, sec.Key)
		w(`  <h1>%s</h1>`, escapeHTML(c.Hero.Title))
		if c.Hero.Subtitle != "" {
			w(`  <p %s="hero-subtitle">%s</p>`, cls, escapeHTML(c.Hero.Subtitle))
		}
		if c.Hero.CTALabel != "" {
			w(`  <a %s="hero-cta" href=%q>%s</a>`, cls, c.Hero.CTARoute, escapeHTML(c.Hero.CTALabel))
		}
		w(`</section>`)
	case content.KindList:
		w(`<section %s="content-list" data-section=%q>`, cls, sec.Key)
		w(`  <h2>%s</h2>`, escapeHTML(c.List.Title))
		w(`  <ul %s="item-list">`, cls)
		for _, item := range c.List.Items {
			w(`    <li %s="item">`, cls)
			w(`      <span %s="item-name">%s</span>`, cls, escapeHTML(item.Name))
			if item.Description != "" {
				w(`      <span %s="item-description">%s</span>`, cls, escapeHTML(item.Description))
			}
			if item.Price != "" {
				w(`      <span %s="item-price">%s</span>`, cls, escapeHTML(item.Price))
			}
			w(`    </li>`)
		}
		w(`  </ul>`)
		w(`</section>`)
	case content.KindTestimonials:
		w(`<section %s="testimonials" data-section=%q>`, cls, sec.Key)
		w(`  <h2>%s</h2>`, escapeHTML(c.Testimonials.Title))
		for _, q := range c.Testimonials.Quotes {
			w(`  <blockquote %s="testimonial">`, cls)
			w(`    <p>%s</p>`, escapeHTML(q.Text))
			w(`    <footer>%s</footer>`, escapeHTML(q.Author))
			w(`  </blockquote>`)
		}
		w(`</section>`)
	case content.KindContactInfo:
		w(`<section %s="contact-info" data-section=%q>`, cls, sec.Key)
		if c.Contact.Phone != "" {
			w(`  <p %s="contact-phone">%s</p>`, cls, escapeHTML(c.Contact.Phone))
		}
		if c.Contact.Email != "" {
			w(`  <p %s="contact-email">%s</p>`, cls, escapeHTML(c.Contact.Email))
		}
		if c.Contact.Address != "" {
			w(`  <p %s="contact-address">%s</p>`, cls, escapeHTML(c.Contact.Address))
		}
		if c.Contact.Hours != "" {
			w(`  <p %s="contact-hours">%s</p>`, cls, escapeHTML(c.Contact.Hours))
		}
		w(`</section>`)
	case content.KindFreeText:
		w(`<section %s="free-text" data-section=%q>`, cls, sec.Key)
		if c.Text.Title != "" {
			w(`  <h2>%s</h2>`, escapeHTML(c.Text.Title))
		}
		for _, line := range strings.Split(MarkdownHTML(c.Text.Markdown), "\n") {
			w(`  %s`, line)
		}
		w(`</section>`)
	}
	return strings.TrimRight(b.String(), "\n")
}

// BodyHTML renders every bundle section in order.
func BodyHTML(bundle *content.Bundle, opts MarkupOptions) string {
	parts := make([]string, 0, len(bundle.Sections))
	for _, sec := range bundle.Sections {
		parts = append(parts, SectionHTML(sec, opts))
	}
	return strings.Join(parts, "\n")
}

// GenericBody renders the minimal title/subtitle/body markup used by the
// generic page fallback: the first hero (or a synthesized one) followed by
// any free text.
func GenericBody(bundle *content.Bundle, opts MarkupOptions) string {
	var kept []content.Section
	for _, sec := range bundle.Sections {
		if sec.Content.Kind == content.KindHero || sec.Content.Kind == content.KindFreeText {
			kept = append(kept, sec)
		}
	}
	if len(kept) == 0 {
		kept = []content.Section{{
			Key: "hero",
			Content: content.SectionContent{Kind: content.KindHero, Hero: &content.Hero{
				Title: content.TitleFromPageID(bundle.PageID),
			}},
		}}
	}
	return BodyHTML(&content.Bundle{PageID: bundle.PageID, Sections: kept}, opts)
}
