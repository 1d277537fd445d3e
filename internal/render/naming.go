package render

import (
	"strings"

	"github.com/siteforge-dev/siteforge/internal/catalog"
)

// PascalCase converts a kebab-case page id into a component-friendly name:
// "blog-post" becomes "BlogPost".
func PascalCase(id string) string {
	parts := strings.Split(id, "-")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// PageComponentName names the page component for a page id ("home" → "Home").
func PageComponentName(page catalog.PageID) string {
	return PascalCase(string(page))
}

// NavLabel produces a human navigation label: "menu" → "Menu", "blog-post" → "Blog Post".
func NavLabel(page catalog.PageID) string {
	parts := strings.Split(string(page), "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
