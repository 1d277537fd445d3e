package render

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/siteforge-dev/siteforge/internal/catalog"
)

//go:embed styles/*.css
var styleAssets embed.FS

// colorSchemes maps a configured scheme name to CSS custom property values
// injected into the base stylesheet.
var colorSchemes = map[string][2]string{
	"blue":   {"#1d4ed8", "#1e293b"},
	"green":  {"#15803d", "#1a2e1f"},
	"red":    {"#b91c1c", "#2d1a1a"},
	"purple": {"#7e22ce", "#241a2e"},
	"slate":  {"#334155", "#0f172a"},
}

// BaseCSS returns the shared base stylesheet with the color scheme's custom
// properties applied. Unknown schemes fall back to blue.
func BaseCSS(scheme string) string {
	colors, ok := colorSchemes[scheme]
	if !ok {
		colors = colorSchemes["blue"]
	}
	data, err := styleAssets.ReadFile("styles/base.css")
	if err != nil {
		// Embedded asset; absence is a packaging defect.
		panic(fmt.Sprintf("missing embedded base stylesheet: %v", err))
	}
	css := string(data)
	css = strings.ReplaceAll(css, "__PRIMARY__", colors[0])
	css = strings.ReplaceAll(css, "__ACCENT__", colors[1])
	return css
}

// StyleBundleCSS returns the stylesheet for a feature style bundle, or false
// when no asset ships for the id. Missing bundles degrade to a comment stub
// at the call site rather than failing generation.
func StyleBundleCSS(id catalog.StyleBundleID) (string, bool) {
	data, err := styleAssets.ReadFile("styles/" + string(id) + ".css")
	if err != nil {
		return "", false
	}
	return string(data), true
}

// ColorSchemes lists the known scheme names in sorted order.
func ColorSchemes() []string {
	names := make([]string, 0, len(colorSchemes))
	for name := range colorSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrimaryColor returns the scheme's primary hex color, used by the PWA
// manifest theme color.
func PrimaryColor(scheme string) string {
	colors, ok := colorSchemes[scheme]
	if !ok {
		colors = colorSchemes["blue"]
	}
	return colors[0]
}
