package content

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/foundation"
	"github.com/siteforge-dev/siteforge/internal/project"
)

var titleCaser = cases.Title(language.English)

// PlaceholderProvider is the chain terminator: it synthesizes a minimal
// bundle for any page and never fails. Its presence is what makes the
// "resolution always produces a result" guarantee hold.
type PlaceholderProvider struct{}

// NewPlaceholderProvider builds the terminator provider.
func NewPlaceholderProvider() *PlaceholderProvider { return &PlaceholderProvider{} }

func (p *PlaceholderProvider) Name() string { return "placeholder" }

func (p *PlaceholderProvider) Resolve(_ context.Context, page catalog.PageID, pctx *project.Context) foundation.Result[*Bundle, error] {
	title := TitleFromPageID(page)
	bundle := &Bundle{
		PageID: page,
		Sections: []Section{
			{
				Key: "hero",
				Content: SectionContent{Kind: KindHero, Hero: &Hero{
					Title:    title,
					Subtitle: fmt.Sprintf("%s — %s", pctx.BusinessName, title),
				}},
			},
			{
				Key: "body",
				Content: SectionContent{Kind: KindFreeText, Text: &FreeText{
					Markdown: fmt.Sprintf("Welcome to the %s page of %s.", strings.ToLower(title), pctx.BusinessName),
				}},
			},
		},
	}
	return foundation.Ok[*Bundle, error](bundle)
}

// TitleFromPageID turns a page id into display copy: "menu" becomes "Menu",
// "contact-form" becomes "Contact Form".
func TitleFromPageID(page catalog.PageID) string {
	return titleCaser.String(strings.ReplaceAll(string(page), "-", " "))
}
