package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/logfields"
	"github.com/siteforge-dev/siteforge/internal/project"
)

// Warning records a chain strategy that was tried and found unavailable.
type Warning struct {
	Page     catalog.PageID
	Provider string
	Err      error
}

func (w Warning) String() string {
	return fmt.Sprintf("content for %s: provider %s unavailable: %v", w.Page, w.Provider, w.Err)
}

// Resolver walks an ordered provider chain until one strategy yields a
// bundle. Construction requires a terminating provider that cannot fail, so
// ResolveContent always returns a bundle.
type Resolver struct {
	providers []Provider
}

// NewResolver builds a resolver over the given chain, tried in order.
func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// NewDefaultResolver wires the standard chain: AI collaborator (may be nil)
// then industry defaults then the generic placeholder.
func NewDefaultResolver(collaborator Collaborator, aiTimeout time.Duration) (*Resolver, error) {
	industry, err := NewIndustryProvider()
	if err != nil {
		return nil, err
	}
	return NewResolver(
		NewAIProvider(collaborator, aiTimeout),
		industry,
		NewPlaceholderProvider(),
	), nil
}

// ProviderNames returns the chain's provider names in resolution order.
func (r *Resolver) ProviderNames() []string {
	names := make([]string, len(r.providers))
	for i, p := range r.providers {
		names[i] = p.Name()
	}
	return names
}

// ResolveContent resolves a bundle for the page. Unavailable providers are
// recorded as warnings, never surfaced as errors; if every provider declines
// (a misconfigured chain without a terminator) a last-resort placeholder is
// synthesized so the contract still holds.
func (r *Resolver) ResolveContent(ctx context.Context, page catalog.PageID, pctx *project.Context) (*Bundle, []Warning) {
	var warnings []Warning
	for _, p := range r.providers {
		res := p.Resolve(ctx, page, pctx)
		if res.IsOk() {
			bundle := res.Unwrap()
			slog.Debug("Content resolved",
				logfields.Page(string(page)),
				logfields.Provider(p.Name()),
				logfields.Count(len(bundle.Sections)))
			return bundle, warnings
		}
		warnings = append(warnings, Warning{Page: page, Provider: p.Name(), Err: res.UnwrapErr()})
		slog.Warn("Content provider unavailable, falling back",
			logfields.Page(string(page)),
			logfields.Provider(p.Name()),
			logfields.Error(res.UnwrapErr()))
	}
	// Chain exhausted; synthesize the terminator output directly.
	bundle := NewPlaceholderProvider().Resolve(ctx, page, pctx).Unwrap()
	return bundle, warnings
}
