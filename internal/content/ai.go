package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
	"github.com/siteforge-dev/siteforge/internal/foundation"
	"github.com/siteforge-dev/siteforge/internal/logfields"
	"github.com/siteforge-dev/siteforge/internal/project"
)

// Collaborator is the external AI content-generation service. Implementations
// live outside this module; the resolver only ever sees this contract, and
// any error or timeout from it is caught at the call site.
type Collaborator interface {
	GenerateContent(ctx context.Context, industry string, business config.BusinessConfig, page catalog.PageID) (*Bundle, error)
}

// aiProvider wraps a Collaborator as the first chain strategy. A per-call
// timeout bounds the collaborator; expiry is an Unavailable outcome.
type aiProvider struct {
	collaborator Collaborator
	timeout      time.Duration
}

// NewAIProvider builds the collaborator-backed provider. A nil collaborator
// yields a provider that is always unavailable, which keeps chain wiring
// uniform when no AI endpoint is configured.
func NewAIProvider(c Collaborator, timeout time.Duration) Provider {
	return &aiProvider{collaborator: c, timeout: timeout}
}

func (p *aiProvider) Name() string { return "ai" }

func (p *aiProvider) Resolve(ctx context.Context, page catalog.PageID, pctx *project.Context) foundation.Result[*Bundle, error] {
	if p.collaborator == nil {
		return foundation.Err[*Bundle](fmt.Errorf("%w: no collaborator configured", ErrUnavailable))
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	bundle, err := p.generate(ctx, page, pctx)
	if err != nil {
		return foundation.Err[*Bundle](fmt.Errorf("%w: %v", ErrUnavailable, err))
	}
	if err := bundle.Validate(); err != nil {
		return foundation.Err[*Bundle](fmt.Errorf("%w: collaborator bundle rejected: %v", ErrUnavailable, err))
	}
	bundle.PageID = page
	return foundation.Ok[*Bundle, error](bundle)
}

// generate isolates the collaborator call so a panicking implementation
// degrades to a fallback instead of killing the run.
func (p *aiProvider) generate(ctx context.Context, page catalog.PageID, pctx *project.Context) (bundle *Bundle, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("Content collaborator panicked", logfields.Page(string(page)), "panic", r)
			bundle, err = nil, fmt.Errorf("collaborator panic: %v", r)
		}
	}()
	return p.collaborator.GenerateContent(ctx, pctx.Industry, pctx.Business, page)
}
