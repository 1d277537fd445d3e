package content

import (
	"context"
	"errors"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/foundation"
	"github.com/siteforge-dev/siteforge/internal/project"
)

// ErrUnavailable marks a provider that could not produce a bundle for a page.
// It is an ordinary chain outcome, not a failure of the run.
var ErrUnavailable = errors.New("content unavailable")

// Provider is one strategy in the content fallback chain. Providers return a
// tagged Result rather than driving control flow through errors: Unavailable
// simply hands the page to the next strategy.
type Provider interface {
	Name() string
	Resolve(ctx context.Context, page catalog.PageID, pctx *project.Context) foundation.Result[*Bundle, error]
}
