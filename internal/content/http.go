package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"

	"github.com/siteforge-dev/siteforge/internal/catalog"
	"github.com/siteforge-dev/siteforge/internal/config"
)

// HTTPCollaborator calls an external content-generation service over HTTP.
// The request carries the business metadata and page id as JSON; the service
// answers with a YAML section list in the same shape as the industry assets.
type HTTPCollaborator struct {
	endpoint string
	client   *http.Client
}

// NewHTTPCollaborator builds a collaborator for the endpoint. Timeouts are
// enforced by the AI provider's context, not the client.
func NewHTTPCollaborator(endpoint string) *HTTPCollaborator {
	return &HTTPCollaborator{endpoint: endpoint, client: &http.Client{}}
}

type generateRequest struct {
	Industry string                `json:"industry"`
	Business config.BusinessConfig `json:"business"`
	Page     string                `json:"page"`
}

type generateResponse struct {
	Sections []sectionDoc `yaml:"sections"`
}

func (c *HTTPCollaborator) GenerateContent(ctx context.Context, industry string, business config.BusinessConfig, page catalog.PageID) (*Bundle, error) {
	body, err := json.Marshal(generateRequest{Industry: industry, Business: business, Page: string(page)})
	if err != nil {
		return nil, fmt.Errorf("marshal generate request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/yaml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call content service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content service returned %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read content response: %w", err)
	}

	var parsed generateResponse
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode content response: %w", err)
	}
	bundle := &Bundle{PageID: page, Sections: make([]Section, 0, len(parsed.Sections))}
	for _, s := range parsed.Sections {
		bundle.Sections = append(bundle.Sections, toSection(s))
	}
	return bundle, nil
}
