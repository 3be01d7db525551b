package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/aegisready/readiness-roadmap/internal/domain"
	"github.com/aegisready/readiness-roadmap/internal/observability/logging"
	"github.com/aegisready/readiness-roadmap/internal/observability/tracing"
)

// Client talks to the external scoring backend over HTTP/JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) GetOrganizations(ctx context.Context) ([]domain.Organization, error) {
	var resp OrganizationsResponse
	if err := c.getJSON(ctx, "/api/v1/organizations", nil, &resp); err != nil {
		return nil, err
	}

	slog.Debug("fetched organizations from scoring backend",
		slog.Int("count", resp.Count),
	)

	return resp.Organizations, nil
}

func (c *Client) GetRubric(ctx context.Context) (*Rubric, error) {
	var rubric Rubric
	if err := c.getJSON(ctx, "/api/v1/rubric", nil, &rubric); err != nil {
		return nil, err
	}
	return &rubric, nil
}

func (c *Client) ComputeScore(ctx context.Context, orgID string) (*ScoreResult, error) {
	var result ScoreResult
	path := fmt.Sprintf("/api/v1/organizations/%s/score", url.PathEscape(orgID))
	if err := c.getJSON(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetRoadmap(ctx context.Context, orgID string) (*RoadmapResponse, error) {
	var resp RoadmapResponse
	path := fmt.Sprintf("/api/v1/organizations/%s/roadmap", url.PathEscape(orgID))
	if err := c.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	slog.Debug("fetched roadmap from scoring backend",
		slog.String("org_id", orgID),
		slog.Int("count", resp.Count),
	)

	return &resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("failed to send request to scoring backend",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("unexpected status code from scoring backend",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Error("failed to decode response from scoring backend",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
