package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"jobquest-utils/internal/config"
	"jobquest-utils/internal/logging"
	"jobquest-utils/pkg/models"
)

const remotiveName = "Remotive"

// RemotiveClient queries the Remotive remote-jobs API. It is
// unauthenticated and scoped to a fixed category; every listing it
// returns is a remote position, so location is ignored.
type RemotiveClient struct {
	cfg        *config.Config
	httpClient *http.Client
	limiter    *RateLimiter
}

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	Title            string `json:"title"`
	CompanyName      string `json:"company_name"`
	RequiredLocation string `json:"candidate_required_location"`
	Description      string `json:"description"`
	URL              string `json:"url"`
	PublicationDate  string `json:"publication_date"`
}

// NewRemotiveClient creates a Remotive provider client
func NewRemotiveClient(cfg *config.Config) *RemotiveClient {
	return &RemotiveClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Providers.Remotive.Timeout,
		},
		limiter: NewRateLimiter(cfg.Providers.Remotive.RateLimit),
	}
}

// Name returns the provider name used in result metadata
func (c *RemotiveClient) Name() string {
	return remotiveName
}

// Search issues one search request and normalizes the response
func (c *RemotiveClient) Search(ctx context.Context, query, _ string) ([]models.JobRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("remotive: rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("search", query)
	params.Set("category", c.cfg.Providers.Remotive.Category)

	reqURL := fmt.Sprintf("%s/remote-jobs?%s", c.cfg.Providers.Remotive.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("remotive: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remotive: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remotive: unexpected status %d", resp.StatusCode)
	}

	var payload remotiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("remotive: failed to decode response: %w", err)
	}

	jobs := make([]models.JobRecord, 0, len(payload.Jobs))
	for _, item := range payload.Jobs {
		jobs = append(jobs, c.normalize(item))
	}

	logging.Debug("remotive search completed", map[string]interface{}{
		"query": query,
		"jobs":  len(jobs),
	})

	return jobs, nil
}

// normalize maps a raw Remotive item onto the common job shape.
// Remotive does not expose salary data, and descriptions arrive as
// HTML fragments.
func (c *RemotiveClient) normalize(item remotiveJob) models.JobRecord {
	location := item.RequiredLocation
	if location == "" {
		location = models.RemoteType
	}

	return models.JobRecord{
		Title:       item.Title,
		Company:     item.CompanyName,
		Location:    location,
		Description: stripHTML(item.Description),
		URL:         item.URL,
		Salary:      models.NotSpecified,
		Source:      remotiveName,
		PostedDate:  item.PublicationDate,
		JobType:     models.RemoteType,
	}
}
