package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"jobquest-utils/internal/config"
	"jobquest-utils/internal/logging"
	"jobquest-utils/pkg/models"
)

const jsearchName = "JSearch"

// JSearchClient queries the JSearch aggregator on RapidAPI. It is the
// broad-coverage provider and the only one that takes a location.
type JSearchClient struct {
	cfg        *config.Config
	httpClient *http.Client
	limiter    *RateLimiter
}

type jsearchResponse struct {
	Status string       `json:"status"`
	Data   []jsearchJob `json:"data"`
}

type jsearchJob struct {
	JobTitle          string `json:"job_title"`
	EmployerName      string `json:"employer_name"`
	JobCity           string `json:"job_city"`
	JobDescription    string `json:"job_description"`
	JobApplyLink      string `json:"job_apply_link"`
	JobSalary         string `json:"job_salary"`
	JobPostedAt       string `json:"job_posted_at_datetime"`
	JobEmploymentType string `json:"job_employment_type"`
}

// NewJSearchClient creates a JSearch provider client
func NewJSearchClient(cfg *config.Config) *JSearchClient {
	return &JSearchClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Providers.JSearch.Timeout,
		},
		limiter: NewRateLimiter(cfg.Providers.JSearch.RateLimit),
	}
}

// Name returns the provider name used in result metadata
func (c *JSearchClient) Name() string {
	return jsearchName
}

// Search issues one search request and normalizes the response.
// The query and location are combined into a single "query, location"
// search term, which is how the upstream API expects them.
func (c *JSearchClient) Search(ctx context.Context, query, location string) ([]models.JobRecord, error) {
	if c.cfg.Providers.JSearch.APIKey == "" {
		return nil, fmt.Errorf("jsearch: api key not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("jsearch: rate limiter: %w", err)
	}

	searchTerm := query
	if location != "" {
		searchTerm = fmt.Sprintf("%s, %s", query, location)
	}

	params := url.Values{}
	params.Set("query", searchTerm)
	params.Set("num_pages", strconv.Itoa(c.cfg.Providers.JSearch.NumPages))

	reqURL := fmt.Sprintf("%s/search?%s", c.cfg.Providers.JSearch.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch: failed to create request: %w", err)
	}

	req.Header.Set("X-RapidAPI-Key", c.cfg.Providers.JSearch.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.Providers.JSearch.APIHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jsearch: unexpected status %d", resp.StatusCode)
	}

	var payload jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("jsearch: failed to decode response: %w", err)
	}

	jobs := make([]models.JobRecord, 0, len(payload.Data))
	for _, item := range payload.Data {
		jobs = append(jobs, c.normalize(item))
	}

	logging.Debug("jsearch search completed", map[string]interface{}{
		"query": searchTerm,
		"jobs":  len(jobs),
	})

	return jobs, nil
}

// normalize maps a raw JSearch item onto the common job shape
func (c *JSearchClient) normalize(item jsearchJob) models.JobRecord {
	salary := item.JobSalary
	if salary == "" {
		salary = models.NotSpecified
	}

	jobType := item.JobEmploymentType
	if jobType == "" {
		jobType = models.NotSpecified
	}

	location := item.JobCity
	if location == "" {
		location = models.NotSpecified
	}

	return models.JobRecord{
		Title:       item.JobTitle,
		Company:     item.EmployerName,
		Location:    location,
		Description: item.JobDescription,
		URL:         item.JobApplyLink,
		Salary:      salary,
		Source:      jsearchName,
		PostedDate:  item.JobPostedAt,
		JobType:     jobType,
	}
}
