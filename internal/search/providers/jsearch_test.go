package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest-utils/internal/config"
	"jobquest-utils/pkg/models"
)

func jsearchConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Providers.JSearch.BaseURL = baseURL
	cfg.Providers.JSearch.APIKey = "test-key"
	cfg.Providers.JSearch.APIHost = "jsearch.p.rapidapi.com"
	cfg.Providers.JSearch.NumPages = 1
	cfg.Providers.JSearch.RateLimit = 600
	return cfg
}

func TestJSearchSearch(t *testing.T) {
	var gotQuery, gotPages, gotKey, gotHost string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotPages = r.URL.Query().Get("num_pages")
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"data": [
				{
					"job_title": "Backend Engineer",
					"employer_name": "Acme",
					"job_city": "Berlin",
					"job_description": "Build things",
					"job_apply_link": "https://example.com/apply",
					"job_salary": "$90,000",
					"job_posted_at_datetime": "2026-02-01T00:00:00Z",
					"job_employment_type": "Full-time"
				},
				{
					"job_title": "Sparse Listing",
					"employer_name": "NoFields Inc"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewJSearchClient(jsearchConfig(server.URL))

	jobs, err := client.Search(context.Background(), "golang developer", "Berlin")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "golang developer, Berlin", gotQuery)
	assert.Equal(t, "1", gotPages)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "jsearch.p.rapidapi.com", gotHost)

	full := jobs[0]
	assert.Equal(t, "Backend Engineer", full.Title)
	assert.Equal(t, "Acme", full.Company)
	assert.Equal(t, "Berlin", full.Location)
	assert.Equal(t, "$90,000", full.Salary)
	assert.Equal(t, "JSearch", full.Source)
	assert.Equal(t, "Full-time", full.JobType)

	sparse := jobs[1]
	assert.Equal(t, models.NotSpecified, sparse.Salary)
	assert.Equal(t, models.NotSpecified, sparse.JobType)
	assert.Equal(t, models.NotSpecified, sparse.Location)
	assert.Empty(t, sparse.PostedDate)
}

func TestJSearchMissingAPIKey(t *testing.T) {
	cfg := jsearchConfig("http://localhost:0")
	cfg.Providers.JSearch.APIKey = ""

	client := NewJSearchClient(cfg)

	_, err := client.Search(context.Background(), "golang", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestJSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewJSearchClient(jsearchConfig(server.URL))

	_, err := client.Search(context.Background(), "golang", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestJSearchMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewJSearchClient(jsearchConfig(server.URL))

	_, err := client.Search(context.Background(), "golang", "")
	assert.Error(t, err)
}
