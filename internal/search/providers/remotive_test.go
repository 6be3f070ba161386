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

func remotiveConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Providers.Remotive.BaseURL = baseURL
	cfg.Providers.Remotive.Category = "software-dev"
	cfg.Providers.Remotive.RateLimit = 600
	return cfg
}

func TestRemotiveSearch(t *testing.T) {
	var gotSearch, gotCategory, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSearch = r.URL.Query().Get("search")
		gotCategory = r.URL.Query().Get("category")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"jobs": [
				{
					"title": "Remote Go Developer",
					"company_name": "Distributed Co",
					"candidate_required_location": "Worldwide",
					"description": "<p>Write <b>Go</b> services.</p>",
					"url": "https://remotive.io/job/1",
					"publication_date": "2026-01-15T10:00:00"
				},
				{
					"title": "Minimal Listing",
					"company_name": "Tiny"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewRemotiveClient(remotiveConfig(server.URL))

	jobs, err := client.Search(context.Background(), "go developer", "ignored")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "/remote-jobs", gotPath)
	assert.Equal(t, "go developer", gotSearch)
	assert.Equal(t, "software-dev", gotCategory)

	full := jobs[0]
	assert.Equal(t, "Remote Go Developer", full.Title)
	assert.Equal(t, "Distributed Co", full.Company)
	assert.Equal(t, "Worldwide", full.Location)
	assert.Equal(t, "Write Go services.", full.Description)
	assert.Equal(t, models.NotSpecified, full.Salary)
	assert.Equal(t, models.RemoteType, full.JobType)
	assert.Equal(t, "Remotive", full.Source)

	minimal := jobs[1]
	assert.Equal(t, models.RemoteType, minimal.Location)
	assert.Equal(t, models.NotSpecified, minimal.Salary)
}

func TestRemotiveUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewRemotiveClient(remotiveConfig(server.URL))

	_, err := client.Search(context.Background(), "go", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "no markup here", "no markup here"},
		{"tags removed", "<p>Hello <b>world</b></p>", "Hello world"},
		{"script dropped", "<div>keep</div><script>alert(1)</script>", "keep"},
		{"whitespace collapsed", "<p>a</p>\n\n<p>b</p>", "a b"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripHTML(tt.input))
		})
	}
}
