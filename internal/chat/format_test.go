package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobquest-utils/pkg/models"
)

func sampleResult(count int) *models.SearchResult {
	jobs := make([]models.JobRecord, 0, count)
	for i := 0; i < count; i++ {
		jobs = append(jobs, models.JobRecord{
			Title:      "Engineer " + string(rune('A'+i)),
			Company:    "Acme",
			Location:   "Remote",
			Salary:     "$100,000",
			URL:        "https://example.com/job",
			PostedDate: "2026-01-01",
			JobType:    "Full-time",
		})
	}
	return &models.SearchResult{
		Status:    models.StatusSuccess,
		TotalJobs: count,
		Jobs:      jobs,
	}
}

func TestFormatJobsForChatEmpty(t *testing.T) {
	text := FormatJobsForChat(&models.SearchResult{Status: models.StatusSuccess}, 3)
	assert.Contains(t, text, "couldn't find any jobs")

	assert.Contains(t, FormatJobsForChat(nil, 3), "couldn't find any jobs")
}

func TestFormatJobsForChatFields(t *testing.T) {
	text := FormatJobsForChat(sampleResult(1), 3)

	assert.Contains(t, text, "Engineer A")
	assert.Contains(t, text, "🏢 Company: Acme")
	assert.Contains(t, text, "📍 Location: Remote")
	assert.Contains(t, text, "💰 Salary: $100,000")
	assert.Contains(t, text, "🔗 Apply: https://example.com/job")
	assert.Contains(t, text, "📅 Posted: 2026-01-01")
	assert.Contains(t, text, "🏷️ Type: Full-time")
}

func TestFormatJobsForChatLimit(t *testing.T) {
	text := FormatJobsForChat(sampleResult(5), 3)

	assert.Contains(t, text, "Found 5 jobs")
	assert.Contains(t, text, "top 3")
	assert.True(t, strings.Contains(text, "3. "))
	assert.False(t, strings.Contains(text, "4. "))
}

func TestFormatJobsForChatNoLimit(t *testing.T) {
	text := FormatJobsForChat(sampleResult(5), 0)

	assert.True(t, strings.Contains(text, "5. "))
}
