package chat

import (
	"fmt"
	"strings"

	"jobquest-utils/pkg/models"
)

// FormatJobsForChat renders a search result as a chat-ready text block.
// At most limit jobs are included; zero or negative means no cap.
func FormatJobsForChat(result *models.SearchResult, limit int) string {
	if result == nil || len(result.Jobs) == 0 {
		return "I couldn't find any jobs matching your search. Try rephrasing or broadening your criteria."
	}

	jobs := result.Jobs
	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Found %d jobs matching your search. Here are the top %d:\n", result.TotalJobs, len(jobs))

	for i, job := range jobs {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d. %s\n", i+1, job.Title)
		fmt.Fprintf(&b, "   🏢 Company: %s\n", job.Company)
		fmt.Fprintf(&b, "   📍 Location: %s\n", job.Location)
		fmt.Fprintf(&b, "   💰 Salary: %s\n", job.Salary)
		if job.URL != "" {
			fmt.Fprintf(&b, "   🔗 Apply: %s\n", job.URL)
		}
		if job.PostedDate != "" {
			fmt.Fprintf(&b, "   📅 Posted: %s\n", job.PostedDate)
		}
		fmt.Fprintf(&b, "   🏷️ Type: %s\n", job.JobType)
	}

	return b.String()
}
