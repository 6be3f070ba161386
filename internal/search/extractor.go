package search

import (
	"regexp"
	"strings"

	"jobquest-utils/pkg/models"
)

// Regex patterns for pulling search parameters out of free-form chat text.
// Matching happens against the lower-cased concatenation of the user's
// messages, so the patterns themselves are lower case.
var (
	titlePattern      = regexp.MustCompile(`(job|position|role|looking for|hiring)\s+(?:a\s+)?([^,.]+)`)
	locationPattern   = regexp.MustCompile(`(in|at|near|around)\s+([^,.]+)`)
	salaryPattern     = regexp.MustCompile(`(\$[\d,]+(?:\s*-\s*\$[\d,]+)?|\d+k(?:\s*-\s*\d+k)?)`)
	experiencePattern = regexp.MustCompile(`(\d+(?:\+|\s*-\s*\d+)?\s*(?:years?|yrs?)(?:\s+of)?\s+experience)`)
	typePattern       = regexp.MustCompile(`(full[- ]time|part[- ]time|contract|permanent|remote|hybrid)`)
)

// Extractor derives structured search parameters from conversation history.
type Extractor struct {
	baseLocation string
}

// NewExtractor creates an extractor with the given fallback location,
// used when no location is mentioned in the conversation.
func NewExtractor(baseLocation string) *Extractor {
	if baseLocation == "" {
		baseLocation = "Remote"
	}
	return &Extractor{baseLocation: baseLocation}
}

// Extract scans the user's side of the conversation and returns the
// search parameters it finds. Only messages sent by the user are
// considered; agent replies quoting job listings would otherwise feed
// back into the next extraction.
func (e *Extractor) Extract(history []models.ConversationMessage) models.SearchParams {
	var parts []string
	for _, msg := range history {
		if msg.Sender == models.SenderUser {
			parts = append(parts, msg.Text)
		}
	}
	text := strings.ToLower(strings.Join(parts, " "))

	params := models.SearchParams{
		Location: e.baseLocation,
	}

	if m := titlePattern.FindStringSubmatch(text); m != nil {
		params.Title = strings.TrimSpace(m[2])
	}

	if m := locationPattern.FindStringSubmatch(text); m != nil {
		params.Location = strings.TrimSpace(m[2])
	}

	if m := salaryPattern.FindStringSubmatch(text); m != nil {
		params.Salary = strings.TrimSpace(m[1])
	}

	if m := experiencePattern.FindStringSubmatch(text); m != nil {
		params.Experience = strings.TrimSpace(m[1])
	}

	if m := typePattern.FindStringSubmatch(text); m != nil {
		params.Type = strings.TrimSpace(m[1])
	}

	return params
}
