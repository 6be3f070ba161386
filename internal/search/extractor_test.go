package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobquest-utils/pkg/models"
)

func userMessage(text string) models.ConversationMessage {
	return models.ConversationMessage{Text: text, Sender: models.SenderUser}
}

func agentMessage(text string) models.ConversationMessage {
	return models.ConversationMessage{Text: text, Sender: models.SenderAgent}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		history  []models.ConversationMessage
		expected models.SearchParams
	}{
		{
			name:    "empty history returns defaults",
			history: nil,
			expected: models.SearchParams{
				Location: "Remote",
			},
		},
		{
			name: "title after looking for",
			history: []models.ConversationMessage{
				userMessage("I'm looking for a backend engineer, ideally soon"),
			},
			expected: models.SearchParams{
				Title:    "backend engineer",
				Location: "Remote",
			},
		},
		{
			name: "location after preposition",
			history: []models.ConversationMessage{
				userMessage("any openings in berlin, germany?"),
			},
			expected: models.SearchParams{
				Location: "berlin",
			},
		},
		{
			name: "salary and experience",
			history: []models.ConversationMessage{
				userMessage("something paying $80,000 - $100,000 and I have 5+ years of experience"),
			},
			expected: models.SearchParams{
				Location:   "Remote",
				Salary:     "$80,000 - $100,000",
				Experience: "5+ years of experience",
			},
		},
		{
			name: "k shorthand salary",
			history: []models.ConversationMessage{
				userMessage("budget is 90k, contract work preferred"),
			},
			expected: models.SearchParams{
				Location: "Remote",
				Salary:   "90k",
				Type:     "contract",
			},
		},
		{
			name: "parameters accumulate across messages",
			history: []models.ConversationMessage{
				userMessage("I need a new position"),
				agentMessage("Sure, what kind of role?"),
				userMessage("data engineer, full-time"),
			},
			expected: models.SearchParams{
				// The title keyword captures whatever follows it once
				// the messages are concatenated.
				Title:    "data engineer",
				Location: "Remote",
				Type:     "full-time",
			},
		},
		{
			name: "agent messages are ignored",
			history: []models.ConversationMessage{
				agentMessage("How about a job in paris?"),
				userMessage("hello"),
			},
			expected: models.SearchParams{
				Location: "Remote",
			},
		},
		{
			name: "first match per category wins",
			history: []models.ConversationMessage{
				userMessage("jobs in london, or maybe in tokyo"),
			},
			expected: models.SearchParams{
				Location: "london",
			},
		},
	}

	extractor := NewExtractor("Remote")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := extractor.Extract(tt.history)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestExtractLocationAlwaysPopulated(t *testing.T) {
	extractor := NewExtractor("Lagos")

	params := extractor.Extract([]models.ConversationMessage{
		userMessage("anything interesting out there?"),
	})

	assert.Equal(t, "Lagos", params.Location)
}

func TestExtractFullScenario(t *testing.T) {
	extractor := NewExtractor("Remote")

	params := extractor.Extract([]models.ConversationMessage{
		userMessage("I'm looking for a remote python developer job paying $90k"),
	})

	// Leftmost-first matching: the title capture runs to the end of the
	// sentence, and the dollar alternative wins over the k shorthand.
	assert.Equal(t, "remote python developer job paying $90k", params.Title)
	assert.Equal(t, "Remote", params.Location)
	assert.Equal(t, "$90", params.Salary)
	assert.Equal(t, "remote", params.Type)
	assert.Empty(t, params.Experience)
}
