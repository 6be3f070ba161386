package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanSkills(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "no skills",
			text:     "I enjoy long walks on the beach",
			expected: []string{},
		},
		{
			name:     "case insensitive",
			text:     "Senior PYTHON developer with Docker and AWS",
			expected: []string{"python", "docker", "aws"},
		},
		{
			name:     "multi-word skills",
			text:     "Experience with machine learning and project management",
			expected: []string{"machine learning", "project management"},
		},
		{
			name:     "no duplicates for repeated mentions",
			text:     "python python python",
			expected: []string{"python"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scanSkills(tt.text))
		})
	}
}

func TestScanSkillsVocabularyOrder(t *testing.T) {
	skills := scanSkills("kubernetes before golang in the text, but not in the result")

	assert.Equal(t, []string{"golang", "kubernetes"}, skills)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 10))
	assert.Equal(t, "ab", truncateRunes("abcdef", 2))
	assert.Equal(t, "hél", truncateRunes("héllo wörld", 3))
}

func TestExtractTextRejectsGarbage(t *testing.T) {
	_, err := extractText([]byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestParsePreviewLength(t *testing.T) {
	p := NewParser(nil)
	long := strings.Repeat("x", 1000)

	assert.Len(t, truncateRunes(long, p.previewLength()), 500)
}
