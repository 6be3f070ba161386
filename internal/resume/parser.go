package resume

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"jobquest-utils/internal/config"
	"jobquest-utils/internal/logging"
	"jobquest-utils/pkg/models"
)

// skillVocabulary is the fixed set of skill keywords scanned for in
// resume text. Matching is case-insensitive substring matching, which
// is intentionally loose; this endpoint is a highlighter, not a parser
// of semantic structure.
var skillVocabulary = []string{
	"python", "java", "javascript", "typescript", "golang", "rust", "c++", "c#",
	"sql", "postgresql", "mysql", "mongodb", "redis",
	"react", "angular", "vue", "node.js", "django", "flask", "fastapi", "spring",
	"docker", "kubernetes", "terraform", "aws", "azure", "gcp",
	"git", "linux", "ci/cd", "rest", "graphql", "grpc",
	"machine learning", "data analysis", "nlp",
	"agile", "scrum", "project management", "leadership", "communication",
}

// Parser extracts text and recognized skills from uploaded PDF resumes
type Parser struct {
	config *config.Config
}

// NewParser creates a resume parser
func NewParser(cfg *config.Config) *Parser {
	return &Parser{config: cfg}
}

// Parse extracts the plain text of a PDF document and scans it for
// known skills. The returned text is truncated to the configured
// preview length.
func (p *Parser) Parse(data []byte) (*models.ResumeParseResponse, error) {
	text, err := extractText(data)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from PDF: %w", err)
	}

	skills := scanSkills(text)

	logging.Debug("resume parsed", map[string]interface{}{
		"text_length": len(text),
		"skills":      len(skills),
	})

	return &models.ResumeParseResponse{
		Text:   truncateRunes(text, p.previewLength()),
		Skills: skills,
	}, nil
}

func (p *Parser) previewLength() int {
	if p.config != nil && p.config.Resume.PreviewLength > 0 {
		return p.config.Resume.PreviewLength
	}
	return 500
}

// extractText concatenates the plain text of every page
func extractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than failing the upload
			logging.Warn("failed to read PDF page", map[string]interface{}{
				"page":  i,
				"error": err.Error(),
			})
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String()), nil
}

// scanSkills returns every vocabulary skill present in the text, in
// vocabulary order, without duplicates
func scanSkills(text string) []string {
	lower := strings.ToLower(text)

	skills := make([]string, 0)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, skill) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// truncateRunes cuts the text to at most max runes
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
