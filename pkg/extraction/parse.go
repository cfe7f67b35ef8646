package extraction

import (
	"encoding/json"
	"strings"

	"pantrypilot-backend/domain"
)

// ParseItems turns raw model text into candidate items. Recovery is limited
// to stripping Markdown code fences and slicing between the first '[' and the
// last ']'; anything that still fails to decode is a hard parse error
// carrying the original text.
func ParseItems(raw string) ([]domain.CandidateItem, error) {
	text := stripCodeFences(raw)

	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		start := strings.Index(text, "[")
		end := strings.LastIndex(text, "]")
		if start == -1 || end == -1 || end < start {
			return nil, &domain.ExtractionParseError{Raw: raw}
		}
		text = text[start : end+1]
	}

	var items []domain.CandidateItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, &domain.ExtractionParseError{Raw: raw}
	}
	return items, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
