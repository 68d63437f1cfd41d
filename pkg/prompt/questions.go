package prompt

import (
	"encoding/json"
	"strings"
)

// DefaultQuestions are used when question generation fails or returns text
// no parse attempt can make sense of. Generation failure must never block
// challenge creation.
var DefaultQuestions = []string{
	"What are the main themes or key points discussed in this document?",
	"How do the ideas presented relate to or build upon each other?",
	"What conclusions can you draw from the information provided?",
}

// DefaultQuestionList returns a fresh copy so callers can't mutate the
// shared defaults.
func DefaultQuestionList() []string {
	return append([]string(nil), DefaultQuestions...)
}

type questionSet struct {
	Questions []string `json:"questions"`
}

// ParseQuestions extracts the questions array from a model reply. Two parse
// attempts are made: first the substring between the first '{' and the last
// '}' (models often wrap JSON in prose), then the whole reply. If either
// attempt yields valid JSON the result is taken as-is, even when the
// questions key is absent. Only when both attempts fail does it fall back to
// DefaultQuestions.
func ParseQuestions(raw string) []string {
	raw = strings.TrimSpace(raw)

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		if qs, ok := tryParse(raw[start : end+1]); ok {
			return qs
		}
	}

	if qs, ok := tryParse(raw); ok {
		return qs
	}

	return DefaultQuestionList()
}

func tryParse(s string) ([]string, bool) {
	var set questionSet
	if err := json.Unmarshal([]byte(s), &set); err != nil {
		return nil, false
	}
	if set.Questions == nil {
		return []string{}, true
	}
	return set.Questions, true
}
