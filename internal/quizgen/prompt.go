package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a study assistant that writes quizzes from a learner's own study material.

Rules:
- Base every question only on the provided material. Do not test outside knowledge.
- Write exactly 2 multiple-choice questions with 4 distinct options each. The answer must be copied exactly from one of the options. Distractors should be plausible, not silly.
- Write exactly 1 short-answer question that can be answered in one or two sentences.
- Write exactly 1 true/false statement; answer is a JSON boolean.
- Write 1 summary question asking the learner to summarize the material in their own words.
- Write a concise summary of the material (50-100 words) and a detailed summary (300-500 words).
- Questions must be self-contained: do not refer to "the text above" or page numbers.
- Return only JSON matching the schema, without markdown code fences.`

// truncateRunes cuts s to at most n runes. n <= 0 means no limit.
func truncateRunes(s string, n int) (string, bool) {
	if n <= 0 {
		return s, false
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], true
		}
		i++
	}
	return s, false
}

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	text, truncated := truncateRunes(strings.TrimSpace(input.Text), cfg.MaxInputChars)

	var b strings.Builder
	if input.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", input.Title)
	}
	if truncated {
		fmt.Fprintf(&b, "Note: the material was cut to its first %d characters.\n", cfg.MaxInputChars)
	}
	b.WriteString("\nStudy material:\n")
	b.WriteString(text)
	return b.String()
}
