package qa

import (
	"fmt"
	"strings"
)

const systemPrompt = `You answer a learner's questions about their own study material.

Rules:
- Use ONLY the passages provided. Do not add outside knowledge.
- Format the answer cleanly with bullet points, numbered lists or short headings where they help.
- If the passages do not contain the answer, reply with exactly: "` + NotAvailable + `"
- Be concise and accurate.`

func buildUserMessage(title string, passages []Passage, question string) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "Material: %s\n\n", title)
	}
	b.WriteString("Passages:\n")
	for _, p := range passages {
		fmt.Fprintf(&b, "[%d] %s\n", p.Index+1, p.Text)
	}
	fmt.Fprintf(&b, "\nQuestion:\n%s", question)
	return b.String()
}
