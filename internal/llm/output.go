package llm

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StripCodeFence removes a surrounding markdown code fence such as
// ```json ... ``` from model output. Text without a fence is returned
// trimmed but otherwise unchanged.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line, including any language tag.
	nl := strings.IndexByte(s, '\n')
	if nl < 0 {
		return strings.TrimSpace(strings.Trim(s, "`"))
	}
	s = s[nl+1:]

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// finalize turns raw provider text into response content: fences are
// stripped, truncated output is rejected and the result is checked
// against req.Schema.
func finalize(req Request, text, stopReason string) (json.RawMessage, error) {
	content := json.RawMessage(StripCodeFence(text))

	if stopReason == stopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}

	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
		return compact(content), nil
	}
	return content, nil
}

func compact(raw json.RawMessage) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}
