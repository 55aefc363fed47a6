package llm

import "strings"

// StripCodeFence removes a markdown code fence wrapped around a model reply.
// Only replies that start with a fence marker are touched: every line whose
// trimmed form starts with ``` is dropped (the opening ```json line and the
// closing fence included) and the remaining lines are rejoined in order.
func StripCodeFence(reply string) string {
	text := strings.TrimSpace(reply)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
