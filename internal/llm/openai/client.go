package openai

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/planetafiscal/docs-extractor/internal/common"
	"github.com/planetafiscal/docs-extractor/internal/llm"
)

// Chat completions request/response shapes, text-only.
type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float32       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete implements llm.CompletionClient with a single chat/completions
// round trip. The record schema rides along as a trailing system message so
// the model sees the exact shape it must return.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	body := chatRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
			{Role: "system", Content: "JSON Schema:\n" + mustJSON(llm.BuildRecordJSONSchema())},
		},
	}

	c.log.Debug("llm.request",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"user_len", len(user),
	)

	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post(c.endpoint)
	if err != nil {
		c.log.Error("llm.http_error",
			"req_id", rid,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.Completionf("call chat completions: %v", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		c.log.Error("llm.bad_status",
			"req_id", rid,
			"status", resp.StatusCode(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		if out.Error != nil {
			return "", common.Completionf("chat completions status %d: %s", resp.StatusCode(), out.Error.Message)
		}
		return "", common.Completionf("chat completions status %d: %s", resp.StatusCode(), resp.String())
	}
	if out.Error != nil {
		return "", common.Completionf("chat completions error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", common.Completionf("no choices in completion response")
	}

	content := out.Choices[0].Message.Content
	c.log.Debug("llm.response",
		"req_id", rid,
		"status", resp.StatusCode(),
		"reply_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
