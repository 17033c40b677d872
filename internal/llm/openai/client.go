package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docufield/docufield/internal/llm"
)

// ExtractField implements llm.FieldExtractor using text-only chat/completions.
// The composed prompt is sent as the user message; the response schema rides
// along as a trailing system message.
func (c *Client) ExtractField(ctx context.Context, req llm.ExtractRequest) (llm.FieldResult, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"field_key", req.Field.Key,
		"prompt_len", len(req.Prompt),
	)

	schema := llm.BuildFieldJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "user", "content": req.Prompt + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.FieldResult{}, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.FieldResult{}, raw, fmt.Errorf("decode completion response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.FieldResult{}, raw, fmt.Errorf("no choices in completion response")
	}

	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))
	res, err := llm.ParseFieldResult(content)
	if err != nil {
		c.logger.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.FieldResult{}, content, err
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"field_key", req.Field.Key,
		"found", res.Value != "",
		"confidence", res.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, content, nil
}

func (c *Client) ModelVersion() string { return c.cfg.Model }

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("llm endpoint returned %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}
	return raw, nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
