package docai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrModelNotConfigured is surfaced before any upload when the model
// identifier is missing; it is a configuration error, not an engine one.
var ErrModelNotConfigured = errors.New("document model ID is not configured")

// EnqueueAndWait uploads one receipt, polls the job until it settles
// and returns the decoded inference payload as a generic map. The
// payload's shape is deliberately not modeled here: defending against
// its variants is the engine's job.
func (c *Client) EnqueueAndWait(ctx context.Context, filename string, data []byte) (map[string]any, error) {
	if c.cfg.ModelID == "" {
		return nil, ErrModelNotConfigured
	}

	rid := uuid.New().String()
	start := time.Now()
	c.logger.Info("docai.enqueue.start",
		"req_id", rid, "model_id", c.cfg.ModelID, "filename", filename, "bytes", len(data))

	pollURL, err := c.enqueue(ctx, filename, data)
	if err != nil {
		c.logger.Error("docai.enqueue.error", "req_id", rid, "error", err)
		return nil, fmt.Errorf("enqueue inference: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.cfg.InitialDelay):
	}

	for attempt := 1; attempt <= c.cfg.MaxPolls; attempt++ {
		payload, status, err := c.poll(ctx, pollURL)
		if err != nil {
			c.logger.Error("docai.poll.error", "req_id", rid, "attempt", attempt, "error", err)
			return nil, fmt.Errorf("poll inference: %w", err)
		}

		switch status {
		case "Processed":
			c.logger.Info("docai.poll.done",
				"req_id", rid, "attempts", attempt,
				"elapsed_ms", time.Since(start).Milliseconds())
			return c.fetchResult(ctx, payload)
		case "Failed":
			return nil, fmt.Errorf("inference failed upstream")
		}

		c.logger.Debug("docai.poll.pending", "req_id", rid, "attempt", attempt, "status", status)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}
	}

	return nil, fmt.Errorf("inference not ready after %d polls", c.cfg.MaxPolls)
}

// enqueue posts the file and returns the polling URL.
func (c *Client) enqueue(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("model_id", c.cfg.ModelID); err != nil {
		return "", err
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/inferences/enqueue"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", c.cfg.APIKey)

	payload, err := c.do(req)
	if err != nil {
		return "", err
	}

	if u, ok := digString(payload, "job", "polling_url"); ok {
		return u, nil
	}
	if id, ok := digString(payload, "job", "id"); ok {
		return strings.TrimRight(c.cfg.BaseURL, "/") + "/jobs/" + id, nil
	}
	return "", fmt.Errorf("enqueue response missing job reference")
}

// poll fetches the job and returns its payload and status.
func (c *Client) poll(ctx context.Context, url string) (map[string]any, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", c.cfg.APIKey)

	payload, err := c.do(req)
	if err != nil {
		return nil, "", err
	}
	status, _ := digString(payload, "job", "status")
	if status == "" {
		status, _ = digString(payload, "status")
	}
	return payload, status, nil
}

// fetchResult follows the job's result URL when the settled payload
// does not already embed the inference.
func (c *Client) fetchResult(ctx context.Context, payload map[string]any) (map[string]any, error) {
	if _, ok := payload["inference"]; ok {
		return payload, nil
	}
	if _, ok := payload["document"]; ok {
		return payload, nil
	}
	resultURL, ok := digString(payload, "job", "result_url")
	if !ok {
		return payload, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resultURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.cfg.APIKey)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (map[string]any, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("docai.body_close_error", "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

func digString(m map[string]any, keys ...string) (string, bool) {
	var cur any = m
	for _, k := range keys {
		node, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur = node[k]
	}
	s, ok := cur.(string)
	return s, ok && s != ""
}
