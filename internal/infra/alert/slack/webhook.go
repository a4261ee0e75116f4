package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/peptiq/trendwatch/internal/domain/quality"
)

const (
	postTimeout = 10 * time.Second

	// insightPreviewLimit matches what a Slack attachment renders without
	// collapsing; the full brief lives in the run log.
	insightPreviewLimit = 500
)

// Webhook posts alert messages to a Slack incoming webhook. Both message
// kinds are fire-and-forget: the response body is drained and ignored, only
// transport failures and error statuses surface.
type Webhook struct {
	URL    string
	Client *http.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{URL: url, Client: &http.Client{Timeout: postTimeout}}
}

type block struct {
	Type string      `json:"type"`
	Text *textObject `json:"text,omitempty"`
}

type textObject struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type attachment struct {
	Color string `json:"color"`
	Text  string `json:"text"`
}

// PostCritical sends the high-priority Block Kit message: a header plus one
// section per finding, rendered *supplier* over its primary concern.
func (w *Webhook) PostCritical(ctx context.Context, items []quality.CriticalAlert) error {
	blocks := []block{
		{Type: "header", Text: &textObject{Type: "plain_text", Text: "🚨 CRITICAL QUALITY ALERTS", Emoji: true}},
	}
	for _, it := range items {
		blocks = append(blocks, block{
			Type: "section",
			Text: &textObject{Type: "mrkdwn", Text: fmt.Sprintf("*%s*\n%s", it.Supplier, it.Concern)},
		})
	}
	return w.post(ctx, map[string]any{"blocks": blocks})
}

// PostSummary sends the weekly wrap-up: counts in the text line, truncated
// insight brief in a green attachment.
func (w *Webhook) PostSummary(ctx context.Context, sum quality.RunSummary) error {
	payload := map[string]any{
		"text": fmt.Sprintf("📊 Weekly Quality Report: %d tests, %d declining, %d safety issues",
			sum.TotalTests, sum.Declining, sum.Safety),
		"attachments": []attachment{
			{Color: "#36a64f", Text: truncate(sum.Insights, insightPreviewLimit)},
		},
	}
	return w.post(ctx, payload)
}

func (w *Webhook) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("slack webhook returned %s", resp.Status)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
