// Package archive pushes the rendered report to the external sinks: a chat
// webhook and a versioned remote content store. The two pushes are
// independent — one failing never blocks the other or fails the run.
package archive

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// WebhookSink posts the report file to a chat-style webhook as an attachment.
type WebhookSink struct {
	URL    string
	client *http.Client
}

// NewWebhookSink creates a webhook sink.
func NewWebhookSink(url string) *WebhookSink {
	return &WebhookSink{
		URL:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Push sends the report as a multipart upload with a short caption.
func (s *WebhookSink) Push(filename, caption string, report []byte) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if err := w.WriteField("content", caption); err != nil {
		return fmt.Errorf("write caption field: %w", err)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := part.Write(report); err != nil {
		return fmt.Errorf("write file part: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequest("POST", s.URL, &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}
