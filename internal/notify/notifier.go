// Package notify holds the trigger contract the pipeline invokes when a
// document reaches a terminal status. Delivery transports live behind the
// Notifier interface; the pipeline only depends on the payload shape.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
)

// Payload is the terminal-status notification shape.
type Payload struct {
	DocID            uuid.UUID                `json:"doc_id"`
	Status           constants.DocumentStatus `json:"status"`
	ArtifactsSummary map[string]string        `json:"artifacts_summary,omitempty"`
	ErrorMessage     string                   `json:"error_message,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, p Payload) error
}

// Webhook POSTs the payload as JSON to a configured endpoint.
type Webhook struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

func NewWebhook(url string, timeout time.Duration, logger *slog.Logger) *Webhook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// URL returns the configured endpoint.
func (w *Webhook) URL() string { return w.url }

func (w *Webhook) Notify(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		w.logger.Error("notification delivery failed", "doc_id", p.DocID, "url", w.url, "error", err)
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		w.logger.Error("notification rejected", "doc_id", p.DocID, "url", w.url, "status", resp.StatusCode)
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	w.logger.Info("notification delivered", "doc_id", p.DocID, "status", p.Status)
	return nil
}

// Noop discards notifications; used when no webhook is configured.
type Noop struct{}

func (Noop) Notify(context.Context, Payload) error { return nil }
