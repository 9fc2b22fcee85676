package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainerdesk/internal/telemetry/tracing"
)

const (
	EventSessionsScheduled = "sessions.scheduled"
	EventSessionsCancelled = "sessions.cancelled"

	defaultWebhookTimeout = 5 * time.Second
)

type SessionsScheduled struct {
	SeriesID        string    `json:"seriesId"`
	ClientID        int       `json:"clientId"`
	SessionType     string    `json:"sessionType"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"durationMinutes"`
	Dates           []string  `json:"dates"`
	ScheduledAt     time.Time `json:"scheduledAt"`
}

type SessionsCancelled struct {
	SeriesID    string    `json:"seriesId,omitempty"`
	SessionID   int       `json:"sessionId,omitempty"`
	Count       int       `json:"count"`
	CancelledAt time.Time `json:"cancelledAt"`
}

type envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

type Notifier interface {
	SessionsScheduled(ctx context.Context, event SessionsScheduled) error
	SessionsCancelled(ctx context.Context, event SessionsCancelled) error
}

// New returns a webhook notifier, or a log-only one when no URL is configured.
func New(webhookURL string) Notifier {
	if webhookURL == "" {
		log.Debugln("notify: no webhook url set, notifications are only logged")
		return &LogNotifier{}
	}
	return NewWebhookNotifier(webhookURL, defaultWebhookTimeout)
}

type WebhookNotifier struct {
	url        string
	httpClient *http.Client
}

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (n *WebhookNotifier) SessionsScheduled(ctx context.Context, event SessionsScheduled) error {
	return n.post(ctx, EventSessionsScheduled, event)
}

func (n *WebhookNotifier) SessionsCancelled(ctx context.Context, event SessionsCancelled) error {
	return n.post(ctx, EventSessionsCancelled, event)
}

func (n *WebhookNotifier) post(ctx context.Context, eventName string, payload any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notify.webhook.post")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("event", eventName))

	body, err := json.Marshal(envelope{Event: eventName, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook do: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}

	log.Tracef("notify: %s delivered", eventName)
	return nil
}

type LogNotifier struct{}

func (n *LogNotifier) SessionsScheduled(_ context.Context, event SessionsScheduled) error {
	log.WithFields(log.Fields{
		"series": event.SeriesID,
		"client": event.ClientID,
		"type":   event.SessionType,
		"count":  len(event.Dates),
	}).Info("sessions scheduled")
	return nil
}

func (n *LogNotifier) SessionsCancelled(_ context.Context, event SessionsCancelled) error {
	log.WithFields(log.Fields{
		"series":  event.SeriesID,
		"session": event.SessionID,
		"count":   event.Count,
	}).Info("sessions cancelled")
	return nil
}
