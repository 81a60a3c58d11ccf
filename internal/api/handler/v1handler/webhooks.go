package v1handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"autobuilder/internal/webhook"
	"autobuilder/pkg/controller"
	"autobuilder/pkg/serrors"
)

type WebhookReceipt struct {
	Status     string    `json:"status"`
	EventType  string    `json:"event_type"`
	Repository string    `json:"repository,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type WebhookEvents struct {
	Events []AuditLog `json:"events"`
	Total  int        `json:"total"`
}

// GitHubWebhook verifies and dispatches a GitHub delivery.
func (h *Handler) GitHubWebhook(r *http.Request) (*Response, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, serrors.With(serrors.ErrBadRequest, "payload exceeds %d bytes", tooLarge.Limit)
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read payload")
	}

	receipt, err := h.deps.Webhook.Handle(r.Context(), webhook.Delivery{
		Event:      r.Header.Get("X-GitHub-Event"),
		DeliveryID: r.Header.Get("X-GitHub-Delivery"),
		Signature:  r.Header.Get("X-Hub-Signature-256"),
		Body:       body,
		IPAddress:  controller.GetClientIP(r),
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ok(WebhookReceipt{
		Status:     "received",
		EventType:  receipt.EventType,
		Repository: receipt.Repository,
		Timestamp:  receipt.Timestamp,
	}), nil
}

func (h *Handler) WebhookEvents(r *http.Request) (*Response, error) {
	limit, err := uintQuery(r, "limit")
	if err != nil {
		return nil, err
	}

	events, err := h.deps.Webhook.Events(r.Context(), limit)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ok(WebhookEvents{Events: DomainAuditLogsToV1(events), Total: len(events)}), nil
}
