package mcp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// RegisterWebhook registers a webhook for the given events and returns the
// server-assigned webhook ID, used later for deletion.
func (c *Client) RegisterWebhook(ctx context.Context, registration WebhookRegistration) (string, error) {
	var created registerWebhookResponse
	if err := c.call(ctx, http.MethodPost, "/webhooks", registration, &created); err != nil {
		return "", err
	}
	if created.WebhookID != "" {
		return created.WebhookID, nil
	}
	if created.ID != "" {
		return created.ID, nil
	}
	return "", fmt.Errorf("webhook registered but server returned no webhook ID")
}

// ListWebhooks lists registered webhooks.
func (c *Client) ListWebhooks(ctx context.Context) ([]Webhook, error) {
	var webhooks []Webhook
	if err := c.call(ctx, http.MethodGet, "/webhooks", nil, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

// DeleteWebhook deletes a webhook by ID. Deleting an already-deleted webhook
// is the server's MCPError, not a silent success.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (map[string]string, error) {
	var ack map[string]string
	if err := c.call(ctx, http.MethodDelete, "/webhooks/"+url.PathEscape(webhookID), nil, &ack); err != nil {
		return nil, err
	}
	return ack, nil
}
