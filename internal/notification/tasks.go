package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/wb-go/wbf/logger"
)

// WebhookTaskClient creates investigation tasks in the agency's CRM via a
// webhook. With no URL configured it degrades to a local log entry, so
// detection never depends on the CRM being reachable.
type WebhookTaskClient struct {
	client *resty.Client
	url    string
	logger logger.Logger
}

func NewWebhookTaskClient(url string, timeout time.Duration, log logger.Logger) *WebhookTaskClient {
	c := &WebhookTaskClient{url: url, logger: log}
	if url == "" {
		log.Warn("task webhook url is empty, investigation tasks will only be logged")
		return c
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c.client = resty.New().SetTimeout(timeout)

	return c
}

func (c *WebhookTaskClient) CreateInvestigationTask(ctx context.Context, summary, body, priority string) error {
	if c.client == nil {
		c.logger.Info("investigation task (no crm configured)",
			logger.String("summary", summary),
			logger.String("priority", priority),
		)
		return nil
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"summary":  summary,
			"body":     body,
			"priority": priority,
		}).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post investigation task: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("task webhook returned %s", resp.Status())
	}

	return nil
}
