//go:build !gcloud

package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"
)

type webhookTaskRequest struct {
	Task webhookTask `json:"task"`
}

type webhookTask struct {
	HTTPRequest  webhookHTTPRequest `json:"http_request"`
	ScheduleTime string             `json:"schedule_time,omitempty"`
}

type webhookHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers"`
}

type webhookTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"schedule_time"`
	CreateTime   string `json:"create_time"`
}

// WebhookTasksClient schedules audit reminders against a self-hosted task
// queue that mimics the Cloud Tasks HTTP surface.
type WebhookTasksClient struct {
	baseURL    string
	queueName  string
	httpClient *http.Client
	maxRetries int
}

func NewWebhookTasksClient(baseURL, queueName string, maxRetries int) *WebhookTasksClient {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &WebhookTasksClient{
		baseURL:   baseURL,
		queueName: queueName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
	}
}

func (c *WebhookTasksClient) ScheduleReminder(ctx context.Context, task *ReminderTask) (*TaskResponse, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder task: %w", err)
	}

	encodedBody := base64.StdEncoding.EncodeToString(payload)

	webhookReq := webhookTaskRequest{
		Task: webhookTask{
			HTTPRequest: webhookHTTPRequest{
				Body: encodedBody,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
			},
		},
	}

	if !task.RemindAt.IsZero() {
		webhookReq.Task.ScheduleTime = task.RemindAt.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(webhookReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook request: %w", err)
	}

	url := fmt.Sprintf("%s/tasks", c.baseURL)
	if c.queueName != "" && c.queueName != "default" {
		url = fmt.Sprintf("%s/tasks/%s", c.baseURL, c.queueName)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying reminder registration",
				slog.String("event_id", task.EventID),
				slog.String("org_id", task.OrgID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := c.doRequest(ctx, url, reqBody, task.EventID, task.OrgID)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	slog.Error("all retries exhausted for reminder registration",
		slog.String("event_id", task.EventID),
		slog.String("org_id", task.OrgID),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return nil, fmt.Errorf("failed to register reminder after %d retries: %w", c.maxRetries, lastErr)
}

func (c *WebhookTasksClient) doRequest(ctx context.Context, url string, reqBody []byte, eventID, orgID string) (*TaskResponse, error) {
	slog.Debug("registering reminder to webhook queue",
		slog.String("url", url),
		slog.String("event_id", eventID),
		slog.String("org_id", orgID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("failed to send request to webhook queue",
			slog.String("event_id", eventID),
			slog.String("org_id", orgID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.Warn("unexpected status code from webhook queue",
			slog.String("event_id", eventID),
			slog.String("org_id", orgID),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var webhookResp webhookTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&webhookResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduleTime, _ := time.Parse(time.RFC3339, webhookResp.ScheduleTime)
	createTime, _ := time.Parse(time.RFC3339, webhookResp.CreateTime)

	slog.Info("audit reminder registered to webhook queue",
		slog.String("task_name", webhookResp.Name),
		slog.String("event_id", eventID),
		slog.String("org_id", orgID),
	)

	return &TaskResponse{
		Name:         webhookResp.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *WebhookTasksClient) CancelReminder(ctx context.Context, taskID string) error {
	url := fmt.Sprintf("%s/tasks/%s", c.baseURL, taskID)
	if c.queueName != "" && c.queueName != "default" {
		url = fmt.Sprintf("%s/tasks/%s/%s", c.baseURL, c.queueName, taskID)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying reminder cancellation",
				slog.String("task_id", taskID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err := c.deleteTask(ctx, url, taskID)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	slog.Error("all retries exhausted for reminder cancellation",
		slog.String("task_id", taskID),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return fmt.Errorf("failed to cancel reminder after %d retries: %w", c.maxRetries, lastErr)
}

func (c *WebhookTasksClient) deleteTask(ctx context.Context, url, taskID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// A task that already fired or was never registered is treated as
	// cancelled.
	if resp.StatusCode == http.StatusNotFound {
		slog.Debug("reminder task not found on cancellation",
			slog.String("task_id", taskID),
		)
		return nil
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	slog.Info("audit reminder cancelled",
		slog.String("task_id", taskID),
	)
	return nil
}
