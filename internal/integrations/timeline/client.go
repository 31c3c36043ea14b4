package timeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Event тип события таймлайна проекта
type Event string

const (
	EventBookingCreated   Event = "booking_created"
	EventBookingCancelled Event = "booking_cancelled"
	EventStatusChanged    Event = "booking_status_changed"
	EventTimelineSynced   Event = "timeline_synced"
)

// notifyRequest тело уведомления ProjectService
type notifyRequest struct {
	Event      Event  `json:"event"`
	BookingID  string `json:"bookingId,omitempty"`
	OccurredAt string `json:"occurredAt"`
}

// Client клиент уведомлений об изменениях таймлайна проекта
// Уведомления best-effort: вызывающая сторона логирует ошибку и продолжает,
// неудачная доставка никогда не откатывает саму операцию
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NotifyTimelineUpdated отправляет сигнал об изменении таймлайна проекта
// Обновляет отметку updated_at проекта на стороне ProjectService
func (c *Client) NotifyTimelineUpdated(ctx context.Context, projectID string, event Event, bookingID string) error {
	reqURL := fmt.Sprintf("%s/internal/projects/%s/timeline-events", c.baseURL, url.PathEscape(projectID))

	payload, err := json.Marshal(notifyRequest{
		Event:      event,
		BookingID:  bookingID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	return nil
}
