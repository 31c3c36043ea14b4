package providerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с ProviderService
// Данные поставщиков меняются редко, поэтому ответы кэшируются с TTL:
// имя поставщика денормализуется в каждое бронирование при создании
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	log        Logger
}

// NewClient создает новый экземпляр клиента ProviderService
func NewClient(baseURL string, timeout time.Duration, cacheTTL time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: gocache.New(cacheTTL, 2*cacheTTL),
		log:   log,
	}
}

// GetProvider получает данные поставщика по ID
// Сначала смотрит в кэш, при промахе идет в ProviderService
func (c *Client) GetProvider(ctx context.Context, providerID string) (*Provider, error) {
	if cached, ok := c.cache.Get(providerID); ok {
		return cached.(*Provider), nil
	}

	reqURL := fmt.Sprintf("%s/internal/providers/%s", c.baseURL, url.PathEscape(providerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrProviderNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var provider Provider
	if err := json.NewDecoder(resp.Body).Decode(&provider); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.cache.Set(providerID, &provider, gocache.DefaultExpiration)

	return &provider, nil
}
