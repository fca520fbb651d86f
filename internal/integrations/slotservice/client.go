package slotservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// availabilityDateFormat формат даты начала недели в URL Slot API (yyyyMMdd)
const availabilityDateFormat = "20060102"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры подключения к Slot API
type Config struct {
	BaseURL          string
	AvailabilityPath string // шаблон с %s для даты начала недели в формате yyyyMMdd
	TakeSlotPath     string
	Username         string
	Password         string
}

// Client клиент Slot API — upstream-провайдера недельных расписаний и бронирований
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// Option дополнительная настройка клиента
type Option func(*Client)

// WithTransport подменяет транспорт HTTP-клиента (например, обёрткой с метриками)
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// NewClient создает новый экземпляр клиента Slot API
func NewClient(cfg Config, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetWeeklyAvailability получает недельное расписание, начиная с weekStart.
// Неделя в Slot API всегда адресуется датой понедельника в формате yyyyMMdd.
func (c *Client) GetWeeklyAvailability(ctx context.Context, weekStart time.Time) (*WeeklyAvailability, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}

	url := c.cfg.BaseURL + fmt.Sprintf(c.cfg.AvailabilityPath, weekStart.Format(availabilityDateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warn("Slot API availability request returned %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrInvalidResponse)
	}

	availability, err := DecodeWeeklyAvailability(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return availability, nil
}

// ReserveSlot отправляет запрос на бронирование слота.
// Возвращает код ответа Slot API; успех определяется исключительно 2xx-статусом,
// тело ответа на результат не влияет.
func (c *Client) ReserveSlot(ctx context.Context, payload *ReservationPayload) (int, error) {
	if err := c.checkConfigured(); err != nil {
		return 0, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	url := c.cfg.BaseURL + c.cfg.TakeSlotPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warn("Slot API reservation request returned %d: %s", resp.StatusCode, string(respBody))
	}

	return resp.StatusCode, nil
}

func (c *Client) checkConfigured() error {
	if c.cfg.BaseURL == "" || c.cfg.Username == "" || c.cfg.Password == "" {
		return ErrNotConfigured
	}
	return nil
}
