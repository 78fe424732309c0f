package ledgerservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса расчетов (earnings ledger).
//
// Начисление за бронирование запускается ровно один раз, в момент перехода
// бронирования в completed. RecordCompletion и ReverseCompletion парные
// операции: откат записанного завершения обязан вызвать вторую.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса расчетов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type completionEvent struct {
	BookingID int64   `json:"bookingId"`
	ArtistID  int64   `json:"artistId"`
	Amount    float64 `json:"amount"`
}

// RecordCompletion сообщает сервису расчетов о завершенном бронировании
func (c *Client) RecordCompletion(ctx context.Context, bookingID, artistID int64, amount float64) error {
	return c.post(ctx, "/internal/earnings/completions", completionEvent{
		BookingID: bookingID,
		ArtistID:  artistID,
		Amount:    amount,
	})
}

// ReverseCompletion симметрично отменяет ранее записанное завершение
func (c *Client) ReverseCompletion(ctx context.Context, bookingID, artistID int64, amount float64) error {
	return c.post(ctx, "/internal/earnings/reversals", completionEvent{
		BookingID: bookingID,
		ArtistID:  artistID,
		Amount:    amount,
	})
}

func (c *Client) post(ctx context.Context, path string, event completionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	return nil
}
