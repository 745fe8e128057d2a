package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// maxResponseBytes ограничивает размер читаемого ответа провайдера
const maxResponseBytes = 4 << 20

// NewHTTPClient создает HTTP-клиент для провайдеров маршрутов
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        64,
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ; все ошибки приводятся к ProviderError
func getJSON(ctx context.Context, client *http.Client, provider, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return NewProviderError(provider, KindMalformed, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return NewProviderError(provider, classifyTransportError(err), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return NewProviderError(provider, classifyTransportError(err), fmt.Errorf("read body: %w", err))
	}

	if kind, failed := classifyStatus(resp.StatusCode); failed {
		// тело ошибки часто содержит код сервиса, провайдер может уточнить класс ошибки
		_ = json.Unmarshal(body, out)
		perr := NewProviderError(provider, kind, fmt.Errorf("unexpected status %d", resp.StatusCode))
		if resp.StatusCode < 500 && kind == KindUpstream {
			perr.Retryable = false
		}
		return perr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return NewProviderError(provider, KindMalformed, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func classifyStatus(status int) (ErrorKind, bool) {
	switch {
	case status >= 200 && status < 300:
		return "", false
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth, true
	case status == http.StatusTooManyRequests:
		return KindRateLimited, true
	default:
		return KindUpstream, true
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
