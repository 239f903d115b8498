package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/shopspring/decimal"
)

const RouteNotifications = "/api/notifications"

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

const defaultGatewayAttempts = 3

// GatewayClient отправляет уведомления во внешний шлюз email/SMS.
type GatewayClient struct {
	baseURL    string
	httpClient *http.Client
	attempts   int
}

func NewGatewayClient(baseURL string) *GatewayClient {
	return &GatewayClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		attempts:   defaultGatewayAttempts,
	}
}

func (c *GatewayClient) Name() string {
	return "gateway"
}

// Deliver отправляет уведомление. На ответ http.StatusTooManyRequests ждет время из заголовка Retry-After и
// повторяет попытку, пока не кончатся попытки или контекст.
func (c *GatewayClient) Deliver(ctx context.Context, event domain.NotificationEvent) error {
	payload, encErr := encode(event)
	if encErr != nil {
		return encErr
	}

	var err error
	for range c.attempts {
		err = c.send(ctx, payload)

		var tooManyReq *TooManyRequestError
		if !errors.As(err, &tooManyReq) {
			return err
		}

		// Проверяем отмену контекста перед спячкой
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(tooManyReq.RetryAfter):
		}
	}
	return err
}

// send делает один запрос к шлюзу. При ответе со статусом отличным от 2xx возвращает StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c *GatewayClient) send(ctx context.Context, payload []byte) (err error) {
	req, reqErr := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+RouteNotifications,
		bytes.NewReader(payload),
	)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		minValue := decimal.NewFromInt(minRetryAfter)
		maxValue := decimal.NewFromInt(maxRetryAfter)

		retryAfter, parseErr := decimal.NewFromString(resp.Header.Get("Retry-After"))
		if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
			// в случае ошибки или неверных данных ставим 60 секунд
			retryAfter = decimal.NewFromInt(60) //nolint:mnd
		}
		return NewTooManyRequestError(time.Duration(retryAfter.IntPart()) * time.Second)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return NewStatusCodeError(resp.StatusCode)
	}
	return nil
}
