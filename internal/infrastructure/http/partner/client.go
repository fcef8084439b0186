package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"kitchen_orders/internal/config"
	domain "kitchen_orders/internal/domain/order"
	"kitchen_orders/pkg/logger"
)

const probeTimeout = 5 * time.Second

// Client forwards finalized day orders to the external partner endpoint.
// Every attempt produces exactly one classified SyncOutcome; no error ever
// escapes SendOrder.
type Client struct {
	httpClient *http.Client
	cfg        config.PartnerConfig
	log        logger.Logger
}

func NewClient(cfg config.PartnerConfig, log logger.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

// SendOrder performs the single outbound POST. A missing endpoint yields a
// skipped outcome, not an error; everything else classifies into success,
// http_error, timeout, connection_error or unknown. No retries.
func (c *Client) SendOrder(ctx context.Context, payload domain.PartnerPayload) domain.SyncOutcome {
	if !c.cfg.Configured() {
		c.log.Warn("PARTNER_API_URL not configured, skipping external forward")
		return domain.SyncOutcome{
			Skipped:   true,
			ErrorType: domain.OutcomeSkipped,
			Error:     "PARTNER_API_URL not configured",
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.SyncOutcome{
			ErrorType: domain.OutcomeUnknown,
			Error:     fmt.Sprintf("encode payload: %v", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return domain.SyncOutcome{
			ErrorType: domain.OutcomeUnknown,
			Error:     fmt.Sprintf("build request: %v", err),
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	c.log.Info("forwarding order to partner",
		logger.String("url", c.cfg.BaseURL),
		logger.Int("total_dishes", payload.TotalDishes),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.classifyTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.SyncOutcome{
			StatusCode: resp.StatusCode,
			ErrorType:  domain.OutcomeUnknown,
			Error:      fmt.Sprintf("read response: %v", err),
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.log.Info("partner forward succeeded", logger.Int("status", resp.StatusCode))
		return domain.SyncOutcome{
			Success:    true,
			StatusCode: resp.StatusCode,
			Response:   asJSON(respBody),
		}
	}

	c.log.Error("partner returned error status", logger.Int("status", resp.StatusCode))
	return domain.SyncOutcome{
		StatusCode: resp.StatusCode,
		ErrorType:  domain.OutcomeHTTPError,
		Error:      fmt.Sprintf("partner returned status %d", resp.StatusCode),
		Response:   asJSON(respBody),
	}
}

// Ping probes the partner endpoint for liveness with a short bound.
func (c *Client) Ping(ctx context.Context) bool {
	if !c.cfg.Configured() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode < 500
}

func (c *Client) classifyTransportError(err error) domain.SyncOutcome {
	var urlErr *url.Error
	switch {
	case errors.As(err, &urlErr) && urlErr.Timeout(),
		errors.Is(err, context.DeadlineExceeded):
		c.log.Error("partner request timed out", logger.Error(err))
		return domain.SyncOutcome{
			ErrorType: domain.OutcomeTimeout,
			Error:     "partner did not respond within the time limit",
		}
	default:
		c.log.Error("partner request failed", logger.Error(err))
		return domain.SyncOutcome{
			ErrorType: domain.OutcomeConnectionError,
			Error:     fmt.Sprintf("partner request failed: %v", err),
		}
	}
}

// asJSON returns the body as raw JSON, wrapping non-JSON bodies in a JSON
// string so the sync log's jsonb column always accepts them.
func asJSON(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	wrapped, err := json.Marshal(string(body))
	if err != nil {
		return nil
	}
	return json.RawMessage(wrapped)
}
