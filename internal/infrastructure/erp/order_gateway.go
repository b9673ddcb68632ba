package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// orderSubmitTimeout bounds the single outbound attempt; there is no retry.
const orderSubmitTimeout = 5 * time.Second

var ErrMissingOrdersURL = errors.New("missing ERP_ORDERS_URL")
var ErrOrderGatewayNotConfigured = errors.New("order gateway not configured")

// HTTPOrderGateway submits order payloads to the external ERP endpoint.
//
// The endpoint URL is injected at construction rather than read at call
// time. In mock mode (ERP_GATEWAY_MOCK) no network call is made and an
// accepted response is fabricated from the request payload, mirroring the
// mock ERP endpoint this service also exposes.

type HTTPOrderGateway struct {
	client    *http.Client
	ordersURL string
	mockMode  bool
}

func NewHTTPOrderGateway(ordersURL string) (*HTTPOrderGateway, error) {
	if isOrderGatewayMockEnabled() {
		log.Printf("[erp][gateway] mock mode enabled")
		return &HTTPOrderGateway{mockMode: true}, nil
	}

	ordersURL = strings.TrimSpace(ordersURL)
	if ordersURL == "" {
		log.Printf("[erp][gateway] missing ERP_ORDERS_URL")
		return nil, ErrMissingOrdersURL
	}

	return &HTTPOrderGateway{
		client:    &http.Client{Timeout: orderSubmitTimeout},
		ordersURL: ordersURL,
	}, nil
}

func (g *HTTPOrderGateway) SubmitOrder(ctx context.Context, orderPayload json.RawMessage) (json.RawMessage, error) {
	if g != nil && g.mockMode {
		log.Printf("[erp][gateway] mock submit payload_len=%d", len(orderPayload))

		resp := map[string]interface{}{}
		if len(orderPayload) > 0 && json.Valid(orderPayload) {
			_ = json.Unmarshal(orderPayload, &resp)
		}
		resp["message"] = "Order received by ERP mock!"
		resp["received_at"] = time.Now().UTC().Format(time.RFC3339Nano)
		return json.Marshal(resp)
	}

	if g == nil || g.client == nil {
		return nil, ErrOrderGatewayNotConfigured
	}
	log.Printf("[erp][gateway] submit start payload_len=%d", len(orderPayload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.ordersURL, bytes.NewReader(orderPayload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[erp][gateway] submit failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("[erp][gateway] submit rejected status=%d", resp.StatusCode)
		return nil, fmt.Errorf("erp returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	log.Printf("[erp][gateway] submit success status=%d", resp.StatusCode)
	return body, nil
}

func isOrderGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ERP_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
