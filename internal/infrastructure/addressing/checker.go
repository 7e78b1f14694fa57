// Package addressing implements the address verification capability against
// an external HTTP service, behind a circuit breaker.
package addressing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orderflow/order-taking-service/internal/domain"
	"github.com/orderflow/order-taking-service/internal/workflow"
	"github.com/orderflow/order-taking-service/pkg/logging"
	"github.com/orderflow/order-taking-service/pkg/resilience"
)

// Config holds address checker configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}
}

// HTTPAddressChecker verifies addresses against a remote service. Invalid
// and unknown addresses are verification verdicts, not transport failures,
// and do not count against the breaker.
type HTTPAddressChecker struct {
	client  *http.Client
	baseURL string
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

// NewHTTPAddressChecker creates a new HTTPAddressChecker.
func NewHTTPAddressChecker(config *Config, breaker *resilience.CircuitBreaker, logger *logging.Logger) *HTTPAddressChecker {
	return &HTTPAddressChecker{
		client:  &http.Client{Timeout: config.Timeout},
		baseURL: config.BaseURL,
		breaker: breaker,
		logger:  logger.WithComponent("address-checker"),
	}
}

type checkRequest struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

type checkResponse struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	AddressLine3 string `json:"addressLine3"`
	AddressLine4 string `json:"addressLine4"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

// checkResult carries the verification verdict through the breaker so that
// negative verdicts are not counted as service failures.
type checkResult struct {
	checked domain.CheckedAddress
	verdict error
}

// CheckAddress implements workflow.AddressChecker.
func (c *HTTPAddressChecker) CheckAddress(ctx context.Context, address domain.UnvalidatedAddress) (domain.CheckedAddress, error) {
	payload, err := json.Marshal(checkRequest{
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		AddressLine3: address.AddressLine3,
		AddressLine4: address.AddressLine4,
		City:         address.City,
		ZipCode:      address.ZipCode,
	})
	if err != nil {
		return domain.CheckedAddress{}, fmt.Errorf("marshal address check request: %w", err)
	}

	result, err := c.breaker.Execute(func() (any, error) {
		return c.check(ctx, payload)
	})
	if err != nil {
		c.logger.WithError(err).Warn("Address check failed")
		return domain.CheckedAddress{}, err
	}

	res := result.(checkResult)
	if res.verdict != nil {
		return domain.CheckedAddress{}, res.verdict
	}
	return res.checked, nil
}

func (c *HTTPAddressChecker) check(ctx context.Context, payload []byte) (checkResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check", bytes.NewReader(payload))
	if err != nil {
		return checkResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return checkResult{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body checkResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return checkResult{}, fmt.Errorf("decode address check response: %w", err)
		}
		return checkResult{checked: domain.CheckedAddress{
			AddressLine1: body.AddressLine1,
			AddressLine2: body.AddressLine2,
			AddressLine3: body.AddressLine3,
			AddressLine4: body.AddressLine4,
			City:         body.City,
			ZipCode:      body.ZipCode,
		}}, nil
	case http.StatusNotFound:
		return checkResult{verdict: workflow.ErrAddressNotFound}, nil
	case http.StatusUnprocessableEntity:
		return checkResult{verdict: workflow.ErrAddressInvalidFormat}, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return checkResult{}, fmt.Errorf("address service returned %d: %s", resp.StatusCode, body)
	}
}
