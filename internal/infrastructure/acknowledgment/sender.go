package acknowledgment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/orderflow/order-taking-service/internal/domain"
	"github.com/orderflow/order-taking-service/pkg/logging"
)

// SenderConfig holds email gateway configuration.
type SenderConfig struct {
	GatewayURL string
	From       string
	Timeout    time.Duration
}

// DefaultSenderConfig returns sensible defaults.
func DefaultSenderConfig(gatewayURL string) *SenderConfig {
	return &SenderConfig{
		GatewayURL: gatewayURL,
		From:       "orders@orderflow.example",
		Timeout:    5 * time.Second,
	}
}

// HTTPAcknowledgmentSender delivers letters through an HTTP email gateway.
type HTTPAcknowledgmentSender struct {
	client *http.Client
	config *SenderConfig
	logger *logging.Logger
}

// NewHTTPAcknowledgmentSender creates a new HTTPAcknowledgmentSender.
func NewHTTPAcknowledgmentSender(config *SenderConfig, logger *logging.Logger) *HTTPAcknowledgmentSender {
	return &HTTPAcknowledgmentSender{
		client: &http.Client{Timeout: config.Timeout},
		config: config,
		logger: logger.WithComponent("acknowledgment-sender"),
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Send implements workflow.AcknowledgmentSender. Every failure mode maps to
// a not-sent result; the caller decides nothing on the basis of why.
func (s *HTTPAcknowledgmentSender) Send(ctx context.Context, ack domain.Acknowledgment) domain.SendResult {
	payload, err := json.Marshal(sendRequest{
		From:    s.config.From,
		To:      ack.EmailAddress.Value(),
		Subject: "Your order confirmation",
		Body:    string(ack.Letter),
	})
	if err != nil {
		s.logger.WithError(err).Warn("Failed to marshal acknowledgment")
		return domain.SendResultNotSent
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.GatewayURL+"/send", bytes.NewReader(payload))
	if err != nil {
		s.logger.WithError(err).Warn("Failed to build acknowledgment request")
		return domain.SendResultNotSent
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WithError(err).Warn("Acknowledgment send failed", "to", ack.EmailAddress.Value())
		return domain.SendResultNotSent
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("Acknowledgment send rejected", "to", ack.EmailAddress.Value(), "status", resp.StatusCode)
		return domain.SendResultNotSent
	}

	return domain.SendResultSent
}
