package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ticket-purchase/pkg/utils"

	"go.uber.org/zap"
)

// PaymentClient calls the external payment processor over HTTP. The
// processor is opaque: it either accepts the charge or signals failure,
// and any non-2xx status counts as failure.
type PaymentClient struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewPaymentClient(config utils.GatewayConfig, log *zap.Logger) *PaymentClient {
	return &PaymentClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		log: log.With(zap.String("gateway", "payment")),
	}
}

type paymentRequest struct {
	AccountID int64 `json:"account_id"`
	Amount    int64 `json:"amount"`
}

// MakePayment charges the account for the given amount.
func (c *PaymentClient) MakePayment(ctx context.Context, accountID int64, amount int64) error {
	body, err := json.Marshal(paymentRequest{AccountID: accountID, Amount: amount})
	if err != nil {
		return fmt.Errorf("encode payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call payment processor: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	c.log.Debug("Payment accepted",
		zap.Int64("account_id", accountID),
		zap.Int64("amount", amount),
	)

	return nil
}
