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

// ReservationClient calls the external seat booking system over HTTP.
// Reservations commit on the remote side; there is no release endpoint.
type ReservationClient struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewReservationClient(config utils.GatewayConfig, log *zap.Logger) *ReservationClient {
	return &ReservationClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		log: log.With(zap.String("gateway", "reservation")),
	}
}

type reservationRequest struct {
	AccountID int64 `json:"account_id"`
	SeatCount int64 `json:"seat_count"`
}

// ReserveSeat reserves the given number of seats for the account.
func (c *ReservationClient) ReserveSeat(ctx context.Context, accountID int64, seatCount int64) error {
	body, err := json.Marshal(reservationRequest{AccountID: accountID, SeatCount: seatCount})
	if err != nil {
		return fmt.Errorf("encode reservation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reservations", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build reservation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call seat reservation system: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("seat reservation system returned status %d", resp.StatusCode)
	}

	c.log.Debug("Seats reserved",
		zap.Int64("account_id", accountID),
		zap.Int64("seat_count", seatCount),
	)

	return nil
}
