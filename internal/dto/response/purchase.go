package response

import (
	"ticket-purchase/internal/data/entity"
)

type PurchaseResponse struct {
	Amount         int64                     `json:"amount"`
	Seats          int64                     `json:"seats"`
	ValidTickets   map[entity.Category]int64 `json:"valid_tickets"`
	InvalidTickets map[string]int64          `json:"invalid_tickets"`
}

// Helper converter
func PurchaseToResponse(outcome *entity.PurchaseOutcome) PurchaseResponse {
	return PurchaseResponse{
		Amount:         outcome.Amount,
		Seats:          outcome.Seats,
		ValidTickets:   outcome.ValidTickets,
		InvalidTickets: outcome.InvalidTickets,
	}
}
