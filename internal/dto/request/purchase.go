package request

import "encoding/json"

// TicketLine is one raw, untrusted ticket request line. The count stays a
// json.Number so the classifier decides what is numeric, not the decoder.
type TicketLine struct {
	Type        string      `json:"type"`
	NoOfTickets json.Number `json:"no_of_tickets"`
}

type PurchaseRequest struct {
	AccountID json.Number  `json:"account_id"`
	Tickets   []TicketLine `json:"tickets"`
}
