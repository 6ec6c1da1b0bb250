package wire

import (
	"ticket-purchase/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePurchase(r chi.Router, purchaseHandler *adaptor.PurchaseHandler) {
	// POST /api/tickets/purchase - validate and fulfil a ticket batch
	r.Post("/api/tickets/purchase", purchaseHandler.PurchaseTickets)
}
