package adaptor

import (
	"ticket-purchase/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Purchase *PurchaseHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Purchase: NewPurchaseHandler(service.Purchase, log),
	}
}
