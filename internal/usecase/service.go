package usecase

import (
	"go.uber.org/zap"
)

type Service struct {
	Purchase PurchaseService
}

func NewService(reservation SeatReserver, payment PaymentGateway, log *zap.Logger) *Service {
	return &Service{
		Purchase: NewPurchaseService(reservation, payment, log),
	}
}
