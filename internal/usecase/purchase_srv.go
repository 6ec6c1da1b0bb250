package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/internal/dto/request"

	"go.uber.org/zap"
)

// SeatReserver reserves seats with the external seat booking system.
type SeatReserver interface {
	ReserveSeat(ctx context.Context, accountID int64, seatCount int64) error
}

// PaymentGateway charges an account with the external payment processor.
type PaymentGateway interface {
	MakePayment(ctx context.Context, accountID int64, amount int64) error
}

type PurchaseService interface {
	// PurchaseTickets validates a batch of raw ticket lines, applies the
	// cross-category business rules, reserves seats and takes payment.
	// Every rejection is an *entity.InvalidPurchaseError.
	PurchaseTickets(ctx context.Context, accountID json.Number, lines ...request.TicketLine) (*entity.PurchaseOutcome, error)
}

type purchaseService struct {
	reservation SeatReserver
	payment     PaymentGateway
	log         *zap.Logger
}

func NewPurchaseService(reservation SeatReserver, payment PaymentGateway, log *zap.Logger) PurchaseService {
	return &purchaseService{
		reservation: reservation,
		payment:     payment,
		log:         log.With(zap.String("service", "purchase")),
	}
}

func (s *purchaseService) PurchaseTickets(ctx context.Context, accountID json.Number, lines ...request.TicketLine) (*entity.PurchaseOutcome, error) {
	account, err := parseAccountID(accountID)
	if err != nil {
		s.log.Warn("Purchase rejected - invalid account",
			zap.String("account_id", accountID.String()))
		return nil, entity.NewInvalidPurchase("Invalid Account")
	}

	// A nil slice means the caller sent no ticket list at all. An empty
	// list is allowed and fails later at the no-valid-tickets check.
	if lines == nil {
		s.log.Warn("Purchase rejected - missing ticket requests",
			zap.Int64("account_id", account))
		return nil, entity.NewInvalidPurchase("Invalid Ticket requests")
	}

	ledger := s.classify(lines)
	s.applyBusinessRules(ledger)

	if !ledger.HasValid() {
		s.log.Warn("Purchase rejected - no valid tickets",
			zap.Int64("account_id", account),
			zap.Int("invalid_labels", len(ledger.Invalid)),
		)
		return nil, entity.NewInvalidPurchaseWithData(
			"There are no valid tickets.\n"+ledger.InvalidDetails(),
			ledger.Invalid,
		)
	}

	amount, seats := priceAndSeats(ledger)

	// Reservation runs before payment: paying first would leave a charged
	// but unseated customer when the reservation fails.
	if err := s.reservation.ReserveSeat(ctx, account, seats); err != nil {
		s.log.Error("Seat reservation failed",
			zap.Error(err),
			zap.Int64("account_id", account),
			zap.Int64("seats", seats),
		)
		return nil, entity.NewInvalidPurchase(
			fmt.Sprintf("Account with id: %d is unable to reserve seat", account))
	}

	// The reservation stays committed when payment fails; the seat system
	// offers no release call to compensate with.
	if err := s.payment.MakePayment(ctx, account, amount); err != nil {
		s.log.Error("Payment failed",
			zap.Error(err),
			zap.Int64("account_id", account),
			zap.Int64("amount", amount),
		)
		return nil, entity.NewInvalidPurchase(
			fmt.Sprintf("Account with id: %d is unable to make payment", account))
	}

	s.log.Info("Purchase completed",
		zap.Int64("account_id", account),
		zap.Int64("amount", amount),
		zap.Int64("seats", seats),
		zap.Int("valid_categories", len(ledger.Valid)),
		zap.Int("invalid_labels", len(ledger.Invalid)),
	)

	return &entity.PurchaseOutcome{
		Amount:         amount,
		Seats:          seats,
		ValidTickets:   ledger.Valid,
		InvalidTickets: ledger.Invalid,
	}, nil
}

// classify sorts each raw line into the valid or invalid bucket of a
// fresh ledger. Lines missing a label or count are skipped outright.
func (s *purchaseService) classify(lines []request.TicketLine) *entity.Ledger {
	ledger := entity.NewLedger()

	for _, line := range lines {
		if skipLine(line) {
			continue
		}

		ticket, err := entity.NewTicketRequest(line.Type, line.NoOfTickets)
		if err != nil {
			ledger.AddInvalid(line.Type, entity.NumericCount(line.NoOfTickets))
			continue
		}

		// A line that would push the category total past the count bound
		// is rejected like a bad count, keeping the priced amount and the
		// seat total within int64.
		if ledger.ValidCount(ticket.Category) > entity.MaxTicketCount-ticket.Count {
			ledger.AddInvalid(line.Type, entity.NumericCount(line.NoOfTickets))
			continue
		}

		ledger.AddValid(ticket.Category, ticket.Count)
	}

	return ledger
}

// applyBusinessRules resolves the cross-category constraints, in order.
func (s *purchaseService) applyBusinessRules(ledger *entity.Ledger) {
	// Children and infants cannot purchase unaccompanied: without an
	// adult, every valid entry is rejected.
	if ledger.ValidCount(entity.CategoryAdult) == 0 {
		ledger.DrainValid()
	}

	// One infant per adult lap; the surplus is rejected.
	adults := ledger.ValidCount(entity.CategoryAdult)
	infants := ledger.ValidCount(entity.CategoryInfant)
	if infants > adults {
		ledger.AssignValid(entity.CategoryInfant, adults)
		ledger.AddInvalid(string(entity.CategoryInfant), infants-adults)
	}
}

// priceAndSeats aggregates the resolved valid tickets. Infants are skipped
// structurally, not just priced at zero: they occupy an adult's lap and
// contribute neither amount nor a seat.
func priceAndSeats(ledger *entity.Ledger) (amount int64, seats int64) {
	for category, count := range ledger.Valid {
		if !category.Seated() {
			continue
		}
		seats += count
		amount += count * category.Price()
	}
	return amount, seats
}

// skipLine reports whether a line is missing its label or count. Such
// lines are a deliberate no-op, routed to neither bucket. A count that
// coerces to exactly zero counts as missing.
func skipLine(line request.TicketLine) bool {
	if line.Type == "" || line.NoOfTickets == "" {
		return true
	}
	f, err := line.NoOfTickets.Float64()
	return err == nil && f == 0
}

// parseAccountID accepts any positive integer-valued number, so "3" and
// "3.0" both resolve to account 3. Ids at or beyond 2^63 would not
// survive the int64 conversion and are rejected.
func parseAccountID(accountID json.Number) (int64, error) {
	f, err := accountID.Float64()
	if err != nil {
		return 0, fmt.Errorf("account id %q is not numeric: %w", accountID.String(), err)
	}
	if math.IsNaN(f) || f != math.Trunc(f) || f < 1 || f >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("account id %q is not a positive integer in range", accountID.String())
	}
	return int64(f), nil
}
