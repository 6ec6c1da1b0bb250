package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"testing"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedCall struct {
	name      string
	accountID int64
	value     int64
}

type collaboratorLog struct {
	calls []recordedCall
}

type fakeReserver struct {
	log *collaboratorLog
	err error
}

func (f *fakeReserver) ReserveSeat(ctx context.Context, accountID int64, seatCount int64) error {
	f.log.calls = append(f.log.calls, recordedCall{"reserve", accountID, seatCount})
	return f.err
}

type fakePayer struct {
	log *collaboratorLog
	err error
}

func (f *fakePayer) MakePayment(ctx context.Context, accountID int64, amount int64) error {
	f.log.calls = append(f.log.calls, recordedCall{"pay", accountID, amount})
	return f.err
}

func newTestService() (PurchaseService, *fakeReserver, *fakePayer, *collaboratorLog) {
	log := &collaboratorLog{}
	reserver := &fakeReserver{log: log}
	payer := &fakePayer{log: log}
	return NewPurchaseService(reserver, payer, zap.NewNop()), reserver, payer, log
}

func line(typ, count string) request.TicketLine {
	return request.TicketLine{Type: typ, NoOfTickets: json.Number(count)}
}

func TestPurchaseTickets_InvalidAccount(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
	}{
		{"absent", ""},
		{"non-numeric", "wrongId"},
		{"zero", "0"},
		{"negative", "-1"},
		{"fractional", "1.5"},
		{"above int64 range", "9300000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, log := newTestService()

			_, err := svc.PurchaseTickets(context.Background(), json.Number(tt.accountID), line("ADULT", "1"))

			require.Error(t, err)
			assert.Equal(t, "Invalid Account", err.Error())
			assert.Empty(t, log.calls, "no collaborator may be called")
		})
	}
}

func TestPurchaseTickets_IntegerValuedAccountAccepted(t *testing.T) {
	svc, _, _, log := newTestService()

	_, err := svc.PurchaseTickets(context.Background(), json.Number("3.0"), line("ADULT", "1"))

	require.NoError(t, err)
	require.Len(t, log.calls, 2)
	assert.Equal(t, int64(3), log.calls[0].accountID)
}

func TestPurchaseTickets_MissingTicketRequests(t *testing.T) {
	svc, _, _, log := newTestService()

	_, err := svc.PurchaseTickets(context.Background(), json.Number("1"))

	require.Error(t, err)
	assert.Equal(t, "Invalid Ticket requests", err.Error())
	assert.Empty(t, log.calls)
}

func TestPurchaseTickets_EmptyTicketList(t *testing.T) {
	svc, _, _, log := newTestService()

	// An empty (non-nil) list is allowed and fails at the
	// no-valid-tickets check instead.
	empty := []request.TicketLine{}
	_, err := svc.PurchaseTickets(context.Background(), json.Number("1"), empty...)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "There are no valid tickets.")
	assert.Empty(t, log.calls)
}

func TestPurchaseTickets_Success(t *testing.T) {
	svc, _, _, log := newTestService()

	outcome, err := svc.PurchaseTickets(context.Background(), json.Number("1"),
		line("ADULT", "10"),
		line("CHILD", "20"),
		line("INFANT", "20"),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(500), outcome.Amount)
	assert.Equal(t, int64(30), outcome.Seats)
	assert.Equal(t, map[entity.Category]int64{
		entity.CategoryAdult:  10,
		entity.CategoryChild:  20,
		entity.CategoryInfant: 10,
	}, outcome.ValidTickets)
	assert.Equal(t, map[string]int64{"INFANT": 10}, outcome.InvalidTickets)

	// Reservation first, payment second.
	require.Len(t, log.calls, 2)
	assert.Equal(t, recordedCall{"reserve", 1, 30}, log.calls[0])
	assert.Equal(t, recordedCall{"pay", 1, 500}, log.calls[1])
}

func TestPurchaseTickets_NoAdultsRejectsEverything(t *testing.T) {
	svc, _, _, log := newTestService()

	_, err := svc.PurchaseTickets(context.Background(), json.Number("1"),
		line("MAN", "10"),
		line("CHILD", "20"),
		line("INFANT", "20"),
	)

	require.Error(t, err)

	var rejection *entity.InvalidPurchaseError
	require.ErrorAs(t, err, &rejection)
	assert.Contains(t, rejection.Message, "There are no valid tickets.")
	assert.Equal(t, map[string]int64{
		"MAN":    10,
		"CHILD":  20,
		"INFANT": 20,
	}, rejection.Data)
	assert.Empty(t, log.calls)
}

func TestPurchaseTickets_SkipsIncompleteLines(t *testing.T) {
	svc, _, _, _ := newTestService()

	outcome, err := svc.PurchaseTickets(context.Background(), json.Number("1"),
		line("ADULT", "2"),
		line("", "5"),
		line("CHILD", ""),
		line("CHILD", "0"),
	)

	require.NoError(t, err)
	assert.Equal(t, map[entity.Category]int64{entity.CategoryAdult: 2}, outcome.ValidTickets)
	assert.Empty(t, outcome.InvalidTickets, "skipped lines land in neither bucket")
	assert.Equal(t, int64(60), outcome.Amount)
	assert.Equal(t, int64(2), outcome.Seats)
}

func TestPurchaseTickets_AccumulatesSameCategory(t *testing.T) {
	svc, _, _, _ := newTestService()

	outcome, err := svc.PurchaseTickets(context.Background(), json.Number("1"),
		line("ADULT", "1"),
		line("ADULT", "2"),
		line("CHILD", "3"),
	)

	require.NoError(t, err)
	assert.Equal(t, map[entity.Category]int64{
		entity.CategoryAdult: 3,
		entity.CategoryChild: 3,
	}, outcome.ValidTickets)
	assert.Equal(t, int64(3*30+3*10), outcome.Amount)
	assert.Equal(t, int64(6), outcome.Seats)
}

func TestPurchaseTickets_InfantsWithinCapacityUntouched(t *testing.T) {
	svc, _, _, _ := newTestService()

	outcome, err := svc.PurchaseTickets(context.Background(), json.Number("1"),
		line("ADULT", "2"),
		line("INFANT", "2"),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(2), outcome.ValidTickets[entity.CategoryInfant])
	assert.Empty(t, outcome.InvalidTickets)
	assert.Equal(t, int64(60), outcome.Amount)
	assert.Equal(t, int64(2), outcome.Seats, "infants occupy no seat")
}

func TestPurchaseTickets_BadCountsRoutedToInvalid(t *testing.T) {
	svc, _, _, _ := newTestService()

	outcome, err := svc.PurchaseTickets(context.Background(), json.Number("1"),
		line("ADULT", "1"),
		line("CHILD", "abc"),
		line("CHILD", "-4"),
		line("CHILD", "2.5"),
	)

	require.NoError(t, err)
	assert.Equal(t, map[entity.Category]int64{entity.CategoryAdult: 1}, outcome.ValidTickets)
	// "abc" coerces to 0, "-4" keeps its value, "2.5" truncates; merges
	// stay additive under the raw label.
	assert.Equal(t, map[string]int64{"CHILD": 0 + -4 + 2}, outcome.InvalidTickets)
	assert.Equal(t, int64(30), outcome.Amount)
	assert.Equal(t, int64(1), outcome.Seats)
}

func TestPurchaseTickets_HugeCountsRoutedToInvalid(t *testing.T) {
	svc, _, _, log := newTestService()

	outcome, err := svc.PurchaseTickets(context.Background(), json.Number("1"),
		line("ADULT", "2"),
		line("CHILD", "400000000000000000"),
		line("INFANT", "9300000000000000000"),
	)

	require.NoError(t, err)
	assert.Equal(t, map[entity.Category]int64{entity.CategoryAdult: 2}, outcome.ValidTickets)
	assert.Equal(t, int64(60), outcome.Amount)
	assert.Equal(t, int64(2), outcome.Seats)
	assert.GreaterOrEqual(t, outcome.Amount, int64(0))
	assert.GreaterOrEqual(t, outcome.Seats, int64(0))

	// Oversized counts land in the invalid bucket without wrapping.
	assert.Equal(t, int64(400000000000000000), outcome.InvalidTickets["CHILD"])
	assert.Equal(t, int64(math.MaxInt64), outcome.InvalidTickets["INFANT"])

	require.Len(t, log.calls, 2)
	assert.Equal(t, recordedCall{"reserve", 1, 2}, log.calls[0])
	assert.Equal(t, recordedCall{"pay", 1, 60}, log.calls[1])
}

func TestPurchaseTickets_CategoryTotalStaysBounded(t *testing.T) {
	svc, _, _, _ := newTestService()

	atBound := strconv.FormatInt(entity.MaxTicketCount, 10)
	outcome, err := svc.PurchaseTickets(context.Background(), json.Number("1"),
		line("ADULT", atBound),
		line("ADULT", atBound), // would push the category total past the bound
	)

	require.NoError(t, err)
	assert.Equal(t, entity.MaxTicketCount, outcome.ValidTickets[entity.CategoryAdult])
	assert.Equal(t, entity.MaxTicketCount, outcome.InvalidTickets["ADULT"])
	assert.Equal(t, entity.MaxTicketCount*30, outcome.Amount)
	assert.Equal(t, entity.MaxTicketCount, outcome.Seats)
	assert.GreaterOrEqual(t, outcome.Amount, int64(0))
	assert.GreaterOrEqual(t, outcome.Seats, int64(0))
}

func TestPurchaseTickets_NoLabelInBothBuckets(t *testing.T) {
	svc, _, _, _ := newTestService()

	outcome, err := svc.PurchaseTickets(context.Background(), json.Number("1"),
		line("ADULT", "3"),
		line("INFANT", "5"),
	)

	require.NoError(t, err)
	for category := range outcome.ValidTickets {
		if category == entity.CategoryInfant {
			// The infant surplus is the one sanctioned split: the capped
			// count stays valid, only the surplus is invalid.
			continue
		}
		_, dup := outcome.InvalidTickets[string(category)]
		assert.False(t, dup, "category %s appears in both buckets", category)
	}
	assert.Equal(t, int64(3), outcome.ValidTickets[entity.CategoryInfant])
	assert.Equal(t, int64(2), outcome.InvalidTickets["INFANT"])
}

func TestPurchaseTickets_ReservationFailureSkipsPayment(t *testing.T) {
	svc, reserver, _, log := newTestService()
	reserver.err = errors.New("seat system down")

	_, err := svc.PurchaseTickets(context.Background(), json.Number("7"), line("ADULT", "2"))

	require.Error(t, err)
	assert.Equal(t, "Account with id: 7 is unable to reserve seat", err.Error())
	require.Len(t, log.calls, 1, "payment must not be attempted after a failed reservation")
	assert.Equal(t, "reserve", log.calls[0].name)
}

func TestPurchaseTickets_PaymentFailureLeavesReservationCommitted(t *testing.T) {
	svc, _, payer, log := newTestService()
	payer.err = errors.New("card declined")

	_, err := svc.PurchaseTickets(context.Background(), json.Number("7"), line("ADULT", "2"))

	require.Error(t, err)
	assert.Equal(t, "Account with id: 7 is unable to make payment", err.Error())
	require.Len(t, log.calls, 2)
	assert.Equal(t, "reserve", log.calls[0].name, "the reservation was already committed")
	assert.Equal(t, "pay", log.calls[1].name)
}

func TestPurchaseTickets_RoundTripIsDeterministic(t *testing.T) {
	svc, _, _, _ := newTestService()
	batch := []request.TicketLine{
		line("ADULT", "10"),
		line("CHILD", "20"),
		line("INFANT", "20"),
		line("MAN", "1"),
	}

	first, err := svc.PurchaseTickets(context.Background(), json.Number("1"), batch...)
	require.NoError(t, err)

	second, err := svc.PurchaseTickets(context.Background(), json.Number("1"), batch...)
	require.NoError(t, err)

	// No hidden accumulation across calls on the same service instance.
	assert.Equal(t, first.Amount, second.Amount)
	assert.Equal(t, first.Seats, second.Seats)
	assert.Equal(t, first.ValidTickets, second.ValidTickets)
	assert.Equal(t, first.InvalidTickets, second.InvalidTickets)
}
