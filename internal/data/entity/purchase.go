package entity

// PurchaseOutcome is the result of a completed purchase: the amount paid,
// the seats reserved, and the final valid/invalid ticket mappings. Built
// once per successful call and never mutated afterwards.
type PurchaseOutcome struct {
	Amount         int64
	Seats          int64
	ValidTickets   map[Category]int64
	InvalidTickets map[string]int64
}
