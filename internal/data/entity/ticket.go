package entity

import (
	"encoding/json"
	"fmt"
	"math"
)

// Category is a closed enumeration of ticket categories.
type Category string

const (
	CategoryAdult  Category = "ADULT"
	CategoryChild  Category = "CHILD"
	CategoryInfant Category = "INFANT"
)

// Unit prices per category.
const (
	adultPrice  int64 = 30
	childPrice  int64 = 10
	infantPrice int64 = 0
)

// MaxTicketCount caps a validated count. Float coercion loses integer
// precision past 2^53, and anything larger risks overflowing the priced
// amount, which must stay a non-negative int64.
const MaxTicketCount int64 = 1 << 53

// ParseCategory resolves a raw label to a known category. Labels are
// case-sensitive.
func ParseCategory(label string) (Category, bool) {
	switch Category(label) {
	case CategoryAdult, CategoryChild, CategoryInfant:
		return Category(label), true
	default:
		return "", false
	}
}

// Price returns the unit price for the category.
func (c Category) Price() int64 {
	switch c {
	case CategoryAdult:
		return adultPrice
	case CategoryChild:
		return childPrice
	default:
		return infantPrice
	}
}

// Seated reports whether the category occupies its own seat. Infants sit
// on an adult's lap.
func (c Category) Seated() bool {
	return c != CategoryInfant
}

// TicketRequest is a validated (category, positive count) pair. Construct
// only via NewTicketRequest so an unknown category or bad count can never
// reach pricing.
type TicketRequest struct {
	Category Category
	Count    int64
}

// NewTicketRequest validates a raw (label, count) pair. The count must be
// a positive integer after numeric coercion, so "3" and "3.0" both pass
// while "2.5", "-2" and "abc" fail. Counts past MaxTicketCount fail like
// any other bad count.
func NewTicketRequest(label string, count json.Number) (*TicketRequest, error) {
	category, ok := ParseCategory(label)
	if !ok {
		return nil, fmt.Errorf("unknown ticket type %q", label)
	}

	f, err := count.Float64()
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) || f < 1 || f > float64(MaxTicketCount) {
		return nil, fmt.Errorf("ticket count %q is not a positive integer in range", count.String())
	}

	return &TicketRequest{
		Category: category,
		Count:    int64(f),
	}, nil
}

// NumericCount coerces a raw count best effort, for recording rejected
// lines under a whole-number count. Uncoercible counts record as zero,
// fractional counts truncate, and values outside the int64 range clamp
// instead of wrapping.
func NumericCount(raw json.Number) int64 {
	f, err := raw.Float64()
	if err != nil || math.IsNaN(f) {
		return 0
	}
	if f >= float64(math.MaxInt64) {
		return math.MaxInt64
	}
	if f <= float64(math.MinInt64) {
		return math.MinInt64
	}
	return int64(f)
}
