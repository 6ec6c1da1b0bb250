package entity

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Ledger accumulates the valid and invalid ticket counts for a single
// purchase call. A fresh ledger is built inside every call, so counts
// can never leak between purchases. After the business rules resolve,
// a label lives in at most one of the two maps.
type Ledger struct {
	Valid   map[Category]int64
	Invalid map[string]int64
}

func NewLedger() *Ledger {
	return &Ledger{
		Valid:   make(map[Category]int64),
		Invalid: make(map[string]int64),
	}
}

// AddValid accumulates a validated count, summing across multiple lines
// of the same category.
func (l *Ledger) AddValid(category Category, count int64) {
	l.Valid[category] += count
}

// AddInvalid records a rejected count under its raw label, merging
// additively with any existing invalid count. Merges saturate at the
// int64 bounds instead of wrapping.
func (l *Ledger) AddInvalid(label string, count int64) {
	l.Invalid[label] = saturatingAdd(l.Invalid[label], count)
}

func saturatingAdd(a, b int64) int64 {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt64
	}
	if b < 0 && sum > a {
		return math.MinInt64
	}
	return sum
}

// AssignValid overwrites the valid count for a category.
func (l *Ledger) AssignValid(category Category, count int64) {
	l.Valid[category] = count
}

// ValidCount returns the accumulated valid count, zero when absent.
func (l *Ledger) ValidCount(category Category) int64 {
	return l.Valid[category]
}

// HasValid reports whether any valid tickets remain.
func (l *Ledger) HasValid() bool {
	return len(l.Valid) > 0
}

// DrainValid moves every valid entry into the invalid bucket and clears
// the valid map. An explicit drain-then-clear: the valid map is never
// mutated while being iterated.
func (l *Ledger) DrainValid() {
	for category, count := range l.Valid {
		l.AddInvalid(string(category), count)
	}
	l.Valid = make(map[Category]int64)
}

// InvalidDetails renders the invalid bucket for rejection messages,
// one "LABEL - count" line per entry in label order.
func (l *Ledger) InvalidDetails() string {
	if len(l.Invalid) == 0 {
		return ""
	}

	labels := make([]string, 0, len(l.Invalid))
	for label := range l.Invalid {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var b strings.Builder
	b.WriteString("The following are invalid tickets: \n")
	for _, label := range labels {
		fmt.Fprintf(&b, "%s - %d\n", label, l.Invalid[label])
	}
	return b.String()
}
