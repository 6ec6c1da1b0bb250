package entity

// InvalidPurchaseError rejects a purchase call. Every fatal path returns
// this one type; callers distinguish cases by the message and by the
// invalid-ticket mapping carried in Data, not by a typed subcode.
type InvalidPurchaseError struct {
	Message string
	Data    map[string]int64
}

func (e *InvalidPurchaseError) Error() string {
	return e.Message
}

func NewInvalidPurchase(message string) *InvalidPurchaseError {
	return &InvalidPurchaseError{Message: message}
}

func NewInvalidPurchaseWithData(message string, data map[string]int64) *InvalidPurchaseError {
	return &InvalidPurchaseError{Message: message, Data: data}
}
