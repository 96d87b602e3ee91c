package entities

import "time"

// Payment is an append-only ledger entry for a confirmed package upgrade.
// TransactionID is the processor payment-intent id and is unique.
type Payment struct {
	PaymentID     string
	HREmail       string
	TransactionID string
	SessionID     string
	Amount        float64
	AddedSlots    int
	Date          time.Time
}
