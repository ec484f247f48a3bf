package entities

import "time"

// Revenue is money received from a customer against a booking request.
// Read-only here; the booking workflow owns creation.
type Revenue struct {
	ID           string
	RequestID    string
	Description  string
	Amount       int64
	ReceivedDate time.Time
	CreatedAt    time.Time
}
