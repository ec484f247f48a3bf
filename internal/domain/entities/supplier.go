package entities

import "time"

// Supplier is a catalog entry for a third-party service provider.
// Operator costs reference suppliers by id; costs for one-off providers carry
// a free-text name instead.
type Supplier struct {
	ID        string
	Name      string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
