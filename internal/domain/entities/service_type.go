package entities

import "time"

// ServiceType is a configurable service category (hotel, transfer, guide, ...)
// referenced by operator costs. SortOrder drives the back-office listing order
// and is reassigned in bulk when categories are rearranged.
type ServiceType struct {
	ID        string
	Name      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
