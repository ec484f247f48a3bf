package interfaces

import (
	"context"

	"turismo_xpto/internal/domain/entities"
)

// SortOrderUpdate assigns a new listing position to one service type.
type SortOrderUpdate struct {
	ID        string
	SortOrder int
}

// IServiceTypeRepository abstracts persistence for the service type catalog.
//
// BatchUpdateSortOrder applies every update in one transaction. A nil result
// with a nil error means the transaction was canceled because at least one id
// does not exist; no item was written in that case.
type IServiceTypeRepository interface {
	ListAll(ctx context.Context) ([]entities.ServiceType, error)
	BatchUpdateSortOrder(ctx context.Context, updates []SortOrderUpdate) ([]entities.ServiceType, error)
}
