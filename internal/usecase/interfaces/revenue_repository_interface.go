package interfaces

import (
	"context"

	"turismo_xpto/internal/domain/entities"
)

// IRevenueRepository abstracts read-only access to customer revenue records.
// The booking workflow owns writes.
type IRevenueRepository interface {
	ListAll(ctx context.Context) ([]entities.Revenue, error)
}
