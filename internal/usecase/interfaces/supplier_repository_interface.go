package interfaces

import (
	"context"

	"turismo_xpto/internal/domain/entities"
)

// ISupplierRepository abstracts read-only access to the supplier catalog.
type ISupplierRepository interface {
	GetByID(ctx context.Context, id string) (entities.Supplier, error)
	ListAll(ctx context.Context) ([]entities.Supplier, error)
}
