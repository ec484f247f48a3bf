package interfaces

import (
	"context"

	"turismo_xpto/internal/domain/entities"
)

// IHistoryRepository reads the append-only audit log, newest entry first.
//
// There is deliberately no write method here: history entries are appended
// inside the operator cost repository's transactions so the audit record can
// never commit without its state change, nor the other way around.
type IHistoryRepository interface {
	ListByEntityID(ctx context.Context, entityID string) ([]entities.HistoryEntry, error)
}
