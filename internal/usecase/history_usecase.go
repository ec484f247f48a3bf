package usecase

import (
	"context"
	"errors"
	"strings"

	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/internal/usecase/interfaces"
)

var ErrInvalidEntityID = errors.New("invalid entity id")

// IHistoryUseCase exposes the audit trail of an operator cost, newest entry
// first, with actor display names resolved from the user directory.

type IHistoryUseCase interface {
	GetByEntityID(ctx context.Context, entityID string) ([]entities.HistoryEntry, error)
}

type HistoryUseCase struct {
	repo  interfaces.IHistoryRepository
	users interfaces.IUserDirectory
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(repo interfaces.IHistoryRepository, users interfaces.IUserDirectory) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, users: users}
}

func (u *HistoryUseCase) GetByEntityID(ctx context.Context, entityID string) ([]entities.HistoryEntry, error) {
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return nil, ErrInvalidEntityID
	}

	entries, err := u.repo.ListByEntityID(ctx, entityID)
	if err != nil {
		return nil, err
	}

	// One directory lookup per distinct actor; audit trails repeat actors a lot.
	names := make(map[string]string)
	for i := range entries {
		userID := entries[i].UserID
		name, ok := names[userID]
		if !ok {
			name, err = u.users.DisplayNameOf(ctx, userID)
			if err != nil {
				return nil, err
			}
			names[userID] = name
		}
		entries[i].UserName = name
	}
	return entries, nil
}
