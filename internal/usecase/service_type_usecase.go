package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/internal/usecase/interfaces"
)

// DynamoDB caps a transaction at 25 items; the catalog is small enough that a
// full reorder fits.
const maxReorderBatch = 25

var (
	ErrServiceTypeNotFound  = errors.New("service type not found")
	ErrReorderForbidden     = errors.New("only admin may reorder service types")
	ErrEmptyReorder         = errors.New("no sort order updates supplied")
	ErrReorderTooLarge      = errors.New("too many sort order updates in one batch")
	ErrDuplicateServiceType = errors.New("duplicate service type id in batch")
)

// IServiceTypeUseCase manages the service category catalog. Reordering is an
// all-or-nothing batch: one unknown id rejects every update.

type IServiceTypeUseCase interface {
	List(ctx context.Context) ([]entities.ServiceType, error)
	Reorder(ctx context.Context, updates []interfaces.SortOrderUpdate, actor entities.Actor) ([]entities.ServiceType, error)
}

type ServiceTypeUseCase struct {
	repo interfaces.IServiceTypeRepository
}

var _ IServiceTypeUseCase = (*ServiceTypeUseCase)(nil)

func NewServiceTypeUseCase(repo interfaces.IServiceTypeRepository) *ServiceTypeUseCase {
	return &ServiceTypeUseCase{repo: repo}
}

func (u *ServiceTypeUseCase) List(ctx context.Context) ([]entities.ServiceType, error) {
	types, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(types, func(i, j int) bool { return types[i].SortOrder < types[j].SortOrder })
	return types, nil
}

func (u *ServiceTypeUseCase) Reorder(ctx context.Context, updates []interfaces.SortOrderUpdate, actor entities.Actor) ([]entities.ServiceType, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, ErrReorderForbidden
	}
	if len(updates) == 0 {
		return nil, ErrEmptyReorder
	}
	if len(updates) > maxReorderBatch {
		return nil, ErrReorderTooLarge
	}

	seen := make(map[string]struct{}, len(updates))
	for i := range updates {
		updates[i].ID = strings.TrimSpace(updates[i].ID)
		if updates[i].ID == "" {
			return nil, ErrServiceTypeNotFound
		}
		if _, dup := seen[updates[i].ID]; dup {
			return nil, ErrDuplicateServiceType
		}
		seen[updates[i].ID] = struct{}{}
	}

	updated, err := u.repo.BatchUpdateSortOrder(ctx, updates)
	if err != nil {
		log.Printf("[servicetype][usecase] reorder persist failed count=%d err=%v", len(updates), err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrServiceTypeNotFound
	}
	return updated, nil
}
