package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"turismo_xpto/internal/domain/entities"
	mock_interfaces "turismo_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestHistoryUseCase_GetByEntityID(t *testing.T) {
	t.Run("invalid entity id", func(t *testing.T) {
		uc := NewHistoryUseCase(nil, nil)
		_, err := uc.GetByEntityID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidEntityID) {
			t.Fatalf("expected ErrInvalidEntityID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewHistoryUseCase(repo, nil)

		repo.EXPECT().ListByEntityID(gomock.Any(), "oc-1").Return(nil, errors.New("db"))

		_, err := uc.GetByEntityID(context.Background(), "oc-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("resolves each actor name once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHistoryRepository(ctrl)
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		uc := NewHistoryUseCase(repo, users)

		now := time.Now().UTC()
		repo.EXPECT().ListByEntityID(gomock.Any(), "oc-1").Return([]entities.HistoryEntry{
			{ID: "h-3", EntityID: "oc-1", UserID: "user-1", Timestamp: now},
			{ID: "h-2", EntityID: "oc-1", UserID: "user-2", Timestamp: now.Add(-time.Minute)},
			{ID: "h-1", EntityID: "oc-1", UserID: "user-1", Timestamp: now.Add(-time.Hour)},
		}, nil)
		users.EXPECT().DisplayNameOf(gomock.Any(), "user-1").Return("Maria", nil).Times(1)
		users.EXPECT().DisplayNameOf(gomock.Any(), "user-2").Return("Jonas", nil).Times(1)

		entries, err := uc.GetByEntityID(context.Background(), " oc-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected three entries, got %d", len(entries))
		}
		if entries[0].UserName != "Maria" || entries[1].UserName != "Jonas" || entries[2].UserName != "Maria" {
			t.Fatalf("unexpected names: %+v", entries)
		}
	})

	t.Run("unknown actor keeps an empty name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHistoryRepository(ctrl)
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		uc := NewHistoryUseCase(repo, users)

		repo.EXPECT().ListByEntityID(gomock.Any(), "oc-1").Return([]entities.HistoryEntry{
			{ID: "h-1", EntityID: "oc-1", UserID: "ghost"},
		}, nil)
		users.EXPECT().DisplayNameOf(gomock.Any(), "ghost").Return("", nil)

		entries, err := uc.GetByEntityID(context.Background(), "oc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entries[0].UserName != "" {
			t.Fatalf("expected empty name, got %q", entries[0].UserName)
		}
	})

	t.Run("directory error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHistoryRepository(ctrl)
		users := mock_interfaces.NewMockIUserDirectory(ctrl)
		uc := NewHistoryUseCase(repo, users)

		repo.EXPECT().ListByEntityID(gomock.Any(), "oc-1").Return([]entities.HistoryEntry{
			{ID: "h-1", EntityID: "oc-1", UserID: "user-1"},
		}, nil)
		users.EXPECT().DisplayNameOf(gomock.Any(), "user-1").Return("", errors.New("directory down"))

		_, err := uc.GetByEntityID(context.Background(), "oc-1")
		if err == nil || err.Error() != "directory down" {
			t.Fatalf("expected directory error, got %v", err)
		}
	})
}
