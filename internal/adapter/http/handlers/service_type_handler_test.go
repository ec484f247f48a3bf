package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"turismo_xpto/internal/adapter/http/handlers/mocks"
	"turismo_xpto/internal/domain/entities"
	"turismo_xpto/internal/usecase"
	"turismo_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceTypeHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceTypeUseCase(ctrl)
		h := NewServiceTypeHandler(uc)

		r := gin.New()
		r.GET("/v1/service-types", h.List)

		uc.EXPECT().List(gomock.Any()).Return([]entities.ServiceType{
			{ID: "st-1", Name: "Hotel", SortOrder: 1},
			{ID: "st-2", Name: "Transfer", SortOrder: 2},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-types", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["name"] != "Hotel" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceTypeHandler_Reorder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	admin := entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}

	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceTypeUseCase(ctrl)
		h := NewServiceTypeHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-types/sort-order", h.Reorder)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-types/sort-order", bytes.NewBufferString(`{"items":[{"id":"st-1","sort_order":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("empty items rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceTypeUseCase(ctrl)
		h := NewServiceTypeHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-types/sort-order", withActor(admin), h.Reorder)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-types/sort-order", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceTypeUseCase(ctrl)
		h := NewServiceTypeHandler(uc)

		seller := entities.Actor{ID: "user-1", Role: entities.RoleSeller}
		r := gin.New()
		r.PATCH("/v1/service-types/sort-order", withActor(seller), h.Reorder)

		uc.EXPECT().Reorder(gomock.Any(), gomock.Any(), seller).Return(nil, usecase.ErrReorderForbidden)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-types/sort-order", bytes.NewBufferString(`{"items":[{"id":"st-1","sort_order":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceTypeUseCase(ctrl)
		h := NewServiceTypeHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-types/sort-order", withActor(admin), h.Reorder)

		uc.EXPECT().Reorder(gomock.Any(), gomock.Any(), admin).Return(nil, usecase.ErrServiceTypeNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-types/sort-order", bytes.NewBufferString(`{"items":[{"id":"st-missing","sort_order":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceTypeUseCase(ctrl)
		h := NewServiceTypeHandler(uc)

		r := gin.New()
		r.PATCH("/v1/service-types/sort-order", withActor(admin), h.Reorder)

		uc.EXPECT().Reorder(gomock.Any(), []interfaces.SortOrderUpdate{
			{ID: "st-2", SortOrder: 1},
			{ID: "st-1", SortOrder: 2},
		}, admin).Return([]entities.ServiceType{
			{ID: "st-2", Name: "Transfer", SortOrder: 1},
			{ID: "st-1", Name: "Hotel", SortOrder: 2},
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/service-types/sort-order", bytes.NewBufferString(`{"items":[{"id":"st-2","sort_order":1},{"id":"st-1","sort_order":2}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "st-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
