package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/copdilan8-rgb/lacopita/internal/adapter/http/handlers/mocks"
	"github.com/copdilan8-rgb/lacopita/internal/domain/entities"
	"github.com/copdilan8-rgb/lacopita/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_Confirm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/pedidos", authAs("user-1"), h.Confirm)

		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty draft is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Confirm(gomock.Any(), "user-1", "client-1", gomock.Any()).
			Return(entities.Order{}, usecase.ErrEmptyDraft)

		r := gin.New()
		r.POST("/v1/pedidos", authAs("user-1"), h.Confirm)

		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", bytes.NewBufferString(`{"client_id":"client-1","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Confirm(gomock.Any(), "user-1", "client-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, draft entities.DraftOrder) (entities.Order, error) {
				if draft.Table != "3" || len(draft.Items) != 1 {
					t.Fatalf("unexpected draft passed to usecase: %+v", draft)
				}
				return entities.Order{ID: "ped-1", Status: entities.OrderStatusEnCurso, TotalAmount: 12}, nil
			})

		r := gin.New()
		r.POST("/v1/pedidos", authAs("user-1"), h.Confirm)

		payload := `{"client_id":"client-1","mesa":"3","items":[{"nombre":"1/4 kg","cantidad":1,"subtotal":12}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("register closed maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Confirm(gomock.Any(), "user-1", "", gomock.Any()).
			Return(entities.Order{}, usecase.ErrRegisterClosed)

		r := gin.New()
		r.POST("/v1/pedidos", authAs("user-1"), h.Confirm)

		payload := `{"mesa":"3","items":[{"nombre":"1/4 kg","cantidad":1,"subtotal":12}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/pedidos", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to en_curso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusEnCurso).
			Return([]entities.Order{{ID: "ped-1"}}, nil)

		r := gin.New()
		r.GET("/v1/pedidos", h.List)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pedidos", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatus("cancelado")).
			Return(nil, usecase.ErrInvalidOrderStatus)

		r := gin.New()
		r.GET("/v1/pedidos", h.List)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pedidos?estado=cancelado", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deliver success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().MarkDelivered(gomock.Any(), "ped-1").
			Return(entities.Order{ID: "ped-1", Status: entities.OrderStatusEntregado}, nil)

		r := gin.New()
		r.PATCH("/v1/pedidos/:id/entregar", h.Deliver)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/pedidos/ped-1/entregar", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("deliver wrong state maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().MarkDelivered(gomock.Any(), "ped-1").
			Return(entities.Order{}, usecase.ErrOrderWrongState)

		r := gin.New()
		r.PATCH("/v1/pedidos/:id/entregar", h.Deliver)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/pedidos/ped-1/entregar", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("pay success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().MarkPaid(gomock.Any(), "ped-1", entities.PaymentMethodEfectivo).
			Return(entities.Order{ID: "ped-1", Status: entities.OrderStatusPagado}, nil)

		r := gin.New()
		r.PATCH("/v1/pedidos/:id/pagar", h.Pay)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pedidos/ped-1/pagar", bytes.NewBufferString(`{"metodo_pago":"efectivo"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("pay not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().MarkPaid(gomock.Any(), "ped-1", entities.PaymentMethodQR).
			Return(entities.Order{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.PATCH("/v1/pedidos/:id/pagar", h.Pay)

		req := httptest.NewRequest(http.MethodPatch, "/v1/pedidos/ped-1/pagar", bytes.NewBufferString(`{"metodo_pago":"qr"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "ped-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/pedidos/:id", h.Delete)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/pedidos/ped-1", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("already settled maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "ped-1").Return(usecase.ErrOrderAlreadySettled)

		r := gin.New()
		r.DELETE("/v1/pedidos/:id", h.Delete)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/pedidos/ped-1", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
