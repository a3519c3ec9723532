package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/copdilan8-rgb/lacopita/internal/adapter/persistence/draftstore"

	"github.com/gin-gonic/gin"
)

// The draft handler talks straight to the in-memory store, so these tests
// run against the real implementation instead of a mock.
func TestDraftHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := draftstore.NewMemoryStore(0)
	h := NewDraftHandler(store)

	r := gin.New()
	r.PUT("/v1/drafts/:client_id", h.Save)
	r.GET("/v1/drafts/:client_id", h.Get)
	r.DELETE("/v1/drafts/:client_id", h.Delete)

	t.Run("get before save", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drafts/client-1", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("save then get", func(t *testing.T) {
		payload := `{"mesa":"3","items":[{"nombre":"1/4 kg","cantidad":1,"subtotal":12}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/drafts/client-1", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/drafts/client-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		draft, ok := store.Get("client-1")
		if !ok || draft.Table != "3" || len(draft.Items) != 1 {
			t.Fatalf("unexpected stored draft: ok=%v %+v", ok, draft)
		}
	})

	t.Run("delete", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/drafts/client-1", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if _, ok := store.Get("client-1"); ok {
			t.Fatal("expected draft to be gone")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/v1/drafts/client-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
