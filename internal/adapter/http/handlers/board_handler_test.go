package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salesdesk/internal/adapter/persistence/repository"
	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newBoardFixture(t *testing.T) (*usecase.OrderStore, *BoardHandler) {
	t.Helper()
	store, err := usecase.NewOrderStore(context.Background(), repository.NewMemoryStorage())
	if err != nil {
		t.Fatalf("order store: %v", err)
	}
	board := usecase.NewOrderBoard(store)
	return store, NewBoardHandler(board, store)
}

func addBoardOrder(t *testing.T, store *usecase.OrderStore, customer string, status entities.OrderStatus) entities.Order {
	t.Helper()
	o, err := store.Add(context.Background(), entities.OrderPatch{Customer: &customer, Status: &status})
	if err != nil {
		t.Fatalf("add order: %v", err)
	}
	return o
}

func decodeBoard(t *testing.T, body []byte) map[string][]string {
	t.Helper()
	var cols []struct {
		Status string `json:"status"`
		Orders []struct {
			ID string `json:"id"`
		} `json:"orders"`
	}
	if err := json.Unmarshal(body, &cols); err != nil {
		t.Fatalf("invalid board body: %v", err)
	}
	out := make(map[string][]string, len(cols))
	for _, c := range cols {
		ids := make([]string, 0, len(c.Orders))
		for _, o := range c.Orders {
			ids = append(ids, o.ID)
		}
		out[c.Status] = ids
	}
	return out
}

func TestBoardHandler_GetBoard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("orders land in their status columns", func(t *testing.T) {
		store, h := newBoardFixture(t)
		a := addBoardOrder(t, store, "Acme", entities.OrderStatusDraft)
		b := addBoardOrder(t, store, "Globex", entities.OrderStatusActivated)

		r := gin.New()
		r.GET("/v1/orders/board", h.GetBoard)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/board", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cols := decodeBoard(t, w.Body.Bytes())
		if len(cols) != len(entities.OrderStatuses) {
			t.Fatalf("expected %d columns, got %d", len(entities.OrderStatuses), len(cols))
		}
		if got := cols[string(entities.OrderStatusDraft)]; len(got) != 1 || got[0] != a.ID {
			t.Fatalf("expected %s in Draft, got %v", a.ID, got)
		}
		if got := cols[string(entities.OrderStatusActivated)]; len(got) != 1 || got[0] != b.ID {
			t.Fatalf("expected %s in Activated, got %v", b.ID, got)
		}
	})
}

func TestBoardHandler_MoveCard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		_, h := newBoardFixture(t)

		r := gin.New()
		r.POST("/v1/orders/board/move", h.MoveCard)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/board/move", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cross column move updates the order status", func(t *testing.T) {
		store, h := newBoardFixture(t)
		o := addBoardOrder(t, store, "Acme", entities.OrderStatusDraft)

		r := gin.New()
		r.POST("/v1/orders/board/move", h.MoveCard)

		body := `{"source":{"status":"Draft","index":0},"destination":{"status":"Activated","index":0}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/board/move", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cols := decodeBoard(t, w.Body.Bytes())
		if got := cols[string(entities.OrderStatusActivated)]; len(got) != 1 || got[0] != o.ID {
			t.Fatalf("expected %s in Activated, got %v", o.ID, got)
		}
		if got := cols[string(entities.OrderStatusDraft)]; len(got) != 0 {
			t.Fatalf("expected empty Draft column, got %v", got)
		}

		stored, _ := store.Get(o.ID)
		if stored.Status != entities.OrderStatusActivated {
			t.Fatalf("store not updated: %s", stored.Status)
		}
	})

	t.Run("cancelled drag returns the unchanged board", func(t *testing.T) {
		store, h := newBoardFixture(t)
		o := addBoardOrder(t, store, "Acme", entities.OrderStatusDraft)

		r := gin.New()
		r.POST("/v1/orders/board/move", h.MoveCard)

		body := `{"source":{"status":"Draft","index":0},"destination":null}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/board/move", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cols := decodeBoard(t, w.Body.Bytes())
		if got := cols[string(entities.OrderStatusDraft)]; len(got) != 1 || got[0] != o.ID {
			t.Fatalf("expected %s still in Draft, got %v", o.ID, got)
		}
	})
}

func TestDashboardHandler_Widgets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() (*gin.Engine, *DashboardHandler) {
		h := NewDashboardHandler(usecase.NewWidgetBoard([]string{"pipeline", "revenue", "tasks"}))
		r := gin.New()
		r.GET("/v1/dashboard/widgets", h.ListWidgets)
		r.POST("/v1/dashboard/widgets/move", h.MoveWidget)
		return r, h
	}

	t.Run("list", func(t *testing.T) {
		r, _ := newRouter()

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/widgets", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Widgets []string `json:"widgets"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(got.Widgets) != 3 || got.Widgets[0] != "pipeline" {
			t.Fatalf("unexpected widgets: %v", got.Widgets)
		}
	})

	t.Run("move reorders the list", func(t *testing.T) {
		r, _ := newRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/widgets/move", bytes.NewBufferString(`{"source":0,"destination":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Widgets []string `json:"widgets"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		want := []string{"revenue", "tasks", "pipeline"}
		for i, v := range want {
			if got.Widgets[i] != v {
				t.Fatalf("expected %v, got %v", want, got.Widgets)
			}
		}
	})

	t.Run("out of range move is a no-op", func(t *testing.T) {
		r, _ := newRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/widgets/move", bytes.NewBufferString(`{"source":0,"destination":99}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Widgets []string `json:"widgets"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got.Widgets[0] != "pipeline" {
			t.Fatalf("expected unchanged order, got %v", got.Widgets)
		}
	})
}
