package usecase

import (
	"context"
	"reflect"
	"testing"

	"salesdesk/internal/adapter/persistence/repository"
	"salesdesk/internal/domain/entities"
)

func newOrderStoreForTest(t *testing.T) (*OrderStore, *repository.MemoryStorage) {
	t.Helper()
	storage := repository.NewMemoryStorage()
	store, err := NewOrderStore(context.Background(), storage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store, storage
}

func TestOrderStore_Add(t *testing.T) {
	t.Run("fills defaults and assigns sequential ids", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)

		o, err := store.Add(context.Background(), entities.OrderPatch{Customer: strptr("Acme")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "O-001" {
			t.Fatalf("expected O-001, got %s", o.ID)
		}
		if o.Status != entities.OrderStatusDraft {
			t.Fatalf("expected Draft, got %s", o.Status)
		}
		if o.Payment != entities.PaymentStatusUnpaid {
			t.Fatalf("expected Unpaid, got %s", o.Payment)
		}
		if o.Shipment != entities.ShipmentStatusPending {
			t.Fatalf("expected Pending, got %s", o.Shipment)
		}
		if o.Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", o.Quantity)
		}
		if o.CreatedDate.IsZero() {
			t.Fatalf("expected created date")
		}

		second, _ := store.Add(context.Background(), entities.OrderPatch{Customer: strptr("Globex")})
		if second.ID != "O-002" {
			t.Fatalf("expected O-002, got %s", second.ID)
		}
	})

	t.Run("appends newest order", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)
		store.Add(context.Background(), entities.OrderPatch{Customer: strptr("first")})
		store.Add(context.Background(), entities.OrderPatch{Customer: strptr("second")})

		listed := store.List()
		if listed[0].Customer != "first" || listed[1].Customer != "second" {
			t.Fatalf("expected creation order, got %+v", listed)
		}
	})

	t.Run("keeps valid supplied quantity", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)
		o, _ := store.Add(context.Background(), entities.OrderPatch{Quantity: intptr(5)})
		if o.Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", o.Quantity)
		}
	})
}

func TestOrderStore_Update(t *testing.T) {
	t.Run("merges status without touching the rest", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)
		o, _ := store.Add(context.Background(), entities.OrderPatch{
			Customer: strptr("Acme"),
			Amount:   floatptr(900),
		})

		status := entities.OrderStatusActivated
		if err := store.Update(context.Background(), entities.OrderPatch{ID: o.ID, Status: &status}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, _ := store.Get(o.ID)
		if updated.Status != entities.OrderStatusActivated {
			t.Fatalf("expected Activated, got %s", updated.Status)
		}
		if updated.Customer != "Acme" || updated.Amount != 900 {
			t.Fatalf("untouched fields changed: %+v", updated)
		}
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)
		store.Add(context.Background(), entities.OrderPatch{Customer: strptr("Acme")})
		before := store.List()

		if err := store.Update(context.Background(), entities.OrderPatch{ID: "O-404", Customer: strptr("ghost")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(before, store.List()) {
			t.Fatalf("collection changed")
		}
	})
}

func TestOrderStore_Remove(t *testing.T) {
	store, _ := newOrderStoreForTest(t)
	o, _ := store.Add(context.Background(), entities.OrderPatch{Customer: strptr("Acme")})
	store.Add(context.Background(), entities.OrderPatch{Customer: strptr("Globex")})

	if err := store.Remove(context.Background(), o.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.List()) != 1 {
		t.Fatalf("expected one order left, got %d", len(store.List()))
	}
	if _, ok := store.Get(o.ID); ok {
		t.Fatalf("expected order removed")
	}
}

func TestOrderStore_RoundTrip(t *testing.T) {
	storage := repository.NewMemoryStorage()
	store, err := NewOrderStore(context.Background(), storage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.Add(context.Background(), entities.OrderPatch{Customer: strptr("Acme"), Amount: floatptr(900)})

	reloaded, err := NewOrderStore(context.Background(), storage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, b := store.List(), reloaded.List()
	if len(a) != len(b) {
		t.Fatalf("expected %d orders, got %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Customer != b[i].Customer || a[i].Amount != b[i].Amount {
			t.Fatalf("round-trip mismatch: %+v vs %+v", a[i], b[i])
		}
		if !a[i].CreatedDate.Equal(b[i].CreatedDate) {
			t.Fatalf("created date mismatch: %v vs %v", a[i].CreatedDate, b[i].CreatedDate)
		}
	}
}

func TestOrderStore_LoadMalformedStorage(t *testing.T) {
	storage := repository.NewMemoryStorage()
	storage.Set(context.Background(), defaultOrdersStoreKey, []byte("not json"))

	store, err := NewOrderStore(context.Background(), storage)
	if err != nil {
		t.Fatalf("expected silent fallback, got %v", err)
	}
	if len(store.List()) != 0 {
		t.Fatalf("expected empty collection, got %+v", store.List())
	}
}
