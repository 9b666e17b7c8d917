package usecase

import (
	"context"
	"reflect"
	"testing"

	"salesdesk/internal/domain/entities"
)

func addOrderWithStatus(t *testing.T, store *OrderStore, customer string, status entities.OrderStatus) entities.Order {
	t.Helper()
	o, err := store.Add(context.Background(), entities.OrderPatch{Customer: strptr(customer), Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return o
}

func TestOrderBoard_Move(t *testing.T) {
	t.Run("cross-column move updates the store status", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)
		o := addOrderWithStatus(t, store, "Acme", entities.OrderStatusDraft)
		addOrderWithStatus(t, store, "Globex", entities.OrderStatusPending)

		board := NewOrderBoard(store)
		err := board.Move(context.Background(),
			BoardPosition{Status: entities.OrderStatusDraft, Index: 0},
			&BoardPosition{Status: entities.OrderStatusActivated, Index: 0},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cols := board.Columns()
		if len(cols[entities.OrderStatusDraft]) != 0 {
			t.Fatalf("expected empty Draft column, got %+v", cols[entities.OrderStatusDraft])
		}
		if !reflect.DeepEqual(cols[entities.OrderStatusActivated], []string{o.ID}) {
			t.Fatalf("expected %s in Activated, got %+v", o.ID, cols[entities.OrderStatusActivated])
		}

		updated, _ := store.Get(o.ID)
		if updated.Status != entities.OrderStatusActivated {
			t.Fatalf("store status not propagated: %s", updated.Status)
		}
	})

	t.Run("grouping after status update lands in the new bucket", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)
		o, _ := store.Add(context.Background(), entities.OrderPatch{Customer: strptr("Acme")})

		status := entities.OrderStatusActivated
		store.Update(context.Background(), entities.OrderPatch{ID: o.ID, Status: &status})

		for _, b := range GroupOrdersByStatus(store.List()) {
			switch b.Status {
			case entities.OrderStatusActivated:
				if len(b.Orders) != 1 || b.Orders[0].ID != o.ID {
					t.Fatalf("expected order in Activated, got %+v", b.Orders)
				}
			case entities.OrderStatusDraft:
				if len(b.Orders) != 0 {
					t.Fatalf("order still grouped as Draft")
				}
			}
		}
	})

	t.Run("cancelled drag is a no-op", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)
		o := addOrderWithStatus(t, store, "Acme", entities.OrderStatusDraft)

		board := NewOrderBoard(store)
		if err := board.Move(context.Background(), BoardPosition{Status: entities.OrderStatusDraft, Index: 0}, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, _ := store.Get(o.ID)
		if updated.Status != entities.OrderStatusDraft {
			t.Fatalf("cancelled drag changed status")
		}
	})

	t.Run("identical position is a no-op", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)
		addOrderWithStatus(t, store, "Acme", entities.OrderStatusDraft)

		board := NewOrderBoard(store)
		pos := BoardPosition{Status: entities.OrderStatusDraft, Index: 0}
		if err := board.Move(context.Background(), pos, &pos); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(board.Columns()[entities.OrderStatusDraft], []string{"O-001"}) {
			t.Fatalf("identity move changed column")
		}
	})

	t.Run("reorders within one column", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)
		a := addOrderWithStatus(t, store, "a", entities.OrderStatusPending)
		b := addOrderWithStatus(t, store, "b", entities.OrderStatusPending)
		c := addOrderWithStatus(t, store, "c", entities.OrderStatusPending)

		board := NewOrderBoard(store)
		err := board.Move(context.Background(),
			BoardPosition{Status: entities.OrderStatusPending, Index: 0},
			&BoardPosition{Status: entities.OrderStatusPending, Index: 2},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{b.ID, c.ID, a.ID}
		if got := board.Columns()[entities.OrderStatusPending]; !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("rebuilds after external add", func(t *testing.T) {
		store, _ := newOrderStoreForTest(t)
		addOrderWithStatus(t, store, "Acme", entities.OrderStatusDraft)

		board := NewOrderBoard(store)
		// Add lands while a drag session is open.
		late := addOrderWithStatus(t, store, "Globex", entities.OrderStatusPending)

		cols := board.Columns()
		if !reflect.DeepEqual(cols[entities.OrderStatusPending], []string{late.ID}) {
			t.Fatalf("board missed external add: %+v", cols)
		}
	})
}

func TestWidgetBoard_Move(t *testing.T) {
	cases := []struct {
		name string
		src  int
		dst  int
		want []string
	}{
		{name: "forward", src: 0, dst: 2, want: []string{"b", "c", "a", "d"}},
		{name: "backward", src: 3, dst: 0, want: []string{"d", "a", "b", "c"}},
		{name: "identity", src: 1, dst: 1, want: []string{"a", "b", "c", "d"}},
		{name: "src out of range", src: 9, dst: 0, want: []string{"a", "b", "c", "d"}},
		{name: "dst out of range", src: 0, dst: 9, want: []string{"a", "b", "c", "d"}},
		{name: "negative src", src: -1, dst: 2, want: []string{"a", "b", "c", "d"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board := NewWidgetBoard([]string{"a", "b", "c", "d"})
			board.Move(tc.src, tc.dst)
			if got := board.Widgets(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
