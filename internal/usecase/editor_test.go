package usecase

import (
	"context"
	"errors"
	"testing"

	"salesdesk/internal/domain/entities"
)

func TestQuoteEditor(t *testing.T) {
	t.Run("begin on unknown id fails", func(t *testing.T) {
		store, _ := newQuoteStoreForTest(t)
		ed := NewQuoteEditor(store)
		if ed.Begin("Q-404") {
			t.Fatalf("expected begin to fail")
		}
		if err := ed.Save(context.Background()); !errors.Is(err, ErrEditorNotBound) {
			t.Fatalf("expected ErrEditorNotBound, got %v", err)
		}
	})

	t.Run("draft changes stay local until save", func(t *testing.T) {
		store, _ := newQuoteStoreForTest(t)
		q, _ := store.Add(context.Background(), entities.QuotePatch{Customer: strptr("Acme"), Amount: floatptr(1000)})

		ed := NewQuoteEditor(store)
		if !ed.Begin(q.ID) {
			t.Fatalf("begin failed")
		}
		ed.Apply(entities.QuotePatch{Amount: floatptr(2000)})

		stored, _ := store.Get(q.ID)
		if stored.Amount != 1000 {
			t.Fatalf("draft leaked into store before save")
		}
		if ed.Draft().Amount != 2000 {
			t.Fatalf("draft not updated")
		}

		if err := ed.Save(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, _ = store.Get(q.ID)
		if stored.Amount != 2000 || stored.Customer != "Acme" {
			t.Fatalf("save did not commit full draft: %+v", stored)
		}
	})

	t.Run("cancel reverts to the stored record", func(t *testing.T) {
		store, _ := newQuoteStoreForTest(t)
		q, _ := store.Add(context.Background(), entities.QuotePatch{Customer: strptr("Acme")})

		ed := NewQuoteEditor(store)
		ed.Begin(q.ID)
		ed.Apply(entities.QuotePatch{Customer: strptr("Edited")})
		ed.Cancel()

		if ed.Draft().Customer != "Acme" {
			t.Fatalf("cancel did not revert draft: %+v", ed.Draft())
		}
	})
}

func TestOrderEditor(t *testing.T) {
	store, _ := newOrderStoreForTest(t)
	o, _ := store.Add(context.Background(), entities.OrderPatch{
		Customer: strptr("Acme"),
		Amount:   floatptr(900),
	})

	ed := NewOrderEditor(store)
	if !ed.Begin(o.ID) {
		t.Fatalf("begin failed")
	}
	ed.Apply(entities.OrderPatch{FinalizedPrice: floatptr(850), Quantity: intptr(3)})

	if err := ed.Save(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := store.Get(o.ID)
	if stored.FinalizedPrice != 850 || stored.Quantity != 3 {
		t.Fatalf("save did not commit draft: %+v", stored)
	}
	if stored.Customer != "Acme" || stored.Amount != 900 {
		t.Fatalf("save clobbered unedited fields: %+v", stored)
	}
}
