package usecase

import (
	"context"
	"errors"

	"salesdesk/internal/domain/entities"
)

var ErrEditorNotBound = errors.New("editor has no record bound")

// Editors bind a draft copy of a stored record. Field changes land on the
// draft only; Save submits the full draft through the store's update, and
// Cancel reverts the draft to the stored record. Nothing here validates
// field values.

type QuoteEditor struct {
	store IQuoteStore
	draft entities.Quote
	bound bool
}

func NewQuoteEditor(store IQuoteStore) *QuoteEditor {
	return &QuoteEditor{store: store}
}

// Begin loads the record into the draft. Returns false when the id is not
// in the store.
func (e *QuoteEditor) Begin(id string) bool {
	q, ok := e.store.Get(id)
	if !ok {
		e.bound = false
		return false
	}
	e.draft = q
	e.bound = true
	return true
}

func (e *QuoteEditor) Draft() entities.Quote {
	return e.draft
}

// Apply merges a partial edit into the draft without touching the store.
func (e *QuoteEditor) Apply(patch entities.QuotePatch) {
	patch.ID = e.draft.ID
	applyQuotePatch(&e.draft, patch)
}

// Save submits the whole draft over the stored record. There is no partial
// save; every top-level field of the draft wins.
func (e *QuoteEditor) Save(ctx context.Context) error {
	if !e.bound {
		return ErrEditorNotBound
	}
	d := e.draft
	return e.store.Update(ctx, entities.QuotePatch{
		ID:              d.ID,
		Customer:        &d.Customer,
		Amount:          &d.Amount,
		Owner:           &d.Owner,
		Stage:           &d.Stage,
		Status:          &d.Status,
		Created:         &d.Created,
		Contact:         &d.Contact,
		LineItems:       &d.LineItems,
		ActivityHistory: &d.ActivityHistory,
	})
}

// Cancel discards the draft, reverting to the stored record.
func (e *QuoteEditor) Cancel() {
	if !e.bound {
		return
	}
	if q, ok := e.store.Get(e.draft.ID); ok {
		e.draft = q
	}
}

type OrderEditor struct {
	store IOrderStore
	draft entities.Order
	bound bool
}

func NewOrderEditor(store IOrderStore) *OrderEditor {
	return &OrderEditor{store: store}
}

func (e *OrderEditor) Begin(id string) bool {
	o, ok := e.store.Get(id)
	if !ok {
		e.bound = false
		return false
	}
	e.draft = o
	e.bound = true
	return true
}

func (e *OrderEditor) Draft() entities.Order {
	return e.draft
}

func (e *OrderEditor) Apply(patch entities.OrderPatch) {
	patch.ID = e.draft.ID
	applyOrderPatch(&e.draft, patch)
}

func (e *OrderEditor) Save(ctx context.Context) error {
	if !e.bound {
		return ErrEditorNotBound
	}
	d := e.draft
	return e.store.Update(ctx, entities.OrderPatch{
		ID:             d.ID,
		Customer:       &d.Customer,
		Company:        &d.Company,
		ContactName:    &d.ContactName,
		Owner:          &d.Owner,
		QuoteID:        &d.QuoteID,
		Amount:         &d.Amount,
		FinalizedPrice: &d.FinalizedPrice,
		Quantity:       &d.Quantity,
		Payment:        &d.Payment,
		Shipment:       &d.Shipment,
		Status:         &d.Status,
		CreatedDate:    &d.CreatedDate,
	})
}

func (e *OrderEditor) Cancel() {
	if !e.bound {
		return
	}
	if o, ok := e.store.Get(e.draft.ID); ok {
		e.draft = o
	}
}
