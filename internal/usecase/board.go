package usecase

import (
	"context"
	"sync"

	"salesdesk/internal/domain/entities"
)

// BoardPosition addresses one slot on the kanban board.
type BoardPosition struct {
	Status entities.OrderStatus `json:"status"`
	Index  int                  `json:"index"`
}

// OrderBoard tracks the presentation order of the kanban columns across a
// drag session. The store stays the source of truth for the records; the
// board only owns column ordering, and rebuilds itself from the store
// whenever the record count no longer matches its snapshot (an add or
// remove happened underneath an open drag session).
type OrderBoard struct {
	mu      sync.Mutex
	store   IOrderStore
	columns map[entities.OrderStatus][]string
	total   int
}

func NewOrderBoard(store IOrderStore) *OrderBoard {
	b := &OrderBoard{store: store}
	b.rebuild()
	return b
}

// Columns returns the bucket -> ordered record id mapping, refreshed when
// the store changed size since the last snapshot.
func (b *OrderBoard) Columns() map[entities.OrderStatus][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshIfStale()

	out := make(map[entities.OrderStatus][]string, len(b.columns))
	for st, ids := range b.columns {
		c := make([]string, len(ids))
		copy(c, ids)
		out[st] = c
	}
	return out
}

// Move applies one drop transition. A nil destination (cancelled drag) or a
// destination identical to the source is a no-op. Otherwise the record is
// spliced out of the source column, inserted at the destination index, and
// its status change is propagated to the store. The local reorder is
// optimistic; the store catches up within the same call.
func (b *OrderBoard) Move(ctx context.Context, src BoardPosition, dst *BoardPosition) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshIfStale()

	if dst == nil {
		return nil
	}
	if dst.Status == src.Status && dst.Index == src.Index {
		return nil
	}

	srcIDs, ok := b.columns[src.Status]
	if !ok || src.Index < 0 || src.Index >= len(srcIDs) {
		return nil
	}
	if _, ok := b.columns[dst.Status]; !ok {
		return nil
	}

	id := srcIDs[src.Index]
	b.columns[src.Status] = append(srcIDs[:src.Index], srcIDs[src.Index+1:]...)

	dstIDs := b.columns[dst.Status]
	i := dst.Index
	if i < 0 {
		i = 0
	}
	if i > len(dstIDs) {
		i = len(dstIDs)
	}
	dstIDs = append(dstIDs, "")
	copy(dstIDs[i+1:], dstIDs[i:])
	dstIDs[i] = id
	b.columns[dst.Status] = dstIDs

	status := dst.Status
	return b.store.Update(ctx, entities.OrderPatch{ID: id, Status: &status})
}

// refreshIfStale rebuilds the columns when the store's record count drifted
// from the snapshot. Callers hold the lock.
func (b *OrderBoard) refreshIfStale() {
	if len(b.store.List()) != b.total {
		b.rebuild()
	}
}

func (b *OrderBoard) rebuild() {
	orders := b.store.List()
	cols := make(map[entities.OrderStatus][]string, len(entities.OrderStatuses))
	for _, bucket := range GroupOrdersByStatus(orders) {
		ids := make([]string, 0, len(bucket.Orders))
		for _, o := range bucket.Orders {
			ids = append(ids, o.ID)
		}
		cols[bucket.Status] = ids
	}
	b.columns = cols
	b.total = len(orders)
}

// WidgetBoard is the dashboard widget ordering: a flat ordered list of
// widget ids with the same splice move as the kanban board, no backing
// store, lost on restart.
type WidgetBoard struct {
	mu      sync.Mutex
	widgets []string
}

func NewWidgetBoard(widgets []string) *WidgetBoard {
	w := make([]string, len(widgets))
	copy(w, widgets)
	return &WidgetBoard{widgets: w}
}

func (b *WidgetBoard) Widgets() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.widgets))
	copy(out, b.widgets)
	return out
}

// Move splices the widget at src into position dst. Out-of-range indexes
// and identity moves are no-ops.
func (b *WidgetBoard) Move(src, dst int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if src == dst || src < 0 || src >= len(b.widgets) || dst < 0 || dst >= len(b.widgets) {
		return
	}
	id := b.widgets[src]
	rest := append(b.widgets[:src], b.widgets[src+1:]...)
	rest = append(rest, "")
	copy(rest[dst+1:], rest[dst:])
	rest[dst] = id
	b.widgets = rest
}
