package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase/interfaces"
)

const (
	orderIDPrefix         = "O-"
	defaultOrdersStoreKey = "orders"
	orderStoreEntity      = "orders"
)

// IOrderStore is the single source of truth for the order collection within
// one process. Same contract as IQuoteStore, with one deliberate asymmetry:
// Add appends instead of prepending.

type IOrderStore interface {
	List() []entities.Order
	Get(id string) (entities.Order, bool)
	Add(ctx context.Context, patch entities.OrderPatch) (entities.Order, error)
	Update(ctx context.Context, patch entities.OrderPatch) error
	Remove(ctx context.Context, id string) error
	Subscribe(fn func(StoreEvent)) func()
}

type OrderStore struct {
	mu      sync.Mutex
	storage interfaces.IStorageAdapter
	key     string
	orders  []entities.Order
	subs    *subscriberList
}

var _ IOrderStore = (*OrderStore)(nil)

// NewOrderStore loads the collection from storage, falling back silently to
// an empty collection on missing or malformed data.
func NewOrderStore(ctx context.Context, storage interfaces.IStorageAdapter) (*OrderStore, error) {
	s := &OrderStore{
		storage: storage,
		key:     getenvDefault("ORDERS_STORAGE_KEY", defaultOrdersStoreKey),
		orders:  []entities.Order{},
		subs:    newSubscriberList(),
	}

	raw, err := storage.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		var loaded []entities.Order
		if err := json.Unmarshal(raw, &loaded); err == nil && loaded != nil {
			s.orders = loaded
		}
	}
	return s, nil
}

func (s *OrderStore) List() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) Get(id string) (entities.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entities.Order{}, false
}

func (s *OrderStore) Add(ctx context.Context, patch entities.OrderPatch) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var o entities.Order
	applyOrderPatch(&o, patch)

	if o.Status == "" {
		o.Status = entities.OrderStatusDraft
	}
	if o.Payment == "" {
		o.Payment = entities.PaymentStatusUnpaid
	}
	if o.Shipment == "" {
		o.Shipment = entities.ShipmentStatusPending
	}
	if o.Quantity < 1 {
		o.Quantity = 1
	}
	if o.CreatedDate.IsZero() {
		o.CreatedDate = time.Now().UTC()
	}

	ids := make([]string, 0, len(s.orders))
	for _, existing := range s.orders {
		ids = append(ids, existing.ID)
	}
	o.ID = nextRecordID(orderIDPrefix, ids)

	// Orders append; list order is creation order.
	s.orders = append(s.orders, o)

	if err := s.persist(ctx); err != nil {
		return entities.Order{}, err
	}
	s.subs.notify(StoreEvent{Entity: orderStoreEntity, Op: StoreOpAdd, ID: o.ID})
	return o, nil
}

func (s *OrderStore) Update(ctx context.Context, patch entities.OrderPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, o := range s.orders {
		if o.ID == patch.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	applyOrderPatch(&s.orders[idx], patch)

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.subs.notify(StoreEvent{Entity: orderStoreEntity, Op: StoreOpUpdate, ID: patch.ID})
	return nil
}

func (s *OrderStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.orders[:0]
	found := false
	for _, o := range s.orders {
		if o.ID == id {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	if !found {
		return nil
	}
	s.orders = kept

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.subs.notify(StoreEvent{Entity: orderStoreEntity, Op: StoreOpRemove, ID: id})
	return nil
}

func (s *OrderStore) Subscribe(fn func(StoreEvent)) func() {
	return s.subs.add(fn)
}

func (s *OrderStore) persist(ctx context.Context) error {
	b, err := json.Marshal(s.orders)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, s.key, b)
}

// applyOrderPatch merges the patch's non-nil top-level fields into dst.
func applyOrderPatch(dst *entities.Order, p entities.OrderPatch) {
	if p.Customer != nil {
		dst.Customer = *p.Customer
	}
	if p.Company != nil {
		dst.Company = *p.Company
	}
	if p.ContactName != nil {
		dst.ContactName = *p.ContactName
	}
	if p.Owner != nil {
		dst.Owner = *p.Owner
	}
	if p.QuoteID != nil {
		dst.QuoteID = *p.QuoteID
	}
	if p.Amount != nil {
		dst.Amount = *p.Amount
	}
	if p.FinalizedPrice != nil {
		dst.FinalizedPrice = *p.FinalizedPrice
	}
	if p.Quantity != nil {
		dst.Quantity = *p.Quantity
	}
	if p.Payment != nil {
		dst.Payment = *p.Payment
	}
	if p.Shipment != nil {
		dst.Shipment = *p.Shipment
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.CreatedDate != nil {
		dst.CreatedDate = *p.CreatedDate
	}
}
