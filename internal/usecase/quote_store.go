package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	quoteIDPrefix          = "Q-"
	defaultQuotesStoreKey  = "quotes"
	quoteStoreEntity       = "quotes"
	quoteCreatedDateLayout = "2006-01-02"
)

// IQuoteStore is the single source of truth for the quote collection within
// one process.
//
// Semantics:
//   - Add fills defaults, assigns a fresh Q-### id and prepends the record.
//   - Update merges the patch's non-nil top-level fields into the record
//     matched by id; an unknown id is a silent no-op.
//   - Remove of an unknown id is a no-op.
//   - Every mutation persists the whole collection through the storage
//     adapter before subscribers are notified.

type IQuoteStore interface {
	List() []entities.Quote
	Get(id string) (entities.Quote, bool)
	Add(ctx context.Context, patch entities.QuotePatch) (entities.Quote, error)
	Update(ctx context.Context, patch entities.QuotePatch) error
	Remove(ctx context.Context, id string) error
	Subscribe(fn func(StoreEvent)) func()
}

type QuoteStore struct {
	mu      sync.Mutex
	storage interfaces.IStorageAdapter
	key     string
	quotes  []entities.Quote
	subs    *subscriberList
}

var _ IQuoteStore = (*QuoteStore)(nil)

// NewQuoteStore loads the collection from storage. A missing or malformed
// payload silently yields an empty collection; only adapter read errors are
// returned (the process treats those as fatal).
func NewQuoteStore(ctx context.Context, storage interfaces.IStorageAdapter) (*QuoteStore, error) {
	s := &QuoteStore{
		storage: storage,
		key:     getenvDefault("QUOTES_STORAGE_KEY", defaultQuotesStoreKey),
		quotes:  []entities.Quote{},
		subs:    newSubscriberList(),
	}

	raw, err := storage.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		var loaded []entities.Quote
		if err := json.Unmarshal(raw, &loaded); err == nil && loaded != nil {
			s.quotes = loaded
		}
	}
	return s, nil
}

func (s *QuoteStore) List() []entities.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

func (s *QuoteStore) Get(id string) (entities.Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.quotes {
		if q.ID == id {
			return q, true
		}
	}
	return entities.Quote{}, false
}

func (s *QuoteStore) Add(ctx context.Context, patch entities.QuotePatch) (entities.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var q entities.Quote
	applyQuotePatch(&q, patch)

	if q.Status == "" {
		q.Status = entities.QuoteStatusPending
	}
	if q.Stage == "" {
		q.Stage = entities.QuoteStageDiscovery
	}
	if q.Created == "" {
		q.Created = time.Now().UTC().Format(quoteCreatedDateLayout)
	}
	if q.LineItems == nil {
		q.LineItems = []entities.QuoteLineItem{}
	}
	if q.ActivityHistory == nil {
		q.ActivityHistory = []entities.QuoteActivity{}
	}
	for i := range q.LineItems {
		if q.LineItems[i].ID == "" {
			q.LineItems[i].ID = uuid.NewString()
		}
	}
	for i := range q.ActivityHistory {
		if q.ActivityHistory[i].ID == "" {
			q.ActivityHistory[i].ID = uuid.NewString()
		}
	}

	ids := make([]string, 0, len(s.quotes))
	for _, existing := range s.quotes {
		ids = append(ids, existing.ID)
	}
	q.ID = nextRecordID(quoteIDPrefix, ids)

	// Quotes prepend so the newest record leads the list.
	s.quotes = append([]entities.Quote{q}, s.quotes...)

	if err := s.persist(ctx); err != nil {
		return entities.Quote{}, err
	}
	s.subs.notify(StoreEvent{Entity: quoteStoreEntity, Op: StoreOpAdd, ID: q.ID})
	return q, nil
}

func (s *QuoteStore) Update(ctx context.Context, patch entities.QuotePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, q := range s.quotes {
		if q.ID == patch.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	applyQuotePatch(&s.quotes[idx], patch)

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.subs.notify(StoreEvent{Entity: quoteStoreEntity, Op: StoreOpUpdate, ID: patch.ID})
	return nil
}

func (s *QuoteStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.quotes[:0]
	found := false
	for _, q := range s.quotes {
		if q.ID == id {
			found = true
			continue
		}
		kept = append(kept, q)
	}
	if !found {
		return nil
	}
	s.quotes = kept

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.subs.notify(StoreEvent{Entity: quoteStoreEntity, Op: StoreOpRemove, ID: id})
	return nil
}

func (s *QuoteStore) Subscribe(fn func(StoreEvent)) func() {
	return s.subs.add(fn)
}

// persist writes the whole collection. Callers hold the lock.
func (s *QuoteStore) persist(ctx context.Context) error {
	b, err := json.Marshal(s.quotes)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, s.key, b)
}

// applyQuotePatch merges the patch's non-nil top-level fields into dst.
// Nested values (contact, line items, activity history) replace the existing
// value wholesale; there is no deep merge.
func applyQuotePatch(dst *entities.Quote, p entities.QuotePatch) {
	if p.Customer != nil {
		dst.Customer = *p.Customer
	}
	if p.Amount != nil {
		dst.Amount = *p.Amount
	}
	if p.Owner != nil {
		dst.Owner = *p.Owner
	}
	if p.Stage != nil {
		dst.Stage = *p.Stage
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.Created != nil {
		dst.Created = *p.Created
	}
	if p.Contact != nil {
		dst.Contact = *p.Contact
	}
	if p.LineItems != nil {
		dst.LineItems = *p.LineItems
	}
	if p.ActivityHistory != nil {
		dst.ActivityHistory = *p.ActivityHistory
	}
}
