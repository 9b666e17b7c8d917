package usecase

import "sync"

// StoreOp identifies the mutation that produced a store event.

type StoreOp string

const (
	StoreOpAdd    StoreOp = "add"
	StoreOpUpdate StoreOp = "update"
	StoreOpRemove StoreOp = "remove"
)

// StoreEvent is delivered synchronously to subscribers after a store
// mutation has been applied and persisted.
type StoreEvent struct {
	Entity string  `json:"entity"`
	Op     StoreOp `json:"op"`
	ID     string  `json:"id"`
}

// subscriberList is the observer registry shared by both stores. Guarded by
// its own lock so unsubscribe closures never touch the store lock.
type subscriberList struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(StoreEvent)
}

func newSubscriberList() *subscriberList {
	return &subscriberList{subs: map[int]func(StoreEvent){}}
}

func (l *subscriberList) add(fn func(StoreEvent)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.subs[id] = fn
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}

func (l *subscriberList) notify(ev StoreEvent) {
	l.mu.Lock()
	fns := make([]func(StoreEvent), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
