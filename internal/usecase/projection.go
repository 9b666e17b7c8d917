package usecase

import (
	"strings"

	"salesdesk/internal/domain/entities"
)

// View projections are pure, read-only transformations of a collection
// snapshot. They never mutate the store; the only write path out of a view
// is the documented store Update (see OrderBoard.Move).

// FilterQuotes keeps quotes whose customer matches the query with a
// case-insensitive substring test. An empty query passes every quote.
func FilterQuotes(quotes []entities.Quote, query string) []entities.Quote {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return quotes
	}
	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if strings.Contains(strings.ToLower(q.Customer), query) {
			out = append(out, q)
		}
	}
	return out
}

// FilterOrders keeps orders whose customer matches the query with a
// case-insensitive substring test. An empty query passes every order.
func FilterOrders(orders []entities.Order, query string) []entities.Order {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return orders
	}
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.Customer), query) {
			out = append(out, o)
		}
	}
	return out
}

// OrderBucket is one kanban column of orders.
type OrderBucket struct {
	Status entities.OrderStatus `json:"status"`
	Orders []entities.Order     `json:"orders"`
}

// GroupOrdersByStatus partitions orders into the fixed, ordered status
// buckets. An order carrying a status outside the fixed set lands in the
// Draft bucket for grouping only; its stored status is untouched.
func GroupOrdersByStatus(orders []entities.Order) []OrderBucket {
	buckets := make([]OrderBucket, len(entities.OrderStatuses))
	index := map[entities.OrderStatus]int{}
	for i, st := range entities.OrderStatuses {
		buckets[i] = OrderBucket{Status: st, Orders: []entities.Order{}}
		index[st] = i
	}
	for _, o := range orders {
		i, ok := index[o.Status]
		if !ok {
			i = index[entities.OrderStatusDraft]
		}
		buckets[i].Orders = append(buckets[i].Orders, o)
	}
	return buckets
}

// QuoteBucket is one pipeline column of quotes.
type QuoteBucket struct {
	Stage  entities.QuoteStage `json:"stage"`
	Quotes []entities.Quote    `json:"quotes"`
}

// GroupQuotesByStage partitions quotes into the fixed pipeline stages.
// Quotes with an out-of-set stage land in the first stage for grouping only.
func GroupQuotesByStage(quotes []entities.Quote) []QuoteBucket {
	buckets := make([]QuoteBucket, len(entities.QuoteStages))
	index := map[entities.QuoteStage]int{}
	for i, st := range entities.QuoteStages {
		buckets[i] = QuoteBucket{Stage: st, Quotes: []entities.Quote{}}
		index[st] = i
	}
	for _, q := range quotes {
		i, ok := index[q.Stage]
		if !ok {
			i = 0
		}
		buckets[i].Quotes = append(buckets[i].Quotes, q)
	}
	return buckets
}

// StatusMetrics is the per-bucket chart aggregate.
type StatusMetrics struct {
	Status  entities.OrderStatus `json:"status"`
	Count   int                  `json:"count"`
	Total   float64              `json:"total"`
	Average float64              `json:"average"`
}

// AggregateOrdersByStatus computes count, revenue total and average per
// status bucket. The revenue of an order is its finalized price, falling
// back to the quoted amount when no finalized price is set. Empty buckets
// report an average of 0 rather than dividing by zero.
func AggregateOrdersByStatus(orders []entities.Order) []StatusMetrics {
	out := make([]StatusMetrics, len(entities.OrderStatuses))
	index := map[entities.OrderStatus]int{}
	for i, st := range entities.OrderStatuses {
		out[i] = StatusMetrics{Status: st}
		index[st] = i
	}
	for _, o := range orders {
		i, ok := index[o.Status]
		if !ok {
			i = index[entities.OrderStatusDraft]
		}
		revenue := o.FinalizedPrice
		if revenue == 0 {
			revenue = o.Amount
		}
		out[i].Count++
		out[i].Total += revenue
	}
	for i := range out {
		if out[i].Count > 0 {
			out[i].Average = out[i].Total / float64(out[i].Count)
		}
	}
	return out
}
