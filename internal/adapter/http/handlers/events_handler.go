package handlers

import (
	"io"

	"salesdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams store change events over SSE. It is the consumer of
// the stores' subscription mechanism: a connected client re-renders on every
// add/update/remove.

type EventsHandler struct {
	quotes usecase.IQuoteStore
	orders usecase.IOrderStore
}

func NewEventsHandler(quotes usecase.IQuoteStore, orders usecase.IOrderStore) *EventsHandler {
	return &EventsHandler{quotes: quotes, orders: orders}
}

func (h *EventsHandler) Stream(c *gin.Context) {
	events := make(chan usecase.StoreEvent, 16)
	forward := func(ev usecase.StoreEvent) {
		select {
		case events <- ev:
		default:
			// Slow client; drop rather than block the mutating call.
		}
	}

	unsubQuotes := h.quotes.Subscribe(forward)
	unsubOrders := h.orders.Subscribe(forward)
	defer unsubQuotes()
	defer unsubOrders()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-events:
			c.SSEvent("change", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
