package entities

import "time"

// OrderStatus represents the fulfillment lifecycle of an order. The kanban
// board uses these values, in this order, as its fixed columns.

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "Draft"
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusActivated OrderStatus = "Activated"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderStatuses is the fixed column order for grouping and charts.
var OrderStatuses = []OrderStatus{
	OrderStatusDraft,
	OrderStatusPending,
	OrderStatusActivated,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// PaymentStatus represents the payment outcome of an order.

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "Unpaid"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// ShipmentStatus represents the shipping progress of an order.

type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "Pending"
	ShipmentStatusShipped   ShipmentStatus = "Shipped"
	ShipmentStatusDelivered ShipmentStatus = "Delivered"
	ShipmentStatusReturned  ShipmentStatus = "Returned"
)

// Order is a sales order owned by the order store.
//
// Storage model:
//   - the whole order collection is serialized as a single JSON array under
//     the orders storage key.
//
// QuoteID is a soft reference to the quote the order came from; nothing
// enforces that the quote still exists.
type Order struct {
	ID             string         `json:"id"`
	Customer       string         `json:"customer"`
	Company        string         `json:"company"`
	ContactName    string         `json:"contactName"`
	Owner          string         `json:"owner"`
	QuoteID        string         `json:"quoteId"`
	Amount         float64        `json:"amount"`
	FinalizedPrice float64        `json:"finalizedPrice"`
	Quantity       int            `json:"quantity"`
	Payment        PaymentStatus  `json:"payment"`
	Shipment       ShipmentStatus `json:"shipment"`
	Status         OrderStatus    `json:"status"`
	CreatedDate    time.Time      `json:"createdDate"`
}

// OrderPatch is a partial order used by add and update operations. Only
// non-nil fields participate in the top-level merge.
type OrderPatch struct {
	ID             string          `json:"id"`
	Customer       *string         `json:"customer"`
	Company        *string         `json:"company"`
	ContactName    *string         `json:"contactName"`
	Owner          *string         `json:"owner"`
	QuoteID        *string         `json:"quoteId"`
	Amount         *float64        `json:"amount"`
	FinalizedPrice *float64        `json:"finalizedPrice"`
	Quantity       *int            `json:"quantity"`
	Payment        *PaymentStatus  `json:"payment"`
	Shipment       *ShipmentStatus `json:"shipment"`
	Status         *OrderStatus    `json:"status"`
	CreatedDate    *time.Time      `json:"createdDate"`
}

// ValidOrderStatus reports whether s is one of the fixed kanban statuses.
func ValidOrderStatus(s OrderStatus) bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}
