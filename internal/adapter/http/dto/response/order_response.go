package response

import (
	"time"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase"
)

type OrderResponse struct {
	ID             string    `json:"id"`
	Customer       string    `json:"customer"`
	Company        string    `json:"company"`
	ContactName    string    `json:"contactName"`
	Owner          string    `json:"owner"`
	QuoteID        string    `json:"quoteId"`
	Amount         float64   `json:"amount"`
	FinalizedPrice float64   `json:"finalizedPrice"`
	Quantity       int       `json:"quantity"`
	Payment        string    `json:"payment"`
	Shipment       string    `json:"shipment"`
	Status         string    `json:"status"`
	CreatedDate    time.Time `json:"createdDate"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		Customer:       o.Customer,
		Company:        o.Company,
		ContactName:    o.ContactName,
		Owner:          o.Owner,
		QuoteID:        o.QuoteID,
		Amount:         o.Amount,
		FinalizedPrice: o.FinalizedPrice,
		Quantity:       o.Quantity,
		Payment:        string(o.Payment),
		Shipment:       string(o.Shipment),
		Status:         string(o.Status),
		CreatedDate:    o.CreatedDate,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// BoardColumnResponse is one kanban column with its records in board order.
type BoardColumnResponse struct {
	Status string          `json:"status"`
	Orders []OrderResponse `json:"orders"`
}

func FromOrderBuckets(buckets []usecase.OrderBucket) []BoardColumnResponse {
	out := make([]BoardColumnResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, BoardColumnResponse{Status: string(b.Status), Orders: FromOrders(b.Orders)})
	}
	return out
}
