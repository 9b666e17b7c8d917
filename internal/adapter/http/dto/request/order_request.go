package request

import "salesdesk/internal/domain/entities"

// OrderRequest carries a partial order. CreatedDate is server-assigned and
// not accepted from callers.
type OrderRequest struct {
	Customer       *string      `json:"customer"`
	Company        *string      `json:"company"`
	ContactName    *string      `json:"contactName"`
	Owner          *string      `json:"owner"`
	QuoteID        *string      `json:"quoteId"`
	Amount         *AmountValue `json:"amount"`
	FinalizedPrice *AmountValue `json:"finalizedPrice"`
	Quantity       *int         `json:"quantity"`
	Payment        *string      `json:"payment"`
	Shipment       *string      `json:"shipment"`
	Status         *string      `json:"status"`
}

func (r OrderRequest) ToPatch(id string) entities.OrderPatch {
	p := entities.OrderPatch{ID: id}
	p.Customer = r.Customer
	p.Company = r.Company
	p.ContactName = r.ContactName
	p.Owner = r.Owner
	p.QuoteID = r.QuoteID
	p.Quantity = r.Quantity
	if r.Amount != nil {
		v := float64(*r.Amount)
		p.Amount = &v
	}
	if r.FinalizedPrice != nil {
		v := float64(*r.FinalizedPrice)
		p.FinalizedPrice = &v
	}
	if r.Payment != nil {
		v := entities.PaymentStatus(*r.Payment)
		p.Payment = &v
	}
	if r.Shipment != nil {
		v := entities.ShipmentStatus(*r.Shipment)
		p.Shipment = &v
	}
	if r.Status != nil {
		v := entities.OrderStatus(*r.Status)
		p.Status = &v
	}
	return p
}
