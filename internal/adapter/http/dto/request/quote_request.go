package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"salesdesk/internal/domain/entities"
)

// AmountValue accepts a monetary amount as either a JSON number or a
// numeric string ("1000"). The legacy clients send both; internally the
// domain holds numbers only.
type AmountValue float64

func (a *AmountValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		*a = AmountValue(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*a = AmountValue(f)
	return nil
}

type QuoteContactRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Avatar  string `json:"avatar"`
}

type QuoteLineItemRequest struct {
	ID          string      `json:"id"`
	Product     string      `json:"product"`
	Description string      `json:"description"`
	Quantity    int         `json:"quantity"`
	UnitPrice   AmountValue `json:"unitPrice"`
	Total       AmountValue `json:"total"`
}

type QuoteActivityRequest struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	User    string `json:"user"`
	Date    string `json:"date"`
	Details string `json:"details"`
}

// QuoteRequest carries a partial quote: absent fields stay nil and are left
// out of the store merge.
type QuoteRequest struct {
	Customer        *string                 `json:"customer"`
	Amount          *AmountValue            `json:"amount"`
	Owner           *string                 `json:"owner"`
	Stage           *string                 `json:"stage"`
	Status          *string                 `json:"status"`
	Created         *string                 `json:"created"`
	Contact         *QuoteContactRequest    `json:"contact"`
	LineItems       *[]QuoteLineItemRequest `json:"lineItems"`
	ActivityHistory *[]QuoteActivityRequest `json:"activityHistory"`
}

// QuoteStageRequest carries a pipeline stage change.
type QuoteStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

func (r QuoteRequest) ToPatch(id string) entities.QuotePatch {
	p := entities.QuotePatch{ID: id}
	p.Customer = r.Customer
	p.Owner = r.Owner
	p.Created = r.Created
	if r.Amount != nil {
		v := float64(*r.Amount)
		p.Amount = &v
	}
	if r.Stage != nil {
		v := entities.QuoteStage(*r.Stage)
		p.Stage = &v
	}
	if r.Status != nil {
		v := entities.QuoteStatus(*r.Status)
		p.Status = &v
	}
	if r.Contact != nil {
		c := entities.QuoteContact{
			Name:    r.Contact.Name,
			Company: r.Contact.Company,
			Email:   r.Contact.Email,
			Phone:   r.Contact.Phone,
			Avatar:  r.Contact.Avatar,
		}
		p.Contact = &c
	}
	if r.LineItems != nil {
		items := make([]entities.QuoteLineItem, 0, len(*r.LineItems))
		for _, it := range *r.LineItems {
			items = append(items, entities.QuoteLineItem{
				ID:          it.ID,
				Product:     it.Product,
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   float64(it.UnitPrice),
				Total:       float64(it.Total),
			})
		}
		p.LineItems = &items
	}
	if r.ActivityHistory != nil {
		acts := make([]entities.QuoteActivity, 0, len(*r.ActivityHistory))
		for _, a := range *r.ActivityHistory {
			acts = append(acts, entities.QuoteActivity{
				ID:      a.ID,
				Type:    entities.ActivityType(a.Type),
				User:    a.User,
				Date:    a.Date,
				Details: a.Details,
			})
		}
		p.ActivityHistory = &acts
	}
	return p
}
