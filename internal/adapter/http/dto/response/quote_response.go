package response

import (
	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase"
)

type QuoteResponse struct {
	ID              string                   `json:"id"`
	Customer        string                   `json:"customer"`
	Amount          float64                  `json:"amount"`
	Owner           string                   `json:"owner"`
	Stage           string                   `json:"stage"`
	Status          string                   `json:"status"`
	Created         string                   `json:"created"`
	Contact         entities.QuoteContact    `json:"contact"`
	LineItems       []entities.QuoteLineItem `json:"lineItems"`
	ActivityHistory []entities.QuoteActivity `json:"activityHistory"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		Customer:        q.Customer,
		Amount:          q.Amount,
		Owner:           q.Owner,
		Stage:           string(q.Stage),
		Status:          string(q.Status),
		Created:         q.Created,
		Contact:         q.Contact,
		LineItems:       q.LineItems,
		ActivityHistory: q.ActivityHistory,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// PipelineColumnResponse is one stage column of the quote pipeline view.
type PipelineColumnResponse struct {
	Stage  string          `json:"stage"`
	Quotes []QuoteResponse `json:"quotes"`
}

func FromQuoteBuckets(buckets []usecase.QuoteBucket) []PipelineColumnResponse {
	out := make([]PipelineColumnResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, PipelineColumnResponse{Stage: string(b.Stage), Quotes: FromQuotes(b.Quotes)})
	}
	return out
}
