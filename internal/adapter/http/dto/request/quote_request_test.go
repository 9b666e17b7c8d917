package request

import (
	"encoding/json"
	"testing"

	"salesdesk/internal/domain/entities"
)

func TestAmountValue_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "number", in: `1200.5`, want: 1200.5},
		{name: "numeric string", in: `"1000"`, want: 1000},
		{name: "numeric string with spaces", in: `" 42 "`, want: 42},
		{name: "empty string", in: `""`, want: 0},
		{name: "null", in: `null`, want: 0},
		{name: "non numeric string", in: `"abc"`, wantErr: true},
		{name: "object", in: `{}`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a AmountValue
			err := json.Unmarshal([]byte(tc.in), &a)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", a)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if float64(a) != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, float64(a))
			}
		})
	}
}

func TestQuoteRequest_ToPatch(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		var r QuoteRequest
		if err := json.Unmarshal([]byte(`{"customer":"Acme Corp"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p := r.ToPatch("Q-001")
		if p.ID != "Q-001" {
			t.Fatalf("expected Q-001, got %s", p.ID)
		}
		if p.Customer == nil || *p.Customer != "Acme Corp" {
			t.Fatalf("expected customer, got %+v", p.Customer)
		}
		if p.Amount != nil || p.Stage != nil || p.Status != nil || p.LineItems != nil {
			t.Fatalf("absent fields must stay nil: %+v", p)
		}
	})

	t.Run("string amounts convert on line items", func(t *testing.T) {
		var r QuoteRequest
		body := `{"amount":"1500","lineItems":[{"product":"Widget","quantity":2,"unitPrice":"250","total":500}]}`
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p := r.ToPatch("")
		if p.Amount == nil || *p.Amount != 1500 {
			t.Fatalf("expected 1500, got %+v", p.Amount)
		}
		items := *p.LineItems
		if len(items) != 1 || items[0].UnitPrice != 250 || items[0].Total != 500 {
			t.Fatalf("unexpected line items: %+v", items)
		}
	})

	t.Run("stage and status cast to domain enums", func(t *testing.T) {
		stage := "Proposal"
		status := "Approved"
		r := QuoteRequest{Stage: &stage, Status: &status}

		p := r.ToPatch("Q-001")
		if p.Stage == nil || *p.Stage != entities.QuoteStageProposal {
			t.Fatalf("expected Proposal, got %+v", p.Stage)
		}
		if p.Status == nil || *p.Status != entities.QuoteStatusApproved {
			t.Fatalf("expected Approved, got %+v", p.Status)
		}
	})
}
