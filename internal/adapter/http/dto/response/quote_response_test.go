package response

import (
	"testing"
	"time"

	"quotedesk/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:                 "q-1",
		OpportunityID:      "opp-1",
		CustomerName:       "Acme Corp",
		CustomerEmail:      "buyer@acme.test",
		Status:             entities.QuoteStatusApproved,
		SupportingDocument: "quotes/q-1/quote.pdf",
		CreatedAt:          now,
		UpdatedAt:          now,
		SubmittedBy:        "user-1",
	}

	resp := FromQuote(q)
	if resp.ID != "q-1" || resp.Status != string(entities.QuoteStatusApproved) {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.SupportingDocument != "quotes/q-1/quote.pdf" || resp.SubmittedBy != "user-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFromQuotes(t *testing.T) {
	out := FromQuotes([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}})
	if len(out) != 2 || out[0].ID != "q-1" || out[1].ID != "q-2" {
		t.Fatalf("unexpected responses: %+v", out)
	}

	if empty := FromQuotes(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v", empty)
	}
}

func TestFromIntegrationLog(t *testing.T) {
	e := entities.IntegrationLog{
		ID:      "l-1",
		UserID:  "user-1",
		QuoteID: "q-1",
		Action:  entities.LogActionERPSuccess,
		Status:  string(entities.QuoteStatusApproved),
		Payload: map[string]interface{}{"quote_id": "q-1"},
	}

	resp := FromIntegrationLog(e)
	if resp.Action != string(entities.LogActionERPSuccess) || resp.QuoteID != "q-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Payload["quote_id"] != "q-1" {
		t.Fatalf("payload not carried over: %+v", resp)
	}
}
