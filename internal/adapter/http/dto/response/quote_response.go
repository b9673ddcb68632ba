package response

import (
	"time"

	"quotedesk/internal/domain/entities"
)

type QuoteResponse struct {
	ID                 string    `json:"id"`
	OpportunityID      string    `json:"opportunity_id"`
	CustomerName       string    `json:"customer_name"`
	CustomerEmail      string    `json:"customer_email"`
	CustomerCompany    string    `json:"customer_company"`
	Status             string    `json:"status"`
	SupportingDocument string    `json:"supporting_document,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	SubmittedBy        string    `json:"submitted_by"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                 q.ID,
		OpportunityID:      q.OpportunityID,
		CustomerName:       q.CustomerName,
		CustomerEmail:      q.CustomerEmail,
		CustomerCompany:    q.CustomerCompany,
		Status:             string(q.Status),
		SupportingDocument: q.SupportingDocument,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
		SubmittedBy:        q.SubmittedBy,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
