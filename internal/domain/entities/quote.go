package entities

import "time"

// QuoteStatus represents the review workflow state of a quote.
//
// Domain notes:
//   - "Pending Review" is the initial status assigned on submission.
//   - "Converted" is terminal: no further status changes are accepted.
//   - Conversion additionally requires an approved quote with a
//     supporting document attached.

type QuoteStatus string

const (
	QuoteStatusPendingReview QuoteStatus = "Pending Review"
	QuoteStatusApproved      QuoteStatus = "Approved"
	QuoteStatusRejected      QuoteStatus = "Rejected"
	QuoteStatusConverted     QuoteStatus = "Converted"
)

// AllQuoteStatuses lists every recognized status value, in workflow order.
func AllQuoteStatuses() []QuoteStatus {
	return []QuoteStatus{
		QuoteStatusPendingReview,
		QuoteStatusApproved,
		QuoteStatusRejected,
		QuoteStatusConverted,
	}
}

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPendingReview, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusConverted:
		return true
	}
	return false
}

// TriggersIntegration reports whether reaching this status must be mirrored
// to the external order system.
func (s QuoteStatus) TriggersIntegration() bool {
	return s == QuoteStatusApproved || s == QuoteStatusConverted
}

// Quote is the sales quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (submitted_by-index): submitted_by, SK created_at
//
// SupportingDocument holds the storage key of the uploaded attachment in the
// blob store; empty means no document has been attached yet.
type Quote struct {
	ID                 string      `json:"id"`
	OpportunityID      string      `json:"opportunity_id"`
	CustomerName       string      `json:"customer_name"`
	CustomerEmail      string      `json:"customer_email"`
	CustomerCompany    string      `json:"customer_company"`
	Status             QuoteStatus `json:"status"`
	SupportingDocument string      `json:"supporting_document"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	SubmittedBy        string      `json:"submitted_by"`
}

func (q Quote) HasSupportingDocument() bool {
	return q.SupportingDocument != ""
}
