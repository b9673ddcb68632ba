package interfaces

import (
	"context"

	"quotedesk/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// UpdateStatus is conditional on the status the caller read: when another
// writer moved the quote first, the update is rejected and a zero-value
// Quote is returned so the use case can surface the conflict. There is no
// delete operation; quote retention is an external concern.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	ListBySubmitter(ctx context.Context, userID string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.QuoteStatus) (entities.Quote, error)
	UpdateSupportingDocument(ctx context.Context, id, documentKey string) (entities.Quote, error)
}
