package interfaces

import (
	"context"

	"quotedesk/internal/domain/entities"
)

// IIntegrationLogRepository abstracts DynamoDB persistence for IntegrationLog.
//
// The store is append-only: there is deliberately no update or delete
// operation. All listings return entries newest-first.

type IIntegrationLogRepository interface {
	Append(ctx context.Context, entry entities.IntegrationLog) (entities.IntegrationLog, error)
	ListAll(ctx context.Context) ([]entities.IntegrationLog, error)
	ListByUser(ctx context.Context, userID string) ([]entities.IntegrationLog, error)
	ListByQuote(ctx context.Context, quoteID string) ([]entities.IntegrationLog, error)
	ListByAction(ctx context.Context, action entities.LogAction) ([]entities.IntegrationLog, error)
}
