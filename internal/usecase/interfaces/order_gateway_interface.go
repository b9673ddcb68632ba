package interfaces

import (
	"context"
	"encoding/json"
)

// IOrderGateway abstracts the external order-management system (ERP).
//
// SubmitOrder performs a single attempt with a bounded timeout; there is no
// retry. Any failure (transport error, timeout, non-success response) comes
// back as an error carrying a human-readable reason. The use case records
// the outcome in the integration log and never propagates gateway failures
// to its own caller.
type IOrderGateway interface {
	SubmitOrder(ctx context.Context, orderPayload json.RawMessage) (response json.RawMessage, err error)
}
