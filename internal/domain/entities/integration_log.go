package entities

import (
	"encoding/json"
	"time"
)

// LogAction classifies an integration log entry.

type LogAction string

const (
	LogActionCreate     LogAction = "CREATE"
	LogActionUpload     LogAction = "UPLOAD"
	LogActionStatus     LogAction = "STATUS"
	LogActionERPSuccess LogAction = "ERP_SUCCESS"
	LogActionERPFailure LogAction = "ERP_FAILURE"
)

// IntegrationLog is the append-only audit record written for every
// state-changing quote operation and every external integration outcome.
// Entries are never updated or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id, SK created_at
//   - GSI (quote_id-index): quote_id, SK created_at
//   - GSI (action-index): action, SK created_at
//
// Payload/Response:
//   - PayloadRaw/ResponseRaw keep the original JSON for traceability.
//   - Payload/Response are parsed representations, useful for querying.
//     (Both are persisted because downstream integrations vary in schema.)

type IntegrationLog struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	QuoteID string    `json:"quote_id,omitempty"`
	Action  LogAction `json:"action"`
	Status  string    `json:"status"`

	Payload     map[string]interface{} `json:"payload,omitempty"`
	PayloadRaw  json.RawMessage        `json:"payload_raw,omitempty"`
	Response    map[string]interface{} `json:"response,omitempty"`
	ResponseRaw json.RawMessage        `json:"response_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
