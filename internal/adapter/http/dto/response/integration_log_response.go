package response

import (
	"time"

	"quotedesk/internal/domain/entities"
)

type IntegrationLogResponse struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	QuoteID   string                 `json:"quote_id,omitempty"`
	Action    string                 `json:"action"`
	Status    string                 `json:"status"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Response  map[string]interface{} `json:"response,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

func FromIntegrationLog(e entities.IntegrationLog) IntegrationLogResponse {
	return IntegrationLogResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		QuoteID:   e.QuoteID,
		Action:    string(e.Action),
		Status:    e.Status,
		Payload:   e.Payload,
		Response:  e.Response,
		CreatedAt: e.CreatedAt,
	}
}

func FromIntegrationLogs(entries []entities.IntegrationLog) []IntegrationLogResponse {
	out := make([]IntegrationLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromIntegrationLog(e))
	}
	return out
}
