package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrNotAuthorized         = errors.New("permission denied")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrInvalidQuoteInput     = errors.New("invalid quote input")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrQuoteAlreadyConverted = errors.New("quote already converted")
	ErrQuoteNotApproved      = errors.New("quote must be approved before it can be converted")
	ErrDocumentRequired      = errors.New("a supporting document is required for conversion")
	ErrStatusConflict        = errors.New("quote was modified concurrently")
)

// SubmitQuoteInput carries the caller-provided fields of a new quote.
type SubmitQuoteInput struct {
	OpportunityID   string
	CustomerName    string
	CustomerEmail   string
	CustomerCompany string
}

// AttachmentUpload carries an uploaded supporting document.
type AttachmentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// IQuoteUseCase is the quote lifecycle engine.
//
// Every state-changing operation writes integration log entries in a fixed
// order: the quote store is updated first, then the log entry for the change
// is appended, and only then is the external order system invoked (when the
// new status warrants it), with the outcome appended as a separate entry.
// A failed log append fails the whole operation; a failed gateway call never
// does.

type IQuoteUseCase interface {
	Submit(ctx context.Context, caller entities.Identity, in SubmitQuoteInput) (entities.Quote, error)
	Attach(ctx context.Context, quoteID string, caller entities.Identity, upload AttachmentUpload) (entities.Quote, error)
	SetStatus(ctx context.Context, quoteID string, caller entities.Identity, requestedStatus string) (entities.Quote, error)
	GetByID(ctx context.Context, quoteID string, caller entities.Identity) (entities.Quote, error)
	ListVisible(ctx context.Context, caller entities.Identity) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	logs      interfaces.IIntegrationLogRepository
	documents interfaces.IDocumentStore
	gateway   interfaces.IOrderGateway
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	logs interfaces.IIntegrationLogRepository,
	documents interfaces.IDocumentStore,
	gateway interfaces.IOrderGateway,
) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, logs: logs, documents: documents, gateway: gateway}
}

func (u *QuoteUseCase) Submit(ctx context.Context, caller entities.Identity, in SubmitQuoteInput) (entities.Quote, error) {
	in.OpportunityID = strings.TrimSpace(in.OpportunityID)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	in.CustomerCompany = strings.TrimSpace(in.CustomerCompany)

	if in.OpportunityID == "" || in.CustomerName == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}
	if _, err := mail.ParseAddress(in.CustomerEmail); err != nil {
		return entities.Quote{}, ErrInvalidQuoteInput
	}
	if caller.UserID == "" {
		return entities.Quote{}, ErrNotAuthorized
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:              uuid.NewString(),
		OpportunityID:   in.OpportunityID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerCompany: in.CustomerCompany,
		Status:          entities.QuoteStatusPendingReview,
		CreatedAt:       now,
		UpdatedAt:       now,
		SubmittedBy:     caller.UserID,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] submit create failed opportunity_id=%s err=%v", in.OpportunityID, err)
		return entities.Quote{}, err
	}

	err = u.appendLog(ctx, caller, created.ID, entities.LogActionCreate, string(created.Status),
		map[string]interface{}{
			"opportunity_id":   created.OpportunityID,
			"customer_name":    created.CustomerName,
			"customer_email":   created.CustomerEmail,
			"customer_company": created.CustomerCompany,
		},
		map[string]interface{}{"message": "Quote submitted successfully"},
	)
	if err != nil {
		return entities.Quote{}, err
	}

	log.Printf("[quote][usecase] submit success quote_id=%s opportunity_id=%s", created.ID, created.OpportunityID)
	return created, nil
}

func (u *QuoteUseCase) Attach(ctx context.Context, quoteID string, caller entities.Identity, upload AttachmentUpload) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.loadVisible(ctx, quoteID, caller)
	if err != nil {
		return entities.Quote{}, err
	}
	if !CanAttachToQuote(caller, q) {
		return entities.Quote{}, ErrNotAuthorized
	}
	if err := ValidateAttachment(upload.Size, upload.ContentType); err != nil {
		log.Printf("[quote][usecase] attach rejected quote_id=%s filename=%s err=%v", q.ID, upload.Filename, err)
		return entities.Quote{}, err
	}
	if u.documents == nil {
		return entities.Quote{}, errors.New("document store not configured")
	}

	key, err := u.documents.Save(ctx, q.ID, upload.Filename, upload.ContentType, upload.Data)
	if err != nil {
		log.Printf("[quote][usecase] attach store failed quote_id=%s filename=%s err=%v", q.ID, upload.Filename, err)
		return entities.Quote{}, err
	}

	updated, err := u.repo.UpdateSupportingDocument(ctx, q.ID, key)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	err = u.appendLog(ctx, caller, updated.ID, entities.LogActionUpload, string(updated.Status),
		map[string]interface{}{
			"filename":     upload.Filename,
			"content_type": upload.ContentType,
			"size":         upload.Size,
		},
		map[string]interface{}{"message": "Supporting document uploaded"},
	)
	if err != nil {
		return entities.Quote{}, err
	}

	log.Printf("[quote][usecase] attach success quote_id=%s key=%s", updated.ID, key)
	return updated, nil
}

func (u *QuoteUseCase) SetStatus(ctx context.Context, quoteID string, caller entities.Identity, requestedStatus string) (entities.Quote, error) {
	if !CanChangeQuoteStatus(caller) {
		return entities.Quote{}, ErrNotAuthorized
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	requested := entities.QuoteStatus(strings.TrimSpace(requestedStatus))
	if !requested.Valid() {
		return entities.Quote{}, ErrInvalidStatus
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	// Converted is terminal.
	if q.Status == entities.QuoteStatusConverted {
		return entities.Quote{}, ErrQuoteAlreadyConverted
	}
	if requested == entities.QuoteStatusConverted {
		if q.Status != entities.QuoteStatusApproved {
			return entities.Quote{}, ErrQuoteNotApproved
		}
		if !q.HasSupportingDocument() {
			return entities.Quote{}, ErrDocumentRequired
		}
	}

	updated, err := u.repo.UpdateStatus(ctx, q.ID, q.Status, requested)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		// The conditional update lost against a concurrent transition.
		log.Printf("[quote][usecase] set-status conflict quote_id=%s read_status=%s requested=%s", q.ID, q.Status, requested)
		return entities.Quote{}, ErrStatusConflict
	}

	// The status-change entry must be durable before any integration call.
	err = u.appendLog(ctx, caller, updated.ID, entities.LogActionStatus, string(updated.Status),
		map[string]interface{}{
			"old_status": string(q.Status),
			"new_status": string(updated.Status),
		},
		map[string]interface{}{"message": "Status changed successfully"},
	)
	if err != nil {
		return entities.Quote{}, err
	}

	if updated.Status.TriggersIntegration() {
		if err := u.submitOrderAndLog(ctx, caller, updated); err != nil {
			return entities.Quote{}, err
		}
	}

	log.Printf("[quote][usecase] set-status success quote_id=%s old=%s new=%s", updated.ID, q.Status, updated.Status)
	return updated, nil
}

// submitOrderAndLog performs the single best-effort ERP call and records its
// outcome. A gateway failure is captured as an ERP_FAILURE entry and is not
// returned; only a failure to append the outcome entry itself is an error.
func (u *QuoteUseCase) submitOrderAndLog(ctx context.Context, caller entities.Identity, q entities.Quote) error {
	payload := map[string]interface{}{
		"quote_id":       q.ID,
		"opportunity_id": q.OpportunityID,
		"customer_name":  q.CustomerName,
		"status":         string(q.Status),
		"updated_at":     q.UpdatedAt.Format(time.RFC3339Nano),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	action := entities.LogActionERPSuccess
	var response map[string]interface{}

	if u.gateway == nil {
		action = entities.LogActionERPFailure
		response = map[string]interface{}{"error": "order gateway not configured"}
		log.Printf("[quote][usecase] erp skipped quote_id=%s reason=gateway-not-configured", q.ID)
	} else if respRaw, gErr := u.gateway.SubmitOrder(ctx, raw); gErr != nil {
		action = entities.LogActionERPFailure
		response = map[string]interface{}{"error": gErr.Error()}
		log.Printf("[quote][usecase] erp failure quote_id=%s err=%v", q.ID, gErr)
	} else {
		if jErr := json.Unmarshal(respRaw, &response); jErr != nil {
			response = map[string]interface{}{"raw": string(respRaw)}
		}
		log.Printf("[quote][usecase] erp success quote_id=%s", q.ID)
	}

	return u.appendLog(ctx, caller, q.ID, action, string(q.Status), payload, response)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, quoteID string, caller entities.Identity) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	return u.loadVisible(ctx, quoteID, caller)
}

func (u *QuoteUseCase) ListVisible(ctx context.Context, caller entities.Identity) ([]entities.Quote, error) {
	if caller.IsAdmin() {
		return u.repo.ListAll(ctx)
	}
	return u.repo.ListBySubmitter(ctx, caller.UserID)
}

// loadVisible fetches a quote, hiding its existence from callers outside the
// visibility set: they receive ErrQuoteNotFound rather than a denial.
func (u *QuoteUseCase) loadVisible(ctx context.Context, quoteID string, caller entities.Identity) (entities.Quote, error) {
	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || !CanReadQuote(caller, q) {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) appendLog(
	ctx context.Context,
	caller entities.Identity,
	quoteID string,
	action entities.LogAction,
	status string,
	payload map[string]interface{},
	response map[string]interface{},
) error {
	if u.logs == nil {
		return errors.New("integration log repository not configured")
	}

	payloadRaw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	responseRaw, err := json.Marshal(response)
	if err != nil {
		return err
	}

	entry := entities.IntegrationLog{
		ID:          uuid.NewString(),
		UserID:      caller.UserID,
		QuoteID:     quoteID,
		Action:      action,
		Status:      status,
		Payload:     payload,
		PayloadRaw:  payloadRaw,
		Response:    response,
		ResponseRaw: responseRaw,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := u.logs.Append(ctx, entry); err != nil {
		// The audit trail is a correctness requirement: a lost entry fails
		// the enclosing operation even when the quote row already updated.
		log.Printf("[quote][usecase] log append failed quote_id=%s action=%s err=%v", quoteID, action, err)
		return fmt.Errorf("append integration log: %w", err)
	}
	return nil
}
