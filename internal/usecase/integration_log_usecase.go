package usecase

import (
	"context"
	"errors"
	"strings"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
)

var (
	ErrMissingQuoteIDParam = errors.New("quote_id parameter is required")
	ErrMissingActionParam  = errors.New("action parameter is required")
)

// IIntegrationLogUseCase exposes read-only access to the integration log.
// Admins see every entry; other callers only see entries they produced.
// Filtered listings intersect the filter with that visibility rule.

type IIntegrationLogUseCase interface {
	ListVisible(ctx context.Context, caller entities.Identity) ([]entities.IntegrationLog, error)
	ListByQuote(ctx context.Context, caller entities.Identity, quoteID string) ([]entities.IntegrationLog, error)
	ListByAction(ctx context.Context, caller entities.Identity, action string) ([]entities.IntegrationLog, error)
}

type IntegrationLogUseCase struct {
	repo interfaces.IIntegrationLogRepository
}

var _ IIntegrationLogUseCase = (*IntegrationLogUseCase)(nil)

func NewIntegrationLogUseCase(repo interfaces.IIntegrationLogRepository) *IntegrationLogUseCase {
	return &IntegrationLogUseCase{repo: repo}
}

func (u *IntegrationLogUseCase) ListVisible(ctx context.Context, caller entities.Identity) ([]entities.IntegrationLog, error) {
	if caller.IsAdmin() {
		return u.repo.ListAll(ctx)
	}
	return u.repo.ListByUser(ctx, caller.UserID)
}

func (u *IntegrationLogUseCase) ListByQuote(ctx context.Context, caller entities.Identity, quoteID string) ([]entities.IntegrationLog, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrMissingQuoteIDParam
	}

	entries, err := u.repo.ListByQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return restrictToCaller(entries, caller), nil
}

func (u *IntegrationLogUseCase) ListByAction(ctx context.Context, caller entities.Identity, action string) ([]entities.IntegrationLog, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return nil, ErrMissingActionParam
	}

	entries, err := u.repo.ListByAction(ctx, entities.LogAction(action))
	if err != nil {
		return nil, err
	}
	return restrictToCaller(entries, caller), nil
}

func restrictToCaller(entries []entities.IntegrationLog, caller entities.Identity) []entities.IntegrationLog {
	if caller.IsAdmin() {
		return entries
	}
	visible := make([]entities.IntegrationLog, 0, len(entries))
	for _, e := range entries {
		if e.UserID == caller.UserID {
			visible = append(visible, e)
		}
	}
	return visible
}
