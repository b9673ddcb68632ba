package usecase

import (
	"testing"

	"quotedesk/internal/domain/entities"
)

func TestAccessPolicy(t *testing.T) {
	owner := entities.Identity{UserID: "user-1", Role: entities.RoleSales}
	other := entities.Identity{UserID: "user-2", Role: entities.RoleSales}
	admin := entities.Identity{UserID: "admin-1", Role: entities.RoleAdmin}
	q := entities.Quote{ID: "q-1", SubmittedBy: "user-1"}

	t.Run("read", func(t *testing.T) {
		if !CanReadQuote(owner, q) {
			t.Fatalf("owner must read own quote")
		}
		if !CanReadQuote(admin, q) {
			t.Fatalf("admin must read any quote")
		}
		if CanReadQuote(other, q) {
			t.Fatalf("foreign quote must not be readable")
		}
	})

	t.Run("attach", func(t *testing.T) {
		if !CanAttachToQuote(owner, q) {
			t.Fatalf("owner must attach to own quote")
		}
		if !CanAttachToQuote(admin, q) {
			t.Fatalf("admin must attach to any quote")
		}
		if CanAttachToQuote(other, q) {
			t.Fatalf("foreign quote must not accept attachments")
		}
	})

	t.Run("change status", func(t *testing.T) {
		if CanChangeQuoteStatus(owner) {
			t.Fatalf("sales must not change status")
		}
		if !CanChangeQuoteStatus(admin) {
			t.Fatalf("admin must change status")
		}
	})
}
