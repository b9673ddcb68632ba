package usecase

import "quotedesk/internal/domain/entities"

// Access rules: a quote is visible to its submitter and to admins; the
// submitter (or an admin) may attach documents; only admins change status.
// Callers outside the visibility set are told the quote does not exist,
// never that it is forbidden.

func CanReadQuote(caller entities.Identity, q entities.Quote) bool {
	return caller.IsAdmin() || q.SubmittedBy == caller.UserID
}

func CanAttachToQuote(caller entities.Identity, q entities.Quote) bool {
	return caller.IsAdmin() || q.SubmittedBy == caller.UserID
}

func CanChangeQuoteStatus(caller entities.Identity) bool {
	return caller.IsAdmin()
}
