package interfaces

import "context"

// IDocumentStore abstracts blob storage for quote supporting documents.
// Save stores the bytes and returns an opaque storage key that is kept on
// the quote; the key is the only handle the rest of the system uses.
type IDocumentStore interface {
	Save(ctx context.Context, quoteID, filename, contentType string, data []byte) (string, error)
}
