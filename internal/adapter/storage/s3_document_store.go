package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"

	"quotedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultAttachmentsBucket = "quote-attachments"

// S3DocumentStore keeps supporting-document bytes in an S3 bucket and hands
// back the object key as the quote's attachment reference.
//
// Bucket layout: quotes/{quote_id}/{filename}. Re-uploading for the same
// quote and filename overwrites the object; the quote only ever references
// its latest document.

type S3DocumentStore struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IDocumentStore = (*S3DocumentStore)(nil)

func NewS3DocumentStore(client *s3.Client) *S3DocumentStore {
	return &S3DocumentStore{
		client: client,
		bucket: getenvDefault("ATTACHMENTS_BUCKET", defaultAttachmentsBucket),
	}
}

func (s *S3DocumentStore) Save(ctx context.Context, quoteID, filename, contentType string, data []byte) (string, error) {
	name := path.Base(filename)
	if name == "." || name == "/" || name == "" {
		name = "document"
	}
	key := fmt.Sprintf("quotes/%s/%s", quoteID, name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
