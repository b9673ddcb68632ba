package usecase

import "errors"

// MaxAttachmentSizeBytes caps supporting documents at 5 MiB.
const MaxAttachmentSizeBytes = 5 * 1024 * 1024

var (
	ErrFileTooLarge       = errors.New("file too large (max 5MB)")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
)

var allowedAttachmentTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

// ValidateAttachment checks size then declared content type. Pure function;
// the size check is reported first when both fail.
func ValidateAttachment(sizeBytes int64, contentType string) error {
	if sizeBytes > MaxAttachmentSizeBytes {
		return ErrFileTooLarge
	}
	if _, ok := allowedAttachmentTypes[contentType]; !ok {
		return ErrFileTypeNotAllowed
	}
	return nil
}
