package usecase

import (
	"errors"
	"testing"
)

func TestValidateAttachment(t *testing.T) {
	cases := []struct {
		name        string
		size        int64
		contentType string
		want        error
	}{
		{name: "pdf within limit", size: 2 * 1024 * 1024, contentType: "application/pdf", want: nil},
		{name: "jpeg within limit", size: 512, contentType: "image/jpeg", want: nil},
		{name: "png at the limit", size: MaxAttachmentSizeBytes, contentType: "image/png", want: nil},
		{name: "one byte over", size: MaxAttachmentSizeBytes + 1, contentType: "application/pdf", want: ErrFileTooLarge},
		{name: "binary blob", size: 1024, contentType: "application/octet-stream", want: ErrFileTypeNotAllowed},
		{name: "empty content type", size: 1024, contentType: "", want: ErrFileTypeNotAllowed},
		{name: "size checked before type", size: MaxAttachmentSizeBytes + 1, contentType: "text/plain", want: ErrFileTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAttachment(tc.size, tc.contentType)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
