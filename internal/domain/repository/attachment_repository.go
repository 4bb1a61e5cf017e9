package repository

import (
	"context"
	"io"
)

// AttachmentRepository stores binary attachments (drone images, manuals,
// checklist step images) keyed by path. Upload returns a retrievable URL.
// Deletes are best-effort for callers: a failed cleanup must never block an
// entity mutation.
type AttachmentRepository interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	// KeyForURL maps a previously returned URL back to its storage key, so
	// stale objects can be removed when a record's attachment changes.
	KeyForURL(url string) (string, bool)
}
