package application

import (
	"context"
	"io"
)

// BlobStore is the external image storage. Uploads return a public URL;
// the object path passed in doubles as the blob id kept on records.
type BlobStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
	Remove(ctx context.Context, objectPath string) error
	RemoveMany(ctx context.Context, objectPaths []string) error
}

// EmailSender delivers a rendered email. Implementations must report
// delivery failures; callers fail their operation on error.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// ImageUpload is a staged multipart image ready to be forwarded to the
// blob store.
type ImageUpload struct {
	File        io.Reader
	Filename    string
	ContentType string
}
