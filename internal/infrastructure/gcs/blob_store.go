package gcs

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// BlobStore stores image blobs in a Google Cloud Storage bucket. Object
// paths double as the opaque blob ids handed to callers.
type BlobStore struct {
	client *storage.Client
	bucket string
}

// NewClient creates a Google Cloud Storage client. If credsPath is empty,
// Application Default Credentials are used.
func NewClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

func NewBlobStore(client *storage.Client, bucket string) *BlobStore {
	return &BlobStore{client: client, bucket: bucket}
}

// Upload writes r to bucket/objectPath and returns the public URL.
func (s *BlobStore) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	wc := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return publicURL(s.bucket, objectPath), nil
}

// Remove deletes a single object. Removing an object that is already gone
// is not an error.
func (s *BlobStore) Remove(ctx context.Context, objectPath string) error {
	err := s.client.Bucket(s.bucket).Object(objectPath).Delete(ctx)
	if err == storage.ErrObjectNotExist {
		return nil
	}
	return err
}

// RemoveMany deletes the given objects, stopping at the first failure.
func (s *BlobStore) RemoveMany(ctx context.Context, objectPaths []string) error {
	for _, p := range objectPaths {
		if err := s.Remove(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// publicURL builds a public URL for an object (assuming public read access)
func publicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
