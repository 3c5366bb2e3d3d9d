package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// GCSStore keeps files as objects of one Google Cloud Storage bucket.
// Credentials come from the environment (GOOGLE_APPLICATION_CREDENTIALS or workload identity).
type GCSStore struct {
	BucketName string
	Client     *storage.Client
}

// NewGCSStore creates the cloud storage client for bucketName
func NewGCSStore(ctx context.Context, bucketName string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud storage client: %w", err)
	}
	return &GCSStore{
		BucketName: bucketName,
		Client:     client,
	}, nil
}

// Save uploads r as object p
func (s *GCSStore) Save(ctx context.Context, p string, r io.Reader, _ int64, contentType string) error {
	name, err := cleanPath(p)
	if err != nil {
		return err
	}
	wc := s.Client.Bucket(s.BucketName).Object(name).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return fmt.Errorf("failed to write data to object: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close object writer: %w", err)
	}
	return nil
}

// Open downloads object p
func (s *GCSStore) Open(ctx context.Context, p string) (io.ReadCloser, int64, error) {
	name, err := cleanPath(p)
	if err != nil {
		return nil, 0, err
	}
	rc, err := s.Client.Bucket(s.BucketName).Object(name).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open object: %w", err)
	}
	return rc, rc.Attrs.Size, nil
}

// Remove deletes object p
func (s *GCSStore) Remove(ctx context.Context, p string) error {
	name, err := cleanPath(p)
	if err != nil {
		return err
	}
	err = s.Client.Bucket(s.BucketName).Object(name).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return ErrNotFound
	}
	return err
}

// Close releases the underlying client
func (s *GCSStore) Close() error {
	return s.Client.Close()
}
