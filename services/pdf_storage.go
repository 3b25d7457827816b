package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// PDFStorage is the object-store boundary for uploaded PDFs. The backend only
// needs two things from it: write bytes under a key, and turn a key into a
// public URL.
type PDFStorage interface {
	Upload(ctx context.Context, key string, file io.Reader) error
	PublicURL(key string) string
}

type gcsPDFStorage struct {
	storageClient *storage.Client
	bucketName    string
	cdnDomain     string
}

// NewGCSPDFStorage builds a PDFStorage backed by Google Cloud Storage. The
// bucket name comes from GCS_BUCKET_NAME; GOOGLE_APPLICATION_CREDENTIALS_JSON
// optionally points at a service-account file, otherwise ADC applies.
func NewGCSPDFStorage() (PDFStorage, error) {
	bucket := os.Getenv("GCS_BUCKET_NAME")
	if bucket == "" {
		return nil, fmt.Errorf("missing env var GCS_BUCKET_NAME")
	}
	cdnDomain := os.Getenv("CDN_DOMAIN")

	ctx := context.Background()
	saPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON")

	var stClient *storage.Client
	var err error
	if saPath != "" {
		stClient, err = storage.NewClient(ctx,
			option.WithCredentialsFile(saPath),
			option.WithScopes(storage.ScopeReadWrite))
	} else {
		stClient, err = storage.NewClient(ctx,
			option.WithScopes(storage.ScopeReadWrite))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &gcsPDFStorage{
		storageClient: stClient,
		bucketName:    bucket,
		cdnDomain:     cdnDomain,
	}, nil
}

func (gs *gcsPDFStorage) Upload(ctx context.Context, key string, file io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := gs.storageClient.Bucket(gs.bucketName).Object(key).NewWriter(ctx)
	w.ContentType = "application/pdf"
	if _, err := io.Copy(w, file); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return nil
}

func (gs *gcsPDFStorage) PublicURL(key string) string {
	if gs.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", gs.cdnDomain, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", gs.bucketName, key)
}
