package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"main/model"

	"github.com/google/uuid"
)

// fakeStorage records uploads in memory instead of hitting a bucket
type fakeStorage struct {
	uploads map[string][]byte
	failing bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(ctx context.Context, key string, file io.Reader) error {
	if f.failing {
		return errors.New("bucket unavailable")
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	f.uploads[key] = data
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func TestStorageKey(t *testing.T) {
	t.Run("General scope uses the general folder", func(t *testing.T) {
		key := storageKey("user-1", model.GeneralScope(), "notes.pdf")
		if !strings.HasPrefix(key, "user-1/general/") {
			t.Errorf("Key = %q, want user-1/general/ prefix", key)
		}
		if !strings.HasSuffix(key, "_notes.pdf") {
			t.Errorf("Key = %q, want _notes.pdf suffix", key)
		}
	})

	t.Run("Topic scope nests under subject and topic", func(t *testing.T) {
		key := storageKey("user-1", model.TopicScope("subj-1", "topic-1"), "notes.pdf")
		if !strings.HasPrefix(key, "user-1/subj-1/topic-1/") {
			t.Errorf("Key = %q, want user-1/subj-1/topic-1/ prefix", key)
		}
	})
}

func TestUploadPDF(t *testing.T) {
	repos, cleanup := setupTestRepos(t)
	defer cleanup()

	storage := newFakeStorage()
	svc := &PDFService{PDFs: repos.pdfs, Topics: repos.topics, Storage: storage}
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("General upload stores bytes and records the row", func(t *testing.T) {
		content := []byte("%PDF-1.7 fake body")
		pdf, err := svc.UploadPDF(ctx, userID, nil, "my lecture notes.pdf", bytes.NewReader(content))
		if err != nil {
			t.Fatalf("UploadPDF() error = %v", err)
		}

		if pdf.SubjectID != nil || pdf.TopicID != nil {
			t.Errorf("General upload has scope ids: %v, %v", pdf.SubjectID, pdf.TopicID)
		}
		if !strings.Contains(pdf.PDFURL, "/general/") {
			t.Errorf("PDFURL = %q, want a general path", pdf.PDFURL)
		}
		// Whitespace in the filename gets sanitized to underscores
		if !strings.HasSuffix(pdf.PDFURL, "_my_lecture_notes.pdf") {
			t.Errorf("PDFURL = %q, want sanitized filename suffix", pdf.PDFURL)
		}

		if len(storage.uploads) != 1 {
			t.Fatalf("Storage holds %d objects, want 1", len(storage.uploads))
		}
		for _, data := range storage.uploads {
			if !bytes.Equal(data, content) {
				t.Error("Stored bytes do not match the upload")
			}
		}
	})

	t.Run("Unknown topic rejects before touching storage", func(t *testing.T) {
		before := len(storage.uploads)
		bogus := uuid.New().String()

		_, err := svc.UploadPDF(ctx, userID, &bogus, "doc.pdf", strings.NewReader("body"))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("UploadPDF() = %v, want ErrNotFound", err)
		}
		if len(storage.uploads) != before {
			t.Error("Failed upload still wrote to storage")
		}
	})

	t.Run("Storage failure records no row", func(t *testing.T) {
		storage.failing = true
		defer func() { storage.failing = false }()

		_, err := svc.UploadPDF(ctx, userID, nil, "doc.pdf", strings.NewReader("body"))
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("UploadPDF() = %v, want ErrUpstream", err)
		}

		pdfs, err := svc.ListPDFs(ctx, userID, nil)
		if err != nil {
			t.Fatalf("ListPDFs() error = %v", err)
		}
		if len(pdfs) != 1 {
			t.Errorf("Got %d attachments, want just the earlier success", len(pdfs))
		}
	})
}
