package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"main/model"

	"github.com/google/uuid"
)

func TestPDFAppend(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetPDFsRepo(client)
	ctx := context.Background()
	userID := uuid.New().String()
	scope := model.TopicScope(uuid.New().String(), uuid.New().String())

	t.Run("Uploads accumulate in order", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			url := fmt.Sprintf("https://cdn.example.com/file%d.pdf", i)
			if _, err := repo.AddPDF(ctx, userID, scope, url); err != nil {
				t.Fatalf("AddPDF() error = %v", err)
			}
			// created_at granularity has to separate the rows
			time.Sleep(5 * time.Millisecond)
		}

		pdfs, err := repo.GetScopePDFs(ctx, userID, scope)
		if err != nil {
			t.Fatalf("GetScopePDFs() error = %v", err)
		}
		if len(pdfs) != 3 {
			t.Fatalf("Got %d attachments, want 3", len(pdfs))
		}
		for i, pdf := range pdfs {
			want := fmt.Sprintf("https://cdn.example.com/file%d.pdf", i+1)
			if pdf.PDFURL != want {
				t.Errorf("pdfs[%d].PDFURL = %q, want %q", i, pdf.PDFURL, want)
			}
		}
	})

	t.Run("Same filename never replaces", func(t *testing.T) {
		url := "https://cdn.example.com/duplicate.pdf"
		for i := 0; i < 2; i++ {
			if _, err := repo.AddPDF(ctx, userID, scope, url); err != nil {
				t.Fatalf("AddPDF() error = %v", err)
			}
		}

		count, err := repo.CountUserPDFs(ctx, userID)
		if err != nil {
			t.Fatalf("CountUserPDFs() error = %v", err)
		}
		if count != 5 {
			t.Errorf("Attachment count = %d, want 5", count)
		}
	})

	t.Run("General scope does not see topic attachments", func(t *testing.T) {
		pdfs, err := repo.GetScopePDFs(ctx, userID, model.GeneralScope())
		if err != nil {
			t.Fatalf("GetScopePDFs() error = %v", err)
		}
		if len(pdfs) != 0 {
			t.Errorf("General scope sees %d topic attachments", len(pdfs))
		}
	})
}

func TestGetRecentPDFs(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	repo := GetPDFsRepo(client)
	ctx := context.Background()
	userID := uuid.New().String()

	for i := 1; i <= 7; i++ {
		url := fmt.Sprintf("https://cdn.example.com/doc%d.pdf", i)
		if _, err := repo.AddPDF(ctx, userID, model.GeneralScope(), url); err != nil {
			t.Fatalf("AddPDF() error = %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	recent, err := repo.GetRecentPDFs(ctx, userID, 5)
	if err != nil {
		t.Fatalf("GetRecentPDFs() error = %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("Got %d recent attachments, want 5", len(recent))
	}
	// Newest first
	if recent[0].PDFURL != "https://cdn.example.com/doc7.pdf" {
		t.Errorf("recent[0] = %q, want doc7", recent[0].PDFURL)
	}
	if recent[4].PDFURL != "https://cdn.example.com/doc3.pdf" {
		t.Errorf("recent[4] = %q, want doc3", recent[4].PDFURL)
	}
}
