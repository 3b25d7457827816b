package usecase

import (
	"context"
	"strings"
	"testing"

	"main/model"

	"github.com/google/uuid"
)

func TestNotePreview(t *testing.T) {
	t.Run("Short content passes through", func(t *testing.T) {
		if got := notePreview("short note"); got != "short note" {
			t.Errorf("Got %q, want %q", got, "short note")
		}
	})

	t.Run("Long content truncates to the preview length", func(t *testing.T) {
		content := strings.Repeat("a", 80)
		got := notePreview(content)
		if len([]rune(got)) != previewLength {
			t.Errorf("Preview length = %d, want %d", len([]rune(got)), previewLength)
		}
		if !strings.HasPrefix(content, got) {
			t.Errorf("Preview %q is not a prefix of the content", got)
		}
	})

	t.Run("Multi-byte text is not split mid-character", func(t *testing.T) {
		content := strings.Repeat("日", 60)
		got := notePreview(content)
		if len([]rune(got)) != previewLength {
			t.Errorf("Preview rune count = %d, want %d", len([]rune(got)), previewLength)
		}
		for _, r := range got {
			if r != '日' {
				t.Errorf("Preview contains mangled rune %q", r)
			}
		}
	})
}

func TestGetDashboard(t *testing.T) {
	repos, cleanup := setupTestRepos(t)
	defer cleanup()

	hierarchy := hierarchyService(repos)
	dashboard := &DashboardService{
		Subjects: repos.subjects,
		Topics:   repos.topics,
		Notes:    repos.notes,
		PDFs:     repos.pdfs,
	}
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("Empty account", func(t *testing.T) {
		stats, err := dashboard.GetDashboard(ctx, userID)
		if err != nil {
			t.Fatalf("GetDashboard() error = %v", err)
		}
		if stats.Totals.Subjects != 0 || stats.Totals.Topics != 0 || stats.Totals.PDFs != 0 {
			t.Errorf("Totals = %+v, want all zero", stats.Totals)
		}
		if stats.LastNote.HasNote {
			t.Error("Empty account reports a last note")
		}
		if len(stats.RecentPDFs) != 0 {
			t.Errorf("Empty account has %d recent attachments", len(stats.RecentPDFs))
		}
	})

	t.Run("Populated account", func(t *testing.T) {
		subject, err := hierarchy.CreateSubject(ctx, userID, "Biology")
		if err != nil {
			t.Fatalf("CreateSubject() error = %v", err)
		}
		topic, err := hierarchy.CreateTopic(ctx, userID, subject.ID, "Cells")
		if err != nil {
			t.Fatalf("CreateTopic() error = %v", err)
		}

		content := strings.Repeat("mitochondria ", 10)
		if _, err := repos.notes.UpsertNote(ctx, userID, model.GeneralScope(), content); err != nil {
			t.Fatalf("UpsertNote() error = %v", err)
		}
		scope := model.TopicScope(subject.ID, topic.ID)
		if _, err := repos.pdfs.AddPDF(ctx, userID, scope, "https://cdn.example.com/cells.pdf"); err != nil {
			t.Fatalf("AddPDF() error = %v", err)
		}

		stats, err := dashboard.GetDashboard(ctx, userID)
		if err != nil {
			t.Fatalf("GetDashboard() error = %v", err)
		}
		if stats.Totals.Subjects != 1 || stats.Totals.Topics != 1 || stats.Totals.PDFs != 1 {
			t.Errorf("Totals = %+v, want 1/1/1", stats.Totals)
		}
		if !stats.LastNote.HasNote {
			t.Fatal("Dashboard missed the last note")
		}
		if stats.LastNote.Preview != notePreview(content) {
			t.Errorf("Preview = %q, want %q", stats.LastNote.Preview, notePreview(content))
		}
		if len(stats.RecentPDFs) != 1 {
			t.Errorf("Got %d recent attachments, want 1", len(stats.RecentPDFs))
		}
	})

	t.Run("Other users are invisible", func(t *testing.T) {
		stats, err := dashboard.GetDashboard(ctx, uuid.New().String())
		if err != nil {
			t.Fatalf("GetDashboard() error = %v", err)
		}
		if stats.Totals.Subjects != 0 {
			t.Errorf("New user sees %d foreign subjects", stats.Totals.Subjects)
		}
	})
}
