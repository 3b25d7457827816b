package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

// PDFService appends uploaded attachments to a scope and lists them back in
// upload order. Files live in object storage; Mongo only keeps the URL.
type PDFService struct {
	PDFs    *repository.PDFsRepo
	Topics  *repository.TopicsRepo
	Storage services.PDFStorage
}

// ListPDFs returns the attachments of the addressed scope, oldest first
func (s *PDFService) ListPDFs(ctx context.Context, userID string, topicID *string) ([]*model.PDF, error) {
	scope, err := resolveScope(ctx, s.Topics, userID, topicID)
	if err != nil {
		return nil, err
	}
	return s.PDFs.GetScopePDFs(ctx, userID, scope)
}

// UploadPDF stores the file bytes under a scope-derived key, then appends an
// attachment row pointing at the public URL. Repeat uploads of the same
// filename never replace earlier ones; the millisecond timestamp in the key
// keeps each upload distinct.
func (s *PDFService) UploadPDF(ctx context.Context, userID string, topicID *string, filename string, file io.Reader) (*model.PDF, error) {
	safeName := utils.SanitizeFilename(filename)
	if safeName == "" {
		return nil, validationError("filename cannot be empty")
	}

	scope, err := resolveScope(ctx, s.Topics, userID, topicID)
	if err != nil {
		return nil, err
	}

	key := storageKey(userID, scope, safeName)
	if err := s.Storage.Upload(ctx, key, file); err != nil {
		utils.TrackError("storage", "pdf_upload_failed")
		return nil, fmt.Errorf("%w: failed to upload file: %v", ErrUpstream, err)
	}

	pdf, err := s.PDFs.AddPDF(ctx, userID, scope, s.Storage.PublicURL(key))
	if err != nil {
		return nil, fmt.Errorf("failed to record attachment: %w", err)
	}

	utils.TrackPDFOperation("upload")
	invalidateDashboard(ctx, userID)
	return pdf, nil
}

// storageKey builds the object key for an upload. General files live under a
// literal "general" folder; topic files under subject/topic folders.
func storageKey(userID string, scope model.Scope, safeName string) string {
	ts := time.Now().UnixMilli()
	if scope.IsGeneral() {
		return fmt.Sprintf("%s/general/%d_%s", userID, ts, safeName)
	}
	return fmt.Sprintf("%s/%s/%s/%d_%s", userID, *scope.SubjectID, *scope.TopicID, ts, safeName)
}
