package usecase

import (
	"context"
	"fmt"
	"strings"

	"main/model"
	"main/repository"
	"main/utils"
)

const maxNoteLength = 50000

// NotesService reads and writes the single note each (user, scope) pair
// carries. The scope is addressed by an optional topic id; no topic means
// the General scope.
type NotesService struct {
	Notes  *repository.NotesRepo
	Topics *repository.TopicsRepo
}

// GetNote returns the note of the addressed scope, or nil when no note has
// been written there yet.
func (s *NotesService) GetNote(ctx context.Context, userID string, topicID *string) (*model.Note, error) {
	scope, err := resolveScope(ctx, s.Topics, userID, topicID)
	if err != nil {
		return nil, err
	}
	return s.Notes.GetNote(ctx, userID, scope)
}

// UpsertNote replaces the note content of the addressed scope, creating the
// note on first write. Saving always overwrites; there is no append.
func (s *NotesService) UpsertNote(ctx context.Context, userID string, topicID *string, content string) (*model.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, validationError("note content cannot be empty")
	}
	if len(content) > maxNoteLength {
		return nil, validationError("note content cannot exceed %d characters", maxNoteLength)
	}

	scope, err := resolveScope(ctx, s.Topics, userID, topicID)
	if err != nil {
		return nil, err
	}

	note, err := s.Notes.UpsertNote(ctx, userID, scope, content)
	if err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}

	utils.TrackNoteOperation("upsert")
	invalidateDashboard(ctx, userID)
	return note, nil
}
