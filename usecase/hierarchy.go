package usecase

import (
	"context"
	"fmt"
	"strings"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/google/uuid"
)

const maxNameLength = 120

// HierarchyService owns the subject -> topic -> subtopic tree. Deletes
// cascade child first so a failure partway through can never leave orphaned
// rows pointing at a parent that is already gone.
type HierarchyService struct {
	Subjects  *repository.SubjectsRepo
	Topics    *repository.TopicsRepo
	Subtopics *repository.SubtopicsRepo
	Notes     *repository.NotesRepo
	PDFs      *repository.PDFsRepo
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationError("name cannot be empty")
	}
	if len(name) > maxNameLength {
		return "", validationError("name cannot exceed %d characters", maxNameLength)
	}
	return name, nil
}

func (s *HierarchyService) requireSubject(ctx context.Context, userID, subjectID string) (*model.Subject, error) {
	subject, err := s.Subjects.GetSubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subject: %w", err)
	}
	if subject == nil {
		return nil, ErrNotFound
	}
	if subject.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return subject, nil
}

// CreateSubject adds a new top-level subject for the user
func (s *HierarchyService) CreateSubject(ctx context.Context, userID, name string) (*model.Subject, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	subject := &model.Subject{
		ID:     uuid.New().String(),
		UserID: userID,
		Name:   name,
	}
	if err := s.Subjects.CreateSubject(ctx, subject); err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	utils.TrackHierarchyOperation("subject", "create")
	return subject, nil
}

// ListSubjects returns the user's subjects, oldest first
func (s *HierarchyService) ListSubjects(ctx context.Context, userID string) ([]*model.Subject, error) {
	return s.Subjects.GetUserSubjects(ctx, userID)
}

// RenameSubject changes a subject's name after an ownership check
func (s *HierarchyService) RenameSubject(ctx context.Context, userID, subjectID, name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}
	if _, err := s.requireSubject(ctx, userID, subjectID); err != nil {
		return err
	}

	if err := s.Subjects.RenameSubject(ctx, subjectID, userID, name); err != nil {
		return fmt.Errorf("failed to rename subject: %w", err)
	}
	utils.TrackHierarchyOperation("subject", "rename")
	return nil
}

// DeleteSubject removes a subject and everything scoped under it: the
// attachments and notes of every topic, the subtopics, the topics, and
// finally the subject row itself. General content is untouched.
func (s *HierarchyService) DeleteSubject(ctx context.Context, userID, subjectID string) error {
	if _, err := s.requireSubject(ctx, userID, subjectID); err != nil {
		return err
	}

	topicIDs, err := s.Topics.GetSubjectTopicIDs(ctx, userID, subjectID)
	if err != nil {
		return fmt.Errorf("failed to list subject topics: %w", err)
	}

	if err := s.cascadeTopics(ctx, userID, topicIDs, nil); err != nil {
		return err
	}

	if _, err := s.Topics.DeleteSubjectTopics(ctx, userID, subjectID); err != nil {
		return &PartialDeleteError{
			Completed: []string{"pdfs", "notes", "subtopics"},
			Failed:    "topics",
			Err:       err,
		}
	}
	if err := s.Subjects.DeleteSubject(ctx, subjectID, userID); err != nil {
		return &PartialDeleteError{
			Completed: []string{"pdfs", "notes", "subtopics", "topics"},
			Failed:    "subject",
			Err:       err,
		}
	}

	utils.TrackHierarchyOperation("subject", "delete")
	invalidateDashboard(ctx, userID)
	return nil
}

// CreateTopic adds a new topic under a subject the user owns
func (s *HierarchyService) CreateTopic(ctx context.Context, userID, subjectID, name string) (*model.Topic, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireSubject(ctx, userID, subjectID); err != nil {
		return nil, err
	}

	topic := &model.Topic{
		ID:        uuid.New().String(),
		UserID:    userID,
		SubjectID: subjectID,
		Name:      name,
	}
	if err := s.Topics.CreateTopic(ctx, topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	utils.TrackHierarchyOperation("topic", "create")
	return topic, nil
}

// ListTopics returns the topics under a subject the user owns, oldest first
func (s *HierarchyService) ListTopics(ctx context.Context, userID, subjectID string) ([]*model.Topic, error) {
	if _, err := s.requireSubject(ctx, userID, subjectID); err != nil {
		return nil, err
	}
	return s.Topics.GetSubjectTopics(ctx, userID, subjectID)
}

// RenameTopic changes a topic's name after an ownership check
func (s *HierarchyService) RenameTopic(ctx context.Context, userID, topicID, name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}
	if _, err := requireTopic(ctx, s.Topics, userID, topicID); err != nil {
		return err
	}

	if err := s.Topics.RenameTopic(ctx, topicID, userID, name); err != nil {
		return fmt.Errorf("failed to rename topic: %w", err)
	}
	utils.TrackHierarchyOperation("topic", "rename")
	return nil
}

// DeleteTopic removes a topic with the same child-first cascade a subject
// delete uses, scoped to this one topic: attachments, note, subtopics, then
// the topic row.
func (s *HierarchyService) DeleteTopic(ctx context.Context, userID, topicID string) error {
	if _, err := requireTopic(ctx, s.Topics, userID, topicID); err != nil {
		return err
	}

	if err := s.cascadeTopics(ctx, userID, []string{topicID}, nil); err != nil {
		return err
	}

	if err := s.Topics.DeleteTopic(ctx, topicID, userID); err != nil {
		return &PartialDeleteError{
			Completed: []string{"pdfs", "notes", "subtopics"},
			Failed:    "topic",
			Err:       err,
		}
	}

	utils.TrackHierarchyOperation("topic", "delete")
	invalidateDashboard(ctx, userID)
	return nil
}

// CreateSubtopic adds a leaf subtopic under a topic the user owns
func (s *HierarchyService) CreateSubtopic(ctx context.Context, userID, topicID, name string) (*model.Subtopic, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if _, err := requireTopic(ctx, s.Topics, userID, topicID); err != nil {
		return nil, err
	}

	subtopic := &model.Subtopic{
		ID:      uuid.New().String(),
		UserID:  userID,
		TopicID: topicID,
		Name:    name,
	}
	if err := s.Subtopics.CreateSubtopic(ctx, subtopic); err != nil {
		return nil, fmt.Errorf("failed to create subtopic: %w", err)
	}

	utils.TrackHierarchyOperation("subtopic", "create")
	return subtopic, nil
}

// ListSubtopics returns the subtopics under a topic the user owns, oldest first
func (s *HierarchyService) ListSubtopics(ctx context.Context, userID, topicID string) ([]*model.Subtopic, error) {
	if _, err := requireTopic(ctx, s.Topics, userID, topicID); err != nil {
		return nil, err
	}
	return s.Subtopics.GetTopicSubtopics(ctx, userID, topicID)
}

// cascadeTopics clears the scoped content of the given topics in child-first
// order. When a step fails, the completed steps are reported so the caller
// knows the delete is resumable, not lost.
func (s *HierarchyService) cascadeTopics(ctx context.Context, userID string, topicIDs []string, completed []string) error {
	if _, err := s.PDFs.DeleteTopicsPDFs(ctx, userID, topicIDs); err != nil {
		return &PartialDeleteError{Completed: completed, Failed: "pdfs", Err: err}
	}
	completed = append(completed, "pdfs")

	if _, err := s.Notes.DeleteTopicsNotes(ctx, userID, topicIDs); err != nil {
		return &PartialDeleteError{Completed: completed, Failed: "notes", Err: err}
	}
	completed = append(completed, "notes")

	if _, err := s.Subtopics.DeleteTopicsSubtopics(ctx, userID, topicIDs); err != nil {
		return &PartialDeleteError{Completed: completed, Failed: "subtopics", Err: err}
	}
	return nil
}
