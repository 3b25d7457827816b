package usecase

import (
	"context"
	"fmt"

	"main/model"
	"main/repository"
)

// requireTopic loads a topic and verifies the acting user owns it. A missing
// topic and a foreign topic come back as distinct errors so handlers can map
// them to different status codes.
func requireTopic(ctx context.Context, topics *repository.TopicsRepo, userID, topicID string) (*model.Topic, error) {
	topic, err := topics.GetTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic: %w", err)
	}
	if topic == nil {
		return nil, ErrNotFound
	}
	if topic.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return topic, nil
}

// resolveScope maps an optional topic id onto a content scope. No topic id
// means the General scope; a topic id means the scope of that topic, with the
// subject id derived from the topic row rather than trusted from the caller.
func resolveScope(ctx context.Context, topics *repository.TopicsRepo, userID string, topicID *string) (model.Scope, error) {
	if topicID == nil || *topicID == "" {
		return model.GeneralScope(), nil
	}

	topic, err := requireTopic(ctx, topics, userID, *topicID)
	if err != nil {
		return model.Scope{}, err
	}
	return model.TopicScope(topic.SubjectID, topic.ID), nil
}
