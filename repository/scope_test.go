package repository

import (
	"testing"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
)

func TestScopeFilter(t *testing.T) {
	t.Run("General scope filters on explicit nulls", func(t *testing.T) {
		filter := ScopeFilter("user-1", model.GeneralScope())

		if filter["user_id"] != "user-1" {
			t.Errorf("user_id = %v, want user-1", filter["user_id"])
		}
		if filter["subject_id"] != (*string)(nil) {
			t.Errorf("subject_id = %v, want nil", filter["subject_id"])
		}
		if filter["topic_id"] != (*string)(nil) {
			t.Errorf("topic_id = %v, want nil", filter["topic_id"])
		}
	})

	t.Run("Topic scope carries both ids", func(t *testing.T) {
		filter := ScopeFilter("user-1", model.TopicScope("subj-1", "topic-1"))

		subjectID, ok := filter["subject_id"].(*string)
		if !ok || subjectID == nil || *subjectID != "subj-1" {
			t.Errorf("subject_id = %v, want subj-1", filter["subject_id"])
		}
		topicID, ok := filter["topic_id"].(*string)
		if !ok || topicID == nil || *topicID != "topic-1" {
			t.Errorf("topic_id = %v, want topic-1", filter["topic_id"])
		}
	})
}

func TestTopicsFilter(t *testing.T) {
	filter := topicsFilter("user-1", []string{"t1", "t2"})

	if filter["user_id"] != "user-1" {
		t.Errorf("user_id = %v, want user-1", filter["user_id"])
	}

	inClause, ok := filter["topic_id"].(bson.M)
	if !ok {
		t.Fatalf("topic_id filter has unexpected shape: %T", filter["topic_id"])
	}
	ids, ok := inClause["$in"].([]string)
	if !ok || len(ids) != 2 {
		t.Errorf("$in = %v, want [t1 t2]", inClause["$in"])
	}
}
