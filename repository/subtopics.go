package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubtopicsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSubtopicsRepo(client *mongo.Client) *SubtopicsRepo {
	return &SubtopicsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("subtopics"),
	}
}

// CreateSubtopic inserts a new subtopic row. Subtopics are append-only leaf
// nodes; they carry no rename or single delete.
func (r *SubtopicsRepo) CreateSubtopic(ctx context.Context, subtopic *model.Subtopic) error {
	timer := utils.TrackDBOperation("insert", "subtopics")
	defer timer.ObserveDuration()

	if subtopic.UserID == "" || subtopic.TopicID == "" {
		utils.TrackError("database", "invalid_subtopic_data")
		return errors.New("user ID and topic ID are required")
	}

	subtopic.CreatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, subtopic)
	if err != nil {
		utils.TrackError("database", "subtopic_insert_failed")
	}
	return err
}

// GetTopicSubtopics retrieves all subtopics under a topic, oldest first
func (r *SubtopicsRepo) GetTopicSubtopics(ctx context.Context, userID, topicID string) ([]*model.Subtopic, error) {
	timer := utils.TrackDBOperation("find", "subtopics")
	defer timer.ObserveDuration()

	var subtopics []*model.Subtopic
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "topic_id": topicID}, opts)
	if err != nil {
		utils.TrackError("database", "subtopic_list_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &subtopics); err != nil {
		return nil, err
	}
	return subtopics, nil
}

// DeleteTopicsSubtopics removes every subtopic under any of the given topics
func (r *SubtopicsRepo) DeleteTopicsSubtopics(ctx context.Context, userID string, topicIDs []string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "subtopics")
	defer timer.ObserveDuration()

	if len(topicIDs) == 0 {
		return 0, nil
	}

	result, err := r.MongoCollection.DeleteMany(ctx, topicsFilter(userID, topicIDs))
	if err != nil {
		utils.TrackError("database", "subtopic_cascade_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}
