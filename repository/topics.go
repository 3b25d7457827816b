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

type TopicsRepo struct {
	MongoCollection *mongo.Collection
}

func GetTopicsRepo(client *mongo.Client) *TopicsRepo {
	return &TopicsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("topics"),
	}
}

// CreateTopic inserts a new topic row
func (r *TopicsRepo) CreateTopic(ctx context.Context, topic *model.Topic) error {
	timer := utils.TrackDBOperation("insert", "topics")
	defer timer.ObserveDuration()

	if topic.UserID == "" || topic.SubjectID == "" {
		utils.TrackError("database", "invalid_topic_data")
		return errors.New("user ID and subject ID are required")
	}

	topic.CreatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, topic)
	if err != nil {
		utils.TrackError("database", "topic_insert_failed")
	}
	return err
}

// GetTopic retrieves a topic by id regardless of owner. The caller is
// responsible for comparing UserID against the acting user.
func (r *TopicsRepo) GetTopic(ctx context.Context, topicID string) (*model.Topic, error) {
	timer := utils.TrackDBOperation("find", "topics")
	defer timer.ObserveDuration()

	var topic model.Topic
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": topicID}).Decode(&topic)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "topic_lookup_error")
		return nil, err
	}
	return &topic, nil
}

// GetSubjectTopics retrieves all topics under a subject, oldest first
func (r *TopicsRepo) GetSubjectTopics(ctx context.Context, userID, subjectID string) ([]*model.Topic, error) {
	timer := utils.TrackDBOperation("find", "topics")
	defer timer.ObserveDuration()

	var topics []*model.Topic
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "subject_id": subjectID}, opts)
	if err != nil {
		utils.TrackError("database", "topic_list_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// GetSubjectTopicIDs returns just the ids of every topic under a subject.
// The cascade uses this to aim its scoped-content deletes.
func (r *TopicsRepo) GetSubjectTopicIDs(ctx context.Context, userID, subjectID string) ([]string, error) {
	timer := utils.TrackDBOperation("find", "topics")
	defer timer.ObserveDuration()

	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "subject_id": subjectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID string `bson:"_id"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// RenameTopic updates the name of a topic owned by the given user
func (r *TopicsRepo) RenameTopic(ctx context.Context, topicID, userID, name string) error {
	timer := utils.TrackDBOperation("update", "topics")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": topicID, "user_id": userID}
	update := bson.M{"$set": bson.M{"name": name}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "topic_rename_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("topic not found")
	}
	return nil
}

// DeleteTopic removes a single topic row
func (r *TopicsRepo) DeleteTopic(ctx context.Context, topicID, userID string) error {
	timer := utils.TrackDBOperation("delete", "topics")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": topicID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "topic_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("topic not found")
	}
	return nil
}

// DeleteSubjectTopics removes every topic row under a subject
func (r *TopicsRepo) DeleteSubjectTopics(ctx context.Context, userID, subjectID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "topics")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx,
		bson.M{"user_id": userID, "subject_id": subjectID})
	if err != nil {
		utils.TrackError("database", "topic_cascade_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountUserTopics counts the topics owned by a user across all subjects
func (r *TopicsRepo) CountUserTopics(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "topics")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
