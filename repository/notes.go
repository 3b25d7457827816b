package repository

import (
	"context"
	"os"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

// GetNote retrieves the single note of a (user, scope) pair, or nil when the
// scope has no note yet.
func (r *NotesRepo) GetNote(ctx context.Context, userID string, scope model.Scope) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, ScopeFilter(userID, scope)).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}
	return &note, nil
}

// UpsertNote writes the note content of a (user, scope) pair in one atomic
// round trip: update in place when the row exists, insert otherwise. Together
// with the unique (user_id, subject_id, topic_id) index this keeps the
// one-note-per-scope invariant even when two sessions race; the loser of a
// concurrent insert hits a duplicate-key error instead of creating a second
// row.
func (r *NotesRepo) UpsertNote(ctx context.Context, userID string, scope model.Scope, content string) (*model.Note, error) {
	timer := utils.TrackDBOperation("upsert", "notes")
	defer timer.ObserveDuration()

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"content":    content,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        uuid.New().String(),
			"user_id":    userID,
			"subject_id": scope.SubjectID,
			"topic_id":   scope.TopicID,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, ScopeFilter(userID, scope), update, opts).Decode(&note)
	if err != nil {
		utils.TrackError("database", "note_upsert_failed")
		return nil, err
	}
	return &note, nil
}

// GetLatestNote retrieves the most recently updated note across all of a
// user's scopes, or nil when the user has no notes at all.
func (r *NotesRepo) GetLatestNote(ctx context.Context, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}
	return &note, nil
}

// CountUserNotes counts the notes owned by a user across all scopes
func (r *NotesRepo) CountUserNotes(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "notes")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// DeleteTopicsNotes removes every note scoped to any of the given topics.
// General notes carry a null topic_id and are never matched.
func (r *NotesRepo) DeleteTopicsNotes(ctx context.Context, userID string, topicIDs []string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	if len(topicIDs) == 0 {
		return 0, nil
	}

	result, err := r.MongoCollection.DeleteMany(ctx, topicsFilter(userID, topicIDs))
	if err != nil {
		utils.TrackError("database", "note_cascade_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}
