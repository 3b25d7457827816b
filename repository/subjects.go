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

type SubjectsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSubjectsRepo(client *mongo.Client) *SubjectsRepo {
	return &SubjectsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("subjects"),
	}
}

// CreateSubject inserts a new subject row
func (r *SubjectsRepo) CreateSubject(ctx context.Context, subject *model.Subject) error {
	timer := utils.TrackDBOperation("insert", "subjects")
	defer timer.ObserveDuration()

	if subject.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	subject.CreatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, subject)
	if err != nil {
		utils.TrackError("database", "subject_insert_failed")
	}
	return err
}

// GetSubject retrieves a subject by id regardless of owner. The caller is
// responsible for comparing UserID against the acting user.
func (r *SubjectsRepo) GetSubject(ctx context.Context, subjectID string) (*model.Subject, error) {
	timer := utils.TrackDBOperation("find", "subjects")
	defer timer.ObserveDuration()

	var subject model.Subject
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": subjectID}).Decode(&subject)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "subject_lookup_error")
		return nil, err
	}
	return &subject, nil
}

// GetUserSubjects retrieves all subjects for a user, oldest first
func (r *SubjectsRepo) GetUserSubjects(ctx context.Context, userID string) ([]*model.Subject, error) {
	timer := utils.TrackDBOperation("find", "subjects")
	defer timer.ObserveDuration()

	var subjects []*model.Subject
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "subject_list_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// RenameSubject updates the name of a subject owned by the given user
func (r *SubjectsRepo) RenameSubject(ctx context.Context, subjectID, userID, name string) error {
	timer := utils.TrackDBOperation("update", "subjects")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": subjectID, "user_id": userID}
	update := bson.M{"$set": bson.M{"name": name}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "subject_rename_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("subject not found")
	}
	return nil
}

// DeleteSubject removes the subject row itself. Cascading over topics and
// scoped content happens before this call, never through it.
func (r *SubjectsRepo) DeleteSubject(ctx context.Context, subjectID, userID string) error {
	timer := utils.TrackDBOperation("delete", "subjects")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": subjectID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "subject_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("subject not found")
	}
	return nil
}

// CountUserSubjects counts the subjects owned by a user
func (r *SubjectsRepo) CountUserSubjects(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "subjects")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
